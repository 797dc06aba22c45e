// Package tokens counts the tokens a prompt costs with the tiktoken encoding
// of the target model.
package tokens
