// Package processor contains the core logic of the dialectprompt command.
// It loads the glossary and example pool, builds a prompt per sentence and,
// when asked, sends prompts to a translation provider. Batch runs translate
// concurrently and write their results through the results package.
package processor
