// Package translation sends composed prompts to a language model and returns
// the translation. It wraps OpenAI and Gemini behind one Translator
// interface, guards batch runs with a circuit breaker and caches results for
// sentences that repeat within a run.
package translation
