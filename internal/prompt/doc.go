// Package prompt builds few-shot translation prompts for dialect to
// standard-language translation. It tokenizes Bengali-script text, filters a
// bilingual glossary down to the entries relevant for a sentence, selects
// few-shot examples by lexical similarity with randomized diversity, and
// renders everything into a single prompt text.
//
// Everything in this package is a pure function of its inputs except the
// Selector, whose randomness comes from an injected *rand.Rand.
package prompt
