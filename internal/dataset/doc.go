// Package dataset loads the glossary and few-shot example pools the prompt
// builder works on. Column and field names are configurable so the same
// loaders serve every dialect pair of a corpus.
package dataset
