// Package batch reads the sentences of a batch translation run from plain
// text files or from JSON/YAML test splits.
package batch
