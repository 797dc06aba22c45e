// Package results writes the outcome of a batch translation run: a JSON file
// mirroring the input records with the translation added, and optionally a
// SQLite database accumulating runs over time.
package results
