package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"codeberg.org/snonux/dialectprompt/internal/dataset"
)

// SentenceEntry is one sentence of a batch run with an optional reference
// translation.
type SentenceEntry struct {
	Sentence  string
	Reference string
	// Record holds the original fields when the batch came from a
	// structured file, so they can be written back next to the result.
	Record dataset.Record
}

// ReadBatch reads batch entries from path. JSON and YAML files are read as
// records with fields naming the sentence and reference fields; anything
// else is read as a plain text batch file.
func ReadBatch(path string, fields dataset.ExampleFields) ([]SentenceEntry, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		records, err := dataset.LoadRecords(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read batch file: %w", err)
		}
		return FromRecords(records, fields), nil
	default:
		return ReadBatchFile(path)
	}
}

// FromRecords turns records into entries, skipping records without a
// sentence.
func FromRecords(records []dataset.Record, fields dataset.ExampleFields) []SentenceEntry {
	var entries []SentenceEntry
	for _, rec := range records {
		sentence, ok := rec.String(fields.Source)
		if !ok || strings.TrimSpace(sentence) == "" {
			continue
		}
		reference, _ := rec.String(fields.Target)
		entries = append(entries, SentenceEntry{
			Sentence:  sentence,
			Reference: reference,
			Record:    rec,
		})
	}
	return entries
}

// ReadBatchFile reads sentences from a text file, one per line.
// Supported line formats:
// - sentence only: "আমি ভাত খাই"
// - with reference: "আমি ভাত খাই = I eat rice"
// Lines with only a reference ("= I eat rice") and blank lines are skipped.
func ReadBatchFile(filename string) ([]SentenceEntry, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	var entries []SentenceEntry
	for _, line := range splitLines(string(content)) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		sentence, reference, found := strings.Cut(line, "=")
		if !found {
			entries = append(entries, SentenceEntry{Sentence: line})
			continue
		}

		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}
		entries = append(entries, SentenceEntry{
			Sentence:  sentence,
			Reference: strings.TrimSpace(reference),
		})
	}

	return entries, nil
}

// splitLines splits on \n and drops \r so Windows files parse the same.
func splitLines(s string) []string {
	return strings.Split(strings.ReplaceAll(s, "\r", ""), "\n")
}
