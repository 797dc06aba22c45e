package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"codeberg.org/snonux/dialectprompt/internal/prompt"
)

// ErrMissingColumn is returned when a glossary header lacks a configured
// column.
var ErrMissingColumn = errors.New("glossary is missing a required column")

// GlossaryColumns names the source and target columns of a glossary CSV.
type GlossaryColumns struct {
	Source string
	Target string
}

// DefaultGlossaryColumns matches the ONUBAD glossary layout.
func DefaultGlossaryColumns() GlossaryColumns {
	return GlossaryColumns{Source: "ben", Target: "syl"}
}

// LoadGlossary reads a CSV glossary with a header row from path.
func LoadGlossary(path string, cols GlossaryColumns) ([]prompt.GlossaryEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read glossary: %w", err)
	}
	return ParseGlossary(data, cols)
}

// ParseGlossary parses CSV glossary data. Rows that are too short, fail to
// parse or have an empty source word are skipped; values are trimmed.
func ParseGlossary(data []byte, cols GlossaryColumns) ([]prompt.GlossaryEntry, error) {
	r := csv.NewReader(bytes.NewReader(stripBOM(data)))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read glossary header: %w", err)
	}

	srcIdx, tgtIdx := -1, -1
	for i, h := range header {
		switch strings.TrimSpace(h) {
		case cols.Source:
			srcIdx = i
		case cols.Target:
			tgtIdx = i
		}
	}
	if srcIdx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, cols.Source)
	}
	if tgtIdx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, cols.Target)
	}

	var entries []prompt.GlossaryEntry
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				continue
			}
			return nil, fmt.Errorf("failed to read glossary row: %w", err)
		}
		if srcIdx >= len(rec) || tgtIdx >= len(rec) {
			continue
		}
		src := strings.TrimSpace(rec[srcIdx])
		if src == "" {
			continue
		}
		entries = append(entries, prompt.GlossaryEntry{
			Source: src,
			Target: strings.TrimSpace(rec[tgtIdx]),
		})
	}
	return entries, nil
}

func stripBOM(b []byte) []byte {
	return bytes.TrimPrefix(b, []byte{0xEF, 0xBB, 0xBF})
}
