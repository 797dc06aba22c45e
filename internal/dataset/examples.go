package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"codeberg.org/snonux/dialectprompt/internal/prompt"
)

// ExampleFields names the source and target sentence fields of an example
// record.
type ExampleFields struct {
	Source string
	Target string
}

// DefaultExampleFields matches the Vashantor Bangla/Sylheti records.
func DefaultExampleFields() ExampleFields {
	return ExampleFields{Source: "bangla_speech", Target: "sylhet_bangla_speech"}
}

// Record is one raw object of an example pool or test split.
type Record map[string]any

// String returns field as text. Missing fields and nulls are empty; other
// scalars are formatted.
func (r Record) String(field string) (string, bool) {
	v, ok := r[field]
	if !ok || v == nil {
		return "", false
	}
	if s, ok := v.(string); ok {
		return s, true
	}
	return fmt.Sprint(v), true
}

// LoadRecords reads a JSON array of objects, or a YAML sequence of mappings
// when path ends in .yaml or .yml.
func LoadRecords(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var records []Record
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &records)
	default:
		err = json.Unmarshal(stripBOM(data), &records)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return records, nil
}

// LoadExamples reads an example pool from path and maps fields onto
// examples. Records without the source field are skipped.
func LoadExamples(path string, fields ExampleFields) ([]prompt.Example, error) {
	records, err := LoadRecords(path)
	if err != nil {
		return nil, err
	}
	return ToExamples(records, fields), nil
}

// ToExamples maps records onto examples, skipping records that lack the
// source field.
func ToExamples(records []Record, fields ExampleFields) []prompt.Example {
	examples := make([]prompt.Example, 0, len(records))
	for _, rec := range records {
		src, ok := rec.String(fields.Source)
		if !ok {
			continue
		}
		tgt, _ := rec.String(fields.Target)
		examples = append(examples, prompt.Example{Source: src, Target: tgt})
	}
	return examples
}
