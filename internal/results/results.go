package results

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"codeberg.org/snonux/dialectprompt/internal"
	"codeberg.org/snonux/dialectprompt/internal/dataset"
)

// Result is the outcome for one sentence of a batch.
type Result struct {
	Index       int
	Sentence    string
	Reference   string
	Translation string
	Err         error
	Cached      bool
	// Fields are the original input fields, if the batch came from a
	// structured file.
	Fields dataset.Record
}

// Run describes one batch run.
type Run struct {
	ID         string
	StartedAt  time.Time
	Translator string
	Method     string
	Source     string
	Target     string
	Examples   int
}

// Summary counts outcomes of a run.
type Summary struct {
	Total      int
	Translated int
	Cached     int
	Failed     int
}

// Summarize counts results by outcome. Cached results count as translated.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		switch {
		case r.Err != nil:
			s.Failed++
		case r.Cached:
			s.Cached++
			s.Translated++
		default:
			s.Translated++
		}
	}
	return s
}

// FileName returns the result file name for a run, e.g.
// "Sylhet_Test_English_Zero-Shot_gpt-4.1-mini_Translation.json".
func FileName(dialect, split, language, method, model string) string {
	name := fmt.Sprintf("%s_%s_%s_%s_%s_Translation.json", dialect, split, language, method, model)
	return internal.SanitizeFilename(name)
}

// record builds the JSON object for r. Structured input keeps all of its
// fields; plain text input gets sentence and reference fields.
func record(r Result) map[string]any {
	out := make(map[string]any, len(r.Fields)+3)
	if r.Fields != nil {
		for k, v := range r.Fields {
			out[k] = v
		}
	} else {
		out["sentence"] = r.Sentence
		if r.Reference != "" {
			out["reference"] = r.Reference
		}
	}
	out["translation"] = r.Translation
	if r.Err != nil {
		out["error"] = r.Err.Error()
	}
	return out
}

// WriteJSON writes results as a pretty-printed JSON array to path, creating
// the parent directory. Non-ASCII text is written as is.
func WriteJSON(path string, results []Result) error {
	records := make([]map[string]any, len(results))
	for i, r := range results {
		records[i] = record(r)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}
	return nil
}
