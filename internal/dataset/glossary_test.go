package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"codeberg.org/snonux/dialectprompt/internal/prompt"
)

func TestParseGlossary(t *testing.T) {
	tests := []struct {
		name    string
		content string
		cols    GlossaryColumns
		want    []prompt.GlossaryEntry
		wantErr error
	}{
		{
			name:    "default columns",
			content: "ben,syl\nবই,কিতাব\nজল,পানি\n",
			cols:    DefaultGlossaryColumns(),
			want: []prompt.GlossaryEntry{
				{Source: "বই", Target: "কিতাব"},
				{Source: "জল", Target: "পানি"},
			},
		},
		{
			name:    "extra columns and reordered header",
			content: "id,syl,note,ben\n1,কিতাব,x,বই\n",
			cols:    DefaultGlossaryColumns(),
			want:    []prompt.GlossaryEntry{{Source: "বই", Target: "কিতাব"}},
		},
		{
			name:    "values trimmed and BOM stripped",
			content: "\xEF\xBB\xBFben,syl\n  বই  , কিতাব \n",
			cols:    DefaultGlossaryColumns(),
			want:    []prompt.GlossaryEntry{{Source: "বই", Target: "কিতাব"}},
		},
		{
			name:    "short and empty rows skipped",
			content: "ben,syl\nবই\n,কিতাব\nজল,পানি\n",
			cols:    DefaultGlossaryColumns(),
			want:    []prompt.GlossaryEntry{{Source: "জল", Target: "পানি"}},
		},
		{
			name:    "duplicates kept",
			content: "ben,syl\nবই,কিতাব\nবই,পুথি\n",
			cols:    DefaultGlossaryColumns(),
			want: []prompt.GlossaryEntry{
				{Source: "বই", Target: "কিতাব"},
				{Source: "বই", Target: "পুথি"},
			},
		},
		{
			name:    "custom columns",
			content: "bangla,sylheti\nবই,কিতাব\n",
			cols:    GlossaryColumns{Source: "bangla", Target: "sylheti"},
			want:    []prompt.GlossaryEntry{{Source: "বই", Target: "কিতাব"}},
		},
		{
			name:    "empty file",
			content: "",
			cols:    DefaultGlossaryColumns(),
			want:    nil,
		},
		{
			name:    "missing source column",
			content: "word,syl\nবই,কিতাব\n",
			cols:    DefaultGlossaryColumns(),
			wantErr: ErrMissingColumn,
		},
		{
			name:    "missing target column",
			content: "ben,word\nবই,কিতাব\n",
			cols:    DefaultGlossaryColumns(),
			wantErr: ErrMissingColumn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseGlossary([]byte(tt.content), tt.cols)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseGlossary() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseGlossary() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseGlossary() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoadGlossary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glossary.csv")
	if err := os.WriteFile(path, []byte("ben,syl\nবই,কিতাব\n"), 0644); err != nil {
		t.Fatalf("Failed to write glossary: %v", err)
	}

	got, err := LoadGlossary(path, DefaultGlossaryColumns())
	if err != nil {
		t.Fatalf("LoadGlossary failed: %v", err)
	}
	if len(got) != 1 || got[0].Target != "কিতাব" {
		t.Errorf("Unexpected glossary: %v", got)
	}
}

func TestLoadGlossary_MissingFile(t *testing.T) {
	if _, err := LoadGlossary("/nonexistent/glossary.csv", DefaultGlossaryColumns()); err == nil {
		t.Error("Expected error for missing file")
	}
}
