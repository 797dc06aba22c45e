package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterGlossary(t *testing.T) {
	tests := []struct {
		name     string
		sentence string
		glossary []GlossaryEntry
		want     []GlossaryEntry
	}{
		{
			name:     "single token match",
			sentence: "আমার বই আছে",
			glossary: []GlossaryEntry{{Source: "বই", Target: "কিতাব"}},
			want:     []GlossaryEntry{{Source: "বই", Target: "কিতাব"}},
		},
		{
			name:     "empty glossary",
			sentence: "আমার বই আছে",
			glossary: nil,
			want:     nil,
		},
		{
			name:     "no match",
			sentence: "আমার বই আছে",
			glossary: []GlossaryEntry{{Source: "কলম", Target: "কলম"}},
			want:     nil,
		},
		{
			name:     "duplicates keep first occurrence",
			sentence: "আমার বই আছে",
			glossary: []GlossaryEntry{
				{Source: "বই", Target: "কিতাব"},
				{Source: "বই", Target: "পুথি"},
			},
			want: []GlossaryEntry{{Source: "বই", Target: "কিতাব"}},
		},
		{
			name:     "multi-token phrase matches as substring",
			sentence: "আমার বই আছে",
			glossary: []GlossaryEntry{{Source: "বই আছে", Target: "কিতাব আছে"}},
			want:     []GlossaryEntry{{Source: "বই আছে", Target: "কিতাব আছে"}},
		},
		{
			name:     "source word is trimmed and case folded",
			sentence: "I have a Book বই",
			glossary: []GlossaryEntry{
				{Source: " BOOK ", Target: "কিতাব"},
				{Source: "book", Target: "duplicate"},
			},
			want: []GlossaryEntry{{Source: " BOOK ", Target: "কিতাব"}},
		},
		{
			name:     "input order preserved",
			sentence: "আমি ভাত আর মাছ খাই",
			glossary: []GlossaryEntry{
				{Source: "মাছ", Target: "মাছ"},
				{Source: "কলম", Target: "কলম"},
				{Source: "ভাত", Target: "ভাত"},
			},
			want: []GlossaryEntry{
				{Source: "মাছ", Target: "মাছ"},
				{Source: "ভাত", Target: "ভাত"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterGlossary(tt.sentence, tt.glossary))
		})
	}
}

func TestFilterGlossaryDoesNotModifyInput(t *testing.T) {
	glossary := []GlossaryEntry{{Source: "বই", Target: "কিতাব"}, {Source: "বই", Target: "x"}}
	before := append([]GlossaryEntry(nil), glossary...)

	FilterGlossary("বই", glossary)

	assert.Equal(t, before, glossary)
}
