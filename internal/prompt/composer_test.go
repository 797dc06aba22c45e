package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompose_EmptyInputs(t *testing.T) {
	out := Compose("আমার বই আছে", nil, nil)

	assert.True(t, strings.HasPrefix(out, "You are an expert translator from Bengali (Bangla) to Sylheti."))
	assert.Contains(t, out, "Few-shot examples:\n")
	assert.Contains(t, out, "Glossary:\n")
	assert.True(t, strings.HasSuffix(out, "Bangla: আমার বই আছে\nSylheti:"))
}

func TestCompose_Layout(t *testing.T) {
	examples := []Example{
		{Source: "আমি ভাত খাই", Target: "আমি ভাত খাই"},
		{Source: "তুমি কোথায়", Target: "তুমি কোয়াই"},
	}
	glossary := []GlossaryEntry{{Source: "বই", Target: "কিতাব"}}

	out := Compose("আমার বই আছে", examples, glossary)

	want := "Few-shot examples:\n" +
		"1. Bangla: আমি ভাত খাই\n   Sylheti: আমি ভাত খাই\n\n" +
		"2. Bangla: তুমি কোথায়\n   Sylheti: তুমি কোয়াই\n\n" +
		"\nGlossary:\n" +
		"1. Bangla: বই → Sylheti: কিতাব\n" +
		"\n\nBangla: আমার বই আছে\nSylheti:"
	assert.True(t, strings.HasSuffix(out, want), "got:\n%s", out)
}

func TestCompose_EmptyStringsRendered(t *testing.T) {
	out := Compose("", []Example{{}}, []GlossaryEntry{{}})

	assert.Contains(t, out, "1. Bangla: \n   Sylheti: \n")
	assert.Contains(t, out, "1. Bangla:  → Sylheti: \n")
	assert.True(t, strings.HasSuffix(out, "Bangla: \nSylheti:"))
}

func TestCompose_Deterministic(t *testing.T) {
	ex := []Example{{Source: "a", Target: "b"}}
	gl := []GlossaryEntry{{Source: "c", Target: "d"}}
	assert.Equal(t, Compose("s", ex, gl), Compose("s", ex, gl))
}

func TestComposer_OtherDirection(t *testing.T) {
	c := NewComposer(Languages{
		Source:      "Sylheti dialect of Bengali",
		SourceLabel: "Sylheti",
		Target:      "standard Bengali",
		TargetLabel: "Bangla",
	})

	out, err := c.Render("হে সিলেট থাকি আইছিল", nil, nil)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "You are an expert translator from Sylheti dialect of Bengali to standard Bengali."))
	assert.True(t, strings.HasSuffix(out, "Sylheti: হে সিলেট থাকি আইছিল\nBangla:"))
}

func TestNewTemplateComposer(t *testing.T) {
	body := `{{range .Examples}}{{.Source}}={{.Target}};{{end}}|{{range .Glossary}}{{.Source}}:{{.Target}};{{end}}|{{.Sentence}}`
	c, err := NewTemplateComposer(DefaultLanguages(), body)
	require.NoError(t, err)

	out, err := c.Render("s", []Example{{Source: "a", Target: "b"}}, []GlossaryEntry{{Source: "c", Target: "d"}})
	require.NoError(t, err)
	assert.Equal(t, "a=b;|c:d;|s", out)
}

func TestNewTemplateComposer_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"parse error", "{{.Sentence"},
		{"unknown field", "{{.Nope}}"},
		{"unknown func", "{{shout .Sentence}}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTemplateComposer(DefaultLanguages(), tt.body)
			assert.Error(t, err)
		})
	}
}

func TestZeroShot(t *testing.T) {
	lang := Languages{Source: "Sylheti dialect of Bengali", SourceLabel: "Sylheti", Target: "English", TargetLabel: "English"}
	system, user := ZeroShot(lang, "হে সিলেট থাকি")

	assert.Contains(t, system, "from Sylheti dialect of Bengali to English")
	assert.Contains(t, system, "without any additional commentary")
	assert.Equal(t, "Sylheti: হে সিলেট থাকি\nEnglish:", user)
}

func TestParseMethod(t *testing.T) {
	tests := []struct {
		in      string
		want    Method
		wantErr bool
	}{
		{"zero-shot", MethodZeroShot, false},
		{"Zero-Shot", MethodZeroShot, false},
		{"few-shot", MethodFewShot, false},
		{" FEW ", MethodFewShot, false},
		{"many-shot", "", true},
	}
	for _, tt := range tests {
		got, err := ParseMethod(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
	assert.Equal(t, "Zero-Shot", MethodZeroShot.Title())
	assert.Equal(t, "Few-Shot", MethodFewShot.Title())
}

func TestZeroShot_DialectToLanguage(t *testing.T) {
	system, user := ZeroShot(DialectToLanguage("Sylheti", "English"), "হে সিলেট থাকি")

	assert.True(t, strings.HasPrefix(system, "You are an expert translator from Sylheti dialect of Bengali to English."))
	assert.Contains(t, system, "Translate the Sylheti text to natural, fluent English.")
	assert.Equal(t, "Sylheti: হে সিলেট থাকি\nEnglish:", user)
}
