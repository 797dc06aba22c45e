package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"latin only", "hello world 42", nil},
		{"simple sentence", "আমার বই আছে", []string{"আমার", "বই", "আছে"}},
		{"punctuation separates", "বই,কলম।", []string{"বই", "কলম"}},
		{"mixed script", "I read বই at home", []string{"বই"}},
		{"bengali digits kept", "১৯৫৬-১৯৬৬ সালের", []string{"১৯৫৬", "১৯৬৬", "সালের"}},
		{"ascii digits separate", "৪৯টি and 49", []string{"৪৯টি"}},
		{"newlines and tabs", "আমি\tতুমি\nসে", []string{"আমি", "তুমি", "সে"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.text))
		})
	}
}

func TestTokenSetLowersMixedScript(t *testing.T) {
	set := tokenSet("ABC বই বই")
	assert.Len(t, set, 1)
	assert.Contains(t, set, "বই")
}
