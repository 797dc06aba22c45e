package tokens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodingFor(t *testing.T) {
	tests := map[string]string{
		"gpt-4.1-mini":     "o200k_base",
		"gpt-4o":           "o200k_base",
		"gpt-4o-mini":      "o200k_base",
		"o3-mini":          "o200k_base",
		"gpt-4":            "cl100k_base",
		"gpt-4-turbo":      "cl100k_base",
		"gpt-3.5-turbo":    "cl100k_base",
		"gemini-2.0-flash": DefaultEncoding,
		"":                 DefaultEncoding,
	}
	for model, want := range tests {
		assert.Equal(t, want, EncodingFor(model), model)
	}
}

// newCounter skips when the encoding cannot be loaded, e.g. offline.
func newCounter(t *testing.T, model string) *Counter {
	t.Helper()
	c := NewCounter(model)
	if err := c.init(); err != nil {
		t.Skipf("tiktoken encoding unavailable: %v", err)
	}
	return c
}

func TestCount(t *testing.T) {
	c := newCounter(t, "gpt-4o")

	n, err := c.Count("")
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	short, err := c.Count("আমি ভাত খাই")
	require.NoError(t, err)
	assert.Positive(t, short)

	long, err := c.Count("আমি ভাত খাই। তুমি কি খাও? আমরা সবাই মিলে বাজারে যাব।")
	require.NoError(t, err)
	assert.Greater(t, long, short)
}

func TestCountPrompt(t *testing.T) {
	c := newCounter(t, "gpt-4.1-mini")

	s, err := c.Count("system text")
	require.NoError(t, err)
	u, err := c.Count("Bangla: আমি\nSylheti:")
	require.NoError(t, err)

	total, err := c.CountPrompt("system text", "Bangla: আমি\nSylheti:")
	require.NoError(t, err)
	assert.Equal(t, s+u, total)
}
