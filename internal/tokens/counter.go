package tokens

import (
	"fmt"
	"strings"
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

// DefaultEncoding is used for models without a known encoding, Gemini
// included, where the count is an estimate.
const DefaultEncoding = "cl100k_base"

// Longer prefixes first so "gpt-4o" wins over "gpt-4".
var modelPrefixes = []struct {
	prefix   string
	encoding string
}{
	{"gpt-4.1", "o200k_base"},
	{"gpt-4o", "o200k_base"},
	{"gpt-5", "o200k_base"},
	{"o1", "o200k_base"},
	{"o3", "o200k_base"},
	{"o4", "o200k_base"},
	{"gpt-4", "cl100k_base"},
	{"gpt-3.5", "cl100k_base"},
}

// EncodingFor returns the tiktoken encoding name for model.
func EncodingFor(model string) string {
	for _, m := range modelPrefixes {
		if strings.HasPrefix(model, m.prefix) {
			return m.encoding
		}
	}
	return DefaultEncoding
}

// Counter counts tokens for one model. The encoding is loaded on first use,
// which may download it.
type Counter struct {
	model    string
	encoding string

	once    sync.Once
	enc     *tiktoken.Tiktoken
	initErr error
}

// NewCounter returns a counter for model.
func NewCounter(model string) *Counter {
	return &Counter{model: model, encoding: EncodingFor(model)}
}

// Encoding returns the encoding name the counter uses.
func (c *Counter) Encoding() string {
	return c.encoding
}

func (c *Counter) init() error {
	c.once.Do(func() {
		enc, err := tiktoken.GetEncoding(c.encoding)
		if err != nil {
			c.initErr = fmt.Errorf("init tiktoken encoding %s: %w", c.encoding, err)
			return
		}
		c.enc = enc
	})
	return c.initErr
}

// Count returns the number of tokens in text.
func (c *Counter) Count(text string) (int, error) {
	if err := c.init(); err != nil {
		return 0, err
	}
	return len(c.enc.Encode(text, nil, nil)), nil
}

// CountPrompt returns the tokens of a system and user message pair.
func (c *Counter) CountPrompt(system, user string) (int, error) {
	s, err := c.Count(system)
	if err != nil {
		return 0, err
	}
	u, err := c.Count(user)
	if err != nil {
		return 0, err
	}
	return s + u, nil
}
