package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// MockTranslator mocks a translation provider. It is safe for concurrent
// use. Responses are keyed by the sentence, which is the text after the
// last "<label>: " line of the user prompt.
type MockTranslator struct {
	Translations map[string]string
	Errors       map[string]error

	mu    sync.Mutex
	calls []MockCall
}

// MockCall records one Translate call.
type MockCall struct {
	System string
	User   string
}

// Translate mocks translating the sentence in user.
func (m *MockTranslator) Translate(ctx context.Context, system, user string) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, MockCall{System: system, User: user})
	m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}

	sentence := SentenceOf(user)
	if err, ok := m.Errors[sentence]; ok {
		return "", err
	}
	if translation, ok := m.Translations[sentence]; ok {
		return translation, nil
	}
	return fmt.Sprintf("mock translation of %s", sentence), nil
}

// Name identifies the mock in logs and result files.
func (m *MockTranslator) Name() string {
	return "mock/test-model"
}

// Calls returns a copy of the recorded calls.
func (m *MockTranslator) Calls() []MockCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]MockCall, len(m.calls))
	copy(out, m.calls)
	return out
}

// SentenceOf extracts the sentence to translate from a prompt ending in
// "<source>: sentence\n<target>:".
func SentenceOf(prompt string) string {
	lines := strings.Split(strings.TrimRight(prompt, "\n"), "\n")
	if len(lines) < 2 {
		return prompt
	}
	_, sentence, ok := strings.Cut(lines[len(lines)-2], ": ")
	if !ok {
		return prompt
	}
	return sentence
}
