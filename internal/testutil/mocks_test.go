package testutil

import (
	"context"
	"errors"
	"testing"
)

func TestSentenceOf(t *testing.T) {
	tests := []struct {
		prompt string
		want   string
	}{
		{"Bangla: আমি ভাত খাই\nSylheti:", "আমি ভাত খাই"},
		{"preamble\n\nGlossary:\n1. Bangla: ভাত → Sylheti: বাত\n\n\nBangla: সে জল খায়\nSylheti:", "সে জল খায়"},
		{"no label", "no label"},
	}

	for _, tt := range tests {
		if got := SentenceOf(tt.prompt); got != tt.want {
			t.Errorf("SentenceOf(%q) = %q, want %q", tt.prompt, got, tt.want)
		}
	}
}

func TestMockTranslator(t *testing.T) {
	m := &MockTranslator{
		Translations: map[string]string{"ভাত": "বাত"},
		Errors:       map[string]error{"জল": errors.New("boom")},
	}
	ctx := context.Background()

	if got, err := m.Translate(ctx, "sys", "Bangla: ভাত\nSylheti:"); err != nil || got != "বাত" {
		t.Errorf("Translate() = %q, %v", got, err)
	}
	if _, err := m.Translate(ctx, "sys", "Bangla: জল\nSylheti:"); err == nil {
		t.Error("Expected configured error")
	}
	if got, _ := m.Translate(ctx, "sys", "Bangla: বই\nSylheti:"); got != "mock translation of বই" {
		t.Errorf("Unexpected default translation %q", got)
	}
	if len(m.Calls()) != 3 {
		t.Errorf("Expected 3 recorded calls, got %d", len(m.Calls()))
	}
}
