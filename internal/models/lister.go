package models

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"

	"codeberg.org/snonux/dialectprompt/internal/translation"
)

// Lister handles listing available chat models
type Lister struct {
	apiKey string
	client *openai.Client
}

// NewLister creates a new model lister. An empty baseURL uses the OpenAI API.
func NewLister(apiKey, baseURL string) *Lister {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &Lister{
		apiKey: apiKey,
		client: openai.NewClientWithConfig(config),
	}
}

// ChatModels returns the sorted IDs of all models usable for translation.
func (l *Lister) ChatModels(ctx context.Context) ([]string, error) {
	if l.apiKey == "" {
		return nil, fmt.Errorf("%w: set OPENAI_API_KEY or translation.openai_key in .dialectprompt.yaml", translation.ErrMissingAPIKey)
	}

	list, err := l.client.ListModels(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}

	var chat []string
	for _, model := range list.Models {
		if isChatModel(model.ID) {
			chat = append(chat, model.ID)
		}
	}
	sort.Strings(chat)
	return chat, nil
}

func isChatModel(id string) bool {
	for _, skip := range []string{"tts", "audio", "dall-e", "embedding", "whisper", "realtime", "transcribe", "image"} {
		if strings.Contains(id, skip) {
			return false
		}
	}
	return strings.Contains(id, "gpt") || strings.Contains(id, "chat") ||
		strings.HasPrefix(id, "o1") || strings.HasPrefix(id, "o3") || strings.HasPrefix(id, "o4")
}

// ListAvailableModels writes the chat models to w.
func (l *Lister) ListAvailableModels(ctx context.Context, w io.Writer) error {
	chat, err := l.ChatModels(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Chat models usable for translation:")
	if len(chat) == 0 {
		fmt.Fprintln(w, "  No chat models found")
		return nil
	}
	for _, model := range chat {
		fmt.Fprintf(w, "  %s\n", model)
	}
	return nil
}
