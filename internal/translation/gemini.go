package translation

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// GeminiTranslator translates through the Gemini API.
type GeminiTranslator struct {
	client *genai.Client
	config Config
}

// NewGeminiTranslator creates a Gemini backed translator.
func NewGeminiTranslator(ctx context.Context, cfg Config) (*GeminiTranslator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("Gemini: %w", ErrMissingAPIKey)
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel(ProviderGemini)
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions.BaseURL = cfg.BaseURL
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiTranslator{client: client, config: cfg}, nil
}

// Name returns the provider and model.
func (t *GeminiTranslator) Name() string {
	return "gemini/" + t.config.Model
}

// Translate sends user with system as the system instruction.
func (t *GeminiTranslator) Translate(ctx context.Context, system, user string) (string, error) {
	if t.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.config.Timeout)
		defer cancel()
	}

	genConfig := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		Temperature:       genai.Ptr(t.config.Temperature),
	}

	resp, err := t.client.Models.GenerateContent(ctx, t.config.Model, genai.Text(user), genConfig)
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	translation := strings.TrimSpace(resp.Text())
	if translation == "" {
		return "", ErrEmptyResponse
	}
	return translation, nil
}
