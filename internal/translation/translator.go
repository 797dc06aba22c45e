package translation

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

var (
	// ErrMissingAPIKey is returned when a provider is used without a key.
	ErrMissingAPIKey = errors.New("API key not found")
	// ErrUnknownProvider is returned by NewTranslator for unsupported names.
	ErrUnknownProvider = errors.New("unknown translation provider")
	// ErrEmptyResponse is returned when the model answers with nothing.
	ErrEmptyResponse = errors.New("no translation returned")
)

// Translator turns a system instruction and a user prompt into a
// translation. A call either fully succeeds or fails.
type Translator interface {
	Translate(ctx context.Context, system, user string) (string, error)
	Name() string
}

// Provider names accepted by NewTranslator.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Config selects and configures a translation provider.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	BaseURL     string  // optional API endpoint override
	Temperature float32 // 0 keeps translations close to deterministic
	Timeout     time.Duration
}

// DefaultModel returns the model used when none is configured.
func DefaultModel(provider string) string {
	if provider == ProviderGemini {
		return "gemini-2.0-flash"
	}
	return "gpt-4.1-mini"
}

// NewTranslator creates the translator named by cfg.Provider.
func NewTranslator(ctx context.Context, cfg Config) (Translator, error) {
	if cfg.Model == "" {
		cfg.Model = DefaultModel(cfg.Provider)
	}
	switch cfg.Provider {
	case ProviderOpenAI, "":
		return NewOpenAITranslator(cfg)
	case ProviderGemini:
		return NewGeminiTranslator(ctx, cfg)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, cfg.Provider)
	}
}

// OpenAITranslator translates through the OpenAI chat completion API.
type OpenAITranslator struct {
	client *openai.Client
	config Config
}

// NewOpenAITranslator creates an OpenAI backed translator.
func NewOpenAITranslator(cfg Config) (*OpenAITranslator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OpenAI: %w", ErrMissingAPIKey)
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel(ProviderOpenAI)
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &OpenAITranslator{
		client: openai.NewClientWithConfig(clientConfig),
		config: cfg,
	}, nil
}

// Name returns the provider and model.
func (t *OpenAITranslator) Name() string {
	return "openai/" + t.config.Model
}

// Translate sends system and user as one chat turn and returns the trimmed
// answer.
func (t *OpenAITranslator) Translate(ctx context.Context, system, user string) (string, error) {
	if t.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.config.Timeout)
		defer cancel()
	}

	req := openai.ChatCompletionRequest{
		Model: t.config.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: t.config.Temperature,
	}
	if req.Temperature == 0 {
		// go-openai drops a zero temperature from the request.
		req.Temperature = math.SmallestNonzeroFloat32
	}

	resp, err := t.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	translation := strings.TrimSpace(resp.Choices[0].Message.Content)
	if translation == "" {
		return "", ErrEmptyResponse
	}
	return translation, nil
}

// SaveTranslation writes "sentence = translation" to path.
func SaveTranslation(path, sentence, translation string) error {
	content := fmt.Sprintf("%s = %s\n", sentence, translation)

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write translation file: %w", err)
	}

	return nil
}
