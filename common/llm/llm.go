package llm

import (
	"context"
	"errors"
	"fmt"
)

// Provider constants for generation provider selection.
const (
	ProviderGemini    = "gemini"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// ErrEmptyResponse is returned when the provider answers without any text,
// e.g. because every candidate was blocked.
var ErrEmptyResponse = errors.New("no text in response")

// Config holds generation client configuration.
type Config struct {
	Provider string // "gemini", "openai" or "anthropic"
	APIKey   string // Required: API key for the provider
	BaseURL  string // Optional: custom API endpoint
	Model    string // Optional: provider default when empty
}

// Generator produces a single completion for a system instruction and one
// user turn. Implementations make exactly one upstream call and never retry.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
	Provider() string
	Model() string
}

// GenerateRequest is one system + user exchange.
type GenerateRequest struct {
	SystemInstruction string
	Prompt            string
	MaxTokens         int      // 0 = provider default
	Temperature       *float64 // nil = model default
	TopP              *float64 // nil = model default
}

// GenerateResponse carries the generated text verbatim.
type GenerateResponse struct {
	Text             string
	PromptTokens     int
	CompletionTokens int
}

// NewGenerator creates a Generator for cfg.Provider. Defaults to Gemini.
func NewGenerator(ctx context.Context, cfg Config) (Generator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	provider := cfg.Provider
	if provider == "" {
		provider = ProviderGemini
	}

	switch provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, cfg)
	case ProviderOpenAI:
		return NewOpenAIClient(cfg)
	case ProviderAnthropic:
		return NewAnthropicClient(cfg)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", provider)
	}
}

// Float returns a pointer to f, for the optional sampling fields.
func Float(f float64) *float64 {
	return &f
}
