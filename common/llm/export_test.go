package llm

import (
	"context"

	"google.golang.org/genai"
)

// GeminiModelsFunc adapts a function to the models surface used by the Gemini client.
type GeminiModelsFunc func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)

func (f GeminiModelsFunc) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	return f(ctx, model, contents, config)
}

func NewGeminiWithModels(models GeminiModelsFunc, model string) Generator {
	return newGeminiClient(models, model)
}
