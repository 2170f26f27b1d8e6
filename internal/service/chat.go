package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"aura.app/relay/common/llm"
	"aura.app/relay/common/logger"
	"aura.app/relay/internal/insight"
)

// ErrGeneration matches every *GenerationError via errors.Is.
var ErrGeneration = errors.New("generation failed")

// GenerationError reports a failed call to the generation service. The
// wrapped error is for logs only and must not reach API clients.
type GenerationError struct {
	Provider string
	Err      error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s generation: %v", e.Provider, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

func (e *GenerationError) Is(target error) bool {
	return target == ErrGeneration
}

// maxLoggedMessage caps how much of a user message reaches the logs.
const maxLoggedMessage = 200

// GenerationSettings are the sampling parameters applied to every call.
type GenerationSettings struct {
	Temperature *float64
	TopP        *float64
}

type ChatService interface {
	// Reply fetches insights for topic, then composes the answer.
	Reply(ctx context.Context, topic, userInput string) (string, error)
	// Compose sends the prompt built from its arguments to the generation
	// service and returns the text verbatim, or a *GenerationError.
	Compose(ctx context.Context, insightContext, topic, userInput string) (string, error)
}

type chatService struct {
	insights  insight.Fetcher
	generator llm.Generator
	settings  GenerationSettings
}

func NewChatService(insights insight.Fetcher, generator llm.Generator, settings GenerationSettings) ChatService {
	return &chatService{
		insights:  insights,
		generator: generator,
		settings:  settings,
	}
}

func (s *chatService) Reply(ctx context.Context, topic, userInput string) (string, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{Topic: logger.Ptr(topic)})

	insightContext := s.insights.Fetch(ctx, topic)
	return s.Compose(ctx, insightContext, topic, userInput)
}

func (s *chatService) Compose(ctx context.Context, insightContext, topic, userInput string) (string, error) {
	provider := s.generator.Provider()
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		Provider:  logger.Ptr(provider),
		Component: "relay.service.chat",
	})

	sc := logger.StartSpan(ctx, "relay.llm.generate",
		attribute.String("llm.provider", provider),
		attribute.String("llm.model", s.generator.Model()),
	)
	defer sc.End()
	ctx = sc.Context()

	prompt := BuildPrompt(insightContext, topic, userInput)
	slog.DebugContext(ctx, "composing reply",
		"user_message", logger.Truncate(userInput, maxLoggedMessage),
		"context_chars", len(insightContext))

	resp, err := s.generator.Generate(ctx, llm.GenerateRequest{
		SystemInstruction: BehavioralDirective,
		Prompt:            prompt,
		Temperature:       s.settings.Temperature,
		TopP:              s.settings.TopP,
	})
	if err != nil {
		sc.RecordError(err)
		slog.ErrorContext(ctx, "generation call failed",
			"error", err,
			"model", s.generator.Model())
		return "", &GenerationError{Provider: provider, Err: err}
	}

	sc.SetAttributes(
		attribute.Int("llm.prompt_tokens", resp.PromptTokens),
		attribute.Int("llm.completion_tokens", resp.CompletionTokens),
	)
	slog.InfoContext(ctx, "chat reply generated",
		"model", s.generator.Model(),
		"prompt_chars", len(prompt),
		"reply_chars", len(resp.Text))

	return resp.Text, nil
}
