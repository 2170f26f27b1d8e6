package handler_test

import (
	"context"

	"aura.app/relay/internal/service"
)

type mockChatService struct {
	replyFn   func(ctx context.Context, topic, userInput string) (string, error)
	composeFn func(ctx context.Context, insightContext, topic, userInput string) (string, error)
	calls     int
}

func (m *mockChatService) Reply(ctx context.Context, topic, userInput string) (string, error) {
	m.calls++
	if m.replyFn != nil {
		return m.replyFn(ctx, topic, userInput)
	}
	return "", nil
}

func (m *mockChatService) Compose(ctx context.Context, insightContext, topic, userInput string) (string, error) {
	m.calls++
	if m.composeFn != nil {
		return m.composeFn(ctx, insightContext, topic, userInput)
	}
	return "", nil
}

type mockTopicService struct {
	topics []service.Topic
}

func (m *mockTopicService) List() []service.Topic {
	return m.topics
}
