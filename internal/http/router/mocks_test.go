package router_test

import (
	"context"

	"aura.app/relay/common/llm"
)

type fakeSource struct {
	sampleFn func(ctx context.Context, topic string, limit int) ([]string, error)
	calls    int
}

func (f *fakeSource) Sample(ctx context.Context, topic string, limit int) ([]string, error) {
	f.calls++
	if f.sampleFn != nil {
		return f.sampleFn(ctx, topic, limit)
	}
	return nil, nil
}

func (f *fakeSource) Name() string { return "fake" }

func (f *fakeSource) Close() error { return nil }

type fakeGenerator struct {
	generateFn func(ctx context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error)
	calls      int
	lastPrompt string
}

func (f *fakeGenerator) Generate(ctx context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	f.calls++
	f.lastPrompt = req.Prompt
	if f.generateFn != nil {
		return f.generateFn(ctx, req)
	}
	return &llm.GenerateResponse{}, nil
}

func (f *fakeGenerator) Provider() string { return "fake" }

func (f *fakeGenerator) Model() string { return "fake-1" }
