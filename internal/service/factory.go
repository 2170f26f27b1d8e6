package service

import (
	"aura.app/relay/common/llm"
	"aura.app/relay/internal/insight"
)

type Services struct {
	insights  insight.Fetcher
	generator llm.Generator
	settings  GenerationSettings
}

type ServicesConfig struct {
	Insights   insight.Fetcher
	Generator  llm.Generator
	Generation GenerationSettings
}

func NewServices(cfg ServicesConfig) *Services {
	return &Services{
		insights:  cfg.Insights,
		generator: cfg.Generator,
		settings:  cfg.Generation,
	}
}

func (s *Services) Chat() ChatService {
	return NewChatService(s.insights, s.generator, s.settings)
}

func (s *Services) Topics() TopicService {
	return NewTopicService()
}
