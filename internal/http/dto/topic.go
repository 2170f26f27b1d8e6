package dto

import "aura.app/relay/internal/service"

type TopicResponse struct {
	Slug             string `json:"slug"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	PromptSuggestion string `json:"promptSuggestion"`
}

func ToTopicResponses(topics []service.Topic) []TopicResponse {
	out := make([]TopicResponse, len(topics))
	for i, t := range topics {
		out[i] = TopicResponse{
			Slug:             t.Slug,
			Title:            t.Title,
			Description:      t.Description,
			PromptSuggestion: t.PromptSuggestion,
		}
	}
	return out
}
