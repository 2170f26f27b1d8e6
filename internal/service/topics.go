package service

import (
	"aura.app/relay/common"
)

// Topic is a conversation area offered to clients.
type Topic struct {
	Slug             string
	Title            string
	Description      string
	PromptSuggestion string
}

var topicCatalog = []Topic{
	{
		Title:            "Mental Health",
		Description:      "Coping with stress, anxiety, and emotions.",
		PromptSuggestion: "How can I deal with exam stress?",
	},
	{
		Title:            "Physical Health",
		Description:      "Tips for exercise, nutrition, and sleep.",
		PromptSuggestion: "What are some healthy snack ideas?",
	},
	{
		Title:            "Relationships",
		Description:      "Navigating friendships, family, and romance.",
		PromptSuggestion: "How do I make new friends?",
	},
	{
		Title:            "Education & Future",
		Description:      "Study tips, career paths, and personal growth.",
		PromptSuggestion: "What are good ways to study for math?",
	},
}

type TopicService interface {
	List() []Topic
}

type topicService struct {
	topics []Topic
}

// NewTopicService returns the static topic catalogue with slugs derived from titles.
func NewTopicService() TopicService {
	topics := make([]Topic, 0, len(topicCatalog))
	for _, t := range topicCatalog {
		slug, err := common.Slug(t.Title)
		if err != nil {
			continue
		}
		t.Slug = slug
		topics = append(topics, t)
	}
	return &topicService{topics: topics}
}

func (s *topicService) List() []Topic {
	out := make([]Topic, len(s.topics))
	copy(out, s.topics)
	return out
}
