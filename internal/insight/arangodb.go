package insight

import (
	"context"
	"fmt"

	"aura.app/relay/common/arangodb"
	"aura.app/relay/core/config"
)

type arangoSource struct {
	client arangodb.Client
}

// NewArangoSource samples with an AQL query over an insights collection.
func NewArangoSource(client arangodb.Client) Source {
	return &arangoSource{client: client}
}

func (s *arangoSource) Sample(ctx context.Context, topic string, limit int) ([]string, error) {
	texts, err := s.client.SampleInsights(ctx, topic, limit)
	if err != nil {
		return nil, fmt.Errorf("arangodb sample: %w", err)
	}
	return texts, nil
}

func (s *arangoSource) Name() string {
	return config.BackendArangoDB
}

func (s *arangoSource) Close() error {
	return s.client.Close()
}
