package insight

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"

	"aura.app/relay/core/config"
)

type bigQueryRow struct {
	InsightText string `bigquery:"insight_text"`
}

type bigQuerySource struct {
	client *bigquery.Client
	query  string
}

// NewBigQuerySource connects with Application Default Credentials. Credentials
// are not checked until the first query runs.
func NewBigQuerySource(ctx context.Context, cfg config.BigQueryConfig) (Source, error) {
	if err := validateTableName(cfg.Table); err != nil {
		return nil, err
	}

	projectID := cfg.ProjectID
	if projectID == "" {
		projectID = bigquery.DetectProjectID
	}

	client, err := bigquery.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("create bigquery client: %w", err)
	}

	return &bigQuerySource{client: client, query: bigQuerySampleSQL(cfg.Table)}, nil
}

func bigQuerySampleSQL(table string) string {
	return fmt.Sprintf("SELECT insight_text FROM `%s` WHERE topic = @topic ORDER BY RAND() LIMIT @limit", table)
}

func (s *bigQuerySource) Sample(ctx context.Context, topic string, limit int) ([]string, error) {
	q := s.client.Query(s.query)
	q.Parameters = []bigquery.QueryParameter{
		{Name: "topic", Value: topic},
		{Name: "limit", Value: int64(limit)},
	}

	it, err := q.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("bigquery query: %w", err)
	}

	texts := make([]string, 0, limit)
	for {
		var row bigQueryRow
		err := it.Next(&row)
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("bigquery read row: %w", err)
		}
		texts = append(texts, row.InsightText)
	}
	return texts, nil
}

func (s *bigQuerySource) Name() string {
	return config.BackendBigQuery
}

func (s *bigQuerySource) Close() error {
	return s.client.Close()
}
