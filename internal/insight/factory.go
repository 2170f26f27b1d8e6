package insight

import (
	"context"
	"fmt"

	"aura.app/relay/common/arangodb"
	"aura.app/relay/core/config"
	"aura.app/relay/core/db"
)

// NewSource builds the Source selected by cfg.Backend.
func NewSource(ctx context.Context, cfg config.InsightsConfig) (Source, error) {
	switch cfg.Backend {
	case config.BackendBigQuery:
		return NewBigQuerySource(ctx, cfg.BigQuery)
	case config.BackendPostgres:
		database, err := db.New(ctx, cfg.Postgres)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		source, err := NewPostgresSource(database, cfg.Postgres.Table)
		if err != nil {
			database.Close()
			return nil, err
		}
		return source, nil
	case config.BackendSQLite:
		return NewSQLiteSource(ctx, cfg.SQLite)
	case config.BackendRedis:
		return NewRedisSource(ctx, cfg.Redis)
	case config.BackendArangoDB:
		client, err := arangodb.New(ctx, arangodb.Config{
			URL:        cfg.ArangoDB.URL,
			Username:   cfg.ArangoDB.Username,
			Password:   cfg.ArangoDB.Password,
			Database:   cfg.ArangoDB.Database,
			Collection: cfg.ArangoDB.Collection,
		})
		if err != nil {
			return nil, fmt.Errorf("connect arangodb: %w", err)
		}
		return NewArangoSource(client), nil
	default:
		return nil, fmt.Errorf("unsupported insights backend: %s", cfg.Backend)
	}
}
