package insight

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"aura.app/relay/core/config"
	"aura.app/relay/core/db"
)

type pgQuerier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type postgresSource struct {
	querier pgQuerier
	close   func()
	query   string
}

// NewPostgresSource samples from table over an existing connection pool.
// Closing the source closes the pool.
func NewPostgresSource(database *db.DB, table string) (Source, error) {
	if err := validateTableName(table); err != nil {
		return nil, err
	}
	return &postgresSource{
		querier: database.Pool(),
		close:   database.Close,
		query:   postgresSampleSQL(table),
	}, nil
}

// postgresSampleSQL quotes each part of a schema-qualified table separately.
func postgresSampleSQL(table string) string {
	return fmt.Sprintf("SELECT insight_text FROM %s WHERE topic = $1 ORDER BY random() LIMIT $2",
		pgx.Identifier(strings.Split(table, ".")).Sanitize())
}

func (s *postgresSource) Sample(ctx context.Context, topic string, limit int) ([]string, error) {
	rows, err := s.querier.Query(ctx, s.query, topic, limit)
	if err != nil {
		return nil, fmt.Errorf("postgres query: %w", err)
	}

	texts, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("postgres collect rows: %w", err)
	}
	return texts, nil
}

func (s *postgresSource) Name() string {
	return config.BackendPostgres
}

func (s *postgresSource) Close() error {
	s.close()
	return nil
}
