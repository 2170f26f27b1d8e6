package insight

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"aura.app/relay/core/config"
)

type sqliteSource struct {
	db    *sql.DB
	query string
}

// NewSQLiteSource opens the database file at cfg.Path. The relay only reads
// from it; it is meant for local development.
func NewSQLiteSource(ctx context.Context, cfg config.SQLiteConfig) (Source, error) {
	if err := validateTableName(cfg.Table); err != nil {
		return nil, err
	}
	if strings.Contains(cfg.Table, ".") {
		return nil, fmt.Errorf("invalid insights table name %q: sqlite tables cannot be qualified", cfg.Table)
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return &sqliteSource{db: db, query: sqliteSampleSQL(cfg.Table)}, nil
}

func sqliteSampleSQL(table string) string {
	return fmt.Sprintf(`SELECT insight_text FROM "%s" WHERE topic = ? ORDER BY RANDOM() LIMIT ?`, table)
}

func (s *sqliteSource) Sample(ctx context.Context, topic string, limit int) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, s.query, topic, limit)
	if err != nil {
		return nil, fmt.Errorf("sqlite query: %w", err)
	}
	defer rows.Close()

	texts := make([]string, 0, limit)
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, fmt.Errorf("sqlite scan: %w", err)
		}
		texts = append(texts, text)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite rows: %w", err)
	}
	return texts, nil
}

func (s *sqliteSource) Name() string {
	return config.BackendSQLite
}

func (s *sqliteSource) Close() error {
	return s.db.Close()
}
