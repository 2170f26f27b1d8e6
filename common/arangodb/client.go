package arangodb

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/arangodb/go-driver/v2/arangodb"
	"github.com/arangodb/go-driver/v2/connection"
)

type Client interface {
	// SampleInsights returns up to limit random insight texts stored for topic.
	SampleInsights(ctx context.Context, topic string, limit int) ([]string, error)
	Close() error
}

type Config struct {
	URL        string
	Username   string
	Password   string
	Database   string
	Collection string
}

func (c Config) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("arangodb URL is required")
	}
	if c.Username == "" {
		return fmt.Errorf("arangodb username is required")
	}
	if c.Database == "" {
		return fmt.Errorf("arangodb database name is required")
	}
	if c.Collection == "" {
		return fmt.Errorf("arangodb collection name is required")
	}
	return nil
}

type client struct {
	db         arangodb.Database
	collection string
}

// New connects to the configured database. The database must already exist.
func New(ctx context.Context, cfg Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("arangodb config: %w", err)
	}

	endpoint := connection.NewRoundRobinEndpoints([]string{cfg.URL})
	conn := connection.NewHttp2Connection(connection.DefaultHTTP2ConfigurationWrapper(endpoint, true))

	auth := connection.NewBasicAuth(cfg.Username, cfg.Password)
	if err := conn.SetAuthentication(auth); err != nil {
		return nil, fmt.Errorf("arangodb auth: %w", err)
	}

	db, err := arangodb.NewClient(conn).GetDatabase(ctx, cfg.Database, nil)
	if err != nil {
		return nil, fmt.Errorf("get database %s: %w", cfg.Database, err)
	}

	return &client{db: db, collection: cfg.Collection}, nil
}

func (c *client) SampleInsights(ctx context.Context, topic string, limit int) ([]string, error) {
	start := time.Now()

	cursor, err := c.db.Query(ctx, sampleInsightsQuery, &arangodb.QueryOptions{
		BindVars: map[string]any{
			"@collection": c.collection,
			"topic":       topic,
			"limit":       limit,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("execute query: %w", err)
	}
	defer cursor.Close()

	var texts []string
	for cursor.HasMore() {
		var doc insightDoc
		if _, err := cursor.ReadDocument(ctx, &doc); err != nil {
			return nil, fmt.Errorf("read document: %w", err)
		}
		texts = append(texts, doc.InsightText)
	}

	slog.DebugContext(ctx, "arangodb insights sampled",
		"collection", c.collection,
		"results", len(texts),
		"duration_ms", time.Since(start).Milliseconds())

	return texts, nil
}

func (c *client) Close() error {
	return nil
}
