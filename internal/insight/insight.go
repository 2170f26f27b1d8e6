// Package insight turns a chat topic into the context line that prefixes the
// generation prompt. Sampling is delegated to a Source; any Source failure is
// absorbed here so the chat can still be answered.
package insight

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"aura.app/relay/common/logger"
)

// MaxInsights is the number of snippets sampled per request.
const MaxInsights = 3

// Context strings handed to the prompt composer.
const (
	NoInsightsFound     = "No specific data insights found for this topic."
	InsightsUnavailable = "Could not retrieve specific data insights at the moment."
	insightsPrefix      = "Relevant data points: "
	insightsSeparator   = "; "
)

var tableNamePattern = regexp.MustCompile(`^[A-Za-z0-9_][A-Za-z0-9_-]*(\.[A-Za-z0-9_][A-Za-z0-9_-]*)*$`)

// Source samples insight texts for a topic from an analytical store.
type Source interface {
	// Sample returns up to limit insight texts for topic, in random order.
	// topic must be bound as a query parameter, never spliced into query text.
	Sample(ctx context.Context, topic string, limit int) ([]string, error)
	// Name identifies the backend in logs and spans.
	Name() string
	Close() error
}

// Fetcher builds the insight context for a topic. It never fails.
type Fetcher interface {
	Fetch(ctx context.Context, topic string) string
}

type fetcher struct {
	source Source
	limit  int
}

// NewFetcher returns a Fetcher sampling at most limit snippets from source.
// limit is clamped to (0, MaxInsights]; out-of-range values mean MaxInsights.
func NewFetcher(source Source, limit int) Fetcher {
	if limit <= 0 || limit > MaxInsights {
		limit = MaxInsights
	}
	return &fetcher{source: source, limit: limit}
}

func (f *fetcher) Fetch(ctx context.Context, topic string) string {
	backend := f.source.Name()
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		Backend:   logger.Ptr(backend),
		Component: "relay.insight.fetcher",
	})

	sc := logger.StartSpan(ctx, "relay.insight.fetch", attribute.String("insight.backend", backend))
	defer sc.End()
	ctx = sc.Context()

	texts, err := f.source.Sample(ctx, topic, f.limit)
	if err != nil {
		sc.RecordError(err)
		slog.ErrorContext(ctx, "insight query failed", "error", err)
		return InsightsUnavailable
	}

	if len(texts) > f.limit {
		texts = texts[:f.limit]
	}
	sc.SetAttributes(attribute.Int("insight.count", len(texts)))

	if len(texts) == 0 {
		slog.DebugContext(ctx, "no insights for topic")
		return NoInsightsFound
	}

	slog.DebugContext(ctx, "insights fetched", "count", len(texts))
	return Format(texts)
}

// Format renders sampled snippets as the prompt context line.
func Format(texts []string) string {
	return insightsPrefix + strings.Join(texts, insightsSeparator)
}

func validateTableName(table string) error {
	if !tableNamePattern.MatchString(table) {
		return fmt.Errorf("invalid insights table name %q", table)
	}
	return nil
}
