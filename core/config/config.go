package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"aura.app/relay/core/db"
)

type Config struct {
	OTel     OTelConfig
	Log      LogConfig
	LLM      LLMConfig
	Insights InsightsConfig
	Env      string
	Port     string
	Gzip     bool
}

type OTelConfig struct {
	Endpoint       string
	Headers        string
	ServiceName    string
	ServiceVersion string
	Environment    string
	SampleRatio    float64 // Root span sampling; 0 or >= 1 samples everything
}

type LogConfig struct {
	File       string // Optional: rotate logs into this file instead of stdout
	MaxSizeMB  int
	MaxBackups int
}

type LLMConfig struct {
	Provider    string // "gemini", "openai" or "anthropic"
	APIKey      string
	BaseURL     string // Optional: for custom endpoints
	Model       string
	Temperature float64
	TopP        float64
}

type InsightsConfig struct {
	Backend  string // "bigquery", "postgres", "sqlite", "redis" or "arangodb"
	Limit    int
	BigQuery BigQueryConfig
	Postgres db.Config
	SQLite   SQLiteConfig
	Redis    RedisConfig
	ArangoDB ArangoDBConfig
}

type BigQueryConfig struct {
	ProjectID string // Empty means detect from ambient credentials
	Table     string // Fully qualified: project.dataset.table
}

type SQLiteConfig struct {
	Path  string
	Table string
}

type RedisConfig struct {
	URL       string
	KeyPrefix string
}

type ArangoDBConfig struct {
	URL        string
	Username   string
	Password   string
	Database   string
	Collection string
}

const (
	BackendBigQuery = "bigquery"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
	BackendRedis    = "redis"
	BackendArangoDB = "arangodb"
)

// Load loads configuration from environment variables.
// In development, values from a local .env file are loaded first; variables
// already present in the environment win.
//
// API_KEY is the only required value: the relay refuses to start without a
// credential for the generation service.
func Load() (Config, error) {
	if getEnv("RELAY_ENV", "development") == "development" {
		_ = godotenv.Load(".env")
	}

	insightsTable := getEnv("INSIGHTS_TABLE", "teen_wellbeing_insights")
	env := getEnv("RELAY_ENV", "development")

	cfg := Config{
		Env:  env,
		Port: getEnv("PORT", "5000"),
		Gzip: getEnvBool("GZIP_RESPONSES", true),
		OTel: OTelConfig{
			Endpoint:       getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			Headers:        getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""),
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "aura-relay"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "dev"),
			Environment:    env,
			SampleRatio:    getEnvFloat("OTEL_TRACES_SAMPLER_ARG", 1),
		},
		Log: LogConfig{
			File:       getEnv("LOG_FILE", ""),
			MaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 50),
			MaxBackups: getEnvInt("LOG_MAX_BACKUPS", 3),
		},
		LLM: LLMConfig{
			Provider:    getEnv("LLM_PROVIDER", "gemini"),
			APIKey:      firstNonEmpty(getEnv("LLM_API_KEY", ""), getEnv("API_KEY", "")),
			BaseURL:     getEnv("LLM_BASE_URL", ""),
			Model:       getEnv("LLM_MODEL", ""),
			Temperature: getEnvFloat("LLM_TEMPERATURE", 0.7),
			TopP:        getEnvFloat("LLM_TOP_P", 0.95),
		},
		Insights: InsightsConfig{
			Backend: getEnv("INSIGHTS_BACKEND", BackendBigQuery),
			Limit:   getEnvInt("INSIGHTS_LIMIT", 3),
			BigQuery: BigQueryConfig{
				ProjectID: getEnv("BIGQUERY_PROJECT_ID", ""),
				Table:     getEnv("BIGQUERY_TABLE", "your-gcp-project.your_dataset."+insightsTable),
			},
			Postgres: db.Config{
				DSN:      getEnv("DATABASE_URL", ""),
				Table:    insightsTable,
				MaxConns: getEnvInt32("DB_MAX_CONNS", 10),
				MinConns: getEnvInt32("DB_MIN_CONNS", 2),
			},
			SQLite: SQLiteConfig{
				Path:  getEnv("SQLITE_PATH", "insights.db"),
				Table: insightsTable,
			},
			Redis: RedisConfig{
				URL:       getEnv("REDIS_URL", "redis://localhost:6379/0"),
				KeyPrefix: getEnv("REDIS_KEY_PREFIX", "insights:"),
			},
			ArangoDB: ArangoDBConfig{
				URL:        getEnv("ARANGO_URL", ""),
				Username:   getEnv("ARANGO_USERNAME", ""),
				Password:   getEnv("ARANGO_PASSWORD", ""),
				Database:   getEnv("ARANGO_DATABASE", ""),
				Collection: getEnv("ARANGO_COLLECTION", insightsTable),
			},
		},
	}

	if cfg.LLM.APIKey == "" {
		return Config{}, fmt.Errorf("API_KEY environment variable not set")
	}

	switch cfg.Insights.Backend {
	case BackendBigQuery, BackendSQLite, BackendRedis:
	case BackendPostgres:
		if cfg.Insights.Postgres.DSN == "" {
			return Config{}, fmt.Errorf("DATABASE_URL is required for the postgres insights backend")
		}
	case BackendArangoDB:
		if !cfg.Insights.ArangoDB.Enabled() {
			return Config{}, fmt.Errorf("ARANGO_URL, ARANGO_USERNAME and ARANGO_DATABASE are required for the arangodb insights backend")
		}
	default:
		return Config{}, fmt.Errorf("unsupported INSIGHTS_BACKEND: %s", cfg.Insights.Backend)
	}

	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c OTelConfig) Enabled() bool {
	return c.Endpoint != ""
}

func (c ArangoDBConfig) Enabled() bool {
	return c.URL != "" && c.Username != "" && c.Database != ""
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func getEnvInt32(key string, fallback int32) int32 {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(i)
		}
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
