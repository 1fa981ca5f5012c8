package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string

	// Catalog source: "csv" reads DatasetPath directly, "mysql" reads the
	// hotels table populated by cmd/ingestor.
	CatalogSource string
	DatasetPath   string
	MySQLDSN      string

	RedisAddr string
	RedisDB   int
	RedisPass string
	CacheTTL  time.Duration

	// Embedding provider: "openai" talks to an OpenAI-compatible API,
	// "mock" runs offline with deterministic hash vectors.
	EmbedProvider string
	EmbedBaseURL  string
	EmbedAPIKey   string
	EmbedModel    string
	EmbedRPS      int

	Workers int // startup batch + ingestor parallelism
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:        env("APP_ENV", "prod"),
		HTTPAddr:      env("HTTP_ADDR", ":8080"),
		MetricsAddr:   env("METRICS_ADDR", ":9100"),
		CatalogSource: env("CATALOG_SOURCE", "csv"),
		DatasetPath:   env("DATASET_PATH", "hotels_clean.csv"),
		MySQLDSN:      env("MYSQL_DSN", "root:root@tcp(localhost:3306)/hotels?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:     env("REDIS_ADDR", "localhost:6379"),
		RedisPass:     env("REDIS_PASSWORD", ""),
		RedisDB:       atoi("REDIS_DB", 0),
		CacheTTL:      time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
		EmbedProvider: env("EMBEDDINGS_PROVIDER", "openai"),
		EmbedBaseURL:  env("EMBEDDINGS_BASE_URL", ""),
		EmbedAPIKey:   env("EMBEDDINGS_API_KEY", os.Getenv("OPENAI_API_KEY")),
		EmbedModel:    env("EMBEDDINGS_MODEL", "text-embedding-3-small"),
		EmbedRPS:      atoi("EMBEDDINGS_RPS", 5),
		Workers:       atoi("BATCH_WORKERS", 8),
	}
	if c.EmbedProvider == "openai" && c.EmbedAPIKey == "" {
		log.Warn().Msg("EMBEDDINGS_API_KEY is empty")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
