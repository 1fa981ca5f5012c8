package domain

import "context"

// CatalogSource loads the full hotel dataset at startup (MySQL or CSV file).
type CatalogSource interface {
	LoadHotels(ctx context.Context) ([]Hotel, error)
}

// CatalogSink is the ingestor's write path.
type CatalogSink interface {
	UpsertHotels(ctx context.Context, hs []Hotel) error
}

// Embedder maps text to a fixed-length vector. Encodings are deterministic
// for identical input, so they are safe to cache.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
