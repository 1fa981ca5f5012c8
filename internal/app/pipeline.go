package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"hotel_recs/internal/adapters/observability"
	"hotel_recs/internal/catalog"
	"hotel_recs/internal/domain"
	"hotel_recs/internal/scoring"
	"hotel_recs/internal/search"
)

// BuildCatalog runs the one-time startup batch: load records, attach feature
// scores, attach search-context vectors, and wrap the result in an immutable
// catalog plus its vector index. Any failure aborts startup; a partially
// prepared catalog is never returned.
func BuildCatalog(ctx context.Context, src domain.CatalogSource, emb domain.Embedder, workers int) (*catalog.Catalog, *search.Index, error) {
	start := time.Now()
	hotels, err := src.LoadHotels(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load catalog: %w", err)
	}
	if len(hotels) == 0 {
		return nil, nil, fmt.Errorf("load catalog: no hotels in source")
	}
	observability.ObserveStartupPhase("load", time.Since(start))
	log.Info().Int("hotels", len(hotels)).Dur("took", time.Since(start)).Msg("catalog loaded")

	start = time.Now()
	if err := scoring.NewScorer(emb).ScoreAll(ctx, hotels, workers); err != nil {
		return nil, nil, fmt.Errorf("feature scoring: %w", err)
	}
	observability.ObserveStartupPhase("score", time.Since(start))
	log.Info().Dur("took", time.Since(start)).Msg("feature scores computed")

	start = time.Now()
	idx, err := search.Build(ctx, emb, hotels, workers)
	if err != nil {
		return nil, nil, fmt.Errorf("search indexing: %w", err)
	}
	observability.ObserveStartupPhase("index", time.Since(start))
	log.Info().Dur("took", time.Since(start)).Msg("search index built")

	observability.CatalogSize.Set(float64(len(hotels)))
	return catalog.New(hotels), idx, nil
}
