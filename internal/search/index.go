// Package search builds and queries the flat search-context vector index.
// The catalog is small enough that an exhaustive scan per query is the
// intended algorithm; no approximate nearest-neighbor structure is used.
package search

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"hotel_recs/internal/domain"
)

type entry struct {
	id  string
	vec []float32
}

// Index is an ordered set of (property id, context vector) pairs aligned by
// position with the catalog's record order.
type Index struct {
	entries []entry
}

// Hit is a query result: a catalog position and its similarity score.
type Hit struct {
	Pos   int
	Score float64
}

// Build embeds every hotel's search context (bounded parallelism), attaches
// the vector to the record, and returns the index. Hotels with no context
// text get a nil vector and never match.
func Build(ctx context.Context, emb domain.Embedder, hotels []domain.Hotel, workers int) (*Index, error) {
	if workers <= 0 {
		workers = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range hotels {
		i := i
		g.Go(func() error {
			text := hotels[i].SearchContext()
			if text == "" {
				return nil
			}
			vec, err := emb.Embed(gctx, text)
			if err != nil {
				return fmt.Errorf("embed search context for %s: %w", hotels[i].PropertyID, err)
			}
			hotels[i].ContextVector = vec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return FromHotels(hotels), nil
}

// FromHotels indexes already-attached context vectors, preserving order.
func FromHotels(hotels []domain.Hotel) *Index {
	ix := &Index{entries: make([]entry, len(hotels))}
	for i := range hotels {
		ix.entries[i] = entry{id: hotels[i].PropertyID, vec: hotels[i].ContextVector}
	}
	return ix
}

func (ix *Index) Len() int { return len(ix.entries) }

// TopK scans every indexed vector and returns the k best hits sorted by
// similarity descending, ties broken by catalog order.
func (ix *Index) TopK(query []float32, k int) []Hit {
	hits := make([]Hit, 0, len(ix.entries))
	for i := range ix.entries {
		hits = append(hits, Hit{Pos: i, Score: Cosine(query, ix.entries[i].vec)})
	}
	sort.SliceStable(hits, func(a, b int) bool { return hits[a].Score > hits[b].Score })
	if k < len(hits) {
		hits = hits[:k]
	}
	return hits
}
