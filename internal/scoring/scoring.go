// Package scoring computes per-hotel feature affinity scores: the cosine
// similarity between a hotel's review text embedding and a fixed keyword
// anchor embedding per feature. Runs once at startup, never at query time.
package scoring

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"hotel_recs/internal/domain"
	"hotel_recs/internal/search"
)

// FeatureOrder fixes the feature set and the order features appear in
// generated match summaries.
var FeatureOrder = []string{
	domain.FeatureCleanliness,
	domain.FeatureLocation,
	domain.FeatureService,
}

var featureKeywords = map[string][]string{
	domain.FeatureCleanliness: {"clean", "tidy", "spotless", "dirty", "messy", "hygiene"},
	domain.FeatureLocation:    {"location", "central", "convenient", "accessible", "nearby", "far"},
	domain.FeatureService:     {"service", "staff", "helpful", "friendly", "rude", "unprofessional"},
}

// Keywords returns the keyword list defining a feature.
func Keywords(feature string) []string { return featureKeywords[feature] }

type Scorer struct {
	emb     domain.Embedder
	anchors map[string][]float32
}

func NewScorer(emb domain.Embedder) *Scorer {
	return &Scorer{emb: emb}
}

// ScoreAll embeds each feature's keyword anchor once, then scores every hotel
// with bounded parallelism, attaching FeatureScores in place. Any failure
// aborts the batch; a partially scored catalog is never served.
func (s *Scorer) ScoreAll(ctx context.Context, hotels []domain.Hotel, workers int) error {
	if err := s.embedAnchors(ctx); err != nil {
		return err
	}
	if workers <= 0 {
		workers = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range hotels {
		i := i
		g.Go(func() error {
			scores, err := s.scoreHotel(gctx, &hotels[i])
			if err != nil {
				return fmt.Errorf("score hotel %s: %w", hotels[i].PropertyID, err)
			}
			hotels[i].FeatureScores = scores
			return nil
		})
	}
	return g.Wait()
}

func (s *Scorer) embedAnchors(ctx context.Context) error {
	anchors := make(map[string][]float32, len(FeatureOrder))
	for _, feature := range FeatureOrder {
		vec, err := s.emb.Embed(ctx, strings.Join(featureKeywords[feature], " "))
		if err != nil {
			return fmt.Errorf("embed %s anchor: %w", feature, err)
		}
		anchors[feature] = vec
	}
	s.anchors = anchors
	return nil
}

func (s *Scorer) scoreHotel(ctx context.Context, h *domain.Hotel) (map[string]float64, error) {
	scores := make(map[string]float64, len(FeatureOrder))
	text := h.ReviewText()
	if text == "" {
		// No review text at all: nothing to compare against, score zero.
		for _, feature := range FeatureOrder {
			scores[feature] = 0
		}
		return scores, nil
	}
	vec, err := s.emb.Embed(ctx, text)
	if err != nil {
		return nil, err
	}
	for _, feature := range FeatureOrder {
		scores[feature] = search.Cosine(vec, s.anchors[feature])
	}
	return scores, nil
}
