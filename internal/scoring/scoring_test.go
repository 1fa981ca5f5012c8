package scoring_test

import (
	"context"
	"errors"
	"testing"

	"hotel_recs/internal/domain"
	"hotel_recs/internal/scoring"
)

// anchor-aware fake: keyword anchors and review texts get fixed vectors.
type fakeEmbedder struct {
	vectors map[string][]float32
	failOn  string
}

func (f *fakeEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if f.failOn != "" && text == f.failOn {
		return nil, errors.New("embedder down")
	}
	if v, ok := f.vectors[text]; ok {
		return v, nil
	}
	// default direction for unknown text
	return []float32{1, 0, 0}, nil
}

func (f *fakeEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, t := range texts {
		v, err := f.Embed(ctx, t)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func TestScoreAll_AttachesExactlyTheConfiguredFeatures(t *testing.T) {
	emb := &fakeEmbedder{vectors: map[string][]float32{
		// anchors
		"clean tidy spotless dirty messy hygiene":                    {1, 0, 0},
		"location central convenient accessible nearby far":          {0, 1, 0},
		"service staff helpful friendly rude unprofessional":         {0, 0, 1},
		"Spotless rooms Rude staff at checkin Mostly positive stays": {1, 0, 0},
	}}
	hotels := []domain.Hotel{{
		PropertyID:        "H1",
		TopPositiveReview: "Spotless rooms",
		TopNegativeReview: "Rude staff at checkin",
		ReviewsSummary:    "Mostly positive stays",
	}}

	if err := scoring.NewScorer(emb).ScoreAll(context.Background(), hotels, 4); err != nil {
		t.Fatalf("err: %v", err)
	}

	fs := hotels[0].FeatureScores
	if len(fs) != len(scoring.FeatureOrder) {
		t.Fatalf("want %d features, got %v", len(scoring.FeatureOrder), fs)
	}
	for _, feature := range scoring.FeatureOrder {
		v, ok := fs[feature]
		if !ok {
			t.Fatalf("missing feature %s", feature)
		}
		if v < -1 || v > 1 {
			t.Fatalf("%s score out of range: %f", feature, v)
		}
	}
	// review vector aligns with the cleanliness anchor and is orthogonal to
	// the other two
	if fs[domain.FeatureCleanliness] < 0.99 {
		t.Fatalf("cleanliness should be ~1, got %f", fs[domain.FeatureCleanliness])
	}
	if fs[domain.FeatureLocation] != 0 || fs[domain.FeatureService] != 0 {
		t.Fatalf("orthogonal anchors should score 0: %v", fs)
	}
}

func TestScoreAll_EmptyReviewTextScoresZero(t *testing.T) {
	hotels := []domain.Hotel{{PropertyID: "H1"}}
	if err := scoring.NewScorer(&fakeEmbedder{}).ScoreAll(context.Background(), hotels, 1); err != nil {
		t.Fatalf("err: %v", err)
	}
	for _, feature := range scoring.FeatureOrder {
		if hotels[0].FeatureScores[feature] != 0 {
			t.Fatalf("want zero score for %s, got %f", feature, hotels[0].FeatureScores[feature])
		}
	}
}

func TestScoreAll_PropagatesEmbedderFailure(t *testing.T) {
	emb := &fakeEmbedder{failOn: "bad review"}
	hotels := []domain.Hotel{
		{PropertyID: "H1", ReviewsSummary: "fine"},
		{PropertyID: "H2", ReviewsSummary: "bad review"},
	}
	if err := scoring.NewScorer(emb).ScoreAll(context.Background(), hotels, 2); err == nil {
		t.Fatal("expected scoring to fail when the embedder fails")
	}
}

func TestKeywords_Fixed(t *testing.T) {
	if got := scoring.Keywords(domain.FeatureCleanliness); len(got) == 0 || got[0] != "clean" {
		t.Fatalf("cleanliness keywords wrong: %v", got)
	}
	if got := scoring.Keywords("unknown"); got != nil {
		t.Fatalf("unknown feature should have no keywords: %v", got)
	}
}
