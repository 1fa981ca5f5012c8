package app

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"hotel_recs/internal/catalog"
	"hotel_recs/internal/domain"
	"hotel_recs/internal/scoring"
	"hotel_recs/internal/search"
)

// topK caps Recommend and SemanticMatch result sets.
const topK = 5

// QueryService implements the three query operations over the precomputed
// catalog. All operations are pure reads; the only external call is the
// per-request query embedding in SemanticMatch.
type QueryService struct {
	cat      *catalog.Catalog
	idx      *search.Index
	emb      domain.Embedder
	cache    domain.Cache // optional query-vector cache, may be nil
	model    string
	cacheTTL time.Duration
}

func NewQueryService(cat *catalog.Catalog, idx *search.Index, emb domain.Embedder, cache domain.Cache, model string, ttl time.Duration) *QueryService {
	return &QueryService{cat: cat, idx: idx, emb: emb, cache: cache, model: model, cacheTTL: ttl}
}

// Recommend returns the top 5 hotels for a city and customer segment, ranked
// by a 50/50 blend of average rating and mean feature affinity. The blend
// score is internal and never serialized.
func (s *QueryService) Recommend(ctx context.Context, city, segment string) ([]HotelResult, error) {
	hs, err := s.cat.ByCityAndSegment(city, segment)
	if err != nil {
		return nil, err
	}

	type ranked struct {
		h     *domain.Hotel
		score float64
	}
	rs := make([]ranked, len(hs))
	for i, h := range hs {
		rs[i] = ranked{h: h, score: recommendationScore(h)}
	}
	sort.SliceStable(rs, func(a, b int) bool { return rs[a].score > rs[b].score })
	if len(rs) > topK {
		rs = rs[:topK]
	}

	out := make([]HotelResult, len(rs))
	for i, r := range rs {
		out[i] = toResult(r.h)
	}
	return out, nil
}

func recommendationScore(h *domain.Hotel) float64 {
	var sum float64
	for _, v := range h.FeatureScores {
		sum += v
	}
	mean := 0.0
	if len(h.FeatureScores) > 0 {
		mean = sum / float64(len(h.FeatureScores))
	}
	return h.AverageRating*0.5 + mean*0.5
}

// SortSpec names a field and direction for Filter results.
type SortSpec struct {
	By    string // price | hotel_star_rating | average_rating
	Order string // asc | desc
}

// FilterParams carries the required city/segment pair plus the optional,
// conjunctive filters.
type FilterParams struct {
	City         string
	Segment      string
	Address      *string  // case-insensitive substring
	PriceMin     *float64 // inclusive
	PriceMax     *float64 // inclusive
	StarRating   *float64 // exact
	AvgRatingMin *float64 // inclusive
	Sort         *SortSpec
}

// Filter returns the full filtered and sorted set (no top-k cap). The sort
// field is validated before any filtering so a bad request never reads the
// catalog.
func (s *QueryService) Filter(ctx context.Context, p FilterParams) ([]HotelResult, error) {
	sortBy, ascending := "average_rating", false
	if p.Sort != nil {
		switch p.Sort.By {
		case "price", "hotel_star_rating", "average_rating":
			sortBy = p.Sort.By
		default:
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidSortField, p.Sort.By)
		}
		ascending = p.Sort.Order == "asc"
	}

	hs, err := s.cat.ByCityAndSegment(p.City, p.Segment)
	if err != nil {
		return nil, err
	}

	filtered := hs[:0:0]
	for _, h := range hs {
		if p.Address != nil && !strings.Contains(strings.ToLower(h.Address), strings.ToLower(*p.Address)) {
			continue
		}
		if p.PriceMin != nil && h.Price < *p.PriceMin {
			continue
		}
		if p.PriceMax != nil && h.Price > *p.PriceMax {
			continue
		}
		if p.StarRating != nil && h.StarRating != *p.StarRating {
			continue
		}
		if p.AvgRatingMin != nil && h.AverageRating < *p.AvgRatingMin {
			continue
		}
		filtered = append(filtered, h)
	}
	if len(filtered) == 0 {
		return nil, fmt.Errorf("%w: no hotels found matching the specified criteria", domain.ErrNoMatches)
	}

	key := func(h *domain.Hotel) float64 {
		switch sortBy {
		case "price":
			return h.Price
		case "hotel_star_rating":
			return h.StarRating
		default:
			return h.AverageRating
		}
	}
	sort.SliceStable(filtered, func(a, b int) bool {
		if ascending {
			return key(filtered[a]) < key(filtered[b])
		}
		return key(filtered[a]) > key(filtered[b])
	})

	out := make([]HotelResult, len(filtered))
	for i, h := range filtered {
		out[i] = toResult(h)
	}
	return out, nil
}

// SemanticMatch embeds the free-text query and returns the 5 hotels whose
// search context is most similar, regardless of city or segment.
func (s *QueryService) SemanticMatch(ctx context.Context, query string) ([]ChatResult, error) {
	q := strings.TrimSpace(query)
	if utf8.RuneCountInString(q) < 3 {
		return nil, fmt.Errorf("%w: query must be at least 3 characters long", domain.ErrInvalidQuery)
	}
	if s.idx.Len() == 0 {
		return nil, fmt.Errorf("%w: search index is empty", domain.ErrNoMatches)
	}

	vec, err := s.queryVector(ctx, q)
	if err != nil {
		return nil, err
	}

	hits := s.idx.TopK(vec, topK)
	out := make([]ChatResult, 0, len(hits))
	for _, hit := range hits {
		out = append(out, s.chatResult(s.cat.At(hit.Pos), q, hit.Score))
	}
	return out, nil
}

// queryVector embeds the query, consulting the cache first when configured.
func (s *QueryService) queryVector(ctx context.Context, q string) ([]float32, error) {
	key := queryCacheKey(s.model, q)
	if s.cache != nil {
		var vec []float32
		if ok, _ := s.cache.Get(ctx, key, &vec); ok && len(vec) > 0 {
			return vec, nil
		}
	}
	vec, err := s.emb.Embed(ctx, q)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, vec, int(s.cacheTTL.Seconds()))
	}
	return vec, nil
}

func queryCacheKey(model, q string) string {
	sum := sha1.Sum([]byte(model + "\x00" + q))
	return "qvec:" + hex.EncodeToString(sum[:])
}

func (s *QueryService) chatResult(h *domain.Hotel, query string, similarity float64) ChatResult {
	confidence := clampInt(int(math.Round(similarity*100)), 0, 100)
	facilities := relevantFacilities(h, query)

	parts := []string{fmt.Sprintf("This hotel matches your query with %d%% confidence.", confidence)}
	if len(facilities) > 0 {
		parts = append(parts, fmt.Sprintf("It features: %s.", strings.Join(facilities, ", ")))
	}
	lowered := strings.ToLower(query)
	for _, feature := range scoring.FeatureOrder {
		if !mentionsFeature(lowered, feature) {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s score: %d%%.", titleCase(feature), scaleScore(h.FeatureScores[feature])))
	}

	return ChatResult{
		HotelResult:        toResult(h),
		MatchConfidence:    confidence,
		RelevantFacilities: facilities,
		MatchSummary:       strings.Join(parts, " "),
	}
}

// relevantFacilities returns the facility entries containing any
// whitespace-delimited token of the query, case-insensitively. Always
// non-nil so the field serializes as an array.
func relevantFacilities(h *domain.Hotel, query string) []string {
	tokens := strings.Fields(strings.ToLower(query))
	out := []string{}
	for _, f := range h.FacilityList() {
		lf := strings.ToLower(f)
		for _, tok := range tokens {
			if strings.Contains(lf, tok) {
				out = append(out, f)
				break
			}
		}
	}
	return out
}

func mentionsFeature(loweredQuery, feature string) bool {
	for _, kw := range scoring.Keywords(feature) {
		if strings.Contains(loweredQuery, kw) {
			return true
		}
	}
	return false
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
