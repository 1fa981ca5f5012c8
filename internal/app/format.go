package app

import (
	"math"

	"hotel_recs/internal/domain"
)

// FeatureScores is the wire shape of the per-hotel affinity scores, scaled
// from the stored [0,1] floats to rounded integers in [0,100].
type FeatureScores struct {
	Cleanliness int `json:"cleanliness"`
	Location    int `json:"location"`
	Service     int `json:"service"`
}

// HotelResult is the common response shape of all three query operations.
type HotelResult struct {
	PropertyID      string        `json:"property_id"`
	PropertyName    string        `json:"property_name"`
	Address         string        `json:"address"`
	City            string        `json:"city"`
	HotelStarRating float64       `json:"hotel_star_rating"`
	AverageRating   float64       `json:"average_rating"`
	Price           float64       `json:"price"`
	FeatureScores   FeatureScores `json:"feature_scores"`
}

// ChatResult extends HotelResult with the semantic-match fields.
type ChatResult struct {
	HotelResult
	MatchConfidence    int      `json:"match_confidence"`
	RelevantFacilities []string `json:"relevant_facilities"`
	MatchSummary       string   `json:"match_summary"`
}

func toResult(h *domain.Hotel) HotelResult {
	return HotelResult{
		PropertyID:      h.PropertyID,
		PropertyName:    h.PropertyName,
		Address:         h.Address,
		City:            h.City,
		HotelStarRating: h.StarRating,
		AverageRating:   h.AverageRating,
		Price:           h.Price,
		FeatureScores: FeatureScores{
			Cleanliness: scaleScore(h.FeatureScores[domain.FeatureCleanliness]),
			Location:    scaleScore(h.FeatureScores[domain.FeatureLocation]),
			Service:     scaleScore(h.FeatureScores[domain.FeatureService]),
		},
	}
}

// scaleScore maps a stored [0,1] score to a 0-100 integer, half-up.
func scaleScore(v float64) int {
	return clampInt(int(math.Round(v*100)), 0, 100)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
