package domain

import "strings"

// The fixed set of qualitative features scored for every hotel.
const (
	FeatureCleanliness = "cleanliness"
	FeatureLocation    = "location"
	FeatureService     = "service"
)

// Hotel is one row of the catalog. Descriptive fields come straight from the
// source dataset; FeatureScores and ContextVector are derived once at startup
// and never recomputed.
type Hotel struct {
	PropertyID      string
	PropertyName    string
	Address         string
	City            string
	CustomerSegment string
	StarRating      float64 // 0-5
	AverageRating   float64 // 0-5
	Price           float64

	// Free text; empty string when the source has no value.
	Facilities        string // pipe-delimited list
	ReviewsSummary    string
	TopPositiveReview string
	TopNegativeReview string
	Description       string

	// Derived attributes, attached once after load.
	FeatureScores map[string]float64 // feature name -> [0,1]
	ContextVector []float32
}

// ReviewText is the text embedded for feature scoring.
func (h *Hotel) ReviewText() string {
	return joinNonEmpty(h.TopPositiveReview, h.TopNegativeReview, h.ReviewsSummary)
}

// SearchContext is the text embedded for free-text semantic matching.
func (h *Hotel) SearchContext() string {
	return joinNonEmpty(h.Facilities, h.ReviewsSummary, h.Description)
}

// FacilityList splits the pipe-delimited facilities field, dropping blanks.
func (h *Hotel) FacilityList() []string {
	if h.Facilities == "" {
		return nil
	}
	var out []string
	for _, f := range strings.Split(h.Facilities, "|") {
		if t := strings.TrimSpace(f); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func joinNonEmpty(parts ...string) string {
	var out []string
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return strings.Join(out, " ")
}
