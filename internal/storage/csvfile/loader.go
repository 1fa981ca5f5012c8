// Package csvfile loads the cleaned hotels dataset straight from disk.
// Numeric columns parse leniently (blank -> 0); absent free-text columns
// default to the empty string.
package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"hotel_recs/internal/domain"
)

type Loader struct{ path string }

func New(path string) *Loader { return &Loader{path: path} }

func (l *Loader) LoadHotels(ctx context.Context) ([]domain.Hotel, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // tolerate ragged rows, missing cells become ""

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("dataset %s is empty", l.path)
	}

	col := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		col[strings.TrimSpace(strings.ToLower(name))] = i
	}
	if _, ok := col["property_id"]; !ok {
		return nil, fmt.Errorf("dataset %s has no property_id column", l.path)
	}

	seen := make(map[string]struct{}, len(rows)-1)
	out := make([]domain.Hotel, 0, len(rows)-1)
	for n, row := range rows[1:] {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		cell := func(name string) string {
			i, ok := col[name]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}
		h := domain.Hotel{
			PropertyID:        cell("property_id"),
			PropertyName:      cell("property_name"),
			Address:           cell("address"),
			City:              cell("city"),
			CustomerSegment:   cell("customer_segment"),
			StarRating:        parseFloat(cell("hotel_star_rating")),
			AverageRating:     parseFloat(cell("average_rating")),
			Price:             parseFloat(cell("price")),
			Facilities:        cell("hotel_facilities"),
			ReviewsSummary:    cell("reviews_summary"),
			TopPositiveReview: cell("top_positive_review"),
			TopNegativeReview: cell("top_negative_review"),
			Description:       cell("hotel_description"),
		}
		if h.PropertyID == "" {
			return nil, fmt.Errorf("row %d: empty property_id", n+2)
		}
		if _, dup := seen[h.PropertyID]; dup {
			return nil, fmt.Errorf("row %d: duplicate property_id %s", n+2, h.PropertyID)
		}
		seen[h.PropertyID] = struct{}{}
		out = append(out, h)
	}
	return out, nil
}

func parseFloat(s string) float64 {
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return 0
	}
	return f
}
