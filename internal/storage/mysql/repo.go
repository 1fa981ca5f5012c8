package mysql

import (
	"context"
	"database/sql"
	"strings"

	"hotel_recs/internal/domain"
)

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// UpsertHotels writes a batch in a single multi-row statement.
func (r *Repo) UpsertHotels(ctx context.Context, hs []domain.Hotel) error {
	if len(hs) == 0 {
		return nil
	}
	values := make([]string, 0, len(hs))
	args := make([]any, 0, len(hs)*13)
	for _, h := range hs {
		values = append(values, "(?,?,?,?,?,?,?,?,?,?,?,?,?)")
		args = append(args,
			h.PropertyID,
			h.PropertyName,
			h.Address,
			h.City,
			h.CustomerSegment,
			h.StarRating,
			h.AverageRating,
			h.Price,
			h.Facilities,
			h.ReviewsSummary,
			h.TopPositiveReview,
			h.TopNegativeReview,
			h.Description,
		)
	}
	sqlStr := insertHotelsPrefix + strings.Join(values, ",") + insertHotelsOnDup
	_, err := r.db.ExecContext(ctx, sqlStr, args...)
	return err
}

// LoadHotels reads the full catalog in property_id order. NULL text columns
// come back as empty strings.
func (r *Repo) LoadHotels(ctx context.Context) ([]domain.Hotel, error) {
	rows, err := r.db.QueryContext(ctx, selectHotelsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Hotel
	for rows.Next() {
		var h domain.Hotel
		var (
			stars, avg, price            sql.NullFloat64
			facilities, summary          sql.NullString
			positive, negative, desc     sql.NullString
			name, address, city, segment sql.NullString
		)
		if err := rows.Scan(
			&h.PropertyID,
			&name,
			&address,
			&city,
			&segment,
			&stars,
			&avg,
			&price,
			&facilities,
			&summary,
			&positive,
			&negative,
			&desc,
		); err != nil {
			return nil, err
		}
		h.PropertyName = name.String
		h.Address = address.String
		h.City = city.String
		h.CustomerSegment = segment.String
		h.StarRating = stars.Float64
		h.AverageRating = avg.Float64
		h.Price = price.Float64
		h.Facilities = facilities.String
		h.ReviewsSummary = summary.String
		h.TopPositiveReview = positive.String
		h.TopNegativeReview = negative.String
		h.Description = desc.String
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
