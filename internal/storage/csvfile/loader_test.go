package csvfile_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"hotel_recs/internal/storage/csvfile"
)

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "hotels_clean.csv")
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	return p
}

func TestLoadHotels(t *testing.T) {
	p := writeDataset(t, `property_id,property_name,address,city,customer_segment,hotel_star_rating,average_rating,price,hotel_facilities,reviews_summary,top_positive_review,top_negative_review,hotel_description
H1,Sea View,12 Marine Drive,Mumbai,Business,4,4.2,3500,Pool|Gym|Free WiFi,Great stay,Loved the pool,AC was noisy,Modern hotel by the sea
H2,Budget Inn,Old Town 5,Mumbai,Leisure,2,,900,,,,,
`)
	hs, err := csvfile.New(p).LoadHotels(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(hs) != 2 {
		t.Fatalf("want 2 hotels, got %d", len(hs))
	}

	h := hs[0]
	if h.PropertyID != "H1" || h.City != "Mumbai" || h.CustomerSegment != "Business" {
		t.Fatalf("unexpected first hotel: %+v", h)
	}
	if h.StarRating != 4 || h.AverageRating != 4.2 || h.Price != 3500 {
		t.Fatalf("numeric fields wrong: %+v", h)
	}
	if got := h.FacilityList(); len(got) != 3 || got[0] != "Pool" || got[2] != "Free WiFi" {
		t.Fatalf("facility list: %v", got)
	}

	// absent values become zero / empty string
	b := hs[1]
	if b.AverageRating != 0 || b.Facilities != "" || b.ReviewsSummary != "" {
		t.Fatalf("missing values not defaulted: %+v", b)
	}
	if b.ReviewText() != "" || b.SearchContext() != "" {
		t.Fatalf("derived text should be empty: %q %q", b.ReviewText(), b.SearchContext())
	}
}

func TestLoadHotels_DuplicateID(t *testing.T) {
	p := writeDataset(t, "property_id,city\nH1,Mumbai\nH1,Delhi\n")
	if _, err := csvfile.New(p).LoadHotels(context.Background()); err == nil {
		t.Fatal("expected duplicate property_id error")
	}
}

func TestLoadHotels_MissingIDColumn(t *testing.T) {
	p := writeDataset(t, "name,city\nX,Mumbai\n")
	if _, err := csvfile.New(p).LoadHotels(context.Background()); err == nil {
		t.Fatal("expected missing property_id column error")
	}
}
