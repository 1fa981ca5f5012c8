package catalog_test

import (
	"errors"
	"testing"

	"hotel_recs/internal/catalog"
	"hotel_recs/internal/domain"
)

func testCatalog() *catalog.Catalog {
	return catalog.New([]domain.Hotel{
		{PropertyID: "H1", City: "Mumbai", CustomerSegment: "Business"},
		{PropertyID: "H2", City: "Mumbai", CustomerSegment: "Leisure"},
		{PropertyID: "H3", City: "Delhi", CustomerSegment: "Business"},
	})
}

func TestLookupSets(t *testing.T) {
	c := testCatalog()
	if c.Len() != 3 {
		t.Fatalf("len: %d", c.Len())
	}
	if !c.HasCity("Mumbai") || !c.HasSegment("Leisure") {
		t.Fatal("known values not found")
	}
	if c.HasCity("mumbai") {
		t.Fatal("city match must be case-sensitive")
	}
	if c.At(2).PropertyID != "H3" {
		t.Fatalf("positional lookup wrong: %s", c.At(2).PropertyID)
	}
}

func TestByCityAndSegment(t *testing.T) {
	c := testCatalog()

	hs, err := c.ByCityAndSegment("Mumbai", "Business")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(hs) != 1 || hs[0].PropertyID != "H1" {
		t.Fatalf("unexpected selection: %+v", hs)
	}

	if _, err := c.ByCityAndSegment("Atlantis", "Business"); !errors.Is(err, domain.ErrUnknownCity) {
		t.Fatalf("want ErrUnknownCity, got %v", err)
	}
	if _, err := c.ByCityAndSegment("Mumbai", "Nomad"); !errors.Is(err, domain.ErrUnknownSegment) {
		t.Fatalf("want ErrUnknownSegment, got %v", err)
	}
	// both values exist, intersection is empty
	if _, err := c.ByCityAndSegment("Delhi", "Leisure"); !errors.Is(err, domain.ErrNoMatches) {
		t.Fatalf("want ErrNoMatches, got %v", err)
	}
}
