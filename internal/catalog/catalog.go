// Package catalog holds the full hotel record set, immutable after the
// one-time startup batch completes.
package catalog

import (
	"fmt"

	"hotel_recs/internal/domain"
)

type Catalog struct {
	hotels   []domain.Hotel
	cities   map[string]struct{}
	segments map[string]struct{}
}

// New wraps the loaded (and already enriched) hotel slice. The catalog keeps
// the slice's order; search index positions map back to it.
func New(hotels []domain.Hotel) *Catalog {
	c := &Catalog{
		hotels:   hotels,
		cities:   make(map[string]struct{}, len(hotels)),
		segments: make(map[string]struct{}, len(hotels)),
	}
	for i := range hotels {
		c.cities[hotels[i].City] = struct{}{}
		c.segments[hotels[i].CustomerSegment] = struct{}{}
	}
	return c
}

func (c *Catalog) Len() int { return len(c.hotels) }

// All returns the backing slice; callers must treat it as read-only.
func (c *Catalog) All() []domain.Hotel { return c.hotels }

// At returns the hotel at the given catalog position.
func (c *Catalog) At(i int) *domain.Hotel { return &c.hotels[i] }

func (c *Catalog) HasCity(city string) bool {
	_, ok := c.cities[city]
	return ok
}

func (c *Catalog) HasSegment(segment string) bool {
	_, ok := c.segments[segment]
	return ok
}

// ByCityAndSegment selects hotels matching both values exactly
// (case-sensitive). Existence of each value is checked against the whole
// catalog first, so "unknown city" and "empty intersection" stay distinct.
func (c *Catalog) ByCityAndSegment(city, segment string) ([]*domain.Hotel, error) {
	if !c.HasCity(city) {
		return nil, fmt.Errorf("%w: no hotels found in city: %s", domain.ErrUnknownCity, city)
	}
	if !c.HasSegment(segment) {
		return nil, fmt.Errorf("%w: invalid customer segment: %s", domain.ErrUnknownSegment, segment)
	}
	var out []*domain.Hotel
	for i := range c.hotels {
		if c.hotels[i].City == city && c.hotels[i].CustomerSegment == segment {
			out = append(out, &c.hotels[i])
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no hotels found for %s in %s", domain.ErrNoMatches, segment, city)
	}
	return out, nil
}
