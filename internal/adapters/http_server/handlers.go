package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"hotel_recs/internal/app"
	"hotel_recs/internal/domain"
)

type Handlers struct{ Q *app.QueryService }

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Post("/recommend", h.recommend)
	s.mux.Post("/filter", h.filter)
	s.mux.Post("/chat", h.chat)
}

type recommendRequest struct {
	City            string `json:"city"`
	CustomerSegment string `json:"customer_segment"`
}

type sortRequest struct {
	SortBy    string `json:"sort_by"`
	SortOrder string `json:"sort_order"`
}

type filterRequest struct {
	City             string       `json:"city"`
	CustomerSegment  string       `json:"customer_segment"`
	Address          *string      `json:"address,omitempty"`
	PriceMin         *float64     `json:"price_min,omitempty"`
	PriceMax         *float64     `json:"price_max,omitempty"`
	HotelStarRating  *float64     `json:"hotel_star_rating,omitempty"`
	AverageRatingMin *float64     `json:"average_rating_min,omitempty"`
	Sort             *sortRequest `json:"sort,omitempty"`
}

type chatRequest struct {
	Query string `json:"query"`
}

func (h *Handlers) recommend(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
	if !decodeBody(w, r, &req) {
		return
	}
	out, err := h.Q.Recommend(r.Context(), req.City, req.CustomerSegment)
	if err != nil {
		writeQueryError(w, err)
		return
	}
	writeJSON(w, out)
}

func (h *Handlers) filter(w http.ResponseWriter, r *http.Request) {
	var req filterRequest
	if !decodeBody(w, r, &req) {
		return
	}
	p := app.FilterParams{
		City:         req.City,
		Segment:      req.CustomerSegment,
		Address:      req.Address,
		PriceMin:     req.PriceMin,
		PriceMax:     req.PriceMax,
		StarRating:   req.HotelStarRating,
		AvgRatingMin: req.AverageRatingMin,
	}
	if req.Sort != nil {
		p.Sort = &app.SortSpec{By: req.Sort.SortBy, Order: req.Sort.SortOrder}
	}
	out, err := h.Q.Filter(r.Context(), p)
	if err != nil {
		writeQueryError(w, err)
		return
	}
	writeJSON(w, out)
}

func (h *Handlers) chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if !decodeBody(w, r, &req) {
		return
	}
	out, err := h.Q.SemanticMatch(r.Context(), req.Query)
	if err != nil {
		writeQueryError(w, err)
		return
	}
	writeJSON(w, out)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "request body must be valid JSON")
		return false
	}
	return true
}

// writeQueryError maps the query error taxonomy onto HTTP statuses. Unknown
// errors are logged in full and surfaced as a generic 500.
func writeQueryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidQuery), errors.Is(err, domain.ErrInvalidSortField):
		writeProblem(w, http.StatusBadRequest, "Bad Request", err.Error())
	case errors.Is(err, domain.ErrUnknownCity), errors.Is(err, domain.ErrUnknownSegment), errors.Is(err, domain.ErrNoMatches):
		writeProblem(w, http.StatusNotFound, "Not Found", err.Error())
	default:
		log.Error().Err(err).Msg("query failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "internal server error")
	}
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}
