// FitScout - Fitness Venue Discovery and Matching Engine
// Copyright 2026 FitScout Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/fitscout/fitscout

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/fitscout/fitscout/internal/catalog"
	"github.com/fitscout/fitscout/internal/logging"
	"github.com/fitscout/fitscout/internal/match"
	"github.com/fitscout/fitscout/internal/metrics"
	"github.com/fitscout/fitscout/internal/models"
)

// Handler holds the dependencies shared by all HTTP handlers.
type Handler struct {
	catalog   *catalog.Catalog
	engine    *match.Engine
	version   string
	startTime time.Time
}

// NewHandler creates a handler set over the catalog and engine.
func NewHandler(cat *catalog.Catalog, engine *match.Engine, version string) *Handler {
	return &Handler{
		catalog:   cat,
		engine:    engine,
		version:   version,
		startTime: time.Now(),
	}
}

// Health reports service liveness and basic catalog stats.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	status := models.HealthStatus{
		Status:     "ok",
		Version:    h.version,
		VenueCount: h.catalog.Len(),
		UptimeSecs: int64(time.Since(h.startTime).Seconds()),
	}

	resp := models.NewSuccessResponse(status, time.Since(start))
	respondJSON(w, http.StatusOK, &resp)
}

// Search handles GET /api/v1/search?query=...&cursor=...&limit=...
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	query := r.URL.Query().Get("query")
	if query == "" {
		// The frontend historically sent both names.
		query = r.URL.Query().Get("q")
	}
	if query == "" {
		respondError(w, http.StatusBadRequest, models.ErrCodeValidation,
			"query parameter is required", map[string]interface{}{"field": "query"})
		return
	}

	cursor := r.URL.Query().Get("cursor")
	limit := getIntParam(r, "limit", 0)

	result := h.engine.Search(query, cursor, limit)
	metrics.RecordMatch("search", len(result.Venues), 0)

	resp := models.NewSuccessResponse(result, time.Since(start))
	respondJSON(w, http.StatusOK, &resp)
}

// ChatRequest is the POST /api/v1/chat body. Context is accepted for
// client convenience but not interpreted: every chat turn is stateless.
type ChatRequest struct {
	Message string `json:"message" validate:"required,max=2000"`
	Context string `json:"context,omitempty" validate:"max=2000"`
}

// Chat handles POST /api/v1/chat.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger := logging.Ctx(r.Context())
		logger.Warn().Err(err).Msg("malformed chat request body")
		respondError(w, http.StatusBadRequest, models.ErrCodeInvalidBody,
			"request body must be valid JSON", nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
		return
	}

	result := h.engine.Chat(req.Message)
	metrics.RecordMatch("chat", len(result.RelatedVenues), result.Confidence)

	resp := models.NewSuccessResponse(result, time.Since(start))
	respondJSON(w, http.StatusOK, &resp)
}

// Recommendations handles GET /api/v1/recommendations with optional
// archetype, preferences, category, city, max_price, and limit
// parameters. Out-of-range numeric input is clamped or defaulted,
// never rejected.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := match.RecommendRequest{
		ArchetypeID: r.URL.Query().Get("archetype"),
		Preferences: parseCommaSeparated(r.URL.Query().Get("preferences")),
		Category:    r.URL.Query().Get("category"),
		City:        r.URL.Query().Get("city"),
		Limit:       getIntParam(r, "limit", 0),
	}
	if maxPrice, ok := getFloatParam(r, "max_price"); ok && maxPrice > 0 {
		req.MaxPrice = maxPrice
	}

	result := h.engine.Recommend(req)
	metrics.RecordMatch("recommend", len(result.Venues), result.Confidence)

	resp := models.NewSuccessResponse(result, time.Since(start))
	respondJSON(w, http.StatusOK, &resp)
}

// Personalized handles GET /api/v1/recommendations/personalized/{archetype}.
// Unknown archetypes degrade to popularity-driven results rather than 404,
// matching the engine's never-fail policy.
func (h *Handler) Personalized(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	archetype := chi.URLParam(r, "archetype")
	limit := getIntParam(r, "limit", 0)

	result := h.engine.Personalized(archetype, limit)
	metrics.RecordMatch("recommend", len(result.Venues), result.Confidence)

	resp := models.NewSuccessResponse(result, time.Since(start))
	respondJSON(w, http.StatusOK, &resp)
}

// Trending handles GET /api/v1/recommendations/trending.
func (h *Handler) Trending(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	result := h.engine.Trending(getIntParam(r, "limit", 0))
	metrics.RecordMatch("trending", len(result.Venues), result.Confidence)

	resp := models.NewSuccessResponse(result, time.Since(start))
	respondJSON(w, http.StatusOK, &resp)
}

// VenuePage is the paginated venue listing payload.
type VenuePage struct {
	Venues     []models.Venue `json:"venues"`
	Total      int            `json:"total"`
	NextCursor string         `json:"next_cursor,omitempty"`
	HasMore    bool           `json:"has_more"`
}

// Venues handles GET /api/v1/venues with the full filter set.
func (h *Handler) Venues(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	q := r.URL.Query()

	filter := catalog.FilterQuery{
		Search:              q.Get("search"),
		Category:            q.Get("category"),
		Categories:          parseCommaSeparated(q.Get("categories")),
		Vibe:                q.Get("vibe"),
		Vibes:               parseCommaSeparated(q.Get("vibes")),
		City:                q.Get("city"),
		Cities:              parseCommaSeparated(q.Get("cities")),
		Services:            parseCommaSeparated(q.Get("services")),
		HasParking:          getBoolParam(r, "has_parking"),
		Has24HourAccess:     getBoolParam(r, "has_24_hour_access"),
		HasSauna:            getBoolParam(r, "has_sauna"),
		HasPersonalTraining: getBoolParam(r, "has_personal_training"),
	}
	if v, ok := getFloatParam(r, "price_min"); ok {
		filter.PriceMin = &v
	}
	if v, ok := getFloatParam(r, "price_max"); ok {
		filter.PriceMax = &v
	}
	if v, ok := getFloatParam(r, "rating"); ok {
		filter.MinRating = &v
	}

	filtered := h.catalog.Filter(filter)

	limit := getIntParam(r, "limit", 6)
	if limit <= 0 {
		limit = 6
	}
	page, nextCursor, hasMore := match.PaginateVenues(filtered, q.Get("cursor"), limit)

	resp := models.NewSuccessResponse(VenuePage{
		Venues:     page,
		Total:      len(filtered),
		NextCursor: nextCursor,
		HasMore:    hasMore,
	}, time.Since(start))
	respondJSON(w, http.StatusOK, &resp)
}

// VenueByID handles GET /api/v1/venues/{id}.
func (h *Handler) VenueByID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id := chi.URLParam(r, "id")
	venue, ok := h.catalog.ByID(id)
	if !ok {
		respondError(w, http.StatusNotFound, models.ErrCodeNotFound,
			"venue not found", map[string]interface{}{"id": id})
		return
	}

	resp := models.NewSuccessResponse(venue, time.Since(start))
	respondJSON(w, http.StatusOK, &resp)
}

// VenueFilters handles GET /api/v1/venues/filters.
func (h *Handler) VenueFilters(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	resp := models.NewSuccessResponse(h.catalog.Options(), time.Since(start))
	respondJSON(w, http.StatusOK, &resp)
}

// VenueCategories handles GET /api/v1/venues/categories.
func (h *Handler) VenueCategories(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	resp := models.NewSuccessResponse(h.catalog.Categories(), time.Since(start))
	respondJSON(w, http.StatusOK, &resp)
}

// VenueVibes handles GET /api/v1/venues/vibes.
func (h *Handler) VenueVibes(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	resp := models.NewSuccessResponse(h.catalog.Vibes(), time.Since(start))
	respondJSON(w, http.StatusOK, &resp)
}

// VenueCities handles GET /api/v1/venues/cities.
func (h *Handler) VenueCities(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	resp := models.NewSuccessResponse(h.catalog.Cities(), time.Since(start))
	respondJSON(w, http.StatusOK, &resp)
}
