// FitScout - Fitness Venue Discovery and Matching Engine
// Copyright 2026 FitScout Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/fitscout/fitscout

package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/fitscout/fitscout/internal/catalog"
	"github.com/fitscout/fitscout/internal/config"
	"github.com/fitscout/fitscout/internal/match"
)

// envelope mirrors models.APIResponse with a raw data payload so each
// test can decode data into its own shape.
type envelope struct {
	Status   string          `json:"status"`
	Data     json.RawMessage `json:"data,omitempty"`
	Metadata *struct {
		Timestamp   string  `json:"timestamp"`
		QueryTimeMS float64 `json:"query_time_ms"`
	} `json:"metadata,omitempty"`
	Error *struct {
		Code    string                 `json:"code"`
		Message string                 `json:"message"`
		Details map[string]interface{} `json:"details,omitempty"`
	} `json:"error,omitempty"`
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host: "127.0.0.1",
			Port: 8080,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"*"},
			MaxAge:         300,
		},
		RateLimit: config.RateLimitConfig{
			Disabled: true,
		},
		Engine: config.EngineConfig{
			DefaultLimit:        6,
			MaxLimit:            50,
			ChatRelatedLimit:    3,
			ContentWeight:       0.5,
			CollaborativeWeight: 0.3,
			PopularityWeight:    0.2,
		},
	}
}

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	cfg := testConfig()
	cat := catalog.New()
	engine := match.NewEngine(cat, match.Config{
		DefaultLimit:        cfg.Engine.DefaultLimit,
		MaxLimit:            cfg.Engine.MaxLimit,
		ChatRelatedLimit:    cfg.Engine.ChatRelatedLimit,
		ContentWeight:       cfg.Engine.ContentWeight,
		CollaborativeWeight: cfg.Engine.CollaborativeWeight,
		PopularityWeight:    cfg.Engine.PopularityWeight,
	}, zerolog.Nop())

	return NewRouter(cfg, cat, engine, "test").Setup()
}

func doRequest(t *testing.T, handler http.Handler, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("response is not a valid envelope: %v\nbody: %s", err, rec.Body.String())
	}
	return rec, env
}

func TestHealth(t *testing.T) {
	handler := newTestServer(t)
	rec, env := doRequest(t, handler, http.MethodGet, "/api/v1/health", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if env.Status != "success" {
		t.Errorf("envelope status = %q, want success", env.Status)
	}

	var health struct {
		Status     string `json:"status"`
		Version    string `json:"version"`
		VenueCount int    `json:"venue_count"`
	}
	if err := json.Unmarshal(env.Data, &health); err != nil {
		t.Fatalf("decode health: %v", err)
	}
	if health.Status != "ok" {
		t.Errorf("health status = %q, want ok", health.Status)
	}
	if health.Version != "test" {
		t.Errorf("version = %q, want test", health.Version)
	}
	if health.VenueCount != 8 {
		t.Errorf("venue_count = %d, want 8", health.VenueCount)
	}
}

func TestSearchEndpoint(t *testing.T) {
	handler := newTestServer(t)
	rec, env := doRequest(t, handler, http.MethodGet, "/api/v1/search?query=gym", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if env.Metadata == nil {
		t.Fatal("expected metadata on success response")
	}

	var result struct {
		Venues []struct {
			ID             string  `json:"id"`
			RelevanceScore float64 `json:"relevance_score"`
		} `json:"venues"`
		Explanation string `json:"explanation"`
		HasMore     bool   `json:"has_more"`
	}
	if err := json.Unmarshal(env.Data, &result); err != nil {
		t.Fatalf("decode search result: %v", err)
	}
	if len(result.Venues) == 0 {
		t.Fatal("expected venues for query gym")
	}
	if result.Venues[0].ID != "1" {
		t.Errorf("top venue = %s, want 1 (Iron Temple Gym)", result.Venues[0].ID)
	}
	if result.Venues[0].RelevanceScore <= 0 {
		t.Error("expected positive relevance score on results")
	}
	if !strings.Contains(result.Explanation, "gym") {
		t.Errorf("explanation should echo the query, got %q", result.Explanation)
	}
}

func TestSearchAcceptsQAlias(t *testing.T) {
	handler := newTestServer(t)
	rec, _ := doRequest(t, handler, http.MethodGet, "/api/v1/search?q=yoga", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestSearchMissingQuery(t *testing.T) {
	handler := newTestServer(t)
	rec, env := doRequest(t, handler, http.MethodGet, "/api/v1/search", "")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if env.Status != "error" {
		t.Errorf("envelope status = %q, want error", env.Status)
	}
	if env.Error == nil || env.Error.Code != "VALIDATION_ERROR" {
		t.Errorf("expected VALIDATION_ERROR, got %+v", env.Error)
	}
}

func TestSearchPagination(t *testing.T) {
	handler := newTestServer(t)
	_, env := doRequest(t, handler, http.MethodGet, "/api/v1/search?query=gym&limit=1", "")

	var page struct {
		Venues []struct {
			ID string `json:"id"`
		} `json:"venues"`
		NextCursor string `json:"next_cursor"`
		HasMore    bool   `json:"has_more"`
	}
	if err := json.Unmarshal(env.Data, &page); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(page.Venues) != 1 {
		t.Fatalf("page size = %d, want 1", len(page.Venues))
	}
	if !page.HasMore || page.NextCursor == "" {
		t.Fatal("expected a next cursor with has_more set")
	}

	_, env2 := doRequest(t, handler, http.MethodGet,
		"/api/v1/search?query=gym&limit=1&cursor="+page.NextCursor, "")
	var page2 struct {
		Venues []struct {
			ID string `json:"id"`
		} `json:"venues"`
	}
	if err := json.Unmarshal(env2.Data, &page2); err != nil {
		t.Fatalf("decode second page: %v", err)
	}
	if len(page2.Venues) != 1 || page2.Venues[0].ID == page.Venues[0].ID {
		t.Errorf("second page should advance past %s, got %+v", page.Venues[0].ID, page2.Venues)
	}
}

func TestChatEndpoint(t *testing.T) {
	handler := newTestServer(t)
	rec, env := doRequest(t, handler, http.MethodPost, "/api/v1/chat",
		`{"message": "tell me about yoga"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var result struct {
		Response      string   `json:"response"`
		Suggestions   []string `json:"suggestions"`
		RelatedVenues []struct {
			ID string `json:"id"`
		} `json:"related_venues"`
		Confidence float64 `json:"confidence"`
	}
	if err := json.Unmarshal(env.Data, &result); err != nil {
		t.Fatalf("decode chat result: %v", err)
	}
	if result.Response == "" {
		t.Error("expected a non-empty chat response")
	}
	if len(result.RelatedVenues) == 0 || result.RelatedVenues[0].ID != "2" {
		t.Errorf("expected Zen Flow (id 2) as top related venue, got %+v", result.RelatedVenues)
	}
	if result.Confidence <= 0 || result.Confidence > 1 {
		t.Errorf("confidence = %v, want in (0, 1]", result.Confidence)
	}
	if len(result.Suggestions) == 0 {
		t.Error("expected follow-up suggestions")
	}
}

func TestChatGreetingHasNoVenues(t *testing.T) {
	handler := newTestServer(t)
	_, env := doRequest(t, handler, http.MethodPost, "/api/v1/chat", `{"message": "hello"}`)

	var result struct {
		RelatedVenues []json.RawMessage `json:"related_venues"`
		Confidence    float64           `json:"confidence"`
	}
	if err := json.Unmarshal(env.Data, &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(result.RelatedVenues) != 0 {
		t.Errorf("greeting should not attach venues, got %d", len(result.RelatedVenues))
	}
	if result.Confidence != 0 {
		t.Errorf("greeting confidence = %v, want 0", result.Confidence)
	}
}

func TestChatValidation(t *testing.T) {
	handler := newTestServer(t)

	tests := []struct {
		name string
		body string
		code string
	}{
		{"empty message", `{"message": ""}`, "VALIDATION_ERROR"},
		{"missing message", `{}`, "VALIDATION_ERROR"},
		{"malformed json", `{"message": `, "INVALID_BODY"},
		{"too long", `{"message": "` + strings.Repeat("a", 2001) + `"}`, "VALIDATION_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := doRequest(t, handler, http.MethodPost, "/api/v1/chat", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			if env.Error == nil || env.Error.Code != tt.code {
				t.Errorf("error = %+v, want code %s", env.Error, tt.code)
			}
		})
	}
}

func TestRecommendationsEndpoint(t *testing.T) {
	handler := newTestServer(t)
	rec, env := doRequest(t, handler, http.MethodGet,
		"/api/v1/recommendations?archetype=budget_conscious&limit=3", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var result struct {
		Venues []struct {
			ID         string  `json:"id"`
			FinalScore float64 `json:"final_score"`
		} `json:"venues"`
		Algorithm   string  `json:"algorithm"`
		Confidence  float64 `json:"confidence"`
		Explanation string  `json:"explanation"`
	}
	if err := json.Unmarshal(env.Data, &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(result.Venues) != 3 {
		t.Fatalf("venue count = %d, want 3", len(result.Venues))
	}
	if result.Algorithm != "hybrid" {
		t.Errorf("algorithm = %q, want hybrid", result.Algorithm)
	}
	if !strings.Contains(result.Explanation, "budget conscious") {
		t.Errorf("explanation should mention the archetype, got %q", result.Explanation)
	}
	for i := 1; i < len(result.Venues); i++ {
		if result.Venues[i].FinalScore > result.Venues[i-1].FinalScore {
			t.Errorf("venues not sorted by final_score at %d", i)
		}
	}
}

func TestRecommendationsHardFilters(t *testing.T) {
	handler := newTestServer(t)
	_, env := doRequest(t, handler, http.MethodGet,
		"/api/v1/recommendations?city=Melbourne&max_price=40", "")

	var result struct {
		Venues []struct {
			ID    string  `json:"id"`
			City  string  `json:"city"`
			Price float64 `json:"weekly_price"`
		} `json:"venues"`
	}
	if err := json.Unmarshal(env.Data, &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, v := range result.Venues {
		if v.City != "Melbourne" {
			t.Errorf("venue %s city = %q, want Melbourne", v.ID, v.City)
		}
		if v.Price > 40 {
			t.Errorf("venue %s price = %v, want <= 40", v.ID, v.Price)
		}
	}
}

func TestTrendingEndpoint(t *testing.T) {
	handler := newTestServer(t)
	rec, env := doRequest(t, handler, http.MethodGet, "/api/v1/recommendations/trending?limit=3", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var result struct {
		Venues []struct {
			ID string `json:"id"`
		} `json:"venues"`
		Algorithm  string  `json:"algorithm"`
		Confidence float64 `json:"confidence"`
	}
	if err := json.Unmarshal(env.Data, &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.Algorithm != "trending" {
		t.Errorf("algorithm = %q, want trending", result.Algorithm)
	}
	if result.Confidence != 0.85 {
		t.Errorf("confidence = %v, want 0.85", result.Confidence)
	}
	want := []string{"2", "1", "5"}
	if len(result.Venues) != len(want) {
		t.Fatalf("venue count = %d, want %d", len(result.Venues), len(want))
	}
	for i, id := range want {
		if result.Venues[i].ID != id {
			t.Errorf("trending[%d] = %s, want %s", i, result.Venues[i].ID, id)
		}
	}
}

func TestPersonalizedEndpoint(t *testing.T) {
	handler := newTestServer(t)
	rec, env := doRequest(t, handler, http.MethodGet,
		"/api/v1/recommendations/personalized/wellness_seeker", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var result struct {
		Venues      []json.RawMessage `json:"venues"`
		Algorithm   string            `json:"algorithm"`
		Explanation string            `json:"explanation"`
	}
	if err := json.Unmarshal(env.Data, &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.Algorithm != "hybrid" {
		t.Errorf("algorithm = %q, want hybrid", result.Algorithm)
	}
	if !strings.Contains(result.Explanation, "wellness seeker") {
		t.Errorf("explanation should mention wellness seeker, got %q", result.Explanation)
	}
}

func TestVenuesListingAndFilters(t *testing.T) {
	handler := newTestServer(t)

	tests := []struct {
		name    string
		target  string
		wantIDs []string
	}{
		{"all first page", "/api/v1/venues?limit=50",
			[]string{"1", "2", "3", "4", "5", "6", "7", "8"}},
		{"category", "/api/v1/venues?category=Yoga&limit=50", []string{"2"}},
		{"city", "/api/v1/venues?city=Sydney&limit=50", []string{"1", "6", "7"}},
		{"price range", "/api/v1/venues?price_min=40&price_max=50&limit=50",
			[]string{"1", "4", "5", "7"}},
		{"services", "/api/v1/venues?services=Sauna&limit=50", []string{"1"}},
		{"boolean flag", "/api/v1/venues?has_24_hour_access=true&limit=50",
			[]string{"1", "3"}},
		{"rating", "/api/v1/venues?rating=4.8&limit=50", []string{"1", "2", "5"}},
		{"search", "/api/v1/venues?search=bondi&limit=50", []string{"1"}},
		{"combined empty", "/api/v1/venues?category=Gym&city=Gold+Coast&limit=50", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := doRequest(t, handler, http.MethodGet, tt.target, "")
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}

			var page struct {
				Venues []struct {
					ID string `json:"id"`
				} `json:"venues"`
				Total int `json:"total"`
			}
			if err := json.Unmarshal(env.Data, &page); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if len(page.Venues) != len(tt.wantIDs) {
				t.Fatalf("got %d venues, want %d", len(page.Venues), len(tt.wantIDs))
			}
			if page.Total != len(tt.wantIDs) {
				t.Errorf("total = %d, want %d", page.Total, len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if page.Venues[i].ID != id {
					t.Errorf("venue[%d] = %s, want %s", i, page.Venues[i].ID, id)
				}
			}
		})
	}
}

func TestVenuesPagination(t *testing.T) {
	handler := newTestServer(t)
	_, env := doRequest(t, handler, http.MethodGet, "/api/v1/venues?limit=3", "")

	var page struct {
		Venues []struct {
			ID string `json:"id"`
		} `json:"venues"`
		Total      int    `json:"total"`
		NextCursor string `json:"next_cursor"`
		HasMore    bool   `json:"has_more"`
	}
	if err := json.Unmarshal(env.Data, &page); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(page.Venues) != 3 || page.Total != 8 || !page.HasMore {
		t.Fatalf("unexpected first page: %+v", page)
	}

	_, env2 := doRequest(t, handler, http.MethodGet,
		"/api/v1/venues?limit=3&cursor="+page.NextCursor, "")
	var page2 struct {
		Venues []struct {
			ID string `json:"id"`
		} `json:"venues"`
	}
	if err := json.Unmarshal(env2.Data, &page2); err != nil {
		t.Fatalf("decode second page: %v", err)
	}
	if len(page2.Venues) != 3 || page2.Venues[0].ID != "4" {
		t.Errorf("second page should start at venue 4, got %+v", page2.Venues)
	}
}

func TestVenueByID(t *testing.T) {
	handler := newTestServer(t)
	rec, env := doRequest(t, handler, http.MethodGet, "/api/v1/venues/3", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var venue struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(env.Data, &venue); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if venue.Name != "FitTech Hub" {
		t.Errorf("name = %q, want FitTech Hub", venue.Name)
	}
}

func TestVenueByIDNotFound(t *testing.T) {
	handler := newTestServer(t)
	rec, env := doRequest(t, handler, http.MethodGet, "/api/v1/venues/999", "")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if env.Error == nil || env.Error.Code != "NOT_FOUND" {
		t.Errorf("error = %+v, want NOT_FOUND", env.Error)
	}
}

func TestVenueMetadataEndpoints(t *testing.T) {
	handler := newTestServer(t)

	tests := []struct {
		target string
		first  string
		count  int
	}{
		{"/api/v1/venues/categories", "All", 9},
		{"/api/v1/venues/vibes", "All", 6},
		{"/api/v1/venues/cities", "All", 8},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec, env := doRequest(t, handler, http.MethodGet, tt.target, "")
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}

			var values []string
			if err := json.Unmarshal(env.Data, &values); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if len(values) != tt.count {
				t.Errorf("got %d values, want %d: %v", len(values), tt.count, values)
			}
			if len(values) > 0 && values[0] != tt.first {
				t.Errorf("first value = %q, want %q", values[0], tt.first)
			}
		})
	}
}

func TestVenueFiltersEndpoint(t *testing.T) {
	handler := newTestServer(t)
	rec, env := doRequest(t, handler, http.MethodGet, "/api/v1/venues/filters", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var opts struct {
		Categories []string `json:"categories"`
		Vibes      []string `json:"vibes"`
		Cities     []string `json:"cities"`
	}
	if err := json.Unmarshal(env.Data, &opts); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(opts.Categories) == 0 || len(opts.Vibes) == 0 || len(opts.Cities) == 0 {
		t.Errorf("expected populated filter options, got %+v", opts)
	}
}

func TestResponseHeaders(t *testing.T) {
	handler := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/venues", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q", got)
	}
	if rec.Header().Get("ETag") == "" {
		t.Error("expected an ETag header")
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("expected a generated X-Request-ID header")
	}
}

func TestRequestIDPassthrough(t *testing.T) {
	handler := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set("X-Request-ID", "client-supplied-id")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "client-supplied-id" {
		t.Errorf("X-Request-ID = %q, want client-supplied-id", got)
	}
}

func TestRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit = config.RateLimitConfig{
		Requests: 2,
		Window:   time.Minute,
	}

	cat := catalog.New()
	engine := match.NewEngine(cat, match.DefaultConfig(), zerolog.Nop())
	handler := NewRouter(cfg, cat, engine, "test").Setup()

	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/venues", nil)
		req.RemoteAddr = "10.1.2.3:5000"
		last = httptest.NewRecorder()
		handler.ServeHTTP(last, req)
	}

	if last.Code != http.StatusTooManyRequests {
		t.Fatalf("third request status = %d, want 429", last.Code)
	}

	var env envelope
	if err := json.Unmarshal(last.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Error == nil || env.Error.Code != "RATE_LIMITED" {
		t.Errorf("error = %+v, want RATE_LIMITED", env.Error)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	handler := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "go_") {
		t.Error("expected Prometheus exposition output")
	}
}
