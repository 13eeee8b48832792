// FitScout - Fitness Venue Discovery and Matching Engine
// Copyright 2026 FitScout Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/fitscout/fitscout

// Package api provides the HTTP binding for the matching engine using
// the chi router. All endpoints respond with the models.APIResponse
// envelope.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fitscout/fitscout/internal/catalog"
	"github.com/fitscout/fitscout/internal/config"
	"github.com/fitscout/fitscout/internal/match"
)

// Router assembles the HTTP handler tree.
type Router struct {
	handler *Handler
	cfg     *config.Config
}

// NewRouter creates a router over the given catalog and engine.
func NewRouter(cfg *config.Config, cat *catalog.Catalog, engine *match.Engine, version string) *Router {
	return &Router{
		handler: NewHandler(cat, engine, version),
		cfg:     cfg,
	}
}

// Setup builds the complete handler tree with middleware applied.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to every route in order.
	r.Use(RequestIDWithLogging())
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(corsMiddleware(router.cfg.CORS))

	// Health and metrics stay outside the rate limit so monitoring
	// never gets throttled out.
	r.Get("/api/v1/health", router.handler.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(rateLimitMiddleware(router.cfg.RateLimit))
		r.Use(PrometheusMetrics)

		r.Get("/search", router.handler.Search)
		r.Post("/chat", router.handler.Chat)

		r.Route("/recommendations", func(r chi.Router) {
			r.Get("/", router.handler.Recommendations)
			r.Get("/trending", router.handler.Trending)
			r.Get("/personalized/{archetype}", router.handler.Personalized)
		})

		r.Route("/venues", func(r chi.Router) {
			r.Get("/", router.handler.Venues)
			r.Get("/filters", router.handler.VenueFilters)
			r.Get("/categories", router.handler.VenueCategories)
			r.Get("/vibes", router.handler.VenueVibes)
			r.Get("/cities", router.handler.VenueCities)
			r.Get("/{id}", router.handler.VenueByID)
		})
	})

	return r
}
