// FitScout - Fitness Venue Discovery and Matching Engine
// Copyright 2026 FitScout Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/fitscout/fitscout

// Package match implements the matching and ranking engine: free-text
// relevance search, the keyword-driven chat assistant, and
// preference-profile recommendations, all sharing one scoring library
// and one cursor paginator.
//
// Every operation is a pure function of (catalog snapshot, request).
// The engine holds no mutable state, so a single Engine instance is
// safe for unbounded concurrent use.
//
// Scoring weights and the substring-containment matching semantics are
// frozen for compatibility: clients and their tests depend on exact
// scores, ordering, and confidence values. Do not "improve" matching
// with tokenization, stemming, or fuzzy logic.
package match

import (
	"github.com/rs/zerolog"

	"github.com/fitscout/fitscout/internal/models"
)

// CatalogProvider supplies the venue set the engine ranks. The returned
// slice defines catalog order, which every tie-break depends on.
type CatalogProvider interface {
	All() []models.Venue
}

// Config holds engine tunables.
type Config struct {
	// DefaultLimit is the page size when a request omits or zeroes limit.
	DefaultLimit int

	// MaxLimit caps requested page sizes. Larger requests are clamped,
	// not rejected.
	MaxLimit int

	// ChatRelatedLimit caps how many venues a chat reply references.
	ChatRelatedLimit int

	// Blend weights for the final recommendation score.
	ContentWeight       float64
	CollaborativeWeight float64
	PopularityWeight    float64
}

// DefaultConfig returns the standard engine configuration.
func DefaultConfig() Config {
	return Config{
		DefaultLimit:        6,
		MaxLimit:            50,
		ChatRelatedLimit:    3,
		ContentWeight:       0.5,
		CollaborativeWeight: 0.3,
		PopularityWeight:    0.2,
	}
}

// Engine is the matching and ranking engine. Construct with NewEngine.
type Engine struct {
	catalog CatalogProvider
	cfg     Config
	logger  zerolog.Logger
}

// NewEngine creates an engine over the given catalog. Zero-valued
// config fields are replaced with defaults.
func NewEngine(catalog CatalogProvider, cfg Config, logger zerolog.Logger) *Engine {
	def := DefaultConfig()
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = def.DefaultLimit
	}
	if cfg.MaxLimit <= 0 {
		cfg.MaxLimit = def.MaxLimit
	}
	if cfg.ChatRelatedLimit <= 0 {
		cfg.ChatRelatedLimit = def.ChatRelatedLimit
	}
	if cfg.ContentWeight == 0 && cfg.CollaborativeWeight == 0 && cfg.PopularityWeight == 0 {
		cfg.ContentWeight = def.ContentWeight
		cfg.CollaborativeWeight = def.CollaborativeWeight
		cfg.PopularityWeight = def.PopularityWeight
	}

	return &Engine{
		catalog: catalog,
		cfg:     cfg,
		logger:  logger.With().Str("component", "match").Logger(),
	}
}

// normalizeLimit clamps a requested page size into [1, MaxLimit],
// substituting the default for missing or non-positive values.
// Malformed limits are never an error.
func (e *Engine) normalizeLimit(limit int) int {
	if limit <= 0 {
		return e.cfg.DefaultLimit
	}
	if limit > e.cfg.MaxLimit {
		return e.cfg.MaxLimit
	}
	return limit
}
