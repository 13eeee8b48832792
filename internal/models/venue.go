// FitScout - Fitness Venue Discovery and Matching Engine
// Copyright 2026 FitScout Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/fitscout/fitscout

// Package models defines the core data types shared across FitScout:
// venues, scored results, user profiles, and the HTTP response envelope.
package models

// Venue is a fitness venue in the catalog. Venues are immutable after
// startup; all engine operations treat the catalog as read-only.
type Venue struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Location    string   `json:"location"`
	Suburb      string   `json:"suburb"`
	City        string   `json:"city"`
	WeeklyPrice float64  `json:"weekly_price"`
	Services    []string `json:"services"`
	Vibe        string   `json:"vibe"`
	Rating      float64  `json:"rating"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
}

// ScoredVenue is a venue annotated with ranking scores. Which score
// fields are populated depends on the operation that produced it:
// search fills RelevanceScore, recommendations fill the component and
// final scores.
type ScoredVenue struct {
	Venue

	RelevanceScore     float64 `json:"relevance_score,omitempty"`
	ContentScore       float64 `json:"content_score,omitempty"`
	CollaborativeScore float64 `json:"collaborative_score,omitempty"`
	PopularityScore    float64 `json:"popularity_score,omitempty"`
	FinalScore         float64 `json:"final_score,omitempty"`
}

// UserProfile is a preference bundle used for content-based scoring.
// Profiles come from the built-in archetype table or are synthesized
// from a caller-supplied category list.
type UserProfile struct {
	PreferredCategories []string `json:"preferred_categories,omitempty"`
	PreferredServices   []string `json:"preferred_services,omitempty"`
	PreferredFeatures   []string `json:"preferred_features,omitempty"`
	PreferredVibes      []string `json:"preferred_vibes,omitempty"`

	// PriceMin and PriceMax bound the preferred weekly price,
	// inclusive on both ends.
	PriceMin float64 `json:"price_min"`
	PriceMax float64 `json:"price_max"`
}
