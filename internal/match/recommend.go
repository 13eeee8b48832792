// FitScout - Fitness Venue Discovery and Matching Engine
// Copyright 2026 FitScout Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/fitscout/fitscout

package match

import (
	"sort"

	"github.com/fitscout/fitscout/internal/models"
)

// Algorithm labels reported in recommendation responses.
const (
	AlgorithmHybrid        = "hybrid"
	AlgorithmContentBased  = "content-based"
	AlgorithmCollaborative = "collaborative"
	AlgorithmPopularity    = "popularity-based"
	AlgorithmTrending      = "trending"
)

// RecommendRequest asks for venue recommendations. All fields are
// optional; with nothing set the result is a pure popularity ranking.
type RecommendRequest struct {
	// ArchetypeID selects a built-in preference profile. Unknown ids
	// fall back to collaborative/popularity-only scoring, never an
	// error.
	ArchetypeID string `json:"archetype_id,omitempty"`

	// Preferences is an ad-hoc category list used to synthesize a
	// profile when no archetype is given.
	Preferences []string `json:"preferences,omitempty"`

	// Hard filters applied before scoring.
	Category string  `json:"category,omitempty"`
	City     string  `json:"city,omitempty"`
	MaxPrice float64 `json:"max_price,omitempty"`

	Limit int `json:"limit,omitempty"`
}

// RecommendResult is a ranked recommendation list with its explanation
// and the algorithm label that produced it.
type RecommendResult struct {
	Venues      []models.ScoredVenue `json:"venues"`
	Explanation string               `json:"explanation"`
	Algorithm   string               `json:"algorithm"`
	Confidence  float64              `json:"confidence"`
}

// Recommend ranks the catalog for the given request by blending
// content, collaborative, and popularity scores.
func (e *Engine) Recommend(req RecommendRequest) RecommendResult {
	limit := e.normalizeLimit(req.Limit)

	var profile *models.UserProfile
	if req.ArchetypeID != "" {
		if p, ok := ArchetypeProfile(req.ArchetypeID); ok {
			profile = &p
		}
	} else if len(req.Preferences) > 0 {
		p := synthesizeProfile(req.Preferences, req.MaxPrice)
		profile = &p
	}

	scored := make([]models.ScoredVenue, 0, 8)
	for _, v := range e.catalog.All() {
		if req.Category != "" && v.Category != req.Category {
			continue
		}
		if req.City != "" && v.City != req.City {
			continue
		}
		if req.MaxPrice > 0 && v.WeeklyPrice > req.MaxPrice {
			continue
		}

		sv := models.ScoredVenue{Venue: v}
		if profile != nil {
			sv.ContentScore = ContentScore(v, *profile)
		}
		sv.CollaborativeScore = CollaborativeScore(v, req.ArchetypeID)
		sv.PopularityScore = PopularityScore(v)
		sv.FinalScore = e.cfg.ContentWeight*sv.ContentScore +
			e.cfg.CollaborativeWeight*sv.CollaborativeScore +
			e.cfg.PopularityWeight*sv.PopularityScore

		scored = append(scored, sv)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].FinalScore > scored[j].FinalScore
	})
	if len(scored) > limit {
		scored = scored[:limit]
	}

	algorithm := classifyAlgorithm(req.ArchetypeID != "", profile != nil)
	confidence := recommendConfidence(scored)

	e.logger.Debug().
		Str("algorithm", algorithm).
		Str("archetype", req.ArchetypeID).
		Int("returned", len(scored)).
		Float64("confidence", confidence).
		Msg("recommendations")

	return RecommendResult{
		Venues:      scored,
		Explanation: recommendExplanation(scored, algorithm, profile, req.ArchetypeID),
		Algorithm:   algorithm,
		Confidence:  confidence,
	}
}

// Personalized recommends venues for one of the built-in archetypes.
func (e *Engine) Personalized(archetypeID string, limit int) RecommendResult {
	return e.Recommend(RecommendRequest{ArchetypeID: archetypeID, Limit: limit})
}

// Trending ranks venues purely by popularity score, bypassing profile
// and collaborative scoring entirely.
func (e *Engine) Trending(limit int) RecommendResult {
	limit = e.normalizeLimit(limit)

	scored := make([]models.ScoredVenue, 0, 8)
	for _, v := range e.catalog.All() {
		scored = append(scored, models.ScoredVenue{Venue: v, FinalScore: PopularityScore(v)})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].FinalScore > scored[j].FinalScore
	})
	if len(scored) > limit {
		scored = scored[:limit]
	}

	return RecommendResult{
		Venues:      scored,
		Explanation: trendingExplanation(limit),
		Algorithm:   AlgorithmTrending,
		Confidence:  0.85,
	}
}

// classifyAlgorithm labels the scoring mix that was actually used.
// The collaborative-only branch is reachable only with an archetype id
// that fails profile lookup, which the built-in table never produces
// for valid ids; it is kept for robustness against arbitrary input.
func classifyAlgorithm(hasArchetype, hasProfile bool) string {
	switch {
	case hasProfile && !hasArchetype:
		return AlgorithmContentBased
	case hasArchetype && !hasProfile:
		return AlgorithmCollaborative
	case hasArchetype && hasProfile:
		return AlgorithmHybrid
	default:
		return AlgorithmPopularity
	}
}

// recommendConfidence normalizes the page's average final score into
// [0, 1]. An empty page has zero confidence.
func recommendConfidence(page []models.ScoredVenue) float64 {
	if len(page) == 0 {
		return 0
	}
	var sum float64
	for _, sv := range page {
		sum += sv.FinalScore
	}
	avg := sum / float64(len(page))
	return roundConfidence(minFloat(avg/50, 1))
}
