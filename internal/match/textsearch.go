// FitScout - Fitness Venue Discovery and Matching Engine
// Copyright 2026 FitScout Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/fitscout/fitscout

package match

import (
	"sort"

	"github.com/fitscout/fitscout/internal/models"
)

// SearchResult is one page of free-text search results.
type SearchResult struct {
	Venues      []models.ScoredVenue `json:"venues"`
	Explanation string               `json:"explanation"`
	NextCursor  string               `json:"next_cursor,omitempty"`
	HasMore     bool                 `json:"has_more"`
}

// Search ranks the catalog against a free-text query and returns one
// page. Venues scoring zero are dropped; ties keep catalog order so
// identical queries paginate identically.
func (e *Engine) Search(query, cursor string, limit int) SearchResult {
	limit = e.normalizeLimit(limit)

	scored := make([]models.ScoredVenue, 0, 8)
	for _, v := range e.catalog.All() {
		score := RelevanceScore(query, v)
		if score > 0 {
			scored = append(scored, models.ScoredVenue{Venue: v, RelevanceScore: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].RelevanceScore > scored[j].RelevanceScore
	})

	page, nextCursor, hasMore := paginateScored(scored, cursor, limit)

	e.logger.Debug().
		Str("query", query).
		Int("matched", len(scored)).
		Int("returned", len(page)).
		Bool("has_more", hasMore).
		Msg("free-text search")

	return SearchResult{
		Venues:      page,
		Explanation: searchExplanation(query, page),
		NextCursor:  nextCursor,
		HasMore:     hasMore,
	}
}
