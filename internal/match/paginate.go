// FitScout - Fitness Venue Discovery and Matching Engine
// Copyright 2026 FitScout Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/fitscout/fitscout

package match

import (
	"github.com/fitscout/fitscout/internal/models"
)

// PaginateFunc applies cursor pagination over an already-sorted
// sequence. The cursor is the id of the last item the caller has seen;
// the page starts immediately after it. An unknown cursor silently
// restarts from the beginning, which tolerates stale cursors when the
// result set changed between requests.
//
// nextCursor is the id of the page's last item and is set only when
// more items follow.
func PaginateFunc[T any](items []T, id func(T) string, cursor string, limit int) (page []T, nextCursor string, hasMore bool) {
	startIndex := 0
	if cursor != "" {
		for i := range items {
			if id(items[i]) == cursor {
				startIndex = i + 1
				break
			}
		}
	}

	end := startIndex + limit
	if end > len(items) {
		end = len(items)
	}
	page = items[startIndex:end]

	hasMore = startIndex+len(page) < len(items)
	if hasMore && len(page) > 0 {
		nextCursor = id(page[len(page)-1])
	}
	return page, nextCursor, hasMore
}

// paginateScored is PaginateFunc specialized to scored venues.
func paginateScored(items []models.ScoredVenue, cursor string, limit int) ([]models.ScoredVenue, string, bool) {
	return PaginateFunc(items, func(sv models.ScoredVenue) string { return sv.ID }, cursor, limit)
}

// PaginateVenues applies cursor pagination to a plain venue list, used
// by the catalog listing endpoint.
func PaginateVenues(items []models.Venue, cursor string, limit int) ([]models.Venue, string, bool) {
	return PaginateFunc(items, func(v models.Venue) string { return v.ID }, cursor, limit)
}
