// FitScout - Fitness Venue Discovery and Matching Engine
// Copyright 2026 FitScout Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/fitscout/fitscout

package match

import (
	"testing"

	"github.com/fitscout/fitscout/internal/models"
)

func testVenueList(ids ...string) []models.Venue {
	out := make([]models.Venue, len(ids))
	for i, id := range ids {
		out[i] = models.Venue{ID: id}
	}
	return out
}

func TestPaginateVenues(t *testing.T) {
	items := testVenueList("a", "b", "c", "d", "e")

	tests := []struct {
		name     string
		cursor   string
		limit    int
		wantIDs  []string
		wantNext string
		wantMore bool
	}{
		{"first page", "", 2, []string{"a", "b"}, "b", true},
		{"middle page", "b", 2, []string{"c", "d"}, "d", true},
		{"final page", "d", 2, []string{"e"}, "", false},
		{"cursor at last item", "e", 2, []string{}, "", false},
		{"unknown cursor restarts", "zzz", 2, []string{"a", "b"}, "b", true},
		{"limit covers everything", "", 10, []string{"a", "b", "c", "d", "e"}, "", false},
		{"exact fit has no more", "c", 2, []string{"d", "e"}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, next, more := PaginateVenues(items, tt.cursor, tt.limit)

			if len(page) != len(tt.wantIDs) {
				t.Fatalf("page length %d, want %d", len(page), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if page[i].ID != id {
					t.Errorf("page[%d].ID = %s, want %s", i, page[i].ID, id)
				}
			}
			if next != tt.wantNext {
				t.Errorf("nextCursor = %q, want %q", next, tt.wantNext)
			}
			if more != tt.wantMore {
				t.Errorf("hasMore = %v, want %v", more, tt.wantMore)
			}
		})
	}
}

func TestPaginateEmptyInput(t *testing.T) {
	page, next, more := PaginateVenues(nil, "", 5)
	if len(page) != 0 || next != "" || more {
		t.Errorf("empty input: page=%v next=%q more=%v", page, next, more)
	}
}

func TestPaginateRoundTripAllPageSizes(t *testing.T) {
	items := testVenueList("a", "b", "c", "d", "e", "f", "g")

	for k := 1; k <= len(items)+1; k++ {
		var collected []string
		cursor := ""
		for i := 0; i < 20; i++ {
			page, next, more := PaginateVenues(items, cursor, k)
			for _, v := range page {
				collected = append(collected, v.ID)
			}
			if !more {
				break
			}
			cursor = next
		}

		if len(collected) != len(items) {
			t.Fatalf("k=%d: collected %d items, want %d", k, len(collected), len(items))
		}
		for i, v := range items {
			if collected[i] != v.ID {
				t.Errorf("k=%d: position %d = %s, want %s", k, i, collected[i], v.ID)
			}
		}
	}
}
