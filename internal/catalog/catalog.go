// FitScout - Fitness Venue Discovery and Matching Engine
// Copyright 2026 FitScout Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/fitscout/fitscout

// Package catalog provides read-only access to the venue catalog.
//
// The catalog is an in-memory table fixed at startup. Accessors return
// copies of the backing slice header, never the backing array itself,
// so callers may reorder results freely; concurrent reads are safe
// without locking.
package catalog

import (
	"strings"

	"github.com/fitscout/fitscout/internal/models"
)

// Catalog is the venue store queried by the matching engine and the
// venue listing endpoints.
type Catalog struct {
	venues []models.Venue
	byID   map[string]*models.Venue
}

// New returns a catalog backed by the built-in venue table.
func New() *Catalog {
	return newFromVenues(seedVenues)
}

// NewWithVenues returns a catalog over the given venues, preserving
// their order. Intended for tests.
func NewWithVenues(venues []models.Venue) *Catalog {
	return newFromVenues(venues)
}

func newFromVenues(venues []models.Venue) *Catalog {
	byID := make(map[string]*models.Venue, len(venues))
	for i := range venues {
		byID[venues[i].ID] = &venues[i]
	}
	return &Catalog{venues: venues, byID: byID}
}

// All returns every venue in catalog order.
func (c *Catalog) All() []models.Venue {
	out := make([]models.Venue, len(c.venues))
	copy(out, c.venues)
	return out
}

// Len returns the number of venues in the catalog.
func (c *Catalog) Len() int {
	return len(c.venues)
}

// ByID returns the venue with the given id, or false if none exists.
func (c *Catalog) ByID(id string) (models.Venue, bool) {
	if v, ok := c.byID[id]; ok {
		return *v, true
	}
	return models.Venue{}, false
}

// Categories returns the known category filter options, "All" first.
func (c *Catalog) Categories() []string {
	out := make([]string, len(seedCategories))
	copy(out, seedCategories)
	return out
}

// Vibes returns the known vibe filter options, "All" first.
func (c *Catalog) Vibes() []string {
	out := make([]string, len(seedVibes))
	copy(out, seedVibes)
	return out
}

// Cities returns the known city filter options, "All" first.
func (c *Catalog) Cities() []string {
	out := make([]string, len(seedCities))
	copy(out, seedCities)
	return out
}

// FilterOptions bundles the available filter values for clients
// building search UIs.
type FilterOptions struct {
	Categories []string `json:"categories"`
	Vibes      []string `json:"vibes"`
	Cities     []string `json:"cities"`
}

// Options returns all filter option lists in one call.
func (c *Catalog) Options() FilterOptions {
	return FilterOptions{
		Categories: c.Categories(),
		Vibes:      c.Vibes(),
		Cities:     c.Cities(),
	}
}

// FilterQuery narrows the venue listing. Zero values mean "no
// constraint". Plural fields win over their singular counterpart when
// both are set; the singular fields also treat the literal "All" as
// unset.
type FilterQuery struct {
	Search string

	Category   string
	Categories []string

	Vibe  string
	Vibes []string

	City   string
	Cities []string

	PriceMin *float64
	PriceMax *float64

	// Services must all be present on a venue (exact match).
	Services []string

	// MinRating keeps venues rated at or above the threshold.
	MinRating *float64

	HasParking          bool
	Has24HourAccess     bool
	HasSauna            bool
	HasPersonalTraining bool
}

// Filter returns the venues matching the query, in catalog order.
func (c *Catalog) Filter(q FilterQuery) []models.Venue {
	results := c.All()

	if q.Search != "" {
		term := strings.ToLower(q.Search)
		results = keep(results, func(v models.Venue) bool {
			return strings.Contains(strings.ToLower(v.Name), term) ||
				strings.Contains(strings.ToLower(v.Location), term) ||
				strings.Contains(strings.ToLower(v.Category), term) ||
				anyContains(v.Services, term) ||
				strings.Contains(strings.ToLower(v.Description), term)
		})
	}

	switch {
	case len(q.Categories) > 0:
		results = keep(results, func(v models.Venue) bool {
			return contains(q.Categories, v.Category)
		})
	case q.Category != "" && q.Category != "All":
		results = keep(results, func(v models.Venue) bool {
			return v.Category == q.Category
		})
	}

	switch {
	case len(q.Vibes) > 0:
		results = keep(results, func(v models.Venue) bool {
			return contains(q.Vibes, v.Vibe)
		})
	case q.Vibe != "" && q.Vibe != "All":
		results = keep(results, func(v models.Venue) bool {
			return v.Vibe == q.Vibe
		})
	}

	switch {
	case len(q.Cities) > 0:
		results = keep(results, func(v models.Venue) bool {
			return contains(q.Cities, v.City)
		})
	case q.City != "" && q.City != "All":
		results = keep(results, func(v models.Venue) bool {
			return v.City == q.City
		})
	}

	if q.PriceMin != nil {
		results = keep(results, func(v models.Venue) bool {
			return v.WeeklyPrice >= *q.PriceMin
		})
	}
	if q.PriceMax != nil {
		results = keep(results, func(v models.Venue) bool {
			return v.WeeklyPrice <= *q.PriceMax
		})
	}

	if len(q.Services) > 0 {
		results = keep(results, func(v models.Venue) bool {
			for _, s := range q.Services {
				if !contains(v.Services, s) {
					return false
				}
			}
			return true
		})
	}

	if q.MinRating != nil {
		results = keep(results, func(v models.Venue) bool {
			return v.Rating >= *q.MinRating
		})
	}

	if q.HasParking {
		results = keep(results, func(v models.Venue) bool {
			return contains(v.Services, "Parking")
		})
	}
	if q.Has24HourAccess {
		results = keep(results, func(v models.Venue) bool {
			return contains(v.Services, "24/7 Access")
		})
	}
	if q.HasSauna {
		results = keep(results, func(v models.Venue) bool {
			return contains(v.Services, "Sauna")
		})
	}
	if q.HasPersonalTraining {
		results = keep(results, func(v models.Venue) bool {
			return contains(v.Services, "Personal Training")
		})
	}

	return results
}

func keep(venues []models.Venue, pred func(models.Venue) bool) []models.Venue {
	out := venues[:0:0]
	for _, v := range venues {
		if pred(v) {
			out = append(out, v)
		}
	}
	return out
}

func contains(list []string, target string) bool {
	for _, s := range list {
		if s == target {
			return true
		}
	}
	return false
}

func anyContains(list []string, lowered string) bool {
	for _, s := range list {
		if strings.Contains(strings.ToLower(s), lowered) {
			return true
		}
	}
	return false
}
