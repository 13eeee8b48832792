// FitScout - Fitness Venue Discovery and Matching Engine
// Copyright 2026 FitScout Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/fitscout/fitscout

package match

import (
	"fmt"
	"math"
	"strings"

	"github.com/fitscout/fitscout/internal/models"
)

// searchExplanation summarizes one page of free-text search results.
func searchExplanation(query string, page []models.ScoredVenue) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d fitness venues matching %q. ", len(page), query)

	writeCategorySentence(&b, page, "All venues are %s facilities. ", "Venues include %s. ")

	cities := distinctCities(page)
	if len(cities) == 1 {
		fmt.Fprintf(&b, "All located in %s. ", cities[0])
	} else if len(cities) > 1 {
		fmt.Fprintf(&b, "Located in %s. ", strings.Join(cities, ", "))
	}

	if len(page) > 0 {
		top := page[0]
		fmt.Fprintf(&b, "Top recommendation: %s in %s, %s - %s",
			top.Name, top.Location, top.City, top.Description)
	}

	return b.String()
}

// recommendExplanation summarizes a recommendation page, naming the
// algorithm and, when known, the archetype and preferred activities.
func recommendExplanation(page []models.ScoredVenue, algorithm string, profile *models.UserProfile, archetypeID string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Recommended %d fitness venues using %s. ", len(page), algorithm)

	if archetypeID != "" {
		if _, ok := ArchetypeProfile(archetypeID); ok {
			fmt.Fprintf(&b, "Based on your %s profile, ", strings.ReplaceAll(archetypeID, "_", " "))
		}
	}

	if profile != nil && len(profile.PreferredCategories) > 0 {
		fmt.Fprintf(&b, "focusing on %s activities. ", strings.Join(profile.PreferredCategories, ", "))
	}

	writeCategorySentence(&b, page, "All recommendations are %s facilities. ", "Recommendations include %s. ")

	if len(page) > 0 {
		var sum float64
		for _, sv := range page {
			sum += sv.WeeklyPrice
		}
		avg := sum / float64(len(page))
		fmt.Fprintf(&b, "Average price: $%d/month. ", int(math.Round(avg)))

		top := page[0]
		fmt.Fprintf(&b, "Top pick: %s - %s", top.Name, top.Description)
	}

	return b.String()
}

// trendingExplanation describes a trending page. The limit is the
// requested page size, not the returned count, matching client copy.
func trendingExplanation(limit int) string {
	return fmt.Sprintf("Top %d trending fitness venues based on popularity and ratings.", limit)
}

// writeCategorySentence appends the shared singular/plural category
// sentence used by both explanation styles.
func writeCategorySentence(b *strings.Builder, page []models.ScoredVenue, singular, plural string) {
	categories := distinctCategories(page)
	if len(categories) == 1 {
		fmt.Fprintf(b, singular, categories[0])
	} else if len(categories) > 1 {
		fmt.Fprintf(b, plural, strings.Join(categories, ", "))
	}
}

// distinctCategories returns unique categories in first-seen order.
func distinctCategories(page []models.ScoredVenue) []string {
	return distinct(page, func(sv models.ScoredVenue) string { return sv.Category })
}

// distinctCities returns unique cities in first-seen order.
func distinctCities(page []models.ScoredVenue) []string {
	return distinct(page, func(sv models.ScoredVenue) string { return sv.City })
}

func distinct(page []models.ScoredVenue, key func(models.ScoredVenue) string) []string {
	seen := make(map[string]bool, len(page))
	var out []string
	for _, sv := range page {
		k := key(sv)
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	return out
}
