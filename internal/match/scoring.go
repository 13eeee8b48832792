// FitScout - Fitness Venue Discovery and Matching Engine
// Copyright 2026 FitScout Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/fitscout/fitscout

package match

import (
	"math"
	"strings"

	"github.com/fitscout/fitscout/internal/models"
)

// Scoring weights for free-text relevance. Frozen for compatibility.
const (
	weightName        = 10
	weightDescription = 8
	weightCategory    = 6
	weightLocation    = 5
	weightVibe        = 4
	weightService     = 4
	weightFeature     = 3
	weightPriceIntent = 3
	weightSvcIntent   = 5
)

// budgetTerms and premiumTerms trigger price-intent bonuses when they
// appear anywhere in the query.
var (
	budgetTerms  = []string{"cheap", "budget", "affordable"}
	premiumTerms = []string{"expensive", "premium", "luxury"}
)

// serviceIntents maps query phrases to the exact service label they
// imply. Matching the phrase plus the service earns a bonus.
var serviceIntents = []struct {
	phrase  string
	service string
}{
	{"sauna", "Sauna"},
	{"24/7", "24/7 Access"},
	{"parking", "Parking"},
	{"personal training", "Personal Training"},
}

// matchTerm reports case-insensitive substring containment in either
// direction: a field matches when it contains the term or the term
// contains it. The second direction lets a multi-word query like
// "cheap yoga with sauna" match the Yoga category it embeds.
func matchTerm(term, field string) bool {
	field = strings.ToLower(field)
	return strings.Contains(field, term) || strings.Contains(term, field)
}

// RelevanceScore computes the free-text relevance of a venue for the
// whole query string. The entire query is used as a single term for
// every substring check; there is no tokenization. Scalar fields match
// in either containment direction; service and feature list entries
// match only when they contain the term.
func RelevanceScore(query string, v models.Venue) float64 {
	term := strings.ToLower(query)
	var score float64

	if matchTerm(term, v.Name) {
		score += weightName
	}
	if matchTerm(term, v.Description) {
		score += weightDescription
	}
	if matchTerm(term, v.Category) {
		score += weightCategory
	}
	for _, s := range v.Services {
		if strings.Contains(strings.ToLower(s), term) {
			score += weightService
		}
	}
	for _, f := range v.Features {
		if strings.Contains(strings.ToLower(f), term) {
			score += weightFeature
		}
	}
	if matchTerm(term, v.Location) || matchTerm(term, v.City) {
		score += weightLocation
	}
	if matchTerm(term, v.Vibe) {
		score += weightVibe
	}

	if containsAny(term, budgetTerms) && v.WeeklyPrice <= 40 {
		score += weightPriceIntent
	}
	if containsAny(term, premiumTerms) && v.WeeklyPrice >= 50 {
		score += weightPriceIntent
	}

	for _, intent := range serviceIntents {
		if strings.Contains(term, intent.phrase) && hasService(v, intent.service) {
			score += weightSvcIntent
		}
	}

	return score
}

// ContentScore computes profile-to-venue attribute similarity.
func ContentScore(v models.Venue, p models.UserProfile) float64 {
	var score float64

	if containsString(p.PreferredCategories, v.Category) {
		score += 15
	}
	for _, s := range p.PreferredServices {
		if containsString(v.Services, s) {
			score += 8
		}
	}
	for _, f := range p.PreferredFeatures {
		if containsString(v.Features, f) {
			score += 6
		}
	}
	if containsString(p.PreferredVibes, v.Vibe) {
		score += 10
	}

	// Inside the preferred price range earns the full bonus; outside it
	// the bonus decays linearly with distance to the nearer bound.
	if v.WeeklyPrice >= p.PriceMin && v.WeeklyPrice <= p.PriceMax {
		score += 12
	} else {
		distance := math.Min(
			math.Abs(v.WeeklyPrice-p.PriceMin),
			math.Abs(v.WeeklyPrice-p.PriceMax),
		)
		score += math.Max(0, 12-distance*0.5)
	}

	return score
}

// PopularityScore is a deterministic function of rating alone: the
// rating scaled by 5 plus a pseudo review-count bonus capped at 10.
func PopularityScore(v models.Venue) float64 {
	ratingScore := v.Rating * 5
	reviewScore := math.Min(math.Floor(v.Rating*20)/10, 10)
	return ratingScore + reviewScore
}

// roundConfidence rounds a confidence heuristic to 2 decimal places.
func roundConfidence(c float64) float64 {
	return math.Round(c*100) / 100
}

func containsAny(term string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(term, p) {
			return true
		}
	}
	return false
}

func containsString(list []string, target string) bool {
	for _, s := range list {
		if s == target {
			return true
		}
	}
	return false
}

func hasService(v models.Venue, service string) bool {
	return containsString(v.Services, service)
}
