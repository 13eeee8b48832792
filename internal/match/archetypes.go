// FitScout - Fitness Venue Discovery and Matching Engine
// Copyright 2026 FitScout Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/fitscout/fitscout

package match

import (
	"strings"

	"github.com/fitscout/fitscout/internal/models"
)

// archetypeProfiles are the built-in named preference profiles. They
// stand in for real user histories and are read-only.
var archetypeProfiles = map[string]models.UserProfile{
	"fitness_enthusiast": {
		PreferredCategories: []string{"Gym", "CrossFit", "Boxing"},
		PreferredServices:   []string{"Personal Training", "Group Classes", "24/7 Access"},
		PreferredFeatures:   []string{"High-Intensity", "Performance & Intensity"},
		PreferredVibes:      []string{"Performance & Intensity", "Community & Support"},
		PriceMin:            30,
		PriceMax:            80,
	},
	"wellness_seeker": {
		PreferredCategories: []string{"Yoga", "Pilates"},
		PreferredServices:   []string{"Sauna", "Spa Services", "Meditation Classes"},
		PreferredFeatures:   []string{"Calm & Wellness", "Flexibility & Lifestyle"},
		PreferredVibes:      []string{"Calm & Wellness", "Flexibility & Lifestyle"},
		PriceMin:            20,
		PriceMax:            60,
	},
	"budget_conscious": {
		PreferredCategories: []string{"Gym", "Swimming"},
		PreferredServices:   []string{"Basic Equipment", "Group Classes"},
		PreferredFeatures:   []string{"Affordable", "Community & Support"},
		PreferredVibes:      []string{"Community & Support"},
		PriceMin:            15,
		PriceMax:            40,
	},
	"tech_savvy": {
		PreferredCategories: []string{"Gym", "CrossFit"},
		PreferredServices:   []string{"Wearable Integration", "Virtual Classes", "24/7 Access"},
		PreferredFeatures:   []string{"Modern & Tech-Forward", "Performance & Intensity"},
		PreferredVibes:      []string{"Modern & Tech-Forward", "Performance & Intensity"},
		PriceMin:            40,
		PriceMax:            100,
	},
}

// archetypeAffinity is the static archetype-to-category affinity table
// behind the collaborative score. Values are multipliers in [0, 1];
// missing archetypes or categories contribute zero rather than erroring.
var archetypeAffinity = map[string]map[string]float64{
	"fitness_enthusiast": {"gym": 0.9, "crossfit": 0.8, "boxing": 0.7, "yoga": 0.3},
	"wellness_seeker":    {"yoga": 0.9, "pilates": 0.8, "gym": 0.4, "crossfit": 0.2},
	"budget_conscious":   {"gym": 0.8, "swimming": 0.7, "yoga": 0.6, "crossfit": 0.3},
	"tech_savvy":         {"gym": 0.9, "crossfit": 0.8, "yoga": 0.4, "pilates": 0.3},
}

// ArchetypeProfile returns the built-in profile for an archetype id.
func ArchetypeProfile(id string) (models.UserProfile, bool) {
	p, ok := archetypeProfiles[id]
	return p, ok
}

// ArchetypeIDs lists the known archetype ids. Order is unspecified.
func ArchetypeIDs() []string {
	ids := make([]string, 0, len(archetypeProfiles))
	for id := range archetypeProfiles {
		ids = append(ids, id)
	}
	return ids
}

// CollaborativeScore returns the simulated collaborative-filtering
// score: the archetype's affinity for the venue's category scaled by
// 20. The category key is the venue category lower-cased with all
// whitespace stripped.
func CollaborativeScore(v models.Venue, archetypeID string) float64 {
	if archetypeID == "" {
		return 0
	}
	behavior, ok := archetypeAffinity[archetypeID]
	if !ok {
		return 0
	}

	key := strings.Join(strings.Fields(strings.ToLower(v.Category)), "")
	return behavior[key] * 20
}

// preferenceExpansion maps an ad-hoc category preference to the
// services, features, and vibes it implies when synthesizing a profile.
var preferenceExpansion = map[string]struct {
	services []string
	features []string
	vibes    []string
}{
	"Gym": {
		services: []string{"Personal Training", "Group Classes", "24/7 Access"},
		features: []string{"High-Intensity", "Performance & Intensity"},
		vibes:    []string{"Performance & Intensity"},
	},
	"Yoga": {
		services: []string{"Meditation", "Workshops"},
		features: []string{"Calm & Wellness", "Flexibility & Lifestyle"},
		vibes:    []string{"Calm & Wellness"},
	},
	"Pilates": {
		services: []string{"Personal Training", "Physiotherapy"},
		features: []string{"Calm & Wellness", "Flexibility & Lifestyle"},
		vibes:    []string{"Calm & Wellness"},
	},
	"CrossFit": {
		services: []string{"Group Classes", "Personal Training", "Nutrition Coaching"},
		features: []string{"High-Intensity", "Performance & Intensity"},
		vibes:    []string{"Performance & Intensity", "Community & Support"},
	},
	"Boxing": {
		services: []string{"Group Classes", "Personal Training"},
		features: []string{"High-Intensity", "Performance & Intensity"},
		vibes:    []string{"Performance & Intensity"},
	},
}

// synthesizeProfile builds a profile from ad-hoc category preferences
// using the fixed expansion table. Unknown categories still count as
// preferred categories but expand to nothing. The price range is
// [0, maxPrice] when a cap was given, else [0, 100].
func synthesizeProfile(preferences []string, maxPrice float64) models.UserProfile {
	p := models.UserProfile{
		PreferredCategories: preferences,
		PriceMin:            0,
		PriceMax:            100,
	}
	if maxPrice > 0 {
		p.PriceMax = maxPrice
	}

	for _, pref := range preferences {
		exp, ok := preferenceExpansion[pref]
		if !ok {
			continue
		}
		p.PreferredServices = append(p.PreferredServices, exp.services...)
		p.PreferredFeatures = append(p.PreferredFeatures, exp.features...)
		p.PreferredVibes = append(p.PreferredVibes, exp.vibes...)
	}

	return p
}
