// FitScout - Fitness Venue Discovery and Matching Engine
// Copyright 2026 FitScout Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/fitscout/fitscout

package catalog

import (
	"github.com/fitscout/fitscout/internal/models"
)

// seedVenues is the built-in venue catalog. Order matters: it defines
// the stable tie-break order for every ranking operation, and cursor
// pagination walks it by position.
var seedVenues = []models.Venue{
	{
		ID:          "1",
		Name:        "Iron Temple Gym",
		Category:    "Gym",
		Location:    "Bondi Beach",
		Suburb:      "Bondi",
		City:        "Sydney",
		WeeklyPrice: 45,
		Services:    []string{"Personal Training", "Group Classes", "Sauna", "24/7 Access", "Parking", "Locker Rooms"},
		Vibe:        "Performance & Intensity",
		Rating:      4.8,
		Description: "Premium strength training facility with Olympic-grade equipment",
		Features:    []string{"Olympic Lifting Platform", "Cardio Zone", "Free Weights", "Functional Training Area"},
	},
	{
		ID:          "2",
		Name:        "Zen Flow Yoga Studio",
		Category:    "Yoga",
		Location:    "Byron Bay",
		Suburb:      "Byron Bay",
		City:        "Byron Bay",
		WeeklyPrice: 35,
		Services:    []string{"Group Classes", "Meditation", "Workshops", "Retreats", "Parking"},
		Vibe:        "Calm & Wellness",
		Rating:      4.9,
		Description: "Tranquil yoga sanctuary focusing on mindfulness and wellness",
		Features:    []string{"Heated Studios", "Meditation Garden", "Organic Tea Bar", "Eco-Friendly Materials"},
	},
	{
		ID:          "3",
		Name:        "FitTech Hub",
		Category:    "Gym",
		Location:    "Melbourne CBD",
		Suburb:      "Melbourne",
		City:        "Melbourne",
		WeeklyPrice: 55,
		Services:    []string{"Personal Training", "Group Classes", "Recovery Zone", "24/7 Access", "Parking", "Childcare"},
		Vibe:        "Modern & Tech-Forward",
		Rating:      4.7,
		Description: "Next-generation fitness facility with cutting-edge technology",
		Features:    []string{"AI Workout Planning", "Smart Equipment", "VR Fitness", "Biometric Tracking"},
	},
	{
		ID:          "4",
		Name:        "Community Crossfit",
		Category:    "CrossFit",
		Location:    "Surfers Paradise",
		Suburb:      "Surfers Paradise",
		City:        "Gold Coast",
		WeeklyPrice: 40,
		Services:    []string{"Group Classes", "Nutrition Coaching", "Personal Training", "Parking"},
		Vibe:        "Community & Support",
		Rating:      4.6,
		Description: "Supportive CrossFit community focused on functional fitness",
		Features:    []string{"Competition Rig", "Outdoor Training Area", "Nutrition Bar", "Recovery Zone"},
	},
	{
		ID:          "5",
		Name:        "Precision Pilates",
		Category:    "Pilates",
		Location:    "Toorak",
		Suburb:      "Toorak",
		City:        "Melbourne",
		WeeklyPrice: 50,
		Services:    []string{"Group Classes", "Physiotherapy", "Personal Training", "Parking"},
		Vibe:        "Calm & Wellness",
		Rating:      4.8,
		Description: "Premium Pilates studio with expert instructors and top equipment",
		Features:    []string{"Reformer Machines", "Private Sessions", "Physiotherapy", "Specialized Programs"},
	},
	{
		ID:          "6",
		Name:        "Strike Boxing Academy",
		Category:    "Boxing",
		Location:    "Newtown",
		Suburb:      "Newtown",
		City:        "Sydney",
		WeeklyPrice: 38,
		Services:    []string{"Group Classes", "Personal Training", "Locker Rooms", "Showers"},
		Vibe:        "Performance & Intensity",
		Rating:      4.5,
		Description: "Authentic boxing gym with professional training programs",
		Features:    []string{"Boxing Ring", "Heavy Bags", "Speed Bags", "Strength Training"},
	},
	{
		ID:          "7",
		Name:        "Aqua Life Swimming",
		Category:    "Swimming",
		Location:    "Manly",
		Suburb:      "Manly",
		City:        "Sydney",
		WeeklyPrice: 42,
		Services:    []string{"Swimming Pool", "Group Classes", "Personal Training", "Parking", "Childcare"},
		Vibe:        "Flexibility & Lifestyle",
		Rating:      4.4,
		Description: "State-of-the-art aquatic center with multiple pools and programs",
		Features:    []string{"Olympic Pool", "Hydrotherapy Pool", "Kids Pool", "Spa Facilities"},
	},
	{
		ID:          "8",
		Name:        "Rhythm Dance Studio",
		Category:    "Dance",
		Location:    "Fitzroy",
		Suburb:      "Fitzroy",
		City:        "Melbourne",
		WeeklyPrice: 32,
		Services:    []string{"Group Classes", "Personal Training", "Locker Rooms", "Parking"},
		Vibe:        "Community & Support",
		Rating:      4.7,
		Description: "Creative dance studio offering diverse styles for all levels",
		Features:    []string{"Sprung Floors", "Sound System", "Mirrors", "Performance Space"},
	},
}

// Filter option lists exposed to clients. The leading "All" entry is a
// UI convention carried through the API; filters treat "All" as no-op.
var (
	seedCategories = []string{
		"All", "Gym", "Yoga", "Pilates", "Boxing", "CrossFit", "Swimming", "Dance", "Martial Arts",
	}

	seedVibes = []string{
		"All",
		"Performance & Intensity",
		"Calm & Wellness",
		"Community & Support",
		"Modern & Tech-Forward",
		"Flexibility & Lifestyle",
	}

	seedCities = []string{
		"All", "Sydney", "Melbourne", "Brisbane", "Perth", "Adelaide", "Gold Coast", "Byron Bay",
	}
)
