// FitScout - Fitness Venue Discovery and Matching Engine
// Copyright 2026 FitScout Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/fitscout/fitscout

package match

// knowledgeEntry pairs a vocabulary keyword with its canned reply text.
// Entries are ordered slices, not maps: keyword extraction and the
// "first matching keyword" selection in the chat ladder depend on a
// stable scan order.
type knowledgeEntry struct {
	key  string
	text string
}

// categoryKnowledge covers venue categories.
var categoryKnowledge = []knowledgeEntry{
	{"gym", "Gyms offer strength training, cardio equipment, and group fitness classes. Perfect for building muscle, losing weight, and general fitness."},
	{"yoga", "Yoga focuses on flexibility, balance, and mindfulness. Great for stress relief, improving posture, and mental wellness."},
	{"pilates", "Pilates strengthens core muscles, improves posture, and enhances flexibility. Ideal for rehabilitation and body awareness."},
	{"crossfit", "CrossFit combines weightlifting, cardio, and functional movements. High-intensity workouts for building strength and endurance."},
	{"boxing", "Boxing provides excellent cardio, stress relief, and self-defense skills. Great for building confidence and physical fitness."},
	{"swimming", "Swimming is low-impact, full-body exercise. Perfect for rehabilitation, cardiovascular health, and stress relief."},
	{"dance", "Dance combines fitness with creativity and fun. Great for coordination, cardiovascular health, and social interaction."},
	{"martial arts", "Martial arts improve discipline, self-defense, and physical fitness. Great for building confidence and mental focus."},
}

// serviceKnowledge covers venue services and amenities.
var serviceKnowledge = []knowledgeEntry{
	{"personal training", "Personal training provides one-on-one guidance, customized workouts, and motivation to help you achieve your fitness goals."},
	{"group classes", "Group classes offer structured workouts with instructor guidance and the motivation of working out with others."},
	{"sauna", "Saunas help with relaxation, muscle recovery, and detoxification. Great for post-workout recovery."},
	{"parking", "Convenient parking makes it easier to maintain a consistent workout routine."},
	{"24/7 access", "24/7 access allows you to work out anytime that fits your schedule, providing maximum flexibility."},
	{"nutrition coaching", "Nutrition coaching helps you fuel your body properly to support your fitness goals."},
	{"physiotherapy", "Physiotherapy helps with injury prevention, rehabilitation, and movement optimization."},
}

// vibeKnowledge covers venue atmosphere labels.
var vibeKnowledge = []knowledgeEntry{
	{"performance & intensity", "High-energy environments focused on pushing limits and achieving peak performance."},
	{"calm & wellness", "Peaceful, mindful environments focused on mental and physical wellness."},
	{"community & support", "Welcoming, supportive communities that encourage and motivate each other."},
	{"modern & tech-forward", "Cutting-edge facilities with the latest technology and equipment."},
	{"flexibility & lifestyle", "Adaptable environments that fit into your lifestyle and schedule."},
}

// generalKnowledge covers broad fitness topics.
var generalKnowledge = []knowledgeEntry{
	{"budget", "Budget-friendly options typically range from $15-40 per week, offering basic equipment and group classes."},
	{"premium", "Premium facilities cost $50+ per week and offer luxury amenities, personal training, and top-tier equipment."},
	{"beginner", "Beginner-friendly venues offer introductory classes, patient instructors, and supportive environments."},
	{"advanced", "Advanced facilities cater to experienced athletes with challenging workouts and specialized equipment."},
	{"location", "Consider proximity to home or work, parking availability, and public transport access."},
	{"schedule", "Look for facilities with hours that match your availability, including early morning, evening, or weekend options."},
}

// lookup returns the canned text for a key, if present.
func lookup(entries []knowledgeEntry, key string) (string, bool) {
	for _, e := range entries {
		if e.key == key {
			return e.text, true
		}
	}
	return "", false
}

// firstKnown returns the first keyword that belongs to the vocabulary,
// preserving extraction order.
func firstKnown(keywords []string, entries []knowledgeEntry) (string, bool) {
	for _, kw := range keywords {
		if _, ok := lookup(entries, kw); ok {
			return kw, true
		}
	}
	return "", false
}
