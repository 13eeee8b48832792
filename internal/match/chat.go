// FitScout - Fitness Venue Discovery and Matching Engine
// Copyright 2026 FitScout Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/fitscout/fitscout

package match

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fitscout/fitscout/internal/models"
)

// ChatResult is the assistant's reply to one conversational turn.
type ChatResult struct {
	Response      string               `json:"response"`
	Suggestions   []string             `json:"suggestions"`
	RelatedVenues []models.ScoredVenue `json:"related_venues"`
	Confidence    float64              `json:"confidence"`
}

const (
	greetingReply = "Hello! I'm your Fitness Assistant. I can help you find the perfect fitness venue based on your preferences, goals, and needs. What are you looking for?"

	helpReply = "I can help you with:\n• Finding fitness venues by category, location, or services\n• Explaining different types of workouts and their benefits\n• Recommending venues based on your budget and preferences\n• Answering questions about fitness facilities and amenities\n\nWhat would you like to know?"

	clarifyReply = "I'd be happy to help you find the perfect fitness venue! Could you tell me more about what you're looking for? For example:\n• What type of workout interests you?\n• What's your budget range?\n• Do you prefer group classes or personal training?\n• Any specific location preferences?"
)

// Chat answers one user message: extract keywords, find related
// venues, walk the reply ladder, and pick follow-up suggestions.
//
// Matching is substring containment over the lower-cased message, so a
// message containing "this" triggers the "hi" greeting branch. That
// quirk is part of the frozen matching semantics.
func (e *Engine) Chat(message string) ChatResult {
	keywords := extractKeywords(message)
	related := e.relatedVenues(keywords)

	response, related := buildChatResponse(message, keywords, related)
	suggestions := chatSuggestions(keywords)

	confidence := roundConfidence(minFloat(
		0.2*float64(len(keywords))+0.1*float64(len(related)), 1))

	e.logger.Debug().
		Int("keywords", len(keywords)).
		Int("related_venues", len(related)).
		Float64("confidence", confidence).
		Msg("chat turn")

	return ChatResult{
		Response:      response,
		Suggestions:   suggestions,
		RelatedVenues: related,
		Confidence:    confidence,
	}
}

// extractKeywords collects every vocabulary entry appearing as a
// substring of the lower-cased message, in vocabulary scan order.
func extractKeywords(message string) []string {
	lower := strings.ToLower(message)
	var keywords []string

	for _, vocab := range [][]knowledgeEntry{
		categoryKnowledge, serviceKnowledge, vibeKnowledge, generalKnowledge,
	} {
		for _, entry := range vocab {
			if strings.Contains(lower, entry.key) {
				keywords = append(keywords, entry.key)
			}
		}
	}
	return keywords
}

// Per-keyword venue scoring weights for the conversation matcher.
const (
	chatWeightCategory    = 10
	chatWeightService     = 5
	chatWeightVibe        = 3
	chatWeightDescription = 2
	chatWeightFeature     = 2
)

// relatedVenues scores every venue against the keyword set and returns
// the top venues with positive scores, capped by ChatRelatedLimit.
func (e *Engine) relatedVenues(keywords []string) []models.ScoredVenue {
	if len(keywords) == 0 {
		return nil
	}

	scored := make([]models.ScoredVenue, 0, 8)
	for _, v := range e.catalog.All() {
		var score float64
		for _, kw := range keywords {
			if strings.Contains(strings.ToLower(v.Category), kw) {
				score += chatWeightCategory
			}
			for _, s := range v.Services {
				if strings.Contains(strings.ToLower(s), kw) {
					score += chatWeightService
				}
			}
			if strings.Contains(strings.ToLower(v.Vibe), kw) {
				score += chatWeightVibe
			}
			if strings.Contains(strings.ToLower(v.Description), kw) {
				score += chatWeightDescription
			}
			for _, f := range v.Features {
				if strings.Contains(strings.ToLower(f), kw) {
					score += chatWeightFeature
				}
			}
		}
		if score > 0 {
			scored = append(scored, models.ScoredVenue{Venue: v, RelevanceScore: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].RelevanceScore > scored[j].RelevanceScore
	})

	if len(scored) > e.cfg.ChatRelatedLimit {
		scored = scored[:e.cfg.ChatRelatedLimit]
	}
	return scored
}

// buildChatResponse walks the reply ladder, first match wins. It
// returns the reply text together with the (possibly emptied) related
// venue list: the greeting and help branches never attach venues.
func buildChatResponse(message string, keywords []string, related []models.ScoredVenue) (string, []models.ScoredVenue) {
	lower := strings.ToLower(message)

	switch {
	case strings.Contains(lower, "hello") || strings.Contains(lower, "hi") || strings.Contains(lower, "hey"):
		return greetingReply, nil

	case strings.Contains(lower, "help") || strings.Contains(lower, "what can you do"):
		return helpReply, nil
	}

	if category, ok := firstKnown(keywords, categoryKnowledge); ok {
		text, _ := lookup(categoryKnowledge, category)
		var b strings.Builder
		b.WriteString(text)
		if len(related) > 0 {
			fmt.Fprintf(&b, "\n\nHere are some great %s venues I found:", category)
			for _, v := range related {
				fmt.Fprintf(&b, "\n• %s in %s - %s", v.Name, v.City, v.Description)
			}
		}
		return b.String(), related
	}

	if service, ok := firstKnown(keywords, serviceKnowledge); ok {
		text, _ := lookup(serviceKnowledge, service)
		var b strings.Builder
		b.WriteString(text)
		if len(related) > 0 {
			fmt.Fprintf(&b, "\n\nThese venues offer %s:", service)
			for _, v := range related {
				fmt.Fprintf(&b, "\n• %s in %s", v.Name, v.City)
			}
		}
		return b.String(), related
	}

	if topic, ok := firstKnown(keywords, generalKnowledge); ok {
		text, _ := lookup(generalKnowledge, topic)
		var b strings.Builder
		b.WriteString(text)
		if len(related) > 0 {
			b.WriteString("\n\nHere are some venues that might interest you:")
			for _, v := range related {
				fmt.Fprintf(&b, "\n• %s in %s - $%.0f/week", v.Name, v.City, v.WeeklyPrice)
			}
		}
		return b.String(), related
	}

	var b strings.Builder
	b.WriteString(clarifyReply)
	if len(related) > 0 {
		b.WriteString("\n\nBased on your message, here are some venues that might be relevant:")
		for _, v := range related {
			fmt.Fprintf(&b, "\n• %s in %s - %s", v.Name, v.City, v.Category)
		}
	}
	return b.String(), related
}

// Follow-up suggestion pools, keyed by which vocabulary matched.
var (
	suggestionsNoKeywords = []string{
		"What type of workout are you interested in?",
		"What's your budget range?",
		"Do you prefer group classes or personal training?",
		"Any specific location preferences?",
	}
	suggestionsCategory = []string{
		"What services are you looking for?",
		"What's your budget range?",
		"Any specific location preferences?",
	}
	suggestionsService = []string{
		"What type of workout interests you?",
		"What's your budget range?",
		"Any specific location preferences?",
	}
	suggestionsGeneral = []string{
		"What type of workout are you interested in?",
		"What services are you looking for?",
		"What's your budget range?",
	}
)

// chatSuggestions picks up to three follow-up questions matching the
// kind of keywords the message contained.
func chatSuggestions(keywords []string) []string {
	var pool []string
	switch {
	case len(keywords) == 0:
		pool = suggestionsNoKeywords
	case hasKnown(keywords, categoryKnowledge):
		pool = suggestionsCategory
	case hasKnown(keywords, serviceKnowledge):
		pool = suggestionsService
	default:
		pool = suggestionsGeneral
	}

	out := make([]string, 0, 3)
	for _, s := range pool {
		if len(out) == 3 {
			break
		}
		out = append(out, s)
	}
	return out
}

func hasKnown(keywords []string, entries []knowledgeEntry) bool {
	_, ok := firstKnown(keywords, entries)
	return ok
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
