// Package ai holds the keyword heuristics used to pre-fill issue reports and
// to summarize resident mood, plus the voice transcript parser. The
// heuristics are deterministic and side-effect free so a real model can
// replace them behind the same interfaces without touching callers.
package ai

import (
	"strings"

	"hostelhub-backend/models"
)

// Suggestion is a non-authoritative category/priority guess for a report.
type Suggestion struct {
	Category   models.IssueCategory `json:"category"`
	Priority   models.IssuePriority `json:"priority"`
	Confidence int                  `json:"confidence"`
}

// Categorizer guesses a category and priority from free text.
type Categorizer interface {
	Categorize(title, description string) Suggestion
}

type categoryEntry struct {
	category models.IssueCategory
	keywords []string
}

// The table is ordered: a later category must strictly beat the current best
// score to win, so ties resolve to the earlier entry.
var categoryKeywords = []categoryEntry{
	{models.Plumbing, []string{
		"water", "leak", "pipe", "drain", "flush", "tap", "faucet", "shower",
		"toilet", "sink", "bathroom", "washroom", "dripping", "clogged", "overflow",
	}},
	{models.Electrical, []string{
		"light", "power", "electricity", "switch", "socket", "outlet", "fan",
		"ac", "air conditioning", "bulb", "wire", "short circuit", "voltage",
		"electrical", "charging", "plug",
	}},
	{models.Cleanliness, []string{
		"dirty", "clean", "garbage", "trash", "smell", "odor", "mess", "dustbin",
		"sweep", "mop", "hygiene", "sanitation", "pest", "cockroach", "rat",
		"mosquito", "waste", "litter",
	}},
	{models.Internet, []string{
		"wifi", "internet", "network", "connection", "router", "slow", "speed",
		"lan", "ethernet", "broadband", "connectivity", "online", "offline",
	}},
	{models.Furniture, []string{
		"chair", "table", "bed", "desk", "cupboard", "wardrobe", "door", "window",
		"broken", "damaged", "furniture", "hinge", "lock", "drawer", "shelf",
	}},
	{models.Security, []string{
		"theft", "stolen", "stranger", "intruder", "security", "suspicious",
		"unsafe", "harassment", "trespass",
	}},
}

type priorityEntry struct {
	priority models.IssuePriority
	keywords []string
}

// Checked in order: EMERGENCY keywords win over HIGH, which win over the
// MEDIUM default.
var priorityKeywords = []priorityEntry{
	{models.EmergencyPriority, []string{
		"emergency", "urgent", "critical", "immediate", "danger", "fire", "flood",
		"electrical shock", "gas leak", "broken glass", "injury",
	}},
	{models.HighPriority, []string{
		"important", "serious", "major", "severe", "bad", "terrible", "awful",
		"completely broken", "not working at all",
	}},
	{models.MediumPriority, []string{
		"moderate", "needs attention", "should fix", "problem", "issue",
	}},
}

// KeywordCategorizer is the default keyword-scoring Categorizer.
type KeywordCategorizer struct{}

func (KeywordCategorizer) Categorize(title, description string) Suggestion {
	return AutoCategorize(title, description)
}

// AutoCategorize scores each category by keyword hits in title+description,
// picks a priority by first keyword match, and derives a bounded confidence.
func AutoCategorize(title, description string) Suggestion {
	text := strings.ToLower(title + " " + description)

	bestCategory := models.OtherIssue
	bestScore := 0

	for _, entry := range categoryKeywords {
		score := 0
		for _, keyword := range entry.keywords {
			if strings.Contains(text, keyword) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			bestCategory = entry.category
		}
	}

	priority := models.MediumPriority
	for _, entry := range priorityKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(text, keyword) {
				priority = entry.priority
				break
			}
		}
		if priority != models.MediumPriority {
			break
		}
	}

	// Nothing matched at all: not enough signal for a standard priority
	if priority == models.MediumPriority && bestScore == 0 {
		priority = models.LowPriority
	}

	confidence := bestScore
	if priority != models.MediumPriority {
		confidence += 20
	}
	confidence *= 10
	if confidence > 100 {
		confidence = 100
	}

	return Suggestion{
		Category:   bestCategory,
		Priority:   priority,
		Confidence: confidence,
	}
}

// SuggestCategories lists every category with at least one keyword hit,
// falling back to OTHER when nothing matches.
func SuggestCategories(text string) []models.IssueCategory {
	lowerText := strings.ToLower(text)
	var suggestions []models.IssueCategory

	for _, entry := range categoryKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(lowerText, keyword) {
				suggestions = append(suggestions, entry.category)
				break
			}
		}
	}

	if len(suggestions) == 0 {
		return []models.IssueCategory{models.OtherIssue}
	}
	return suggestions
}
