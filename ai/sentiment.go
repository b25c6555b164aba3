package ai

import (
	"math"
	"sort"
	"strings"
)

// IssueSample is the slice of an issue the sentiment classifier looks at.
type IssueSample struct {
	Title       string
	Description string
	Category    string
}

// SentimentReport summarizes resident mood over a set of recent issues.
type SentimentReport struct {
	Overall            string             `json:"overall"`
	Score              int                `json:"score"`
	TotalIssues        int                `json:"totalIssues"`
	SentimentBreakdown SentimentBreakdown `json:"sentimentBreakdown"`
	TopConcerns        []string           `json:"topConcerns"`
}

type SentimentBreakdown struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

var negativeKeywords = []string{
	"broken", "not working", "urgent", "emergency", "bad", "terrible", "worst",
	"issue", "problem",
}

var positiveKeywords = []string{
	"fixed", "resolved", "good", "great", "excellent", "working", "clean",
}

// AnalyzeSentiment classifies each issue by comparing positive vs negative
// keyword hits in title+description, ties landing on neutral. The overall
// mood flips only when one side passes 50% of the sample.
func AnalyzeSentiment(issues []IssueSample) SentimentReport {
	var positive, negative, neutral int
	categoryCounts := map[string]int{}
	categoryOrder := []string{}

	for _, issue := range issues {
		text := strings.ToLower(issue.Title + " " + issue.Description)

		if _, seen := categoryCounts[issue.Category]; !seen {
			categoryOrder = append(categoryOrder, issue.Category)
		}
		categoryCounts[issue.Category]++

		negScore := countHits(text, negativeKeywords)
		posScore := countHits(text, positiveKeywords)

		switch {
		case posScore > negScore:
			positive++
		case negScore > posScore:
			negative++
		default:
			neutral++
		}
	}

	total := len(issues)
	divisor := total
	if divisor == 0 {
		divisor = 1
	}

	positivePercent := float64(positive) / float64(divisor) * 100
	negativePercent := float64(negative) / float64(divisor) * 100

	overall := "neutral"
	if positivePercent > 50 {
		overall = "positive"
	} else if negativePercent > 50 {
		overall = "negative"
	}

	// Frequency descending, first-seen order breaking ties
	sort.SliceStable(categoryOrder, func(i, j int) bool {
		return categoryCounts[categoryOrder[i]] > categoryCounts[categoryOrder[j]]
	})
	topConcerns := categoryOrder
	if len(topConcerns) > 5 {
		topConcerns = topConcerns[:5]
	}

	return SentimentReport{
		Overall:     overall,
		Score:       int(math.Round(positivePercent)),
		TotalIssues: total,
		SentimentBreakdown: SentimentBreakdown{
			Positive: int(math.Round(float64(positive) / float64(divisor) * 100)),
			Neutral:  int(math.Round(float64(neutral) / float64(divisor) * 100)),
			Negative: int(math.Round(float64(negative) / float64(divisor) * 100)),
		},
		TopConcerns: topConcerns,
	}
}

func countHits(text string, keywords []string) int {
	count := 0
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			count++
		}
	}
	return count
}
