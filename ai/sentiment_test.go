package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeSentiment_NegativeMajority(t *testing.T) {
	issues := []IssueSample{
		{Title: "Broken fan", Description: "terrible noise at night", Category: "ELECTRICAL"},
		{Title: "Urgent leak", Description: "the pipe is broken", Category: "PLUMBING"},
		{Title: "Wifi fixed", Description: "working great now", Category: "INTERNET"},
	}

	report := AnalyzeSentiment(issues)

	assert.Equal(t, "negative", report.Overall)
	assert.Equal(t, 3, report.TotalIssues)
	assert.Equal(t, 67, report.SentimentBreakdown.Negative)
	assert.Equal(t, 33, report.SentimentBreakdown.Positive)
	assert.Equal(t, 0, report.SentimentBreakdown.Neutral)
}

func TestAnalyzeSentiment_TieIsNeutral(t *testing.T) {
	issues := []IssueSample{
		{Title: "Broken light fixed", Description: "it is working again", Category: "ELECTRICAL"},
	}

	report := AnalyzeSentiment(issues)

	// one negative hit (broken) vs two positive (fixed, working): positive
	assert.Equal(t, 100, report.SentimentBreakdown.Positive)

	tied := []IssueSample{
		{Title: "Room report", Description: "nothing special", Category: "OTHER"},
	}
	tiedReport := AnalyzeSentiment(tied)
	assert.Equal(t, "neutral", tiedReport.Overall)
	assert.Equal(t, 100, tiedReport.SentimentBreakdown.Neutral)
}

func TestAnalyzeSentiment_Empty(t *testing.T) {
	report := AnalyzeSentiment(nil)

	assert.Equal(t, "neutral", report.Overall)
	assert.Equal(t, 0, report.TotalIssues)
	assert.Equal(t, 0, report.Score)
	assert.Empty(t, report.TopConcerns)
}

func TestAnalyzeSentiment_TopConcernsByFrequency(t *testing.T) {
	issues := []IssueSample{
		{Title: "a", Description: "a", Category: "INTERNET"},
		{Title: "b", Description: "b", Category: "PLUMBING"},
		{Title: "c", Description: "c", Category: "PLUMBING"},
		{Title: "d", Description: "d", Category: "ELECTRICAL"},
	}

	report := AnalyzeSentiment(issues)

	assert.Equal(t, "PLUMBING", report.TopConcerns[0])
	// INTERNET and ELECTRICAL are tied, first seen wins
	assert.Equal(t, []string{"PLUMBING", "INTERNET", "ELECTRICAL"}, report.TopConcerns)
}

func TestAnalyzeSentiment_TopConcernsCappedAtFive(t *testing.T) {
	issues := []IssueSample{
		{Category: "A"}, {Category: "B"}, {Category: "C"},
		{Category: "D"}, {Category: "E"}, {Category: "F"},
	}

	report := AnalyzeSentiment(issues)

	assert.Len(t, report.TopConcerns, 5)
}
