package aireports

import (
	"net/http"

	"hostelhub-backend/ai"

	"github.com/gin-gonic/gin"
)

// Parser is the voice parser used by ProcessVoice; swapped in tests.
var Parser ai.VoiceParser = ai.NewGroqParser()

// Suggester backs the categorize assist.
var Suggester ai.Categorizer = ai.KeywordCategorizer{}

type voiceRequest struct {
	Transcript string `json:"transcript" binding:"required"`
}

type suggestRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// @Summary Parse a voice report
// @Description Extract a structured issue draft from a transcript; degrades to a deterministic fallback on any AI failure
// @Tags ai
// @Accept json
// @Produce json
// @Param transcript body voiceRequest true "Voice transcript"
// @Security BearerAuth
// @Success 200 {object} ai.IssueDraft
// @Failure 400 {object} map[string]string "error: Transcript is required"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Router /ai/process-voice [post]
func ProcessVoice(c *gin.Context) {
	if _, exists := c.Get("user_id"); !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var input voiceRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Transcript is required"})
		return
	}

	draft := Parser.Parse(c.Request.Context(), input.Transcript)
	c.JSON(http.StatusOK, draft)
}

// @Summary Suggest category and priority
// @Description Keyword-based, non-authoritative suggestion used to pre-fill the report form
// @Tags ai
// @Accept json
// @Produce json
// @Param text body suggestRequest true "Title and description"
// @Security BearerAuth
// @Success 200 {object} ai.Suggestion
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Router /ai/categorize [post]
func SuggestCategory(c *gin.Context) {
	var input suggestRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, Suggester.Categorize(input.Title, input.Description))
}
