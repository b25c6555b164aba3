package reactions

import (
	"errors"
	"net/http"

	"hostelhub-backend/db"
	"hostelhub-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @Summary React to an issue
// @Description Toggle/replace the caller's single reaction: same type removes it, a different type replaces it
// @Tags issues
// @Accept json
// @Produce json
// @Param id path string true "Issue ID"
// @Param reaction body models.ReactionCreate true "Reaction type"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Reaction added/updated/removed"
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Issue not found"
// @Failure 409 {object} map[string]string "error: Conflict"
// @Router /issues/{id}/react [post]
func ReactToIssue(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	issueID := c.Param("id")

	var input models.ReactionCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if !input.Type.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reaction type"})
		return
	}

	var issue models.Issue
	if err := db.DB.First(&issue, "id = ?", issueID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		return
	}

	var reaction models.Reaction
	result := db.DB.Where("issue_id = ? AND user_id = ?", issueID, userID).First(&reaction)

	if result.Error == nil {
		if reaction.Type == input.Type {
			// Same type toggles the reaction off
			if err := db.DB.Delete(&reaction).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error removing reaction: " + err.Error()})
				return
			}
			c.JSON(http.StatusOK, gin.H{"message": "Reaction removed", "state": "removed"})
			return
		}

		// Different type replaces in place, keeping the row unique
		if err := db.DB.Model(&reaction).Update("type", input.Type).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating reaction: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Reaction updated", "state": "updated"})
		return
	}

	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error checking existing reaction"})
		return
	}

	reaction = models.Reaction{
		IssueID: issueID,
		UserID:  userID.(string),
		Type:    input.Type,
	}

	// The unique index on (issue_id, user_id) catches the race where two
	// requests from the same user both saw no existing reaction.
	if err := db.DB.Create(&reaction).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "Reaction already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating reaction: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reaction added", "state": "added"})
}
