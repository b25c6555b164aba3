package comments

import (
	"net/http"

	"hostelhub-backend/db"
	"hostelhub-backend/models"

	"github.com/gin-gonic/gin"
)

// @Summary Comment on an issue
// @Description Append a comment; the caller must be able to read the issue
// @Tags issues
// @Accept json
// @Produce json
// @Param id path string true "Issue ID"
// @Param comment body models.CommentCreate true "Comment content"
// @Security BearerAuth
// @Success 201 {object} models.Comment
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Forbidden"
// @Failure 404 {object} map[string]string "error: Issue not found"
// @Router /issues/{id}/comments [post]
func CreateComment(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}
	role, _ := c.Get("role")

	issueID := c.Param("id")

	var input models.CommentCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	var issue models.Issue
	if err := db.DB.First(&issue, "id = ?", issueID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		return
	}

	roleStr, _ := role.(string)
	if !issue.CanBeReadBy(userID.(string), models.Role(roleStr)) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not allowed to comment on this issue"})
		return
	}

	comment := models.Comment{
		IssueID: issueID,
		UserID:  userID.(string),
		Content: input.Content,
	}

	if err := db.DB.Create(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating comment: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, comment)
}
