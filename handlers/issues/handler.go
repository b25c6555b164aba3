package issues

import (
	"net/http"
	"time"

	"hostelhub-backend/db"
	"hostelhub-backend/models"
	"hostelhub-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type reporterInfo struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
}

type issueWithCounts struct {
	models.Issue
	Reporter       reporterInfo `json:"reporter"`
	CommentsCount  int64        `json:"commentsCount"`
	ReactionsCount int64        `json:"reactionsCount"`
}

// @Summary Report a new issue
// @Description Create a maintenance issue; residence details are stamped from the reporter's profile
// @Tags issues
// @Accept json
// @Produce json
// @Param issue body models.IssueCreate true "Issue information"
// @Security BearerAuth
// @Success 201 {object} models.Issue
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /issues [post]
func CreateIssue(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var input models.IssueCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if !input.Category.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
		return
	}
	if !input.Priority.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid priority"})
		return
	}
	if !input.Visibility.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid visibility"})
		return
	}

	var reporter models.User
	if err := db.DB.First(&reporter, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	issue := models.Issue{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Priority:    input.Priority,
		Visibility:  input.Visibility,
		MediaUrls:   pq.StringArray(input.MediaUrls),
		Hostel:      orDefault(reporter.Hostel, "Not Specified"),
		Block:       orDefault(reporter.Block, "Not Specified"),
		Room:        orDefault(reporter.Room, "Not Specified"),
		ReporterID:  reporter.ID,
		Status:      models.Reported,
		ReportedAt:  time.Now(),
	}
	if issue.MediaUrls == nil {
		issue.MediaUrls = pq.StringArray{}
	}

	if err := db.DB.Create(&issue).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error creating issue in CreateIssue")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating issue: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, issue)
}

// @Summary List issues
// @Description Role-scoped issue list: students see public issues plus their own
// @Tags issues
// @Produce json
// @Param category query string false "Filter by category"
// @Param priority query string false "Filter by priority"
// @Param status query string false "Filter by status"
// @Security BearerAuth
// @Success 200 {array} issueWithCounts
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /issues [get]
func GetAllIssues(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}
	role, _ := c.Get("role")

	query := db.DB.Model(&models.Issue{})

	// Students only see their own issues plus public ones
	if role != string(models.ManagementRole) {
		query = query.Where("reporter_id = ? OR visibility = ?", userID, models.PublicIssue)
	}

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if priority := c.Query("priority"); priority != "" {
		query = query.Where("priority = ?", priority)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var issues []models.Issue
	if err := query.Order(models.PriorityOrderExpr).Order("created_at DESC").Find(&issues).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving issues: " + err.Error()})
		return
	}

	result := make([]issueWithCounts, 0, len(issues))
	for _, issue := range issues {
		var commentsCount, reactionsCount int64
		db.DB.Model(&models.Comment{}).Where("issue_id = ?", issue.ID).Count(&commentsCount)
		db.DB.Model(&models.Reaction{}).Where("issue_id = ?", issue.ID).Count(&reactionsCount)

		info := reporterInfo{ID: issue.ReporterID}
		var reporter models.User
		if err := db.DB.First(&reporter, "id = ?", issue.ReporterID).Error; err == nil {
			info.Name = reporter.Name
			info.Email = reporter.Email
			info.Role = reporter.Role
		}

		result = append(result, issueWithCounts{
			Issue:          issue,
			Reporter:       info,
			CommentsCount:  commentsCount,
			ReactionsCount: reactionsCount,
		})
	}

	c.JSON(http.StatusOK, result)
}

// @Summary Get an issue
// @Description Retrieve one issue with its comments and reactions
// @Tags issues
// @Produce json
// @Param id path string true "Issue ID"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Forbidden"
// @Failure 404 {object} map[string]string "error: Issue not found"
// @Router /issues/{id} [get]
func GetIssue(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}
	role, _ := c.Get("role")

	issueID := c.Param("id")

	var issue models.Issue
	if err := db.DB.First(&issue, "id = ?", issueID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		return
	}

	roleStr, _ := role.(string)
	if !issue.CanBeReadBy(userID.(string), models.Role(roleStr)) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not allowed to view this issue"})
		return
	}

	var comments []models.Comment
	db.DB.Where("issue_id = ?", issue.ID).Order("created_at ASC").Find(&comments)

	commentViews := make([]gin.H, 0, len(comments))
	for _, comment := range comments {
		view := gin.H{
			"id":        comment.ID,
			"content":   comment.Content,
			"createdAt": comment.CreatedAt,
			"user":      gin.H{"id": comment.UserID},
		}
		var author models.User
		if err := db.DB.First(&author, "id = ?", comment.UserID).Error; err == nil {
			view["user"] = gin.H{"id": author.ID, "name": author.Name, "role": author.Role}
		}
		commentViews = append(commentViews, view)
	}

	var reactions []models.Reaction
	db.DB.Where("issue_id = ?", issue.ID).Find(&reactions)

	reactionViews := make([]gin.H, 0, len(reactions))
	for _, reaction := range reactions {
		view := gin.H{
			"id":   reaction.ID,
			"type": reaction.Type,
			"user": gin.H{"id": reaction.UserID},
		}
		var reactor models.User
		if err := db.DB.First(&reactor, "id = ?", reaction.UserID).Error; err == nil {
			view["user"] = gin.H{"id": reactor.ID, "name": reactor.Name}
		}
		reactionViews = append(reactionViews, view)
	}

	info := reporterInfo{ID: issue.ReporterID}
	var reporter models.User
	if err := db.DB.First(&reporter, "id = ?", issue.ReporterID).Error; err == nil {
		info.Name = reporter.Name
		info.Email = reporter.Email
		info.Role = reporter.Role
	}

	c.JSON(http.StatusOK, gin.H{
		"issue":     issue,
		"reporter":  info,
		"comments":  commentViews,
		"reactions": reactionViews,
	})
}

// @Summary Update issue status or assignment
// @Description Management-only state transition; entering a status for the first time stamps its timestamp
// @Tags issues
// @Accept json
// @Produce json
// @Param id path string true "Issue ID"
// @Param update body models.IssueStatusUpdate true "New status and/or assignee"
// @Security BearerAuth
// @Success 200 {object} models.Issue
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 403 {object} map[string]string "error: Forbidden"
// @Failure 404 {object} map[string]string "error: Issue not found"
// @Router /issues/{id} [patch]
func UpdateIssueStatus(c *gin.Context) {
	role, _ := c.Get("role")
	if role != string(models.ManagementRole) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied: management role required"})
		return
	}

	issueID := c.Param("id")

	var input models.IssueStatusUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if input.Status == "" && input.AssignedTo == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
		return
	}

	var issue models.Issue
	if err := db.DB.First(&issue, "id = ?", issueID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		return
	}

	now := time.Now()
	updates := map[string]interface{}{}

	// Any transition is allowed; only the role gates the call. A timestamp
	// column is stamped once, on first entry, via COALESCE so re-entering a
	// status never overwrites it.
	if input.Status != "" {
		if !input.Status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}
		updates["status"] = input.Status
		if column, ok := models.StatusTimestampColumn[input.Status]; ok {
			updates[column] = gorm.Expr("COALESCE("+column+", ?)", now)
		}
	}

	if input.AssignedTo != nil {
		if *input.AssignedTo == "" {
			// Empty assignee unassigns, back to NULL
			updates["assigned_to"] = nil
		} else {
			updates["assigned_to"] = *input.AssignedTo
			updates["assigned_at"] = gorm.Expr("COALESCE(assigned_at, ?)", now)
		}
	}

	if err := db.DB.Model(&models.Issue{}).Where("id = ?", issueID).Updates(updates).Error; err != nil {
		utils.LogError(err, "Error updating issue in UpdateIssueStatus")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating issue: " + err.Error()})
		return
	}

	if err := db.DB.First(&issue, "id = ?", issueID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving updated issue"})
		return
	}

	c.JSON(http.StatusOK, issue)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
