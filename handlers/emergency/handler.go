package emergency

import (
	"fmt"
	"net/http"
	"time"

	"hostelhub-backend/db"
	"hostelhub-backend/models"
	"hostelhub-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
)

type EmergencyCreate struct {
	Type     string `json:"type" binding:"required"`
	Location string `json:"location" binding:"required"`
}

// @Summary Trigger an emergency alert
// @Description Synthesize a public EMERGENCY-priority security issue from the alert; bypasses the normal report validation
// @Tags emergency
// @Accept json
// @Produce json
// @Param alert body EmergencyCreate true "Alert type and location"
// @Security BearerAuth
// @Success 201 {object} map[string]string "message: Emergency alert sent, issueId"
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /emergency [post]
func TriggerEmergency(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var input EmergencyCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	var reporter models.User
	if err := db.DB.First(&reporter, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	issue := models.Issue{
		Title: "🚨 EMERGENCY: " + input.Type,
		Description: fmt.Sprintf(
			"Emergency alert triggered by %s\nLocation: %s\nType: %s\n\nThis is an automated emergency alert. Please respond immediately.",
			reporter.Name, input.Location, input.Type,
		),
		Category:   models.Security,
		Priority:   models.EmergencyPriority,
		Status:     models.Reported,
		Visibility: models.PublicIssue,
		Hostel:     orDefault(reporter.Hostel, "Unknown"),
		Block:      orDefault(reporter.Block, "Unknown"),
		Room:       orDefault(reporter.Room, "Unknown"),
		ReporterID: reporter.ID,
		MediaUrls:  pq.StringArray{},
		ReportedAt: time.Now(),
	}

	if err := db.DB.Create(&issue).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error creating emergency issue in TriggerEmergency")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send emergency alert"})
		return
	}

	// Delivery is best effort: the alert is stored as a regular high-priority
	// issue, there is no push/ack channel to management.
	utils.LogInfo("Emergency alert stored: " + issue.ID)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Emergency alert sent successfully",
		"issueId": issue.ID,
	})
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
