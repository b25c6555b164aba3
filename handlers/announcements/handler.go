package announcements

import (
	"net/http"

	"hostelhub-backend/db"
	"hostelhub-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
)

// @Summary Create an announcement
// @Description Management-only broadcast with optional hostel/block/role targeting; empty targets mean everyone
// @Tags announcements
// @Accept json
// @Produce json
// @Param announcement body models.AnnouncementCreate true "Announcement information"
// @Security BearerAuth
// @Success 201 {object} models.Announcement
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 403 {object} map[string]string "error: Forbidden"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /announcements [post]
func CreateAnnouncement(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	role, _ := c.Get("role")
	if role != string(models.ManagementRole) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied: management role required"})
		return
	}

	var input models.AnnouncementCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if !input.Type.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid announcement type"})
		return
	}
	for _, targetRole := range input.TargetRoles {
		if !models.Role(targetRole).Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid target role: " + targetRole})
			return
		}
	}

	announcement := models.Announcement{
		Title:         input.Title,
		Content:       input.Content,
		Type:          input.Type,
		TargetHostels: emptyIfNil(input.TargetHostels),
		TargetBlocks:  emptyIfNil(input.TargetBlocks),
		TargetRoles:   emptyIfNil(input.TargetRoles),
		AuthorID:      userID.(string),
	}

	if err := db.DB.Create(&announcement).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating announcement: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, announcement)
}

// @Summary List announcements
// @Description Management sees all; students see announcements whose hostel and role targets include them
// @Tags announcements
// @Produce json
// @Param type query string false "Filter by type"
// @Security BearerAuth
// @Success 200 {array} models.Announcement
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /announcements [get]
func GetAnnouncements(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}
	role, _ := c.Get("role")

	query := db.DB.Model(&models.Announcement{})

	if typeFilter := c.Query("type"); typeFilter != "" && typeFilter != "all" {
		query = query.Where("type = ?", typeFilter)
	}

	if role != string(models.ManagementRole) {
		var user models.User
		if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		// An empty target array leaves that dimension unrestricted
		query = query.
			Where("cardinality(target_hostels) = 0 OR ? = ANY(target_hostels)", user.Hostel).
			Where("cardinality(target_roles) = 0 OR ? = ANY(target_roles)", string(models.StudentRole))
	}

	var announcements []models.Announcement
	if err := query.Order("created_at DESC").Find(&announcements).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving announcements: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, announcements)
}

func emptyIfNil(values []string) pq.StringArray {
	if values == nil {
		return pq.StringArray{}
	}
	return pq.StringArray(values)
}
