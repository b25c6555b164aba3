package lostfound

import (
	"net/http"
	"time"

	"hostelhub-backend/db"
	"hostelhub-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
)

// @Summary Report a lost or found item
// @Description Create a lost & found entry; the date must be a valid calendar date
// @Tags lost-found
// @Accept json
// @Produce json
// @Param item body models.LostFoundCreate true "Item information"
// @Security BearerAuth
// @Success 201 {object} models.LostFound
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /lost-found [post]
func CreateItem(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var input models.LostFoundCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if !input.Type.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item type"})
		return
	}

	date, err := parseDate(input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date"})
		return
	}

	item := models.LostFound{
		Type:        input.Type,
		ItemName:    input.ItemName,
		Description: input.Description,
		Location:    input.Location,
		ContactInfo: input.ContactInfo,
		Date:        date,
		ImageUrls:   emptyIfNil(input.ImageUrls),
		Status:      models.ActiveItem,
		ReporterID:  userID.(string),
	}

	if err := db.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating item: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, item)
}

// @Summary List lost & found items
// @Description Retrieve items with optional type and status filters
// @Tags lost-found
// @Produce json
// @Param type query string false "Filter by type (LOST/FOUND)"
// @Param status query string false "Filter by status"
// @Security BearerAuth
// @Success 200 {array} models.LostFound
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /lost-found [get]
func GetItems(c *gin.Context) {
	query := db.DB.Model(&models.LostFound{})

	if typeFilter := c.Query("type"); typeFilter != "" && typeFilter != "all" {
		query = query.Where("type = ?", typeFilter)
	}
	if statusFilter := c.Query("status"); statusFilter != "" && statusFilter != "all" {
		query = query.Where("status = ?", statusFilter)
	}

	var items []models.LostFound
	if err := query.Order("created_at DESC").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving items: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, items)
}

// @Summary Claim an item
// @Description Claim an ACTIVE item; reporters cannot claim their own items
// @Tags lost-found
// @Produce json
// @Param id path string true "Item ID"
// @Security BearerAuth
// @Success 200 {object} models.LostFound
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Forbidden"
// @Failure 404 {object} map[string]string "error: Item not found"
// @Failure 409 {object} map[string]string "error: Already claimed"
// @Router /lost-found/{id}/claim [post]
func ClaimItem(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	itemID := c.Param("id")

	var item models.LostFound
	if err := db.DB.First(&item, "id = ?", itemID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	active, selfClaim := item.CanBeClaimedBy(userID.(string))
	if selfClaim {
		c.JSON(http.StatusForbidden, gin.H{"error": "You cannot claim your own item"})
		return
	}
	if !active {
		c.JSON(http.StatusConflict, gin.H{"error": "This item has already been claimed"})
		return
	}

	claimStatus := models.ClaimPending
	claimedBy := userID.(string)

	// Compare-and-swap on the current status: of two concurrent claimants,
	// only the one whose UPDATE still sees ACTIVE succeeds.
	result := db.DB.Model(&models.LostFound{}).
		Where("id = ? AND status = ?", itemID, models.ActiveItem).
		Updates(map[string]interface{}{
			"status":       models.ClaimedItem,
			"claimed_by":   claimedBy,
			"claim_status": claimStatus,
		})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error claiming item: " + result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "This item has already been claimed"})
		return
	}

	if err := db.DB.First(&item, "id = ?", itemID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving claimed item"})
		return
	}

	c.JSON(http.StatusOK, item)
}

// @Summary Respond to a pending claim
// @Description The reporter confirms (item closed) or rejects (item reopened) a pending claim
// @Tags lost-found
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param response body models.ClaimResponse true "confirm or reject"
// @Security BearerAuth
// @Success 200 {object} models.LostFound
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 403 {object} map[string]string "error: Forbidden"
// @Failure 404 {object} map[string]string "error: Item not found"
// @Failure 409 {object} map[string]string "error: No pending claim"
// @Router /lost-found/{id}/claim/respond [post]
func RespondToClaim(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	itemID := c.Param("id")

	var input models.ClaimResponse
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	var item models.LostFound
	if err := db.DB.First(&item, "id = ?", itemID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	if item.ReporterID != userID.(string) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the reporter can respond to a claim"})
		return
	}
	if item.ClaimStatus == nil || *item.ClaimStatus != models.ClaimPending {
		c.JSON(http.StatusConflict, gin.H{"error": "There is no pending claim on this item"})
		return
	}

	var updates map[string]interface{}
	if input.Decision == "confirm" {
		updates = map[string]interface{}{
			"status":       models.ClosedItem,
			"claim_status": models.ClaimConfirmed,
		}
	} else {
		// Rejection reopens the item for other claimants
		updates = map[string]interface{}{
			"status":       models.ActiveItem,
			"claim_status": nil,
			"claimed_by":   nil,
		}
	}

	result := db.DB.Model(&models.LostFound{}).
		Where("id = ? AND claim_status = ?", itemID, models.ClaimPending).
		Updates(updates)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating claim: " + result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "There is no pending claim on this item"})
		return
	}

	if err := db.DB.First(&item, "id = ?", itemID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving updated item"})
		return
	}

	c.JSON(http.StatusOK, item)
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

func emptyIfNil(values []string) pq.StringArray {
	if values == nil {
		return pq.StringArray{}
	}
	return pq.StringArray(values)
}
