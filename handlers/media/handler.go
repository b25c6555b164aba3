package media

import (
	"net/http"

	"hostelhub-backend/utils"

	"github.com/gin-gonic/gin"
)

// @Summary Upload a media file
// @Description Upload an image for an issue or lost & found report and receive its URL
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Security BearerAuth
// @Success 200 {object} map[string]string "url: secure URL"
// @Failure 400 {object} map[string]string "error: Invalid file"
// @Failure 500 {object} map[string]string "error: Upload failed"
// @Router /media [post]
func UploadMedia(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}

	url, err := utils.UploadImage(file, "report_media", "report")
	if err != nil {
		utils.LogErrorWithUser(userID, err, "Error uploading media in UploadMedia")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error uploading file: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
