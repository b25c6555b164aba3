package routes

import (
	"hostelhub-backend/handlers/aireports"
	"hostelhub-backend/middleware"

	"github.com/gin-gonic/gin"
)

func AIRoutes(r *gin.Engine) {
	aiRoutes := r.Group("/ai")
	aiRoutes.Use(middleware.JWTAuth())
	{
		aiRoutes.POST("/process-voice", middleware.UserRateLimiter("voice_reports", 30), aireports.ProcessVoice)
		aiRoutes.POST("/categorize", aireports.SuggestCategory)
	}
}
