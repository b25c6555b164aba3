package routes

import (
	"hostelhub-backend/handlers/emergency"
	"hostelhub-backend/middleware"

	"github.com/gin-gonic/gin"
)

func EmergencyRoutes(r *gin.Engine) {
	emergencyRoutes := r.Group("/emergency")
	emergencyRoutes.Use(middleware.JWTAuth())
	{
		emergencyRoutes.POST("", middleware.UserRateLimiter("emergency_alerts", 5), emergency.TriggerEmergency)
	}
}
