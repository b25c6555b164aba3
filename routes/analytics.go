package routes

import (
	"hostelhub-backend/handlers/analytics"
	"hostelhub-backend/middleware"

	"github.com/gin-gonic/gin"
)

func AnalyticsRoutes(r *gin.Engine) {
	// Sentiment is open to every authenticated user, the overview is not
	sentimentRoutes := r.Group("/analytics")
	sentimentRoutes.Use(middleware.JWTAuth())
	{
		sentimentRoutes.GET("/sentiment", analytics.GetSentiment)
	}

	overviewRoutes := r.Group("/analytics")
	overviewRoutes.Use(middleware.JWTAuth())
	overviewRoutes.Use(middleware.ManagementAuth())
	{
		overviewRoutes.GET("", analytics.GetOverview)
	}
}
