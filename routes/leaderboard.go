package routes

import (
	"hostelhub-backend/handlers/leaderboard"
	"hostelhub-backend/middleware"

	"github.com/gin-gonic/gin"
)

func LeaderboardRoutes(r *gin.Engine) {
	leaderboardRoutes := r.Group("/leaderboard")
	leaderboardRoutes.Use(middleware.JWTAuth())
	{
		leaderboardRoutes.GET("", leaderboard.GetLeaderboard)
	}
}
