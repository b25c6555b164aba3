package routes

import (
	"hostelhub-backend/handlers/lostfound"
	"hostelhub-backend/middleware"

	"github.com/gin-gonic/gin"
)

func LostFoundRoutes(r *gin.Engine) {
	lostFoundRoutes := r.Group("/lost-found")
	lostFoundRoutes.Use(middleware.JWTAuth())
	{
		lostFoundRoutes.POST("", lostfound.CreateItem)
		lostFoundRoutes.GET("", lostfound.GetItems)
		lostFoundRoutes.POST("/:id/claim", lostfound.ClaimItem)
		lostFoundRoutes.POST("/:id/claim/respond", lostfound.RespondToClaim)
	}
}
