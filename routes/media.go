package routes

import (
	"hostelhub-backend/handlers/media"
	"hostelhub-backend/middleware"

	"github.com/gin-gonic/gin"
)

func MediaRoutes(r *gin.Engine) {
	mediaRoutes := r.Group("/media")
	mediaRoutes.Use(middleware.JWTAuth())
	{
		mediaRoutes.POST("", media.UploadMedia)
	}
}
