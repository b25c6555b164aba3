package routes

import (
	"hostelhub-backend/handlers/announcements"
	"hostelhub-backend/middleware"

	"github.com/gin-gonic/gin"
)

func AnnouncementRoutes(r *gin.Engine) {
	announcementRoutes := r.Group("/announcements")
	announcementRoutes.Use(middleware.JWTAuth())
	{
		announcementRoutes.GET("", announcements.GetAnnouncements)
	}

	announcementAdminRoutes := r.Group("/announcements")
	announcementAdminRoutes.Use(middleware.JWTAuth())
	announcementAdminRoutes.Use(middleware.ManagementAuth())
	{
		announcementAdminRoutes.POST("", announcements.CreateAnnouncement)
	}
}
