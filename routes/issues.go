package routes

import (
	"hostelhub-backend/handlers/issues"
	"hostelhub-backend/handlers/issues/comments"
	"hostelhub-backend/handlers/issues/reactions"
	"hostelhub-backend/middleware"

	"github.com/gin-gonic/gin"
)

func IssueRoutes(r *gin.Engine) {
	issueRoutes := r.Group("/issues")
	issueRoutes.Use(middleware.JWTAuth())
	{
		issueRoutes.POST("", middleware.UserRateLimiter("issue_reports", 20), issues.CreateIssue)
		issueRoutes.GET("", issues.GetAllIssues)
		issueRoutes.GET("/:id", issues.GetIssue)
		issueRoutes.POST("/:id/react", reactions.ReactToIssue)
		issueRoutes.POST("/:id/comments", comments.CreateComment)
	}

	// Status and assignment changes are management-only
	issueAdminRoutes := r.Group("/issues")
	issueAdminRoutes.Use(middleware.JWTAuth())
	issueAdminRoutes.Use(middleware.ManagementAuth())
	{
		issueAdminRoutes.PATCH("/:id", issues.UpdateIssueStatus)
	}
}
