package routes

import (
	"civicreporter/controllers"

	"github.com/gin-gonic/gin"
)

// IssueRoutes sets up the issue routes
func IssueRoutes(r *gin.Engine, h *controllers.IssueController, admin, limiter gin.HandlerFunc) {
	issue := r.Group("/api/issue")
	{
		issue.GET("", h.GetAllIssues)
		issue.GET("/stats", h.GetIssueStats)
		issue.POST("/create", limiter, h.CreateIssue)
		issue.GET("/:id", h.GetIssue)
		issue.PUT("/:id", admin, h.UpdateIssue)
		issue.DELETE("/:id", admin, h.DeleteIssue)
	}
}
