package routes

import (
	"civicreporter/controllers"

	"github.com/gin-gonic/gin"
)

// EditRoutes drive the admin edit dialog.
func EditRoutes(r *gin.Engine, h *controllers.EditController, admin gin.HandlerFunc) {
	r.POST("/api/issue/:id/edit", admin, h.OpenEdit)

	edit := r.Group("/api/edit", admin)
	{
		edit.GET("", h.CurrentEdit)
		edit.PUT("", h.CommitEdit)
		edit.DELETE("", h.CancelEdit)
	}
}
