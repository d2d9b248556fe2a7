package routes

import (
	"civicreporter/controllers"

	"github.com/gin-gonic/gin"
)

// AuthRoutes sets up the admin login routes
func AuthRoutes(r *gin.Engine, h *controllers.AuthController, admin gin.HandlerFunc) {
	auth := r.Group("/api/auth")
	{
		auth.POST("/login", h.LoginAdmin)
		auth.POST("/logout", h.LogoutAdmin)
		auth.GET("/me", admin, h.GetMe)
	}
}
