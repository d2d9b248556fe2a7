package routes

import (
	"civicreporter/controllers"

	"github.com/gin-gonic/gin"
)

func MapRoutes(r *gin.Engine, h *controllers.MapController) {
	r.GET("/api/map/markers", h.GetMarkers)
	r.GET("/api/location/detect", h.DetectLocation)
}

func PhotoRoutes(r *gin.Engine, h *controllers.PhotoController) {
	photos := r.Group("/api/photos")
	{
		photos.POST("", h.UploadPhoto)
		photos.GET("/:token", h.GetPhoto)
	}
}
