package controllers

import (
	"net/http"

	"civicreporter/photos"

	"github.com/gin-gonic/gin"
)

type PhotoController struct {
	photos *photos.Store
}

func NewPhotoController(p *photos.Store) *PhotoController {
	return &PhotoController{photos: p}
}

// UploadPhoto stores a "photo" multipart file and returns its transient URL.
func (h *PhotoController) UploadPhoto(c *gin.Context) {
	file, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo file is required"})
		return
	}

	url, err := h.photos.SaveUpload(file)
	if err != nil {
		respondError(c, err, "Failed to store photo")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"photoUrl": url})
}

func (h *PhotoController) GetPhoto(c *gin.Context) {
	photo, err := h.photos.Get(c.Param("token"))
	if err != nil {
		respondError(c, err, "Failed to load photo")
		return
	}
	c.Header("X-Content-Type-Options", "nosniff")
	c.Data(http.StatusOK, photo.ContentType, photo.Data)
}
