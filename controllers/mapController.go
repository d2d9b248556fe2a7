package controllers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"civicreporter/markers"
	"civicreporter/reporter"

	"github.com/gin-gonic/gin"
)

type MapController struct {
	reporter *reporter.Reporter
}

func NewMapController(r *reporter.Reporter) *MapController {
	return &MapController{reporter: r}
}

// GetMarkers returns every issue marker, emphasizing ?category= (default all).
func (h *MapController) GetMarkers(c *gin.Context) {
	category := c.DefaultQuery("category", markers.AllCategories)
	c.JSON(http.StatusOK, gin.H{
		"category": category,
		"markers":  h.reporter.MapMarkers(category),
	})
}

// DetectLocation blocks for the simulated lookup. A client that disconnects
// first gets nothing back.
func (h *MapController) DetectLocation(c *gin.Context) {
	ctx := c.Request.Context()

	location, err := h.reporter.DetectLocation(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			slog.DebugContext(ctx, "location detection abandoned", "error", err)
			c.AbortWithStatus(http.StatusRequestTimeout)
			return
		}
		respondError(c, err, "Failed to detect location")
		return
	}

	c.JSON(http.StatusOK, gin.H{"location": location})
}
