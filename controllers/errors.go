package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"civicreporter/photos"
	"civicreporter/reporter"
	"civicreporter/session"
	"civicreporter/store"

	"github.com/gin-gonic/gin"
)

// respondError maps domain errors to status codes. Anything unrecognised is
// logged and reported as a 500 with fallback as the message.
func respondError(c *gin.Context, err error, fallback string) {
	var verr *reporter.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "fields": verr.Fields})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
	case errors.Is(err, session.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	case errors.Is(err, reporter.ErrDeleteNotConfirmed):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Deletion must be confirmed"})
	case errors.Is(err, reporter.ErrNoEditInProgress):
		c.JSON(http.StatusConflict, gin.H{"error": "No edit in progress"})
	case errors.Is(err, photos.ErrTooLarge), errors.Is(err, photos.ErrUnsupportedType):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, photos.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Photo not found"})
	default:
		slog.ErrorContext(c.Request.Context(), fallback, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

func issueIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid issue ID"})
		return 0, false
	}
	return id, true
}
