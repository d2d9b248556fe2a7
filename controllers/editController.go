package controllers

import (
	"log/slog"
	"net/http"

	"civicreporter/logger"
	"civicreporter/reporter"

	"github.com/gin-gonic/gin"
)

// EditController drives the admin edit dialog through the editing cursor.
type EditController struct {
	reporter *reporter.Reporter
}

func NewEditController(r *reporter.Reporter) *EditController {
	RegisterValidators()
	return &EditController{reporter: r}
}

func (h *EditController) OpenEdit(c *gin.Context) {
	id, ok := issueIDParam(c)
	if !ok {
		return
	}

	issue, err := h.reporter.OpenEdit(id)
	if err != nil {
		respondError(c, err, "Failed to open issue for editing")
		return
	}
	c.JSON(http.StatusOK, issue)
}

func (h *EditController) CurrentEdit(c *gin.Context) {
	id, ok := h.reporter.EditingID()
	if !ok {
		c.JSON(http.StatusOK, gin.H{"editing": false})
		return
	}

	issue, err := h.reporter.ViewIssue(id)
	if err != nil {
		h.reporter.CancelEdit()
		c.JSON(http.StatusOK, gin.H{"editing": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"editing": true, "issue": issue})
}

func (h *EditController) CommitEdit(c *gin.Context) {
	var input updateIssueInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	issue, err := h.reporter.CommitEdit(input.patch())
	if err != nil {
		respondError(c, err, "Failed to update issue")
		return
	}

	slog.InfoContext(logger.WithIssueID(c.Request.Context(), issue.ID), "issue edit committed", "status", issue.Status)
	c.JSON(http.StatusOK, issue)
}

func (h *EditController) CancelEdit(c *gin.Context) {
	h.reporter.CancelEdit()
	c.JSON(http.StatusOK, gin.H{"message": "Edit cancelled"})
}
