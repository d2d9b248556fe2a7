package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"civicreporter/logger"
	"civicreporter/models"
	"civicreporter/photos"
	"civicreporter/reporter"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type IssueController struct {
	reporter *reporter.Reporter
	photos   *photos.Store
}

func NewIssueController(r *reporter.Reporter, p *photos.Store) *IssueController {
	RegisterValidators()
	return &IssueController{reporter: r, photos: p}
}

type createIssueInput struct {
	Title       string `json:"title" form:"title" binding:"required,max=200"`
	Description string `json:"description" form:"description" binding:"required,max=1000"`
	Category    string `json:"category" form:"category" binding:"required,issue_category"`
	Priority    string `json:"priority" form:"priority" binding:"required,issue_priority"`
	Location    string `json:"location" form:"location" binding:"required,max=200"`
	ReportedBy  string `json:"reportedBy" form:"reportedBy" binding:"required,email"`
	PhotoURL    string `json:"photoUrl" form:"photoUrl"`
}

type updateIssueInput struct {
	Status     *string `json:"status" binding:"omitempty,issue_status"`
	AssignedTo *string `json:"assignedTo" binding:"omitempty,max=100"`
	Priority   *string `json:"priority" binding:"omitempty,issue_priority"`
}

func (in updateIssueInput) patch() models.IssuePatch {
	var p models.IssuePatch
	if in.Status != nil {
		s := models.IssueStatus(*in.Status)
		p.Status = &s
	}
	if in.AssignedTo != nil {
		a := *in.AssignedTo
		p.AssignedTo = &a
	}
	if in.Priority != nil {
		pr := models.IssuePriority(*in.Priority)
		p.Priority = &pr
	}
	return p
}

// CreateIssue accepts a JSON report or a multipart form with an optional
// "photo" file.
func (h *IssueController) CreateIssue(c *gin.Context) {
	ctx := c.Request.Context()

	var input createIssueInput
	if err := c.ShouldBind(&input); err != nil {
		slog.WarnContext(ctx, "invalid issue submission", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if c.ContentType() == binding.MIMEMultipartPOSTForm {
		file, err := c.FormFile("photo")
		switch {
		case err == nil:
			url, err := h.photos.SaveUpload(file)
			if err != nil {
				respondError(c, err, "Failed to store photo")
				return
			}
			input.PhotoURL = url
		case !errors.Is(err, http.ErrMissingFile):
			slog.WarnContext(ctx, "unreadable photo upload", "error", err)
		}
	}

	issue, err := h.reporter.CreateIssue(reporter.IssueForm{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Priority:    input.Priority,
		Location:    input.Location,
		ReportedBy:  input.ReportedBy,
		PhotoURL:    input.PhotoURL,
	})
	if err != nil {
		respondError(c, err, "Failed to create issue")
		return
	}

	slog.InfoContext(logger.WithIssueID(ctx, issue.ID), "issue reported",
		"category", issue.Category, "assigned_to", issue.AssignedTo)
	c.JSON(http.StatusCreated, issue)
}

// GetAllIssues lists issues filtered by search, status and category. "all"
// is the same as no filter.
func (h *IssueController) GetAllIssues(c *gin.Context) {
	filter := models.IssueFilter{SearchText: c.Query("search")}

	if status := c.Query("status"); status != "" && status != "all" {
		filter.Status = models.IssueStatus(status)
	}
	if category := c.Query("category"); category != "" && category != "all" {
		filter.Category = models.IssueCategory(category)
	}

	issues := h.reporter.ListIssues(filter)
	c.JSON(http.StatusOK, gin.H{
		"issues":      issues,
		"totalIssues": len(issues),
	})
}

func (h *IssueController) GetIssue(c *gin.Context) {
	id, ok := issueIDParam(c)
	if !ok {
		return
	}

	issue, err := h.reporter.ViewIssue(id)
	if err != nil {
		respondError(c, err, "Failed to retrieve issue")
		return
	}

	c.JSON(http.StatusOK, issue)
}

// UpdateIssue changes status, assignee or priority.
func (h *IssueController) UpdateIssue(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := issueIDParam(c)
	if !ok {
		return
	}

	var input updateIssueInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	issue, err := h.reporter.UpdateIssue(id, input.patch())
	if err != nil {
		respondError(c, err, "Failed to update issue")
		return
	}

	slog.InfoContext(logger.WithIssueID(ctx, id), "issue updated", "status", issue.Status)
	c.JSON(http.StatusOK, issue)
}

// DeleteIssue requires ?confirm=true.
func (h *IssueController) DeleteIssue(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := issueIDParam(c)
	if !ok {
		return
	}

	confirmed := c.Query("confirm") == "true"
	if err := h.reporter.DeleteIssue(id, confirmed); err != nil {
		respondError(c, err, "Failed to delete issue")
		return
	}

	slog.InfoContext(logger.WithIssueID(ctx, id), "issue deleted")
	c.JSON(http.StatusOK, gin.H{"message": "Issue deleted successfully"})
}

// GetIssueStats returns the dashboard counters.
func (h *IssueController) GetIssueStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.reporter.Stats())
}
