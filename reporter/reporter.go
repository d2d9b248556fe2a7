package reporter

import (
	"context"
	"fmt"
	"strings"

	"civicreporter/geo"
	"civicreporter/markers"
	"civicreporter/models"
	"civicreporter/session"
	"civicreporter/store"
)

// IssueForm is the citizen report as submitted by the presentation layer.
type IssueForm struct {
	Title       string
	Description string
	Category    string
	Priority    string
	Location    string
	ReportedBy  string
	PhotoURL    string
}

// Reporter is the command/query surface the presentation layer binds to.
type Reporter struct {
	issues   *store.IssueStore
	markers  *markers.Projection
	sessions *session.AdminSession
	location geo.Provider
	cursor   EditingCursor
}

func New(issues *store.IssueStore, sessions *session.AdminSession, location geo.Provider) *Reporter {
	return &Reporter{
		issues:   issues,
		markers:  markers.NewProjection(issues),
		sessions: sessions,
		location: location,
	}
}

func (r *Reporter) CreateIssue(form IssueForm) (models.Issue, error) {
	form = trimForm(form)
	if err := validateForm(form); err != nil {
		return models.Issue{}, err
	}

	return r.issues.Create(models.NewIssue{
		Title:       form.Title,
		Description: form.Description,
		Category:    models.IssueCategory(form.Category),
		Priority:    models.IssuePriority(form.Priority),
		Location:    form.Location,
		ReportedBy:  form.ReportedBy,
		PhotoURL:    form.PhotoURL,
	}), nil
}

func trimForm(f IssueForm) IssueForm {
	return IssueForm{
		Title:       strings.TrimSpace(f.Title),
		Description: strings.TrimSpace(f.Description),
		Category:    strings.TrimSpace(f.Category),
		Priority:    strings.TrimSpace(f.Priority),
		Location:    strings.TrimSpace(f.Location),
		ReportedBy:  strings.TrimSpace(f.ReportedBy),
		PhotoURL:    strings.TrimSpace(f.PhotoURL),
	}
}

func validateForm(f IssueForm) error {
	required := []struct {
		name, value string
	}{
		{"title", f.Title},
		{"description", f.Description},
		{"category", f.Category},
		{"priority", f.Priority},
		{"location", f.Location},
		{"reportedBy", f.ReportedBy},
	}

	var missing []string
	for _, field := range required {
		if field.value == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

func (r *Reporter) ListIssues(filter models.IssueFilter) []models.Issue {
	return r.issues.List(filter)
}

func (r *Reporter) ViewIssue(id int) (models.Issue, error) {
	return r.issues.Get(id)
}

func (r *Reporter) UpdateIssue(id int, patch models.IssuePatch) (models.Issue, error) {
	return r.issues.Update(id, patch)
}

// DeleteIssue removes an issue the caller has confirmed deleting. An edit
// open on the same issue is abandoned.
func (r *Reporter) DeleteIssue(id int, confirmed bool) error {
	if !confirmed {
		return ErrDeleteNotConfirmed
	}
	if err := r.issues.Delete(id); err != nil {
		return err
	}
	r.cursor.ClearIf(id)
	return nil
}

func (r *Reporter) Stats() models.IssueStats {
	return r.issues.Stats()
}

func (r *Reporter) Login(email, password string) (models.Session, error) {
	return r.sessions.Login(email, password)
}

// Logout also drops any edit in progress.
func (r *Reporter) Logout() {
	r.sessions.Logout()
	r.cursor.Clear()
}

func (r *Reporter) CurrentSession() (models.Session, bool) {
	return r.sessions.Current()
}

func (r *Reporter) IsAdmin() bool {
	return r.sessions.IsAdmin()
}

// MapMarkers sets the emphasis filter and returns the markers under it.
func (r *Reporter) MapMarkers(category string) []models.Marker {
	return r.markers.Filter(category)
}

// OpenEdit points the editing cursor at id.
func (r *Reporter) OpenEdit(id int) (models.Issue, error) {
	issue, err := r.issues.Get(id)
	if err != nil {
		return models.Issue{}, err
	}
	r.cursor.Open(id)
	return issue, nil
}

func (r *Reporter) EditingID() (int, bool) {
	return r.cursor.Current()
}

// CommitEdit applies patch to the issue under the cursor. The cursor is
// cleared whether or not the update succeeds.
func (r *Reporter) CommitEdit(patch models.IssuePatch) (models.Issue, error) {
	id, ok := r.cursor.Take()
	if !ok {
		return models.Issue{}, ErrNoEditInProgress
	}
	issue, err := r.issues.Update(id, patch)
	if err != nil {
		return models.Issue{}, fmt.Errorf("commit edit of issue %d: %w", id, err)
	}
	return issue, nil
}

func (r *Reporter) CancelEdit() {
	r.cursor.Clear()
}

func (r *Reporter) DetectLocation(ctx context.Context) (string, error) {
	return r.location.DetectLocation(ctx)
}
