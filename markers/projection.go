package markers

import (
	"fmt"
	"strings"
	"sync"

	"civicreporter/models"
)

const (
	ColorSubmitted  = "#95a5a6"
	ColorInProgress = "#f39c12"
	ColorResolved   = "#27ae60"
)

// AllCategories disables category emphasis.
const AllCategories = "all"

const (
	emphasizedOpacity   = 1.0
	emphasizedFill      = 0.8
	deemphasizedOpacity = 0.3
	deemphasizedFill    = 0.3
)

// ColorFor maps a status to its marker color. Unknown statuses are gray.
func ColorFor(status models.IssueStatus) string {
	switch status {
	case models.InProgress:
		return ColorInProgress
	case models.Resolved:
		return ColorResolved
	default:
		return ColorSubmitted
	}
}

// IssueSource is the collection the projection is derived from.
type IssueSource interface {
	All() []models.Issue
}

// Projection derives map markers from the live collection. Its only state is
// the current emphasis filter.
type Projection struct {
	mu       sync.RWMutex
	source   IssueSource
	category string
}

func NewProjection(source IssueSource) *Projection {
	return &Projection{source: source, category: AllCategories}
}

// FilterByCategory sets the emphasis filter. An empty category means all.
func (p *Projection) FilterByCategory(category string) {
	if category == "" {
		category = AllCategories
	}
	p.mu.Lock()
	p.category = category
	p.mu.Unlock()
}

func (p *Projection) Category() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.category
}

// Markers recomputes one marker per issue under the current filter.
func (p *Projection) Markers() []models.Marker {
	return p.build(p.Category())
}

// Filter sets the emphasis filter and builds the markers under it in one
// step, so a concurrent caller cannot swap the filter in between.
func (p *Projection) Filter(category string) []models.Marker {
	if category == "" {
		category = AllCategories
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.category = category
	return p.build(category)
}

func (p *Projection) build(category string) []models.Marker {
	issues := p.source.All()

	out := make([]models.Marker, 0, len(issues))
	for _, issue := range issues {
		out = append(out, markerFor(issue, category))
	}
	return out
}

func markerFor(issue models.Issue, category string) models.Marker {
	m := models.Marker{
		ID:          issue.ID,
		Coordinates: issue.Coordinates,
		Color:       ColorFor(issue.Status),
		PopupText:   PopupText(issue),
		Category:    issue.Category,
		Status:      issue.Status,
	}
	if category == AllCategories || string(issue.Category) == category {
		m.Opacity, m.FillOpacity, m.Emphasized = emphasizedOpacity, emphasizedFill, true
	} else {
		m.Opacity, m.FillOpacity = deemphasizedOpacity, deemphasizedFill
	}
	return m
}

// PopupText is the plain-text body of a marker popup.
func PopupText(issue models.Issue) string {
	var b strings.Builder
	b.WriteString(issue.Title)
	b.WriteByte('\n')
	b.WriteString(string(issue.Category))
	b.WriteByte('\n')
	b.WriteString(issue.Description)
	b.WriteByte('\n')
	fmt.Fprintf(&b, "Status: %s", issue.Status.Label())
	return b.String()
}
