package store

import (
	"errors"
	"strings"
	"sync"
	"time"

	"civicreporter/models"
)

// ErrNotFound is returned when an operation references an id that is not in
// the collection.
var ErrNotFound = errors.New("issue not found")

// Clock supplies the report date of new issues.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// CoordinateSource places a newly reported issue on the map.
type CoordinateSource interface {
	Coordinates() models.Coordinates
}

type fixedCenter struct{}

func (fixedCenter) Coordinates() models.Coordinates { return models.DefaultCenter }

var departments = map[models.IssueCategory]string{
	models.Pothole:        "Public Works",
	models.Streetlight:    "Electrical Dept",
	models.Sanitation:     "Sanitation",
	models.Infrastructure: "Public Works",
	models.Water:          "Water Dept",
}

// DefaultDepartment handles categories missing from the department map.
const DefaultDepartment = "Public Works"

// DepartmentFor returns the department a new issue of category c is assigned to.
func DepartmentFor(c models.IssueCategory) string {
	if d, ok := departments[c]; ok {
		return d
	}
	return DefaultDepartment
}

// IssueStore holds the ordered issue collection for the lifetime of the
// process. Issues handed out are copies.
type IssueStore struct {
	mu     sync.RWMutex
	issues []models.Issue
	nextID int
	clock  Clock
	coords CoordinateSource
}

type Option func(*IssueStore)

func WithClock(c Clock) Option {
	return func(s *IssueStore) { s.clock = c }
}

func WithCoordinates(c CoordinateSource) Option {
	return func(s *IssueStore) { s.coords = c }
}

// WithIssues seeds the collection. The id counter continues after the
// highest seeded id.
func WithIssues(issues []models.Issue) Option {
	return func(s *IssueStore) {
		s.issues = append(s.issues, issues...)
	}
}

func NewIssueStore(opts ...Option) *IssueStore {
	s := &IssueStore{
		clock:  ClockFunc(time.Now),
		coords: fixedCenter{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.nextID = 1
	for _, issue := range s.issues {
		if issue.ID >= s.nextID {
			s.nextID = issue.ID + 1
		}
	}
	return s
}

// Create appends a new submitted issue. Required fields are validated by the
// caller.
func (s *IssueStore) Create(n models.NewIssue) models.Issue {
	photo := n.PhotoURL
	if photo == "" {
		photo = models.DefaultPhotoURL
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	issue := models.Issue{
		ID:          s.nextID,
		Title:       n.Title,
		Description: n.Description,
		Category:    n.Category,
		Status:      models.Submitted,
		Priority:    n.Priority,
		Location:    n.Location,
		Coordinates: s.coords.Coordinates(),
		ReportedBy:  n.ReportedBy,
		ReportDate:  s.clock.Now().Format(models.ReportDateLayout),
		AssignedTo:  DepartmentFor(n.Category),
		PhotoURL:    photo,
	}
	s.nextID++
	s.issues = append(s.issues, issue)
	return issue
}

// List returns the issues matching f in insertion order.
func (s *IssueStore) List(f models.IssueFilter) []models.Issue {
	search := strings.ToLower(f.SearchText)

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Issue, 0, len(s.issues))
	for _, issue := range s.issues {
		if !matchesSearch(issue, search) {
			continue
		}
		if f.Status != "" && issue.Status != f.Status {
			continue
		}
		if f.Category != "" && issue.Category != f.Category {
			continue
		}
		out = append(out, issue)
	}
	return out
}

func matchesSearch(issue models.Issue, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(issue.Title), search) ||
		strings.Contains(strings.ToLower(issue.Description), search) ||
		strings.Contains(strings.ToLower(issue.Location), search)
}

func (s *IssueStore) Get(id int) (models.Issue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Issue{}, ErrNotFound
	}
	return s.issues[i], nil
}

// Update applies the non-nil fields of patch to the issue in place.
func (s *IssueStore) Update(id int, patch models.IssuePatch) (models.Issue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Issue{}, ErrNotFound
	}

	issue := &s.issues[i]
	if patch.Status != nil {
		issue.Status = *patch.Status
	}
	if patch.AssignedTo != nil {
		issue.AssignedTo = *patch.AssignedTo
	}
	if patch.Priority != nil {
		issue.Priority = *patch.Priority
	}
	return *issue, nil
}

// Delete removes the issue. Confirmation is the caller's concern.
func (s *IssueStore) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	s.issues = append(s.issues[:i], s.issues[i+1:]...)
	return nil
}

func (s *IssueStore) Stats() models.IssueStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := models.IssueStats{Total: len(s.issues)}
	for _, issue := range s.issues {
		switch issue.Status {
		case models.Submitted:
			stats.Submitted++
		case models.InProgress:
			stats.InProgress++
		case models.Resolved:
			stats.Resolved++
		}
	}
	return stats
}

// All returns a copy of the whole collection.
func (s *IssueStore) All() []models.Issue {
	return s.List(models.IssueFilter{})
}

func (s *IssueStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.issues)
}

// indexOf must be called with mu held.
func (s *IssueStore) indexOf(id int) int {
	for i := range s.issues {
		if s.issues[i].ID == id {
			return i
		}
	}
	return -1
}
