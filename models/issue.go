package models

import "strings"

// IssueCategory enum
type IssueCategory string

const (
	Pothole        IssueCategory = "pothole"
	Streetlight    IssueCategory = "streetlight"
	Sanitation     IssueCategory = "sanitation"
	Infrastructure IssueCategory = "infrastructure"
	Water          IssueCategory = "water"
)

// Categories lists every known category in display order.
var Categories = []IssueCategory{Pothole, Streetlight, Sanitation, Infrastructure, Water}

// Valid reports whether c is one of the known categories.
func (c IssueCategory) Valid() bool {
	switch c {
	case Pothole, Streetlight, Sanitation, Infrastructure, Water:
		return true
	}
	return false
}

// IssueStatus enum
type IssueStatus string

const (
	Submitted  IssueStatus = "submitted"
	InProgress IssueStatus = "in_progress"
	Resolved   IssueStatus = "resolved"
)

func (s IssueStatus) Valid() bool {
	switch s {
	case Submitted, InProgress, Resolved:
		return true
	}
	return false
}

// Label is the human readable form used in badges and popups ("in progress").
func (s IssueStatus) Label() string {
	return strings.ReplaceAll(string(s), "_", " ")
}

// IssuePriority enum
type IssuePriority string

const (
	Low    IssuePriority = "low"
	Medium IssuePriority = "medium"
	High   IssuePriority = "high"
)

func (p IssuePriority) Valid() bool {
	switch p {
	case Low, Medium, High:
		return true
	}
	return false
}

// DefaultPhotoURL is shown for issues reported without a photo.
const DefaultPhotoURL = "https://via.placeholder.com/300x200?text=No+Photo"

// ReportDateLayout is the calendar date format of Issue.ReportDate.
const ReportDateLayout = "2006-01-02"

// Coordinates is a latitude/longitude pair in degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DefaultCenter is the map center new reports are scattered around.
var DefaultCenter = Coordinates{Latitude: 28.6139, Longitude: 77.2090}

// Issue represents a civic issue reported by a citizen
type Issue struct {
	ID          int           `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Category    IssueCategory `json:"category"`
	Status      IssueStatus   `json:"status"`
	Priority    IssuePriority `json:"priority"`
	Location    string        `json:"location"`
	Coordinates Coordinates   `json:"coordinates"`
	ReportedBy  string        `json:"reportedBy"`
	ReportDate  string        `json:"reportDate"`
	AssignedTo  string        `json:"assignedTo"`
	PhotoURL    string        `json:"photoUrl"`
}

// NewIssue carries the citizen-supplied fields of a report.
type NewIssue struct {
	Title       string
	Description string
	Category    IssueCategory
	Priority    IssuePriority
	Location    string
	ReportedBy  string
	PhotoURL    string
}

// IssuePatch is the set of fields an admin may change after creation.
// Nil fields are left untouched.
type IssuePatch struct {
	Status     *IssueStatus   `json:"status,omitempty"`
	AssignedTo *string        `json:"assignedTo,omitempty"`
	Priority   *IssuePriority `json:"priority,omitempty"`
}

// IssueFilter selects issues for the admin table. Empty fields match all.
type IssueFilter struct {
	SearchText string
	Status     IssueStatus
	Category   IssueCategory
}

// IssueStats are the dashboard counters.
type IssueStats struct {
	Total      int `json:"total"`
	Submitted  int `json:"submitted"`
	InProgress int `json:"in_progress"`
	Resolved   int `json:"resolved"`
}
