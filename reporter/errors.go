package reporter

import (
	"errors"
	"strings"
)

var (
	ErrNoEditInProgress   = errors.New("no edit in progress")
	ErrDeleteNotConfirmed = errors.New("deletion must be confirmed")
)

// ValidationError lists the required fields a caller left empty.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}
