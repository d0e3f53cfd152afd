package decision

import "errors"

// Status tracks whether a decision still stands.
type Status string

const (
	StatusActive     Status = "active"
	StatusReversed   Status = "reversed"
	StatusSuperseded Status = "superseded"
)

var (
	ErrTitleRequired = errors.New("decision: title is required")
	ErrDateRequired  = errors.New("decision: date is required")
	ErrBadStatus     = errors.New("decision: status must be active, reversed or superseded")
	ErrNotFound      = errors.New("decision: not found")
)

// Decision is one entry in the decision log.
type Decision struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	DecidedBy   string `json:"decided_by"`
	Date        string `json:"date"`
	Category    string `json:"category,omitempty"`
	Status      Status `json:"status"`
}

// ValidStatus reports whether s is a known status.
func ValidStatus(s Status) bool {
	switch s {
	case StatusActive, StatusReversed, StatusSuperseded:
		return true
	}
	return false
}

// CreateDecisionRequest logs a new decision. Date defaults to today and
// status to active.
type CreateDecisionRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	DecidedBy   string `json:"decided_by"`
	Date        string `json:"date"`
	Category    string `json:"category"`
}

// UpdateDecisionRequest amends a logged decision.
type UpdateDecisionRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`
	Status      *Status `json:"status,omitempty"`
}
