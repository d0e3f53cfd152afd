package priority

import "errors"

// Status tracks one priority item through the week.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
)

var (
	ErrPersonRequired = errors.New("priority: person is required")
	ErrTextRequired   = errors.New("priority: priority text is required")
	ErrBadStatus      = errors.New("priority: status must be todo, in-progress or done")
	ErrNotFound       = errors.New("priority: not found")
)

// Priority is one item on a person's weekly list. Week is the Monday of
// the week it belongs to; SortOrder orders the items within one
// person's list.
type Priority struct {
	ID        string `json:"id"`
	Person    string `json:"person"`
	Week      string `json:"week"`
	Priority  string `json:"priority"`
	Status    Status `json:"status"`
	SortOrder int    `json:"sort_order"`
}

// ValidStatus reports whether s is a known status.
func ValidStatus(s Status) bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// CreatePriorityRequest adds an item to a weekly list. Week defaults to
// the current week's Monday.
type CreatePriorityRequest struct {
	Person    string `json:"person"`
	Week      string `json:"week"`
	Priority  string `json:"priority" binding:"required"`
	SortOrder int    `json:"sort_order"`
}

// UpdatePriorityRequest moves an item between statuses or reorders it.
type UpdatePriorityRequest struct {
	Status    *Status `json:"status,omitempty"`
	Priority  *string `json:"priority,omitempty"`
	SortOrder *int    `json:"sort_order,omitempty"`
}
