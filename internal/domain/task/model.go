package task

import (
	"errors"
	"time"
)

// Priority orders tasks by urgency.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Status tracks a task through its lifecycle.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusBlocked    Status = "blocked"
	StatusDone       Status = "done"
)

var (
	ErrTitleRequired = errors.New("task: title is required")
	ErrBadPriority   = errors.New("task: priority must be low, medium, high or urgent")
	ErrBadStatus     = errors.New("task: status must be todo, in-progress, blocked or done")
	ErrNotFound      = errors.New("task: not found")
)

// Task is one assignable piece of work with a due date.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	AssignedTo  string    `json:"assigned_to,omitempty"`
	CreatedBy   string    `json:"created_by,omitempty"`
	DueDate     string    `json:"due_date,omitempty"`
	Priority    Priority  `json:"priority"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// Overdue reports whether the task is past its due date and unfinished.
func (t Task) Overdue(today string) bool {
	return t.DueDate != "" && t.DueDate < today && t.Status != StatusDone
}

// ValidPriority reports whether p is a known priority.
func ValidPriority(p Priority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// ValidStatus reports whether s is a known status.
func ValidStatus(s Status) bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusBlocked, StatusDone:
		return true
	}
	return false
}

// CreateTaskRequest adds a task; priority defaults to medium.
type CreateTaskRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	AssignedTo  string   `json:"assigned_to"`
	CreatedBy   string   `json:"created_by"`
	DueDate     string   `json:"due_date"`
	Priority    Priority `json:"priority"`
}

// UpdateTaskRequest carries partial updates.
type UpdateTaskRequest struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	AssignedTo  *string   `json:"assigned_to,omitempty"`
	DueDate     *string   `json:"due_date,omitempty"`
	Priority    *Priority `json:"priority,omitempty"`
	Status      *Status   `json:"status,omitempty"`
}
