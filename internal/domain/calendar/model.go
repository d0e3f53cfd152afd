package calendar

import (
	"errors"
	"fmt"
)

// Palette is the fixed set of display color tokens events may use.
var Palette = []string{
	"#D4634B", // terracotta
	"#4B8BD4", // blue
	"#8B5CF6", // violet
	"#10B981", // green
	"#F59E0B", // amber
	"#EC4899", // pink
}

// DefaultColor is used when a request carries no color or one outside
// the palette.
const DefaultColor = "#4B8BD4"

var (
	ErrTitleRequired = errors.New("calendar: title is required")
	ErrDateRequired  = errors.New("calendar: date is required")
	ErrNotFound      = errors.New("calendar: event not found")
)

// Event is a calendar entry spanning one or more days. EndDate is
// inclusive; when empty the event is single-day. Time and Duration only
// mean anything for timed events (AllDay false).
type Event struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Date      string `json:"date"`
	EndDate   string `json:"end_date,omitempty"`
	AllDay    bool   `json:"all_day"`
	Time      string `json:"time,omitempty"`
	Duration  int    `json:"duration,omitempty"`
	Attendees string `json:"attendees,omitempty"`
	Color     string `json:"color,omitempty"`
}

// End returns the inclusive end of the event's span, falling back to the
// start for single-day events and normalizing malformed spans where the
// stored end precedes the start.
func (e Event) End() string {
	if e.EndDate == "" || e.EndDate < e.Date {
		return e.Date
	}
	return e.EndDate
}

// MultiDay reports whether the event spans more than one day.
func (e Event) MultiDay() bool {
	return e.End() > e.Date
}

// SpanDays returns the number of days the event covers, at least 1.
func (e Event) SpanDays() int {
	start, err := ParseDate(e.Date)
	if err != nil {
		return 1
	}
	end, err := ParseDate(e.End())
	if err != nil {
		return 1
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// Validate rejects events missing the fields nothing downstream can
// work without. Rejection happens before any state mutation or network
// call.
func (e Event) Validate() error {
	if e.Title == "" {
		return ErrTitleRequired
	}
	if e.Date == "" {
		return ErrDateRequired
	}
	if _, err := ParseDate(e.Date); err != nil {
		return fmt.Errorf("calendar: %w", err)
	}
	if e.EndDate != "" {
		if _, err := ParseDate(e.EndDate); err != nil {
			return fmt.Errorf("calendar: %w", err)
		}
	}
	return nil
}

// NormalizeColor maps any out-of-palette value to the default token.
func NormalizeColor(color string) string {
	for _, p := range Palette {
		if color == p {
			return color
		}
	}
	return DefaultColor
}

// CreateEventRequest is the payload for creating an event.
type CreateEventRequest struct {
	Title     string `json:"title" binding:"required"`
	Date      string `json:"date" binding:"required"`
	EndDate   string `json:"end_date"`
	AllDay    bool   `json:"all_day"`
	Time      string `json:"time"`
	Duration  int    `json:"duration" binding:"omitempty,min=0"`
	Attendees string `json:"attendees"`
	Color     string `json:"color"`
}

// UpdateEventRequest carries partial updates; nil fields are untouched.
type UpdateEventRequest struct {
	Title     *string `json:"title,omitempty"`
	Date      *string `json:"date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
	AllDay    *bool   `json:"all_day,omitempty"`
	Time      *string `json:"time,omitempty"`
	Duration  *int    `json:"duration,omitempty"`
	Attendees *string `json:"attendees,omitempty"`
	Color     *string `json:"color,omitempty"`
}
