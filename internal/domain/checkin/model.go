package checkin

import "errors"

// Status is where a person is working from today.
type Status string

const (
	StatusOffice Status = "office"
	StatusRemote Status = "remote"
	StatusOut    Status = "out"
)

var (
	ErrPersonRequired = errors.New("checkin: person is required")
	ErrBadStatus      = errors.New("checkin: status must be office, remote or out")
)

// CheckIn is one person's daily status. A person has at most one
// check-in per day; a later one replaces the earlier.
type CheckIn struct {
	ID     string `json:"id"`
	Person string `json:"person"`
	Status Status `json:"status"`
	Note   string `json:"note,omitempty"`
	Date   string `json:"date"`
	Time   string `json:"time"`
}

// ValidStatus reports whether s is one of the known statuses.
func ValidStatus(s Status) bool {
	switch s {
	case StatusOffice, StatusRemote, StatusOut:
		return true
	}
	return false
}

// CreateCheckInRequest is the payload for checking in. Date and Time
// default to now when omitted.
type CreateCheckInRequest struct {
	Person string `json:"person"`
	Status Status `json:"status" binding:"required"`
	Note   string `json:"note"`
	Date   string `json:"date"`
	Time   string `json:"time"`
}
