package message

import (
	"errors"
	"time"
)

var (
	ErrTextRequired   = errors.New("message: text is required")
	ErrPersonRequired = errors.New("message: person is required")
	ErrNotFound       = errors.New("message: not found")
)

// Message is one board post. Pinned messages float above the rest of
// their channel.
type Message struct {
	ID        string    `json:"id"`
	Person    string    `json:"person"`
	Text      string    `json:"text"`
	Channel   string    `json:"channel"`
	Pinned    bool      `json:"pinned"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateMessageRequest posts to a channel; channel defaults to general.
type CreateMessageRequest struct {
	Person  string `json:"person"`
	Text    string `json:"text" binding:"required"`
	Channel string `json:"channel"`
}

// PinRequest toggles the pinned flag.
type PinRequest struct {
	Pinned bool `json:"pinned"`
}
