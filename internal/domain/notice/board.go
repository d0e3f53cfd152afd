package notice

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Level classifies a notice for display.
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notice is a user-visible, non-blocking notification. Remote-call
// failures are swallowed at the boundary and land here instead of
// propagating; nothing on the board ever blocks a mutation.
type Notice struct {
	ID        string    `json:"id"`
	Level     Level     `json:"level"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Board is a bounded ring of recent notices.
type Board struct {
	mu    sync.RWMutex
	max   int
	items []Notice
}

// NewBoard creates a board keeping at most max notices.
func NewBoard(max int) *Board {
	if max <= 0 {
		max = 50
	}
	return &Board{max: max}
}

// Post appends a notice, evicting the oldest when full.
func (b *Board) Post(level Level, message string) Notice {
	n := Notice{
		ID:        uuid.NewString(),
		Level:     level,
		Message:   message,
		CreatedAt: time.Now(),
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items = append(b.items, n)
	if len(b.items) > b.max {
		b.items = b.items[len(b.items)-b.max:]
	}
	return n
}

// Recent returns the notices newest first.
func (b *Board) Recent() []Notice {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]Notice, len(b.items))
	for i, n := range b.items {
		out[len(b.items)-1-i] = n
	}
	return out
}
