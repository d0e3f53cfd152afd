package store

import (
	"strconv"
	"sync"
	"sync/atomic"
	"time"
)

// Status tracks where an optimistically created entity stands relative
// to the remote store.
type Status string

const (
	// StatusPending means the entity exists locally under a temporary id
	// while the remote create is in flight.
	StatusPending Status = "pending"
	// StatusConfirmed means the remote store accepted the entity and the
	// temporary id was swapped for the durable one.
	StatusConfirmed Status = "confirmed"
	// StatusUnconfirmed means the remote create failed; the entity stays
	// in the collection for the session and is never retried.
	StatusUnconfirmed Status = "unconfirmed"
)

var tempSeq atomic.Int64

// TempID returns a process-unique temporary identifier derived from a
// high-resolution timestamp. The counter suffix keeps ids distinct when
// two creates land in the same nanosecond tick.
func TempID() string {
	return "tmp_" + strconv.FormatInt(time.Now().UnixNano(), 36) +
		"_" + strconv.FormatInt(tempSeq.Add(1), 10)
}

// IsTempID reports whether id was generated by TempID.
func IsTempID(id string) bool {
	return len(id) > 4 && id[:4] == "tmp_"
}

// Collection is an in-memory, locally authoritative set of entities with
// optimistic-mutation bookkeeping. The remote store is a best-effort
// mirror: local mutations are applied immediately and never rolled back,
// a freshly loaded snapshot simply overwrites everything, and a stale
// create confirmation for an entity deleted in the meantime is dropped
// via the tombstone set.
//
// The original runs on a single UI thread; behind an HTTP server the
// same last-writer-wins semantics need a lock, nothing more.
type Collection[T any] struct {
	mu     sync.RWMutex
	items  []T
	id     func(T) string
	setID  func(*T, string)
	status map[string]Status
	// tombstones holds ids deleted locally, so a late create response
	// cannot resurrect the entity.
	tombstones map[string]struct{}
}

// NewCollection builds a collection over entities addressed by the given
// id accessors.
func NewCollection[T any](id func(T) string, setID func(*T, string)) *Collection[T] {
	return &Collection[T]{
		id:         id,
		setID:      setID,
		status:     make(map[string]Status),
		tombstones: make(map[string]struct{}),
	}
}

// Snapshot returns a copy of the current items.
func (c *Collection[T]) Snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of items.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Get looks up an item by id.
func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if c.id(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Replace swaps the whole collection for a freshly loaded snapshot.
// Status bookkeeping and tombstones are reset: the snapshot is the new
// truth for this entity type.
func (c *Collection[T]) Replace(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make([]T, len(items))
	copy(c.items, items)
	c.status = make(map[string]Status)
	c.tombstones = make(map[string]struct{})
	for _, item := range c.items {
		c.status[c.id(item)] = StatusConfirmed
	}
}

// Insert adds an entity in the pending state. The entity must already
// carry its temporary id.
func (c *Collection[T]) Insert(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, item)
	c.status[c.id(item)] = StatusPending
}

// Confirm swaps tempID for the remote-assigned id in place. Other fields
// are not touched: client-computed values are trusted over the remote
// echo. Returns false when the entity was deleted while the create was
// in flight (or never existed), in which case the caller should clean up
// the remote record it just learned about.
func (c *Collection[T]) Confirm(tempID, remoteID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, gone := c.tombstones[tempID]; gone {
		delete(c.tombstones, tempID)
		delete(c.status, tempID)
		return false
	}
	for i := range c.items {
		if c.id(c.items[i]) == tempID {
			c.setID(&c.items[i], remoteID)
			delete(c.status, tempID)
			c.status[remoteID] = StatusConfirmed
			return true
		}
	}
	return false
}

// MarkUnconfirmed records that the remote create failed. The entity keeps
// its temporary id for the rest of the session.
func (c *Collection[T]) MarkUnconfirmed(tempID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.status[tempID]; ok {
		c.status[tempID] = StatusUnconfirmed
	}
}

// Status returns the sync status of an entity.
func (c *Collection[T]) Status(id string) (Status, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.status[id]
	return s, ok
}

// Update applies fn to the entity with the given id, unconditionally and
// immediately. Returns false when no such entity exists.
func (c *Collection[T]) Update(id string, fn func(*T)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.id(c.items[i]) == id {
			fn(&c.items[i])
			return true
		}
	}
	return false
}

// Delete removes the entity immediately regardless of remote outcome and
// leaves a tombstone so a stale create response cannot bring it back.
func (c *Collection[T]) Delete(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.id(c.items[i]) == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			if c.status[id] == StatusPending {
				c.tombstones[id] = struct{}{}
			}
			delete(c.status, id)
			return true
		}
	}
	return false
}

// Filter returns the items for which keep returns true, preserving order.
func (c *Collection[T]) Filter(keep func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []T
	for _, item := range c.items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
