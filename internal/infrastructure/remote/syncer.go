package remote

import (
	"context"
	"fmt"
	"time"

	"github.com/karakusgokhan/team-hub/internal/domain/notice"
	"github.com/karakusgokhan/team-hub/internal/infrastructure/airtable"
	"github.com/karakusgokhan/team-hub/internal/infrastructure/store"
	"github.com/karakusgokhan/team-hub/pkg/logger"
	"go.uber.org/zap"
)

// Syncer mirrors one optimistic collection into one Airtable table.
// Every remote call is fire-and-forget relative to the caller: the local
// mutation has already happened and is never rolled back. Failures turn
// into a warning on the notice board and nothing else.
//
// Client may be nil (demo mode), in which case creates are confirmed
// locally under their temporary id and no network call is ever made.
type Syncer[T any] struct {
	table   string
	client  *airtable.Client
	coll    *store.Collection[T]
	fields  func(T) map[string]any
	notices *notice.Board
	logger  *logger.Logger
	timeout time.Duration
}

// NewSyncer wires a collection to its remote table. fields maps an
// entity to the Airtable field object sent on create/update.
func NewSyncer[T any](
	table string,
	client *airtable.Client,
	coll *store.Collection[T],
	fields func(T) map[string]any,
	notices *notice.Board,
	log *logger.Logger,
	timeout time.Duration,
) *Syncer[T] {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Syncer[T]{
		table:   table,
		client:  client,
		coll:    coll,
		fields:  fields,
		notices: notices,
		logger:  log,
		timeout: timeout,
	}
}

// Live reports whether a remote store is attached.
func (s *Syncer[T]) Live() bool { return s.client != nil }

// CreateAsync reconciles a pending entity against the remote store in
// the background. On success the temporary id is swapped for the remote
// one; on failure the entity is left unconfirmed for the session.
func (s *Syncer[T]) CreateAsync(tempID string, item T) {
	if s.client == nil {
		// Demo mode: the local insert is the whole lifecycle.
		s.coll.Confirm(tempID, tempID)
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		rec, err := s.client.Create(ctx, s.table, s.fields(item))
		if err != nil {
			s.coll.MarkUnconfirmed(tempID)
			s.warn("create", err)
			return
		}
		if !s.coll.Confirm(tempID, rec.ID) {
			// Deleted locally while the create was in flight: the remote
			// row must not outlive the session's delete.
			if delErr := s.client.Delete(ctx, s.table, rec.ID); delErr != nil {
				s.logger.Warn("cleanup of superseded record failed",
					zap.String("table", s.table),
					zap.String("record_id", rec.ID),
					zap.Error(delErr),
				)
			}
		}
	}()
}

// UpdateAsync pushes changed fields for an already-confirmed entity.
// Temporary-id entities have nothing remote to update.
func (s *Syncer[T]) UpdateAsync(id string, fields map[string]any) {
	if s.client == nil || store.IsTempID(id) {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		if _, err := s.client.Update(ctx, s.table, id, fields); err != nil {
			s.warn("update", err)
		}
	}()
}

// DeleteAsync removes the remote record backing a locally deleted entity.
func (s *Syncer[T]) DeleteAsync(id string) {
	if s.client == nil || store.IsTempID(id) {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		if err := s.client.Delete(ctx, s.table, id); err != nil {
			s.warn("delete", err)
		}
	}()
}

// Load fetches a fresh snapshot and overwrites the collection with it.
// Unlike mutations this is synchronous: callers use it for the initial
// load and the scheduled refresh, both of which want the result.
func (s *Syncer[T]) Load(ctx context.Context, params airtable.ListParams, decode func(airtable.Record) (T, bool)) error {
	if s.client == nil {
		return nil
	}
	records, err := s.client.List(ctx, s.table, params)
	if err != nil {
		return fmt.Errorf("load %s: %w", s.table, err)
	}
	items := make([]T, 0, len(records))
	for _, rec := range records {
		if item, ok := decode(rec); ok {
			items = append(items, item)
		}
	}
	s.coll.Replace(items)
	return nil
}

func (s *Syncer[T]) warn(op string, err error) {
	s.logger.Warn("remote sync failed",
		zap.String("table", s.table),
		zap.String("op", op),
		zap.Error(err),
	)
	s.notices.Post(notice.LevelWarning,
		fmt.Sprintf("Saving to %s failed — your change is kept locally for this session", s.table))
}
