package priority

import (
	"context"
	"sort"
	"time"

	"github.com/karakusgokhan/team-hub/internal/domain/calendar"
	"github.com/karakusgokhan/team-hub/internal/domain/notice"
	"github.com/karakusgokhan/team-hub/internal/infrastructure/airtable"
	"github.com/karakusgokhan/team-hub/internal/infrastructure/remote"
	"github.com/karakusgokhan/team-hub/internal/infrastructure/store"
	"github.com/karakusgokhan/team-hub/pkg/logger"
)

// Service handles the weekly priority lists.
type Service interface {
	Load(ctx context.Context) error
	ListByWeek(ctx context.Context, week string) []Priority
	Create(ctx context.Context, req CreatePriorityRequest) (Priority, error)
	Update(ctx context.Context, id string, req UpdatePriorityRequest) (Priority, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	coll   *store.Collection[Priority]
	syncer *remote.Syncer[Priority]
	logger *logger.Logger
}

// NewService builds the priorities service. client may be nil for demo mode.
func NewService(client *airtable.Client, notices *notice.Board, log *logger.Logger, timeout time.Duration, seed []Priority) Service {
	coll := store.NewCollection(
		func(p Priority) string { return p.ID },
		func(p *Priority, id string) { p.ID = id },
	)
	coll.Replace(seed)
	return &service{
		coll: coll,
		syncer: remote.NewSyncer(airtable.TablePriorities, client, coll, priorityFields,
			notices, log, timeout),
		logger: log,
	}
}

func priorityFields(p Priority) map[string]any {
	return map[string]any{
		"Person":    p.Person,
		"Week":      p.Week,
		"Priority":  p.Priority,
		"Status":    string(p.Status),
		"SortOrder": p.SortOrder,
	}
}

func decodePriority(rec airtable.Record) (Priority, bool) {
	p := Priority{
		ID:        rec.ID,
		Person:    airtable.String(rec.Fields, "Person"),
		Week:      airtable.String(rec.Fields, "Week"),
		Priority:  airtable.String(rec.Fields, "Priority"),
		Status:    Status(airtable.String(rec.Fields, "Status")),
		SortOrder: airtable.Int(rec.Fields, "SortOrder"),
	}
	if p.Person == "" || p.Priority == "" {
		return Priority{}, false
	}
	if !ValidStatus(p.Status) {
		p.Status = StatusTodo
	}
	return p, true
}

func (s *service) Load(ctx context.Context) error {
	return s.syncer.Load(ctx, airtable.ListParams{SortField: "SortOrder"}, decodePriority)
}

// ListByWeek returns the week's items grouped the way the board renders
// them: by person, then by sort order.
func (s *service) ListByWeek(ctx context.Context, week string) []Priority {
	if week == "" {
		week = calendar.MondayOf(time.Now())
	}
	items := s.coll.Filter(func(p Priority) bool { return p.Week == week })
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Person != items[j].Person {
			return items[i].Person < items[j].Person
		}
		return items[i].SortOrder < items[j].SortOrder
	})
	return items
}

func (s *service) Create(ctx context.Context, req CreatePriorityRequest) (Priority, error) {
	if req.Person == "" {
		return Priority{}, ErrPersonRequired
	}
	if req.Priority == "" {
		return Priority{}, ErrTextRequired
	}

	p := Priority{
		ID:        store.TempID(),
		Person:    req.Person,
		Week:      req.Week,
		Priority:  req.Priority,
		Status:    StatusTodo,
		SortOrder: req.SortOrder,
	}
	if p.Week == "" {
		p.Week = calendar.MondayOf(time.Now())
	}
	if p.SortOrder == 0 {
		// Append after the person's existing items.
		existing := s.coll.Filter(func(x Priority) bool {
			return x.Person == p.Person && x.Week == p.Week
		})
		p.SortOrder = len(existing) + 1
	}

	s.coll.Insert(p)
	s.syncer.CreateAsync(p.ID, p)
	return p, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdatePriorityRequest) (Priority, error) {
	if req.Status != nil && !ValidStatus(*req.Status) {
		return Priority{}, ErrBadStatus
	}
	ok := s.coll.Update(id, func(p *Priority) {
		if req.Status != nil {
			p.Status = *req.Status
		}
		if req.Priority != nil && *req.Priority != "" {
			p.Priority = *req.Priority
		}
		if req.SortOrder != nil {
			p.SortOrder = *req.SortOrder
		}
	})
	if !ok {
		return Priority{}, ErrNotFound
	}
	updated, _ := s.coll.Get(id)
	s.syncer.UpdateAsync(id, priorityFields(updated))
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if !s.coll.Delete(id) {
		return ErrNotFound
	}
	s.syncer.DeleteAsync(id)
	return nil
}
