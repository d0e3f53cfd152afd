package decision

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

// Filter narrows the decision log listing.
type Filter struct {
	Category string
	Status   Status
}

// Service handles the decision log.
type Service interface {
	Load(ctx context.Context) error
	List(ctx context.Context, filter Filter) []Decision
	Create(ctx context.Context, req CreateDecisionRequest) (Decision, error)
	Update(ctx context.Context, id string, req UpdateDecisionRequest) (Decision, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	coll   *store.Collection[Decision]
	syncer *remote.Syncer[Decision]
	logger *logger.Logger
}

// NewService builds the decision service. client may be nil for demo mode.
func NewService(client *airtable.Client, notices *notice.Board, log *logger.Logger, timeout time.Duration, seed []Decision) Service {
	coll := store.NewCollection(
		func(d Decision) string { return d.ID },
		func(d *Decision, id string) { d.ID = id },
	)
	coll.Replace(seed)
	return &service{
		coll: coll,
		syncer: remote.NewSyncer(airtable.TableDecisions, client, coll, decisionFields,
			notices, log, timeout),
		logger: log,
	}
}

func decisionFields(d Decision) map[string]any {
	return map[string]any{
		"Title":       d.Title,
		"Description": d.Description,
		"DecidedBy":   d.DecidedBy,
		"Date":        d.Date,
		"Category":    d.Category,
		"Status":      string(d.Status),
	}
}

func decodeDecision(rec airtable.Record) (Decision, bool) {
	d := Decision{
		ID:          rec.ID,
		Title:       airtable.String(rec.Fields, "Title"),
		Description: airtable.String(rec.Fields, "Description"),
		DecidedBy:   airtable.String(rec.Fields, "DecidedBy"),
		Date:        airtable.String(rec.Fields, "Date"),
		Category:    airtable.String(rec.Fields, "Category"),
		Status:      Status(airtable.String(rec.Fields, "Status")),
	}
	if d.Title == "" {
		return Decision{}, false
	}
	if !ValidStatus(d.Status) {
		d.Status = StatusActive
	}
	return d, true
}

func (s *service) Load(ctx context.Context) error {
	return s.syncer.Load(ctx, airtable.ListParams{
		SortField:     "Date",
		SortDirection: "desc",
	}, decodeDecision)
}

// List returns the log newest first, optionally narrowed by category
// and status.
func (s *service) List(ctx context.Context, filter Filter) []Decision {
	items := s.coll.Filter(func(d Decision) bool {
		if filter.Category != "" && d.Category != filter.Category {
			return false
		}
		if filter.Status != "" && d.Status != filter.Status {
			return false
		}
		return true
	})
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date > items[j].Date
	})
	return items
}

func (s *service) Create(ctx context.Context, req CreateDecisionRequest) (Decision, error) {
	if req.Title == "" {
		return Decision{}, ErrTitleRequired
	}

	d := Decision{
		ID:          store.TempID(),
		Title:       req.Title,
		Description: req.Description,
		DecidedBy:   req.DecidedBy,
		Date:        req.Date,
		Category:    req.Category,
		Status:      StatusActive,
	}
	if d.Date == "" {
		d.Date = calendar.Today()
	}

	s.coll.Insert(d)
	s.syncer.CreateAsync(d.ID, d)
	return d, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateDecisionRequest) (Decision, error) {
	if req.Status != nil && !ValidStatus(*req.Status) {
		return Decision{}, ErrBadStatus
	}
	ok := s.coll.Update(id, func(d *Decision) {
		if req.Title != nil && *req.Title != "" {
			d.Title = *req.Title
		}
		if req.Description != nil {
			d.Description = *req.Description
		}
		if req.Category != nil {
			d.Category = *req.Category
		}
		if req.Status != nil {
			d.Status = *req.Status
		}
	})
	if !ok {
		return Decision{}, ErrNotFound
	}
	updated, _ := s.coll.Get(id)
	s.syncer.UpdateAsync(id, decisionFields(updated))
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if !s.coll.Delete(id) {
		return ErrNotFound
	}
	s.syncer.DeleteAsync(id)
	return nil
}
