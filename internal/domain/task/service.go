package task

import (
	"context"
	"sort"
	"time"

	"github.com/karakusgokhan/team-hub/internal/domain/notice"
	"github.com/karakusgokhan/team-hub/internal/infrastructure/airtable"
	"github.com/karakusgokhan/team-hub/internal/infrastructure/remote"
	"github.com/karakusgokhan/team-hub/internal/infrastructure/store"
	"github.com/karakusgokhan/team-hub/pkg/logger"
)

// priorityRank orders priorities for the default listing, most urgent
// first.
var priorityRank = map[Priority]int{
	PriorityUrgent: 0,
	PriorityHigh:   1,
	PriorityMedium: 2,
	PriorityLow:    3,
}

// Filter narrows the task listing.
type Filter struct {
	AssignedTo string
	Status     Status
}

// Service handles the task board.
type Service interface {
	Load(ctx context.Context) error
	List(ctx context.Context, filter Filter) []Task
	Get(ctx context.Context, id string) (Task, error)
	Create(ctx context.Context, req CreateTaskRequest) (Task, error)
	Update(ctx context.Context, id string, req UpdateTaskRequest) (Task, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	coll   *store.Collection[Task]
	syncer *remote.Syncer[Task]
	logger *logger.Logger
}

// NewService builds the task service. client may be nil for demo mode.
func NewService(client *airtable.Client, notices *notice.Board, log *logger.Logger, timeout time.Duration, seed []Task) Service {
	coll := store.NewCollection(
		func(t Task) string { return t.ID },
		func(t *Task, id string) { t.ID = id },
	)
	coll.Replace(seed)
	return &service{
		coll: coll,
		syncer: remote.NewSyncer(airtable.TableTasks, client, coll, taskFields,
			notices, log, timeout),
		logger: log,
	}
}

func taskFields(t Task) map[string]any {
	return map[string]any{
		"Title":       t.Title,
		"Description": t.Description,
		"AssignedTo":  t.AssignedTo,
		"CreatedBy":   t.CreatedBy,
		"DueDate":     t.DueDate,
		"Priority":    string(t.Priority),
		"Status":      string(t.Status),
	}
}

func decodeTask(rec airtable.Record) (Task, bool) {
	t := Task{
		ID:          rec.ID,
		Title:       airtable.String(rec.Fields, "Title"),
		Description: airtable.String(rec.Fields, "Description"),
		AssignedTo:  airtable.String(rec.Fields, "AssignedTo"),
		CreatedBy:   airtable.String(rec.Fields, "CreatedBy"),
		DueDate:     airtable.String(rec.Fields, "DueDate"),
		Priority:    Priority(airtable.String(rec.Fields, "Priority")),
		Status:      Status(airtable.String(rec.Fields, "Status")),
		CreatedAt:   rec.CreatedTime,
	}
	if t.Title == "" {
		return Task{}, false
	}
	if !ValidPriority(t.Priority) {
		t.Priority = PriorityMedium
	}
	if !ValidStatus(t.Status) {
		t.Status = StatusTodo
	}
	return t, true
}

func (s *service) Load(ctx context.Context) error {
	return s.syncer.Load(ctx, airtable.ListParams{SortField: "DueDate"}, decodeTask)
}

// List returns tasks most urgent first, then by due date.
func (s *service) List(ctx context.Context, filter Filter) []Task {
	items := s.coll.Filter(func(t Task) bool {
		if filter.AssignedTo != "" && t.AssignedTo != filter.AssignedTo {
			return false
		}
		if filter.Status != "" && t.Status != filter.Status {
			return false
		}
		return true
	})
	sort.SliceStable(items, func(i, j int) bool {
		if priorityRank[items[i].Priority] != priorityRank[items[j].Priority] {
			return priorityRank[items[i].Priority] < priorityRank[items[j].Priority]
		}
		if items[i].DueDate != items[j].DueDate {
			// Tasks without a due date sort last.
			if items[i].DueDate == "" {
				return false
			}
			if items[j].DueDate == "" {
				return true
			}
			return items[i].DueDate < items[j].DueDate
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items
}

func (s *service) Get(ctx context.Context, id string) (Task, error) {
	t, ok := s.coll.Get(id)
	if !ok {
		return Task{}, ErrNotFound
	}
	return t, nil
}

func (s *service) Create(ctx context.Context, req CreateTaskRequest) (Task, error) {
	if req.Title == "" {
		return Task{}, ErrTitleRequired
	}
	if req.Priority != "" && !ValidPriority(req.Priority) {
		return Task{}, ErrBadPriority
	}

	t := Task{
		ID:          store.TempID(),
		Title:       req.Title,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
		CreatedBy:   req.CreatedBy,
		DueDate:     req.DueDate,
		Priority:    req.Priority,
		Status:      StatusTodo,
		CreatedAt:   time.Now(),
	}
	if t.Priority == "" {
		t.Priority = PriorityMedium
	}

	s.coll.Insert(t)
	s.syncer.CreateAsync(t.ID, t)
	return t, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateTaskRequest) (Task, error) {
	if req.Priority != nil && !ValidPriority(*req.Priority) {
		return Task{}, ErrBadPriority
	}
	if req.Status != nil && !ValidStatus(*req.Status) {
		return Task{}, ErrBadStatus
	}
	ok := s.coll.Update(id, func(t *Task) {
		if req.Title != nil && *req.Title != "" {
			t.Title = *req.Title
		}
		if req.Description != nil {
			t.Description = *req.Description
		}
		if req.AssignedTo != nil {
			t.AssignedTo = *req.AssignedTo
		}
		if req.DueDate != nil {
			t.DueDate = *req.DueDate
		}
		if req.Priority != nil {
			t.Priority = *req.Priority
		}
		if req.Status != nil {
			t.Status = *req.Status
		}
	})
	if !ok {
		return Task{}, ErrNotFound
	}
	updated, _ := s.coll.Get(id)
	s.syncer.UpdateAsync(id, taskFields(updated))
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if !s.coll.Delete(id) {
		return ErrNotFound
	}
	s.syncer.DeleteAsync(id)
	return nil
}
