package calendar

import (
	"context"
	"time"

	"github.com/karakusgokhan/team-hub/internal/domain/notice"
	"github.com/karakusgokhan/team-hub/internal/infrastructure/airtable"
	"github.com/karakusgokhan/team-hub/internal/infrastructure/remote"
	"github.com/karakusgokhan/team-hub/internal/infrastructure/store"
	"github.com/karakusgokhan/team-hub/pkg/logger"
	"go.uber.org/zap"
)

// Service is the business surface for calendar events and their layout.
type Service interface {
	Load(ctx context.Context) error
	ListEvents(ctx context.Context) []Event
	GetEvent(ctx context.Context, id string) (Event, error)
	CreateEvent(ctx context.Context, req CreateEventRequest) (Event, error)
	UpdateEvent(ctx context.Context, id string, req UpdateEventRequest) (Event, error)
	DeleteEvent(ctx context.Context, id string) error
	Week(ctx context.Context, monday string) (WeekView, error)
	Month(ctx context.Context, year int, month time.Month) MonthView
}

type service struct {
	coll   *store.Collection[Event]
	syncer *remote.Syncer[Event]
	logger *logger.Logger
}

// NewService builds the calendar service. client may be nil for demo
// mode; seed provides the initial dataset either way.
func NewService(client *airtable.Client, notices *notice.Board, log *logger.Logger, timeout time.Duration, seed []Event) Service {
	coll := store.NewCollection(
		func(e Event) string { return e.ID },
		func(e *Event, id string) { e.ID = id },
	)
	coll.Replace(seed)
	return &service{
		coll: coll,
		syncer: remote.NewSyncer(airtable.TableEvents, client, coll, eventFields,
			notices, log, timeout),
		logger: log,
	}
}

func eventFields(e Event) map[string]any {
	return map[string]any{
		"Title":     e.Title,
		"Date":      e.Date,
		"EndDate":   e.EndDate,
		"AllDay":    e.AllDay,
		"Time":      e.Time,
		"Duration":  e.Duration,
		"Attendees": e.Attendees,
		"Color":     e.Color,
	}
}

func decodeEvent(rec airtable.Record) (Event, bool) {
	e := Event{
		ID:        rec.ID,
		Title:     airtable.String(rec.Fields, "Title"),
		Date:      airtable.String(rec.Fields, "Date"),
		EndDate:   airtable.String(rec.Fields, "EndDate"),
		AllDay:    airtable.Bool(rec.Fields, "AllDay"),
		Time:      airtable.String(rec.Fields, "Time"),
		Duration:  airtable.Int(rec.Fields, "Duration"),
		Attendees: airtable.String(rec.Fields, "Attendees"),
		Color:     NormalizeColor(airtable.String(rec.Fields, "Color")),
	}
	// Rows missing the required fields are unplaceable; drop them
	// instead of letting them poison the layout.
	if e.Title == "" || e.Date == "" {
		return Event{}, false
	}
	return e, true
}

func (s *service) Load(ctx context.Context) error {
	return s.syncer.Load(ctx, airtable.ListParams{SortField: "Date"}, decodeEvent)
}

func (s *service) ListEvents(ctx context.Context) []Event {
	return s.coll.Snapshot()
}

func (s *service) GetEvent(ctx context.Context, id string) (Event, error) {
	e, ok := s.coll.Get(id)
	if !ok {
		return Event{}, ErrNotFound
	}
	return e, nil
}

func (s *service) CreateEvent(ctx context.Context, req CreateEventRequest) (Event, error) {
	e := Event{
		ID:        store.TempID(),
		Title:     req.Title,
		Date:      req.Date,
		EndDate:   req.EndDate,
		AllDay:    req.AllDay,
		Time:      req.Time,
		Duration:  req.Duration,
		Attendees: req.Attendees,
		Color:     NormalizeColor(req.Color),
	}
	if e.EndDate != "" && e.EndDate < e.Date {
		// Malformed span from user input: treat as single-day.
		e.EndDate = ""
	}
	if err := e.Validate(); err != nil {
		return Event{}, err
	}

	s.coll.Insert(e)
	s.syncer.CreateAsync(e.ID, e)
	s.logger.Info("event created",
		zap.String("id", e.ID),
		zap.String("date", e.Date),
		zap.Bool("live", s.syncer.Live()),
	)
	return e, nil
}

func (s *service) UpdateEvent(ctx context.Context, id string, req UpdateEventRequest) (Event, error) {
	current, ok := s.coll.Get(id)
	if !ok {
		return Event{}, ErrNotFound
	}

	// Patch a copy first; nothing is stored or pushed until the result
	// validates.
	e := current
	if req.Title != nil {
		e.Title = *req.Title
	}
	if req.Date != nil {
		e.Date = *req.Date
	}
	if req.EndDate != nil {
		e.EndDate = *req.EndDate
	}
	if req.AllDay != nil {
		e.AllDay = *req.AllDay
	}
	if req.Time != nil {
		e.Time = *req.Time
	}
	if req.Duration != nil {
		e.Duration = *req.Duration
	}
	if req.Attendees != nil {
		e.Attendees = *req.Attendees
	}
	if req.Color != nil {
		e.Color = NormalizeColor(*req.Color)
	}
	if e.EndDate != "" && e.EndDate < e.Date {
		e.EndDate = ""
	}
	if err := e.Validate(); err != nil {
		return Event{}, err
	}

	if !s.coll.Update(id, func(stored *Event) { *stored = e }) {
		return Event{}, ErrNotFound
	}
	s.syncer.UpdateAsync(id, eventFields(e))
	return e, nil
}

func (s *service) DeleteEvent(ctx context.Context, id string) error {
	if !s.coll.Delete(id) {
		return ErrNotFound
	}
	s.syncer.DeleteAsync(id)
	return nil
}

func (s *service) Week(ctx context.Context, monday string) (WeekView, error) {
	return BuildWeekView(monday, s.coll.Snapshot())
}

func (s *service) Month(ctx context.Context, year int, month time.Month) MonthView {
	return BuildMonthView(year, month, s.coll.Snapshot())
}
