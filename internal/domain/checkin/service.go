package checkin

import (
	"context"
	"fmt"
	"time"

	"github.com/karakusgokhan/team-hub/internal/domain/calendar"
	"github.com/karakusgokhan/team-hub/internal/domain/notice"
	"github.com/karakusgokhan/team-hub/internal/infrastructure/airtable"
	"github.com/karakusgokhan/team-hub/internal/infrastructure/remote"
	"github.com/karakusgokhan/team-hub/internal/infrastructure/store"
	"github.com/karakusgokhan/team-hub/pkg/logger"
	"go.uber.org/zap"
)

// Service handles daily check-ins.
type Service interface {
	Load(ctx context.Context) error
	ListByDate(ctx context.Context, date string) []CheckIn
	Create(ctx context.Context, req CreateCheckInRequest) (CheckIn, error)
}

type service struct {
	coll   *store.Collection[CheckIn]
	syncer *remote.Syncer[CheckIn]
	logger *logger.Logger
}

// NewService builds the check-in service. client may be nil for demo mode.
func NewService(client *airtable.Client, notices *notice.Board, log *logger.Logger, timeout time.Duration, seed []CheckIn) Service {
	coll := store.NewCollection(
		func(c CheckIn) string { return c.ID },
		func(c *CheckIn, id string) { c.ID = id },
	)
	coll.Replace(seed)
	return &service{
		coll: coll,
		syncer: remote.NewSyncer(airtable.TableCheckIns, client, coll, checkInFields,
			notices, log, timeout),
		logger: log,
	}
}

func checkInFields(c CheckIn) map[string]any {
	fields := map[string]any{
		"Person": c.Person,
		"Status": string(c.Status),
		"Date":   c.Date,
		"Time":   c.Time,
	}
	if c.Note != "" {
		fields["Note"] = c.Note
	}
	return fields
}

func decodeCheckIn(rec airtable.Record) (CheckIn, bool) {
	c := CheckIn{
		ID:     rec.ID,
		Person: airtable.String(rec.Fields, "Person"),
		Status: Status(airtable.String(rec.Fields, "Status")),
		Note:   airtable.String(rec.Fields, "Note"),
		Date:   airtable.String(rec.Fields, "Date"),
		Time:   airtable.String(rec.Fields, "Time"),
	}
	if c.Person == "" || c.Date == "" {
		return CheckIn{}, false
	}
	return c, true
}

func (s *service) Load(ctx context.Context) error {
	// Only today's check-ins matter; yesterday is gone.
	formula := fmt.Sprintf("{Date} = '%s'", calendar.Today())
	return s.syncer.Load(ctx, airtable.ListParams{FilterByFormula: formula}, decodeCheckIn)
}

func (s *service) ListByDate(ctx context.Context, date string) []CheckIn {
	if date == "" {
		date = calendar.Today()
	}
	return s.coll.Filter(func(c CheckIn) bool { return c.Date == date })
}

func (s *service) Create(ctx context.Context, req CreateCheckInRequest) (CheckIn, error) {
	if req.Person == "" {
		return CheckIn{}, ErrPersonRequired
	}
	if !ValidStatus(req.Status) {
		return CheckIn{}, ErrBadStatus
	}

	now := time.Now()
	c := CheckIn{
		ID:     store.TempID(),
		Person: req.Person,
		Status: req.Status,
		Note:   req.Note,
		Date:   req.Date,
		Time:   req.Time,
	}
	if c.Date == "" {
		c.Date = calendar.Today()
	}
	if c.Time == "" {
		c.Time = now.Format("15:04")
	}

	// Checking in again replaces the earlier check-in for the day.
	for _, prev := range s.coll.Filter(func(x CheckIn) bool {
		return x.Person == c.Person && x.Date == c.Date
	}) {
		s.coll.Delete(prev.ID)
		s.syncer.DeleteAsync(prev.ID)
	}

	s.coll.Insert(c)
	s.syncer.CreateAsync(c.ID, c)
	s.logger.Info("check-in recorded",
		zap.String("person", c.Person),
		zap.String("status", string(c.Status)),
	)
	return c, nil
}
