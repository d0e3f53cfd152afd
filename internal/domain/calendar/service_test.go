package calendar

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karakusgokhan/team-hub/internal/domain/notice"
	"github.com/karakusgokhan/team-hub/internal/infrastructure/store"
	"github.com/karakusgokhan/team-hub/pkg/logger"
)

func newDemoService(seed []Event) Service {
	return NewService(nil, notice.NewBoard(10), logger.New("error", "console"), 0, seed)
}

func TestCreateEventDemoLifecycle(t *testing.T) {
	svc := newDemoService(nil)
	ctx := context.Background()

	created, err := svc.CreateEvent(ctx, CreateEventRequest{
		Title: "Planning",
		Date:  "2026-02-23",
		Time:  "10:00",
	})
	require.NoError(t, err)
	// Demo mode confirms immediately under a temporary id.
	assert.True(t, store.IsTempID(created.ID))
	assert.Equal(t, DefaultColor, created.Color)

	got, err := svc.GetEvent(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Planning", got.Title)
	assert.Len(t, svc.ListEvents(ctx), 1)
}

func TestCreateEventValidation(t *testing.T) {
	svc := newDemoService(nil)
	ctx := context.Background()

	_, err := svc.CreateEvent(ctx, CreateEventRequest{Date: "2026-02-23"})
	assert.ErrorIs(t, err, ErrTitleRequired)

	_, err = svc.CreateEvent(ctx, CreateEventRequest{Title: "x"})
	assert.ErrorIs(t, err, ErrDateRequired)
}

func TestCreateEventMalformedSpanBecomesSingleDay(t *testing.T) {
	svc := newDemoService(nil)

	created, err := svc.CreateEvent(context.Background(), CreateEventRequest{
		Title:   "Backwards",
		Date:    "2026-02-25",
		EndDate: "2026-02-23",
	})
	require.NoError(t, err)
	assert.Empty(t, created.EndDate)
	assert.False(t, created.MultiDay())
}

func TestUpdateEventKeepsIdentity(t *testing.T) {
	svc := newDemoService(nil)
	ctx := context.Background()

	created, err := svc.CreateEvent(ctx, CreateEventRequest{Title: "Sync", Date: "2026-02-23"})
	require.NoError(t, err)

	title := "Weekly Sync"
	end := "2026-02-24"
	updated, err := svc.UpdateEvent(ctx, created.ID, UpdateEventRequest{Title: &title, EndDate: &end})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Weekly Sync", updated.Title)
	assert.Equal(t, "2026-02-24", updated.EndDate)
	// No duplicate entry after the update.
	assert.Len(t, svc.ListEvents(ctx), 1)
}

func TestUpdateEventRejectsClearedRequiredFields(t *testing.T) {
	svc := newDemoService(nil)
	ctx := context.Background()

	created, err := svc.CreateEvent(ctx, CreateEventRequest{Title: "Standup", Date: "2026-02-23"})
	require.NoError(t, err)

	empty := ""
	_, err = svc.UpdateEvent(ctx, created.ID, UpdateEventRequest{Title: &empty})
	assert.ErrorIs(t, err, ErrTitleRequired)

	_, err = svc.UpdateEvent(ctx, created.ID, UpdateEventRequest{Date: &empty})
	assert.ErrorIs(t, err, ErrDateRequired)

	// The stored event is untouched by the rejected patches.
	got, err := svc.GetEvent(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Standup", got.Title)
	assert.Equal(t, "2026-02-23", got.Date)
}

func TestUpdateEventUnknownID(t *testing.T) {
	svc := newDemoService(nil)
	title := "x"
	_, err := svc.UpdateEvent(context.Background(), "nope", UpdateEventRequest{Title: &title})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteEvent(t *testing.T) {
	svc := newDemoService(nil)
	ctx := context.Background()

	created, err := svc.CreateEvent(ctx, CreateEventRequest{Title: "Gone", Date: "2026-02-23"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEvent(ctx, created.ID))
	_, err = svc.GetEvent(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.DeleteEvent(ctx, created.ID), ErrNotFound)
}

func TestWeekReflectsMutations(t *testing.T) {
	svc := newDemoService([]Event{
		{ID: "e1", Title: "Standup", Date: "2026-02-23", Time: "09:30"},
	})
	ctx := context.Background()

	_, err := svc.CreateEvent(ctx, CreateEventRequest{
		Title: "Offsite", Date: "2026-02-24", EndDate: "2026-02-26", AllDay: true,
	})
	require.NoError(t, err)

	view, err := svc.Week(ctx, "2026-02-23")
	require.NoError(t, err)

	// Monday holds the standup only, Tuesday starts the offsite bar.
	monday := view.Row.Cells[0]
	require.Len(t, monday.Slots, 1)
	assert.Equal(t, "Standup", monday.Slots[0].Event.Title)

	tuesday := view.Row.Cells[1]
	require.Len(t, tuesday.Slots, 1)
	assert.Equal(t, "Offsite", tuesday.Slots[0].Event.Title)
	assert.True(t, tuesday.Slots[0].IsFirst)

	thursday := view.Row.Cells[3]
	require.Len(t, thursday.Slots, 1)
	assert.True(t, thursday.Slots[0].IsLast)
}

func TestMonthReflectsSeed(t *testing.T) {
	svc := newDemoService([]Event{
		{ID: "e1", Title: "Release", Date: "2026-02-19", EndDate: "2026-02-24"},
	})

	view := svc.Month(context.Background(), 2026, 2)
	require.Len(t, view.Rows, 5)

	// The span restarts its segment on the next grid row.
	row3Thu := view.Rows[3].Cells[3]
	require.Len(t, row3Thu.Slots, 1)
	assert.True(t, row3Thu.Slots[0].IsFirst)

	row4Mon := view.Rows[4].Cells[0]
	require.Len(t, row4Mon.Slots, 1)
	assert.True(t, row4Mon.Slots[0].IsFirst)
}
