package checkin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karakusgokhan/team-hub/internal/domain/notice"
	"github.com/karakusgokhan/team-hub/pkg/logger"
)

func newDemoService(seed []CheckIn) Service {
	return NewService(nil, notice.NewBoard(10), logger.New("error", "console"), 0, seed)
}

func TestCreateDefaultsDateAndTime(t *testing.T) {
	svc := newDemoService(nil)

	c, err := svc.Create(context.Background(), CreateCheckInRequest{
		Person: "Leyla",
		Status: StatusOffice,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, c.Date)
	assert.Regexp(t, `^\d{2}:\d{2}$`, c.Time)

	// A dateless list query resolves to today as well.
	assert.Len(t, svc.ListByDate(context.Background(), ""), 1)
}

func TestCreateValidation(t *testing.T) {
	svc := newDemoService(nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateCheckInRequest{Status: StatusRemote})
	assert.ErrorIs(t, err, ErrPersonRequired)

	_, err = svc.Create(ctx, CreateCheckInRequest{Person: "Leyla", Status: "commuting"})
	assert.ErrorIs(t, err, ErrBadStatus)
}

func TestCreateReplacesSameDayCheckIn(t *testing.T) {
	svc := newDemoService(nil)
	ctx := context.Background()

	first, err := svc.Create(ctx, CreateCheckInRequest{
		Person: "Pınar", Status: StatusRemote, Date: "2026-02-23", Time: "08:45",
	})
	require.NoError(t, err)

	second, err := svc.Create(ctx, CreateCheckInRequest{
		Person: "Pınar", Status: StatusOffice, Note: "back after lunch",
		Date: "2026-02-23", Time: "13:10",
	})
	require.NoError(t, err)

	entries := svc.ListByDate(ctx, "2026-02-23")
	require.Len(t, entries, 1)
	assert.Equal(t, second.ID, entries[0].ID)
	assert.NotEqual(t, first.ID, entries[0].ID)
	assert.Equal(t, StatusOffice, entries[0].Status)
	assert.Equal(t, "back after lunch", entries[0].Note)
}

func TestCreateKeepsOtherDaysAndPeople(t *testing.T) {
	svc := newDemoService([]CheckIn{
		{ID: "c1", Person: "Seda", Status: StatusOut, Date: "2026-02-23", Time: "09:00"},
		{ID: "c2", Person: "Pınar", Status: StatusOffice, Date: "2026-02-22", Time: "09:05"},
	})
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateCheckInRequest{
		Person: "Pınar", Status: StatusRemote, Date: "2026-02-23",
	})
	require.NoError(t, err)

	assert.Len(t, svc.ListByDate(ctx, "2026-02-23"), 2)
	assert.Len(t, svc.ListByDate(ctx, "2026-02-22"), 1)
}
