package priority

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karakusgokhan/team-hub/internal/domain/notice"
	"github.com/karakusgokhan/team-hub/pkg/logger"
)

const week = "2026-02-23"

func newDemoService(seed []Priority) Service {
	return NewService(nil, notice.NewBoard(10), logger.New("error", "console"), 0, seed)
}

func TestListByWeekGroupsByPerson(t *testing.T) {
	svc := newDemoService([]Priority{
		{ID: "p1", Person: "Leyla", Week: week, Priority: "Launch newsletter", SortOrder: 2},
		{ID: "p2", Person: "Esra", Week: week, Priority: "Investor deck", SortOrder: 1},
		{ID: "p3", Person: "Leyla", Week: week, Priority: "Brief agency", SortOrder: 1},
		{ID: "p4", Person: "Esra", Week: "2026-02-16", Priority: "Old item", SortOrder: 1},
	})

	items := svc.ListByWeek(context.Background(), week)
	require.Len(t, items, 3)
	assert.Equal(t, "p2", items[0].ID)
	assert.Equal(t, "p3", items[1].ID)
	assert.Equal(t, "p1", items[2].ID)
}

func TestCreateStartsAsTodoAndAppends(t *testing.T) {
	svc := newDemoService([]Priority{
		{ID: "p1", Person: "Seda", Week: week, Priority: "Store visits", SortOrder: 1},
		{ID: "p2", Person: "Seda", Week: week, Priority: "Stock counts", SortOrder: 2},
	})

	p, err := svc.Create(context.Background(), CreatePriorityRequest{
		Person:   "Seda",
		Week:     week,
		Priority: "Vendor calls",
	})
	require.NoError(t, err)
	assert.Equal(t, StatusTodo, p.Status)
	assert.Equal(t, 3, p.SortOrder)
}

func TestCreateHonorsExplicitSortOrder(t *testing.T) {
	svc := newDemoService(nil)

	p, err := svc.Create(context.Background(), CreatePriorityRequest{
		Person: "Esra", Week: week, Priority: "Board prep", SortOrder: 7,
	})
	require.NoError(t, err)
	assert.Equal(t, 7, p.SortOrder)
}

func TestCreateValidation(t *testing.T) {
	svc := newDemoService(nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreatePriorityRequest{Priority: "No owner"})
	assert.ErrorIs(t, err, ErrPersonRequired)

	_, err = svc.Create(ctx, CreatePriorityRequest{Person: "Esra"})
	assert.ErrorIs(t, err, ErrTextRequired)
}

func TestUpdateMergesFields(t *testing.T) {
	svc := newDemoService([]Priority{
		{ID: "p1", Person: "Leyla", Week: week, Priority: "Brief agency", Status: StatusTodo, SortOrder: 1},
	})
	ctx := context.Background()

	done := StatusDone
	p, err := svc.Update(ctx, "p1", UpdatePriorityRequest{Status: &done})
	require.NoError(t, err)
	assert.Equal(t, StatusDone, p.Status)
	// Untouched fields survive the partial update.
	assert.Equal(t, "Brief agency", p.Priority)
	assert.Equal(t, 1, p.SortOrder)

	bad := Status("blocked")
	_, err = svc.Update(ctx, "p1", UpdatePriorityRequest{Status: &bad})
	assert.ErrorIs(t, err, ErrBadStatus)

	_, err = svc.Update(ctx, "missing", UpdatePriorityRequest{Status: &done})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	svc := newDemoService([]Priority{
		{ID: "p1", Person: "Leyla", Week: week, Priority: "Brief agency", SortOrder: 1},
	})
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, "p1"))
	assert.Empty(t, svc.ListByWeek(ctx, week))
	assert.ErrorIs(t, svc.Delete(ctx, "p1"), ErrNotFound)
}
