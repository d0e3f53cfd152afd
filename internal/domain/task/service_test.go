package task

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karakusgokhan/team-hub/internal/domain/notice"
	"github.com/karakusgokhan/team-hub/pkg/logger"
)

func newDemoService(seed []Task) Service {
	return NewService(nil, notice.NewBoard(10), logger.New("error", "console"), 0, seed)
}

func seedTasks() []Task {
	created := time.Date(2026, 2, 20, 10, 0, 0, 0, time.Local)
	return []Task{
		{ID: "t1", Title: "Renew hosting", AssignedTo: "Gökhan", Priority: PriorityLow, Status: StatusTodo, DueDate: "2026-03-10", CreatedAt: created},
		{ID: "t2", Title: "Fix checkout bug", AssignedTo: "Gökhan", Priority: PriorityUrgent, Status: StatusInProgress, DueDate: "2026-02-24", CreatedAt: created},
		{ID: "t3", Title: "Draft Q2 plan", AssignedTo: "Esra", Priority: PriorityHigh, Status: StatusTodo, CreatedAt: created},
		{ID: "t4", Title: "Order packaging", AssignedTo: "Seda", Priority: PriorityHigh, Status: StatusDone, DueDate: "2026-02-25", CreatedAt: created},
	}
}

func TestListOrdersByUrgencyThenDueDate(t *testing.T) {
	svc := newDemoService(seedTasks())

	items := svc.List(context.Background(), Filter{})
	require.Len(t, items, 4)
	assert.Equal(t, "t2", items[0].ID)
	// Equal priority: the dated task comes before the undated one.
	assert.Equal(t, "t4", items[1].ID)
	assert.Equal(t, "t3", items[2].ID)
	assert.Equal(t, "t1", items[3].ID)
}

func TestListFilters(t *testing.T) {
	svc := newDemoService(seedTasks())
	ctx := context.Background()

	mine := svc.List(ctx, Filter{AssignedTo: "Gökhan"})
	require.Len(t, mine, 2)
	assert.Equal(t, "t2", mine[0].ID)

	open := svc.List(ctx, Filter{Status: StatusTodo})
	require.Len(t, open, 2)

	both := svc.List(ctx, Filter{AssignedTo: "Gökhan", Status: StatusTodo})
	require.Len(t, both, 1)
	assert.Equal(t, "t1", both[0].ID)
}

func TestCreateDefaults(t *testing.T) {
	svc := newDemoService(nil)

	created, err := svc.Create(context.Background(), CreateTaskRequest{
		Title:     "Call the printer",
		CreatedBy: "Esra",
	})
	require.NoError(t, err)
	assert.Equal(t, PriorityMedium, created.Priority)
	assert.Equal(t, StatusTodo, created.Status)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Call the printer", got.Title)
}

func TestCreateValidation(t *testing.T) {
	svc := newDemoService(nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateTaskRequest{})
	assert.ErrorIs(t, err, ErrTitleRequired)

	_, err = svc.Create(ctx, CreateTaskRequest{Title: "x", Priority: "asap"})
	assert.ErrorIs(t, err, ErrBadPriority)
}

func TestUpdateMergesFields(t *testing.T) {
	svc := newDemoService(seedTasks())
	ctx := context.Background()

	done := StatusDone
	due := "2026-02-27"
	updated, err := svc.Update(ctx, "t2", UpdateTaskRequest{Status: &done, DueDate: &due})
	require.NoError(t, err)
	assert.Equal(t, StatusDone, updated.Status)
	assert.Equal(t, "2026-02-27", updated.DueDate)
	assert.Equal(t, "Fix checkout bug", updated.Title)
	assert.Equal(t, PriorityUrgent, updated.Priority)

	bad := Status("paused")
	_, err = svc.Update(ctx, "t2", UpdateTaskRequest{Status: &bad})
	assert.ErrorIs(t, err, ErrBadStatus)

	_, err = svc.Update(ctx, "missing", UpdateTaskRequest{Status: &done})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOverdue(t *testing.T) {
	today := "2026-02-23"

	overdue := Task{DueDate: "2026-02-20", Status: StatusInProgress}
	assert.True(t, overdue.Overdue(today))

	finished := Task{DueDate: "2026-02-20", Status: StatusDone}
	assert.False(t, finished.Overdue(today))

	undated := Task{Status: StatusTodo}
	assert.False(t, undated.Overdue(today))
}

func TestDelete(t *testing.T) {
	svc := newDemoService(seedTasks())
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, "t1"))
	_, err := svc.Get(ctx, "t1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, "t1"), ErrNotFound)
}
