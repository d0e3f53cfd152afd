package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWeekView(t *testing.T) {
	events := []Event{
		{ID: "A", Title: "offsite", Date: "2026-02-23", EndDate: "2026-02-25"},
		{ID: "B", Title: "standup", Date: "2026-02-24"},
		{ID: "sat", Title: "weekend", Date: "2026-02-28"},
	}
	view, err := BuildWeekView("2026-02-23", events)
	require.NoError(t, err)

	require.Len(t, view.Row.Cells, WorkWeekDays)
	assert.Equal(t, 2, view.Row.LaneCount)

	// Monday: only the bar, lane 1 empty.
	mon := view.Row.Cells[0]
	require.NotNil(t, mon.Slots[0].Event)
	assert.Equal(t, "A", mon.Slots[0].Event.ID)
	assert.True(t, mon.Slots[0].IsFirst)
	assert.False(t, mon.Slots[0].IsLast)

	// Tuesday: bar continues (no text), standup below it.
	tue := view.Row.Cells[1]
	require.NotNil(t, tue.Slots[0].Event)
	assert.False(t, tue.Slots[0].IsFirst)
	require.NotNil(t, tue.Slots[1].Event)
	assert.Equal(t, "B", tue.Slots[1].Event.ID)
	assert.True(t, tue.Slots[1].IsFirst)
	assert.True(t, tue.Slots[1].IsLast)

	// Week view has no lane cap, so nothing ever overflows.
	for _, cell := range view.Row.Cells {
		assert.Zero(t, cell.Overflow)
	}

	// The Saturday event is outside the work-week row entirely.
	for _, cell := range view.Row.Cells {
		for _, slot := range cell.Slots {
			if slot.Event != nil {
				assert.NotEqual(t, "sat", slot.Event.ID)
			}
		}
	}
}

func TestBuildWeekViewBadStart(t *testing.T) {
	_, err := BuildWeekView("02/23/2026", nil)
	assert.Error(t, err)
}

func TestBuildMonthViewMultiWeekEventRestartsPerRow(t *testing.T) {
	// Thu Feb 19 through Tue Feb 24 crosses the week boundary between
	// the grid's third and fourth rows. Each row is laid out
	// independently, so the segment closes at Sunday and reopens with
	// IsFirst at the next Monday.
	events := []Event{
		{ID: "trip", Title: "field trip", Date: "2026-02-19", EndDate: "2026-02-24"},
	}
	view := BuildMonthView(2026, time.February, events)
	require.Len(t, view.Rows, 5)

	// Row 3 holds Feb 16-22: the segment runs Thu..Sun.
	row3 := view.Rows[3]
	thu := row3.Cells[3]
	require.NotEmpty(t, thu.Slots)
	require.NotNil(t, thu.Slots[0].Event)
	assert.True(t, thu.Slots[0].IsFirst)
	assert.False(t, thu.Slots[0].IsLast)
	sun := row3.Cells[6]
	require.NotNil(t, sun.Slots[0].Event)
	assert.False(t, sun.Slots[0].IsFirst)
	assert.True(t, sun.Slots[0].IsLast, "segment must close at the row boundary")

	// Row 4 holds Feb 23-Mar 1: the segment restarts at Monday.
	row4 := view.Rows[4]
	mon := row4.Cells[0]
	require.NotEmpty(t, mon.Slots)
	require.NotNil(t, mon.Slots[0].Event)
	assert.True(t, mon.Slots[0].IsFirst, "segment must restart at the next row")
	tue := row4.Cells[1]
	require.NotNil(t, tue.Slots[0].Event)
	assert.True(t, tue.Slots[0].IsLast)
	wed := row4.Cells[2]
	for _, slot := range wed.Slots {
		assert.Nil(t, slot.Event)
	}
}

func TestBuildMonthViewOverflow(t *testing.T) {
	day := "2026-02-25"
	events := []Event{
		{ID: "a", Title: "one", Date: day},
		{ID: "b", Title: "two", Date: day},
		{ID: "c", Title: "three", Date: day},
		{ID: "d", Title: "four", Date: day},
		{ID: "e", Title: "five", Date: day},
	}
	view := BuildMonthView(2026, time.February, events)

	// Feb 25 is the Wednesday of row 4 (Feb 23-Mar 1).
	cell := view.Rows[4].Cells[2]
	assert.Equal(t, day, cell.Date)
	assert.Len(t, cell.Slots, MonthVisibleLanes)
	assert.Equal(t, 2, cell.Overflow)
}

func TestBuildMonthViewMarksOutOfMonthCells(t *testing.T) {
	view := BuildMonthView(2026, time.February, nil)
	assert.False(t, view.Rows[0].Cells[0].InMonth) // Jan 26
	assert.True(t, view.Rows[0].Cells[6].InMonth)  // Feb 1
	assert.False(t, view.Rows[4].Cells[6].InMonth) // Mar 1
}
