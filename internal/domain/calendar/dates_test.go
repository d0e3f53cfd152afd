package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMondayOf(t *testing.T) {
	tests := []struct {
		name string
		day  time.Time
		want string
	}{
		{
			name: "monday maps to itself",
			day:  time.Date(2026, 2, 23, 15, 0, 0, 0, time.Local),
			want: "2026-02-23",
		},
		{
			name: "wednesday maps back",
			day:  time.Date(2026, 2, 25, 0, 0, 0, 0, time.Local),
			want: "2026-02-23",
		},
		{
			name: "sunday belongs to the preceding monday",
			day:  time.Date(2026, 3, 1, 23, 59, 0, 0, time.Local),
			want: "2026-02-23",
		},
		{
			name: "saturday across month boundary",
			day:  time.Date(2026, 2, 28, 10, 0, 0, 0, time.Local),
			want: "2026-02-23",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MondayOf(tt.day))
		})
	}
}

func TestAddDaysAndOffsetWeeks(t *testing.T) {
	got, err := AddDays("2026-02-27", 3)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-02", got)

	got, err = OffsetWeeks("2026-02-23", -1)
	require.NoError(t, err)
	assert.Equal(t, "2026-02-16", got)

	_, err = AddDays("not-a-date", 1)
	assert.Error(t, err)
}

func TestWorkWeek(t *testing.T) {
	days, err := WorkWeek("2026-02-23")
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-02-23", "2026-02-24", "2026-02-25", "2026-02-26", "2026-02-27"}, days)
}

func TestFullWeekCrossesMonthBoundary(t *testing.T) {
	days, err := FullWeek("2026-04-27")
	require.NoError(t, err)
	require.Len(t, days, 7)
	assert.Equal(t, "2026-04-27", days[0])
	assert.Equal(t, "2026-05-03", days[6])
}

func TestMonthGrid(t *testing.T) {
	// February 2026: Feb 1 is a Sunday, so the grid starts on Monday
	// Jan 26 and ends on Sunday Mar 1.
	grid := MonthGrid(2026, time.February)
	require.Len(t, grid, 5)

	first := grid[0]
	assert.Equal(t, "2026-01-26", first[0].Date)
	assert.False(t, first[0].InMonth)
	assert.Equal(t, "2026-02-01", first[6].Date)
	assert.True(t, first[6].InMonth)

	last := grid[len(grid)-1]
	assert.Equal(t, "2026-02-28", last[5].Date)
	assert.True(t, last[5].InMonth)
	assert.Equal(t, "2026-03-01", last[6].Date)
	assert.False(t, last[6].InMonth)

	for _, row := range grid {
		assert.Len(t, row, 7)
	}
}

func TestMonthGridFullWeeksMonth(t *testing.T) {
	// June 2026 runs Mon Jun 1 through Tue Jun 30; the grid ends on
	// Sunday Jul 5.
	grid := MonthGrid(2026, time.June)
	require.Len(t, grid, 5)
	assert.Equal(t, "2026-06-01", grid[0][0].Date)
	assert.True(t, grid[0][0].InMonth)
	assert.Equal(t, "2026-07-05", grid[4][6].Date)
	assert.False(t, grid[4][6].InMonth)
}
