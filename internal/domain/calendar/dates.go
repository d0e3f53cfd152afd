package calendar

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates. Fixed-width and
// zero-padded, so lexicographic order equals chronological order and
// day-membership checks can compare strings directly.
const DateLayout = "2006-01-02"

// WorkWeekDays is the width of the week-view row (Mon through Fri).
const WorkWeekDays = 5

// ParseDate parses a YYYY-MM-DD string in local time. Date-only values
// never go through UTC: converting through toISOString-style UTC is
// exactly the bug that put events on the wrong day in timezones ahead
// of UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// FormatDate renders a time as a local YYYY-MM-DD date string.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Today returns today's local date string.
func Today() string {
	return FormatDate(time.Now())
}

// MondayOf returns the Monday of the week containing t.
func MondayOf(t time.Time) string {
	offset := int(t.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7 // Sunday belongs to the preceding Monday's week
	}
	return FormatDate(t.AddDate(0, 0, -offset))
}

// AddDays offsets a date string by n days.
func AddDays(date string, n int) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return FormatDate(t.AddDate(0, 0, n)), nil
}

// OffsetWeeks offsets a Monday date string by n weeks, positive toward
// the future.
func OffsetWeeks(monday string, n int) (string, error) {
	return AddDays(monday, n*7)
}

// weekFrom returns n consecutive day strings starting at start.
func weekFrom(start string, n int) ([]string, error) {
	t, err := ParseDate(start)
	if err != nil {
		return nil, err
	}
	days := make([]string, n)
	for i := 0; i < n; i++ {
		days[i] = FormatDate(t.AddDate(0, 0, i))
	}
	return days, nil
}

// WorkWeek returns the Mon-Fri day strings of the week starting at the
// given Monday.
func WorkWeek(monday string) ([]string, error) {
	return weekFrom(monday, WorkWeekDays)
}

// FullWeek returns all seven day strings of the week starting at the
// given Monday.
func FullWeek(monday string) ([]string, error) {
	return weekFrom(monday, 7)
}

// Cell is one day cell of a grid, derived fresh on every layout and
// never persisted.
type Cell struct {
	Date    string `json:"date"`
	InMonth bool   `json:"in_month"`
}

// MonthGrid returns the week rows (Monday-first, 7 cells each) covering
// the given month, including the leading and trailing out-of-month days
// needed to square off the grid.
func MonthGrid(year int, month time.Month) [][]Cell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	start, _ := ParseDate(MondayOf(first)) // MondayOf output always parses

	var rows [][]Cell
	day := start
	for {
		row := make([]Cell, 7)
		for i := 0; i < 7; i++ {
			row[i] = Cell{
				Date:    FormatDate(day),
				InMonth: day.Month() == month && day.Year() == year,
			}
			day = day.AddDate(0, 0, 1)
		}
		rows = append(rows, row)
		if day.Month() != month || day.Year() != year {
			break
		}
	}
	return rows
}
