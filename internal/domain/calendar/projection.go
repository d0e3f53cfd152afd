package calendar

import "time"

// MonthVisibleLanes is the lane cap in month view, where cell height is
// fixed and extra events collapse into a "+N more" count. Week view has
// no cap since its lanes stack with page scroll.
const MonthVisibleLanes = 3

// CellView is one rendered day cell: the lane slots visible in it plus
// the overflow count.
type CellView struct {
	Date     string `json:"date"`
	InMonth  bool   `json:"in_month"`
	Today    bool   `json:"today"`
	Slots    []Slot `json:"slots"`
	Overflow int    `json:"overflow"`
}

// RowView is one laid-out grid row.
type RowView struct {
	Cells     []CellView `json:"cells"`
	LaneCount int        `json:"lane_count"`
}

// WeekView lays out the Mon-Fri work week starting at the given Monday.
// All lanes are visible.
type WeekView struct {
	Start string  `json:"start"`
	Row   RowView `json:"row"`
}

// MonthView lays out a full month, one independently packed row per
// week. A multi-week event restarts its segment (IsFirst true again) at
// the first column of each row it reaches.
type MonthView struct {
	Year  int       `json:"year"`
	Month int       `json:"month"`
	Rows  []RowView `json:"rows"`
}

func projectRow(cells []Cell, layout RowLayout, visibleLanes int) RowView {
	today := Today()
	view := RowView{
		Cells:     make([]CellView, len(cells)),
		LaneCount: layout.LaneCount,
	}
	for i, cell := range cells {
		slots, overflow := layout.Cell(i, visibleLanes)
		view.Cells[i] = CellView{
			Date:     cell.Date,
			InMonth:  cell.InMonth,
			Today:    cell.Date == today,
			Slots:    slots,
			Overflow: overflow,
		}
	}
	return view
}

// BuildWeekView computes the work-week layout for the week starting at
// monday. Events outside the row are never laid out and never consume a
// lane.
func BuildWeekView(monday string, events []Event) (WeekView, error) {
	row, err := WorkWeek(monday)
	if err != nil {
		return WeekView{}, err
	}
	cells := make([]Cell, len(row))
	for i, d := range row {
		cells[i] = Cell{Date: d, InMonth: true}
	}
	layout := AssignLanes(row, events)
	return WeekView{Start: monday, Row: projectRow(cells, layout, 0)}, nil
}

// BuildMonthView computes the month layout. Each week row is laid out
// independently with the month-view lane cap.
func BuildMonthView(year int, month time.Month, events []Event) MonthView {
	grid := MonthGrid(year, month)
	view := MonthView{Year: year, Month: int(month), Rows: make([]RowView, len(grid))}
	for ri, cells := range grid {
		row := make([]string, len(cells))
		for i, c := range cells {
			row[i] = c.Date
		}
		layout := AssignLanes(row, events)
		view.Rows[ri] = projectRow(cells, layout, MonthVisibleLanes)
	}
	return view
}
