package calendar

import "sort"

// AppearsOn reports whether the event covers the given day. The span is
// inclusive on both ends and compared lexicographically, which is sound
// for the fixed-width date format. An event with no start date is never
// placeable: fail closed, don't panic.
func AppearsOn(e Event, day string) bool {
	if e.Date == "" || day == "" {
		return false
	}
	return e.Date <= day && day <= e.End()
}

// Interval is an inclusive range of row-relative day indices occupied
// by one event.
type Interval struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	ID    string `json:"id"`
}

// Overlaps reports whether two intervals share at least one column.
func (a Interval) Overlaps(b Interval) bool {
	return !(a.End < b.Start || a.Start > b.End)
}

// RowLayout is the lane assignment for one grid row: which lane each
// intersecting event sits in and which columns it occupies. Derived,
// recomputed on every change, never persisted.
type RowLayout struct {
	Row       []string
	Lanes     map[string]int
	Spans     map[string]Interval
	LaneCount int

	events map[string]Event
}

// rowSpan computes the row-relative columns an event occupies, and
// whether it intersects the row at all.
func rowSpan(e Event, row []string) (Interval, bool) {
	start, end := -1, -1
	for i, day := range row {
		if AppearsOn(e, day) {
			if start < 0 {
				start = i
			}
			end = i
		}
	}
	if start < 0 {
		return Interval{}, false
	}
	return Interval{Start: start, End: end, ID: e.ID}, true
}

// laneOrder is the packing policy: earlier row-relative starts first,
// which is what makes greedy first-fit use the minimum number of lanes.
// Everything after the start index is a tie-break among events starting
// in the same column and cannot change the lane count: all-day events
// before timed ones and longer spans before shorter, so multi-day bars
// grab the low lanes and fragment the grid less. The final id tie-break
// only makes the assignment deterministic.
func laneOrder(a, b Event, sa, sb Interval) bool {
	if sa.Start != sb.Start {
		return sa.Start < sb.Start
	}
	if a.AllDay != b.AllDay {
		return a.AllDay
	}
	if la, lb := sa.End-sa.Start, sb.End-sb.Start; la != lb {
		return la > lb
	}
	return a.ID < b.ID
}

// AssignLanes packs the events intersecting a row into lanes by greedy
// first-fit: walk the events in laneOrder and drop each into the lowest
// lane whose occupied ranges it does not overlap. First-fit on
// intervals sorted by start uses the minimum possible number of lanes,
// equal to the deepest stack of mutually overlapping events.
func AssignLanes(row []string, events []Event) RowLayout {
	layout := RowLayout{
		Row:    row,
		Lanes:  make(map[string]int),
		Spans:  make(map[string]Interval),
		events: make(map[string]Event),
	}

	type placed struct {
		event Event
		span  Interval
	}
	var candidates []placed
	for _, e := range events {
		if span, ok := rowSpan(e, row); ok {
			candidates = append(candidates, placed{event: e, span: span})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return laneOrder(candidates[i].event, candidates[j].event,
			candidates[i].span, candidates[j].span)
	})

	var lanes [][]Interval
	for _, c := range candidates {
		lane := -1
		for i, occupied := range lanes {
			free := true
			for _, span := range occupied {
				if span.Overlaps(c.span) {
					free = false
					break
				}
			}
			if free {
				lane = i
				break
			}
		}
		if lane < 0 {
			lanes = append(lanes, nil)
			lane = len(lanes) - 1
		}
		lanes[lane] = append(lanes[lane], c.span)

		layout.Lanes[c.event.ID] = lane
		layout.Spans[c.event.ID] = c.span
		layout.events[c.event.ID] = c.event
	}
	layout.LaneCount = len(lanes)
	return layout
}

// Slot is one lane position within one day cell. Event is nil when the
// lane is empty at this column. IsFirst marks the leftmost on-screen
// column of the event's segment, where title and time are rendered;
// IsLast closes the continuation bar.
type Slot struct {
	Lane    int    `json:"lane"`
	Event   *Event `json:"event,omitempty"`
	IsFirst bool   `json:"is_first,omitempty"`
	IsLast  bool   `json:"is_last,omitempty"`
}

// Cell projects the lane assignment onto one column. visibleLanes caps
// how many lanes are rendered; zero or negative means unbounded. The
// second return value is the overflow count: events assigned to lanes
// past the cap that still cover this column.
func (rl RowLayout) Cell(ci, visibleLanes int) ([]Slot, int) {
	laneLimit := rl.LaneCount
	if visibleLanes > 0 && visibleLanes < laneLimit {
		laneLimit = visibleLanes
	}

	slots := make([]Slot, laneLimit)
	for i := range slots {
		slots[i].Lane = i
	}
	overflow := 0

	for id, lane := range rl.Lanes {
		span := rl.Spans[id]
		if ci < span.Start || ci > span.End {
			continue
		}
		if visibleLanes > 0 && lane >= visibleLanes {
			overflow++
			continue
		}
		e := rl.events[id]
		slots[lane] = Slot{
			Lane:    lane,
			Event:   &e,
			IsFirst: ci == span.Start,
			IsLast:  ci == span.End,
		}
	}
	return slots, overflow
}
