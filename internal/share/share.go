// Package share builds WhatsApp-ready text digests of the dashboard so a
// team can push its schedule or status into a group chat. The texts use
// WhatsApp's *bold* markup and are returned alongside a wa.me deep link.
package share

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/karakusgokhan/team-hub/internal/domain/calendar"
	"github.com/karakusgokhan/team-hub/internal/domain/checkin"
	"github.com/karakusgokhan/team-hub/internal/domain/decision"
	"github.com/karakusgokhan/team-hub/internal/domain/priority"
	"github.com/karakusgokhan/team-hub/internal/domain/task"
	"github.com/karakusgokhan/team-hub/internal/domain/team"
)

// Link returns the wa.me URL that opens WhatsApp with text prefilled.
func Link(text string) string {
	return "https://wa.me/?text=" + url.QueryEscape(text)
}

func shortDate(date string) string {
	t, err := calendar.ParseDate(date)
	if err != nil {
		return date
	}
	return t.Format("Jan 2")
}

// ScheduleText renders the work week starting at start (a Monday) as a
// day-by-day schedule.
func ScheduleText(start string, events []calendar.Event) (string, error) {
	days, err := calendar.WorkWeek(start)
	if err != nil {
		return "", err
	}
	labels := []string{"Mon", "Tue", "Wed", "Thu", "Fri"}

	var blocks []string
	for i, date := range days {
		var lines []string
		for _, e := range events {
			if !calendar.AppearsOn(e, date) {
				continue
			}
			when := e.Time
			if e.AllDay || when == "" {
				when = "All day"
			}
			line := fmt.Sprintf("  📅 %s — %s", when, e.Title)
			if e.Attendees != "" {
				line += " (" + e.Attendees + ")"
			}
			lines = append(lines, line)
		}
		if len(lines) == 0 {
			blocks = append(blocks, fmt.Sprintf("*%s:* No events", labels[i]))
			continue
		}
		blocks = append(blocks, fmt.Sprintf("*%s:*\n%s", labels[i], strings.Join(lines, "\n")))
	}
	header := fmt.Sprintf("📅 *Team Schedule — Week of %s*", shortDate(start))
	return header + "\n\n" + strings.Join(blocks, "\n\n"), nil
}

// StatusText renders today's roster status, listing members who have not
// checked in yet as pending.
func StatusText(now time.Time, members []team.Member, today []checkin.CheckIn) string {
	icons := map[checkin.Status]string{
		checkin.StatusOffice: "🏢",
		checkin.StatusRemote: "🏠",
		checkin.StatusOut:    "🔴",
	}
	labels := map[checkin.Status]string{
		checkin.StatusOffice: "In Office",
		checkin.StatusRemote: "Remote",
		checkin.StatusOut:    "Out",
	}

	byPerson := make(map[string]checkin.CheckIn, len(today))
	for _, c := range today {
		byPerson[c.Person] = c
	}

	var lines []string
	for _, m := range members {
		c, ok := byPerson[m.Name]
		if !ok {
			lines = append(lines, fmt.Sprintf("⏳ %s - Not checked in", m.Name))
			continue
		}
		line := fmt.Sprintf("%s %s - %s", icons[c.Status], m.Name, labels[c.Status])
		if c.Note != "" {
			line += " (" + c.Note + ")"
		}
		lines = append(lines, line)
	}
	header := fmt.Sprintf("📍 *Team Status - %s*", now.Format("Monday, Jan 2"))
	return header + "\n\n" + strings.Join(lines, "\n")
}

// PrioritiesText renders the week's priorities grouped by person. The
// input is expected in board order (person, then sort order).
func PrioritiesText(week string, priorities []priority.Priority) string {
	icons := map[priority.Status]string{
		priority.StatusDone:       "✅",
		priority.StatusInProgress: "🔄",
		priority.StatusTodo:       "⬜",
	}

	var blocks []string
	var person string
	var items []string
	flush := func() {
		if person != "" {
			blocks = append(blocks, fmt.Sprintf("*%s:*\n%s", person, strings.Join(items, "\n")))
		}
	}
	for _, p := range priorities {
		if p.Person != person {
			flush()
			person, items = p.Person, nil
		}
		icon, ok := icons[p.Status]
		if !ok {
			icon = "⬜"
		}
		items = append(items, "  "+icon+" "+p.Priority)
	}
	flush()

	header := fmt.Sprintf("🎯 *Weekly Priorities — Week of %s*", shortDate(week))
	return header + "\n\n" + strings.Join(blocks, "\n\n")
}

// TasksText renders the task list with status icons and due dates.
func TasksText(tasks []task.Task) string {
	icons := map[task.Status]string{
		task.StatusDone:       "✅",
		task.StatusInProgress: "🔄",
		task.StatusBlocked:    "🚫",
		task.StatusTodo:       "⬜",
	}

	var blocks []string
	for _, t := range tasks {
		icon, ok := icons[t.Status]
		if !ok {
			icon = "⬜"
		}
		due := ""
		if t.DueDate != "" {
			due = " · Due " + shortDate(t.DueDate)
		}
		blocks = append(blocks, fmt.Sprintf("%s *%s*\n   → %s%s", icon, t.Title, t.AssignedTo, due))
	}
	return "✅ *Task Tracker*\n\n" + strings.Join(blocks, "\n\n")
}

// DecisionsText renders the decision log.
func DecisionsText(decisions []decision.Decision) string {
	icons := map[decision.Status]string{
		decision.StatusActive:     "✅",
		decision.StatusReversed:   "🔄",
		decision.StatusSuperseded: "❌",
	}

	var blocks []string
	for _, d := range decisions {
		icon, ok := icons[d.Status]
		if !ok {
			icon = "✅"
		}
		blocks = append(blocks, fmt.Sprintf("%s [%s] *%s*\n   By %s | %s", icon, d.Category, d.Title, d.DecidedBy, shortDate(d.Date)))
	}
	return "📋 *Decision Log*\n\n" + strings.Join(blocks, "\n\n")
}
