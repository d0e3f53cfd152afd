package demo

import (
	"time"

	"github.com/karakusgokhan/team-hub/internal/domain/calendar"
	"github.com/karakusgokhan/team-hub/internal/domain/checkin"
	"github.com/karakusgokhan/team-hub/internal/domain/decision"
	"github.com/karakusgokhan/team-hub/internal/domain/message"
	"github.com/karakusgokhan/team-hub/internal/domain/priority"
	"github.com/karakusgokhan/team-hub/internal/domain/task"
	"github.com/karakusgokhan/team-hub/internal/domain/team"
)

// Seed is the dataset served when no remote store is configured. Dates
// are generated relative to the current week so the calendar and the
// priority board always have something current to show.
type Seed struct {
	Members    []team.Member
	CheckIns   []checkin.CheckIn
	Priorities []priority.Priority
	Messages   []message.Message
	Decisions  []decision.Decision
	Tasks      []task.Task
	Events     []calendar.Event
}

// NewSeed builds the demo dataset anchored at now.
func NewSeed(now time.Time) *Seed {
	monday := calendar.MondayOf(now)
	day := func(offset int) string {
		d, _ := calendar.AddDays(monday, offset)
		return d
	}

	return &Seed{
		Members:    members(),
		CheckIns:   nil, // nobody has checked in yet today
		Priorities: priorities(monday),
		Messages:   messages(now),
		Decisions:  decisions(),
		Tasks:      tasks(now),
		Events:     events(day),
	}
}

func members() []team.Member {
	return []team.Member{
		{ID: "1", Name: "Esra", Role: "Founder", Avatar: "E", Color: "#D4634B"},
		{ID: "2", Name: "Gökhan", Role: "Director", Avatar: "G", Color: "#4B8BD4"},
		{ID: "3", Name: "Leyla", Role: "Marketing & Communications", Avatar: "L", Color: "#8B5CF6"},
		{ID: "4", Name: "Pınar", Role: "Digital Development Manager", Avatar: "P", Color: "#10B981"},
		{ID: "5", Name: "Seda", Role: "Local Management", Avatar: "S", Color: "#F59E0B"},
	}
}

func priorities(week string) []priority.Priority {
	mk := func(id, person, text string, status priority.Status, order int) priority.Priority {
		return priority.Priority{ID: id, Person: person, Week: week, Priority: text, Status: status, SortOrder: order}
	}
	return []priority.Priority{
		mk("p1", "Leyla", "Finalize Q1 campaign brief", priority.StatusDone, 1),
		mk("p2", "Leyla", "Social media content calendar", priority.StatusInProgress, 2),
		mk("p3", "Leyla", "Press release for partnership", priority.StatusTodo, 3),
		mk("p4", "Leyla", "Review brand guidelines update", priority.StatusInProgress, 4),
		mk("p5", "Pınar", "Website migration testing", priority.StatusInProgress, 1),
		mk("p6", "Pınar", "CRM integration review", priority.StatusTodo, 2),
		mk("p7", "Pınar", "Analytics dashboard setup", priority.StatusDone, 3),
		mk("p8", "Seda", "Local partner meetings", priority.StatusInProgress, 1),
		mk("p9", "Seda", "Community event planning", priority.StatusInProgress, 2),
		mk("p10", "Seda", "Monthly field report", priority.StatusTodo, 3),
		mk("p11", "Esra", "Investor update", priority.StatusDone, 1),
		mk("p12", "Esra", "Hiring plan review", priority.StatusInProgress, 2),
		mk("p13", "Esra", "Team retreat follow-up", priority.StatusTodo, 3),
		mk("p14", "Gökhan", "TeamHub deployment", priority.StatusInProgress, 1),
		mk("p15", "Gökhan", "Q1 budget review", priority.StatusDone, 2),
		mk("p16", "Gökhan", "Performance review cycle", priority.StatusTodo, 3),
	}
}

func messages(now time.Time) []message.Message {
	hoursAgo := func(h int) time.Time { return now.Add(-time.Duration(h) * time.Hour) }
	return []message.Message{
		{ID: "m1", Person: "Esra", Text: "Great work on the partnership announcement everyone! Let's keep the momentum going this week. 🎉", Channel: "general", Pinned: true, CreatedAt: hoursAgo(2)},
		{ID: "m2", Person: "Leyla", Text: "Campaign assets are ready for review in the shared drive. Please take a look before Wednesday.", Channel: "marketing", CreatedAt: hoursAgo(5)},
		{ID: "m3", Person: "Pınar", Text: "New CRM integration is live on staging. Please test your workflows and flag any issues.", Channel: "general", CreatedAt: hoursAgo(8)},
		{ID: "m4", Person: "Gökhan", Text: "Reminder: Timesheets due by Friday 5pm.", Channel: "general", Pinned: true, CreatedAt: hoursAgo(24)},
		{ID: "m5", Person: "Seda", Text: "Local partner meeting went well — notes shared in the drive. Leyla, can we sync on the press angle?", Channel: "marketing", CreatedAt: hoursAgo(26)},
	}
}

func decisions() []decision.Decision {
	return []decision.Decision{
		{ID: "d1", Title: "Move to weekly all-hands format", Description: "Replace bi-weekly all-hands with weekly 30-minute standups to improve alignment. Trial period: Q1.", DecidedBy: "Esra", Date: "2026-02-17", Category: "operations", Status: decision.StatusActive},
		{ID: "d2", Title: "Launch Instagram content series in March", Description: "Approved 8-week branded content series focused on local community stories. Budget: 5,000 TL.", DecidedBy: "Leyla", Date: "2026-02-14", Category: "marketing", Status: decision.StatusActive},
		{ID: "d3", Title: "Adopt TeamHub for internal communications", Description: "Migrate from WhatsApp group updates to TeamHub for check-ins and priorities tracking.", DecidedBy: "Gökhan", Date: "2026-02-10", Category: "product", Status: decision.StatusActive},
		{ID: "d4", Title: "Pause LinkedIn advertising", Description: "Q4 LinkedIn ads underperformed vs. organic. Reallocating budget to Instagram.", DecidedBy: "Leyla", Date: "2026-01-28", Category: "marketing", Status: decision.StatusReversed},
	}
}

func tasks(now time.Time) []task.Task {
	hoursAgo := func(h int) time.Time { return now.Add(-time.Duration(h) * time.Hour) }
	return []task.Task{
		{ID: "t1", Title: "Finalize Q1 marketing budget", Description: "Review and approve the full Q1 budget with Esra before Friday.", AssignedTo: "Leyla", CreatedBy: "Esra", DueDate: "2026-02-28", Priority: task.PriorityHigh, Status: task.StatusInProgress, CreatedAt: hoursAgo(48)},
		{ID: "t2", Title: "Deploy TeamHub to production", Description: "Final deploy with all new features enabled and Airtable connected.", AssignedTo: "Gökhan", CreatedBy: "Gökhan", DueDate: "2026-02-22", Priority: task.PriorityUrgent, Status: task.StatusInProgress, CreatedAt: hoursAgo(24)},
		{ID: "t3", Title: "Write March content calendar", Description: "Minimum 20 posts planned, mix of Reels and carousels.", AssignedTo: "Leyla", CreatedBy: "Leyla", DueDate: "2026-02-25", Priority: task.PriorityMedium, Status: task.StatusTodo, CreatedAt: hoursAgo(72)},
		{ID: "t4", Title: "Fix CRM data import error", Description: "Duplicate contacts appearing after the Feb 12 sync. Blocked on vendor response.", AssignedTo: "Pınar", CreatedBy: "Pınar", DueDate: "2026-02-19", Priority: task.PriorityUrgent, Status: task.StatusBlocked, CreatedAt: hoursAgo(96)},
		{ID: "t5", Title: "Local partner meeting notes", Description: "Compile and distribute notes from the Feb 18 partner session.", AssignedTo: "Seda", CreatedBy: "Seda", DueDate: "2026-02-24", Priority: task.PriorityLow, Status: task.StatusDone, CreatedAt: hoursAgo(120)},
		{ID: "t6", Title: "Review performance review framework", Description: "Share revised template with team leads by end of week.", AssignedTo: "Esra", CreatedBy: "Gökhan", DueDate: "2026-02-21", Priority: task.PriorityMedium, Status: task.StatusTodo, CreatedAt: hoursAgo(36)},
	}
}

func events(day func(int) string) []calendar.Event {
	return []calendar.Event{
		{ID: "e1", Title: "All Hands", Time: "10:00", Duration: 60, Date: day(0), Color: "#D4634B", Attendees: "Everyone"},
		{ID: "e2", Title: "Marketing Sync", Time: "14:00", Duration: 45, Date: day(0), Color: "#8B5CF6", Attendees: "Leyla, Seda, Esra"},
		{ID: "e3", Title: "Digital Platform Review", Time: "11:00", Duration: 60, Date: day(1), Color: "#10B981", Attendees: "Pınar, Gökhan"},
		{ID: "e4", Title: "1:1 Esra ↔ Leyla", Time: "15:00", Duration: 30, Date: day(2), Color: "#D4634B", Attendees: "Esra, Leyla"},
		{ID: "e5", Title: "Campaign Review", Time: "10:00", Duration: 45, Date: day(2), Color: "#8B5CF6", Attendees: "Leyla, Pınar, Seda"},
		{ID: "e6", Title: "Local Ops Planning", Time: "09:00", Duration: 60, Date: day(3), Color: "#F59E0B", Attendees: "Seda, Esra"},
		{ID: "e7", Title: "Team Lunch", Time: "12:30", Duration: 60, Date: day(4), Color: "#EC4899", Attendees: "Everyone"},
		{ID: "e8", Title: "Content Calendar Review", Time: "16:00", Duration: 30, Date: day(4), Color: "#8B5CF6", Attendees: "Leyla, Gökhan"},
		{ID: "e9", Title: "Partner Workshop", Date: day(1), EndDate: day(3), AllDay: true, Color: "#4B8BD4", Attendees: "Seda, Esra"},
	}
}
