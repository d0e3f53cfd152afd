package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/karakusgokhan/team-hub/internal/domain/calendar"
	"github.com/karakusgokhan/team-hub/internal/domain/checkin"
	"github.com/karakusgokhan/team-hub/internal/domain/decision"
	"github.com/karakusgokhan/team-hub/internal/domain/priority"
	"github.com/karakusgokhan/team-hub/internal/domain/task"
	"github.com/karakusgokhan/team-hub/internal/domain/team"
	"github.com/karakusgokhan/team-hub/internal/share"
)

// ShareHandler builds WhatsApp-ready digests of the dashboard
type ShareHandler struct {
	calendar   calendar.Service
	team       team.Service
	checkins   checkin.Service
	priorities priority.Service
	tasks      task.Service
	decisions  decision.Service
}

// NewShareHandler creates a new ShareHandler instance
func NewShareHandler(
	cal calendar.Service,
	tm team.Service,
	ci checkin.Service,
	pr priority.Service,
	tk task.Service,
	dc decision.Service,
) *ShareHandler {
	return &ShareHandler{
		calendar:   cal,
		team:       tm,
		checkins:   ci,
		priorities: pr,
		tasks:      tk,
		decisions:  dc,
	}
}

func shareResponse(c *gin.Context, text string) {
	c.JSON(http.StatusOK, gin.H{"text": text, "url": share.Link(text)})
}

// ShareSchedule godoc
// @Summary Share the week's schedule
// @Description Build a WhatsApp text digest of the work week plus a wa.me link
// @Tags share
// @Produce json
// @Param start query string false "Week Monday (YYYY-MM-DD), defaults to the current week"
// @Success 200 {object} map[string]string "Text and wa.me URL"
// @Failure 400 {object} map[string]string "Invalid start date"
// @Router /api/share/schedule [get]
func (h *ShareHandler) ShareSchedule(c *gin.Context) {
	start := c.Query("start")
	if start == "" {
		start = calendar.MondayOf(time.Now())
	}

	text, err := share.ScheduleText(start, h.calendar.ListEvents(c.Request.Context()))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	shareResponse(c, text)
}

// ShareStatus godoc
// @Summary Share today's team status
// @Description Build a WhatsApp text digest of who is in the office, remote or out
// @Tags share
// @Produce json
// @Success 200 {object} map[string]string "Text and wa.me URL"
// @Router /api/share/status [get]
func (h *ShareHandler) ShareStatus(c *gin.Context) {
	ctx := c.Request.Context()
	now := time.Now()
	text := share.StatusText(now, h.team.List(ctx), h.checkins.ListByDate(ctx, calendar.FormatDate(now)))
	shareResponse(c, text)
}

// SharePriorities godoc
// @Summary Share the week's priorities
// @Tags share
// @Produce json
// @Param week query string false "Week Monday (YYYY-MM-DD), defaults to the current week"
// @Success 200 {object} map[string]string "Text and wa.me URL"
// @Router /api/share/priorities [get]
func (h *ShareHandler) SharePriorities(c *gin.Context) {
	week := c.Query("week")
	if week == "" {
		week = calendar.MondayOf(time.Now())
	}
	text := share.PrioritiesText(week, h.priorities.ListByWeek(c.Request.Context(), week))
	shareResponse(c, text)
}

// ShareTasks godoc
// @Summary Share the task board
// @Tags share
// @Produce json
// @Success 200 {object} map[string]string "Text and wa.me URL"
// @Router /api/share/tasks [get]
func (h *ShareHandler) ShareTasks(c *gin.Context) {
	text := share.TasksText(h.tasks.List(c.Request.Context(), task.Filter{}))
	shareResponse(c, text)
}

// ShareDecisions godoc
// @Summary Share the decision log
// @Tags share
// @Produce json
// @Success 200 {object} map[string]string "Text and wa.me URL"
// @Router /api/share/decisions [get]
func (h *ShareHandler) ShareDecisions(c *gin.Context) {
	text := share.DecisionsText(h.decisions.List(c.Request.Context(), decision.Filter{}))
	shareResponse(c, text)
}
