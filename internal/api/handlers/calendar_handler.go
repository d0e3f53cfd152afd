package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/karakusgokhan/team-hub/internal/domain/calendar"
)

// CalendarHandler handles HTTP requests for events and grid views
type CalendarHandler struct {
	service calendar.Service
}

// NewCalendarHandler creates a new CalendarHandler instance
func NewCalendarHandler(service calendar.Service) *CalendarHandler {
	return &CalendarHandler{service: service}
}

// ListEvents godoc
// @Summary List calendar events
// @Tags calendar
// @Produce json
// @Success 200 {object} map[string]interface{} "Events"
// @Router /api/calendar/events [get]
func (h *CalendarHandler) ListEvents(c *gin.Context) {
	events := h.service.ListEvents(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"data": events})
}

// GetEvent godoc
// @Summary Get an event by ID
// @Tags calendar
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} map[string]interface{} "Event details"
// @Failure 404 {object} map[string]string "Event not found"
// @Router /api/calendar/events/{id} [get]
func (h *CalendarHandler) GetEvent(c *gin.Context) {
	event, err := h.service.GetEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, calendar.ErrNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": event})
}

// CreateEvent godoc
// @Summary Create an event
// @Description Create a single or multi-day event; a malformed span is saved as a single day
// @Tags calendar
// @Accept json
// @Produce json
// @Param event body calendar.CreateEventRequest true "Event creation request"
// @Success 201 {object} map[string]interface{} "Event created"
// @Failure 400 {object} map[string]string "Invalid request"
// @Router /api/calendar/events [post]
func (h *CalendarHandler) CreateEvent(c *gin.Context) {
	var req calendar.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.service.CreateEvent(c.Request.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, calendar.ErrTitleRequired) || errors.Is(err, calendar.ErrDateRequired) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": created})
}

// UpdateEvent godoc
// @Summary Update an event
// @Tags calendar
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param event body calendar.UpdateEventRequest true "Event update request"
// @Success 200 {object} map[string]interface{} "Event updated"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Event not found"
// @Router /api/calendar/events/{id} [put]
func (h *CalendarHandler) UpdateEvent(c *gin.Context) {
	var req calendar.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.service.UpdateEvent(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, calendar.ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(err, calendar.ErrTitleRequired), errors.Is(err, calendar.ErrDateRequired):
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": updated})
}

// DeleteEvent godoc
// @Summary Delete an event
// @Tags calendar
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} map[string]string "Event deleted"
// @Failure 404 {object} map[string]string "Event not found"
// @Router /api/calendar/events/{id} [delete]
func (h *CalendarHandler) DeleteEvent(c *gin.Context) {
	if err := h.service.DeleteEvent(c.Request.Context(), c.Param("id")); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, calendar.ErrNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "event deleted"})
}

// GetWeek godoc
// @Summary Get the work week grid
// @Description Lay out Monday through Friday with events stacked into lanes
// @Tags calendar
// @Produce json
// @Param start query string false "Week Monday (YYYY-MM-DD), defaults to the current week"
// @Success 200 {object} map[string]interface{} "Week grid"
// @Failure 400 {object} map[string]string "Invalid start date"
// @Router /api/calendar/week [get]
func (h *CalendarHandler) GetWeek(c *gin.Context) {
	start := c.Query("start")
	if start == "" {
		start = calendar.MondayOf(time.Now())
	}

	view, err := h.service.Week(c.Request.Context(), start)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": view})
}

// GetMonth godoc
// @Summary Get the month grid
// @Description Lay out the Monday-first month grid with per-row lanes and overflow counts
// @Tags calendar
// @Produce json
// @Param year query int false "Year, defaults to the current year"
// @Param month query int false "Month 1-12, defaults to the current month"
// @Success 200 {object} map[string]interface{} "Month grid"
// @Failure 400 {object} map[string]string "Invalid year or month"
// @Router /api/calendar/month [get]
func (h *CalendarHandler) GetMonth(c *gin.Context) {
	now := time.Now()
	year := now.Year()
	month := int(now.Month())

	if q := c.Query("year"); q != "" {
		v, err := strconv.Atoi(q)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
			return
		}
		year = v
	}
	if q := c.Query("month"); q != "" {
		v, err := strconv.Atoi(q)
		if err != nil || v < 1 || v > 12 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month, expected 1-12"})
			return
		}
		month = v
	}

	view := h.service.Month(c.Request.Context(), year, time.Month(month))
	c.JSON(http.StatusOK, gin.H{"data": view})
}
