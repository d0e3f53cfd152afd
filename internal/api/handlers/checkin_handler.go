package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/karakusgokhan/team-hub/internal/api/middleware"
	"github.com/karakusgokhan/team-hub/internal/domain/calendar"
	"github.com/karakusgokhan/team-hub/internal/domain/checkin"
)

// CheckInHandler handles HTTP requests for daily check-ins
type CheckInHandler struct {
	service checkin.Service
}

// NewCheckInHandler creates a new CheckInHandler instance
func NewCheckInHandler(service checkin.Service) *CheckInHandler {
	return &CheckInHandler{service: service}
}

// ListCheckIns godoc
// @Summary List check-ins for a day
// @Description List check-ins for the given date, defaulting to today
// @Tags checkins
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{} "Check-ins"
// @Failure 400 {object} map[string]string "Invalid date"
// @Router /api/checkins [get]
func (h *CheckInHandler) ListCheckIns(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = calendar.Today()
	} else if _, err := calendar.ParseDate(date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	checkins := h.service.ListByDate(c.Request.Context(), date)
	c.JSON(http.StatusOK, gin.H{"data": checkins, "date": date})
}

// CreateCheckIn godoc
// @Summary Check in for today
// @Description Record where a person is working from; replaces an earlier check-in for the same day
// @Tags checkins
// @Accept json
// @Produce json
// @Param checkin body checkin.CreateCheckInRequest true "Check-in request"
// @Success 201 {object} map[string]interface{} "Check-in recorded"
// @Failure 400 {object} map[string]string "Invalid request"
// @Router /api/checkins [post]
func (h *CheckInHandler) CreateCheckIn(c *gin.Context) {
	var req checkin.CreateCheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Person == "" {
		req.Person = middleware.GetUser(c)
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, checkin.ErrPersonRequired) || errors.Is(err, checkin.ErrBadStatus) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": created})
}
