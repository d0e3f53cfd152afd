package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/karakusgokhan/team-hub/internal/api/middleware"
	"github.com/karakusgokhan/team-hub/internal/domain/priority"
)

// PriorityHandler handles HTTP requests for the weekly priority board
type PriorityHandler struct {
	service priority.Service
}

// NewPriorityHandler creates a new PriorityHandler instance
func NewPriorityHandler(service priority.Service) *PriorityHandler {
	return &PriorityHandler{service: service}
}

// ListPriorities godoc
// @Summary List priorities for a week
// @Description List priorities for the week starting at the given Monday, defaulting to the current week
// @Tags priorities
// @Produce json
// @Param week query string false "Week Monday (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{} "Priorities"
// @Router /api/priorities [get]
func (h *PriorityHandler) ListPriorities(c *gin.Context) {
	priorities := h.service.ListByWeek(c.Request.Context(), c.Query("week"))
	c.JSON(http.StatusOK, gin.H{"data": priorities})
}

// CreatePriority godoc
// @Summary Add a weekly priority
// @Description Add a priority item to a person's list for the week
// @Tags priorities
// @Accept json
// @Produce json
// @Param priority body priority.CreatePriorityRequest true "Priority creation request"
// @Success 201 {object} map[string]interface{} "Priority created"
// @Failure 400 {object} map[string]string "Invalid request"
// @Router /api/priorities [post]
func (h *PriorityHandler) CreatePriority(c *gin.Context) {
	var req priority.CreatePriorityRequest
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
		if errors.Is(err, priority.ErrPersonRequired) || errors.Is(err, priority.ErrTextRequired) ||
			errors.Is(err, priority.ErrBadStatus) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": created})
}

// UpdatePriority godoc
// @Summary Update a priority
// @Description Update a priority's text, status or ordering
// @Tags priorities
// @Accept json
// @Produce json
// @Param id path string true "Priority ID"
// @Param priority body priority.UpdatePriorityRequest true "Priority update request"
// @Success 200 {object} map[string]interface{} "Priority updated"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Priority not found"
// @Router /api/priorities/{id} [put]
func (h *PriorityHandler) UpdatePriority(c *gin.Context) {
	var req priority.UpdatePriorityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, priority.ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(err, priority.ErrBadStatus), errors.Is(err, priority.ErrTextRequired):
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": updated})
}

// DeletePriority godoc
// @Summary Delete a priority
// @Tags priorities
// @Produce json
// @Param id path string true "Priority ID"
// @Success 200 {object} map[string]string "Priority deleted"
// @Failure 404 {object} map[string]string "Priority not found"
// @Router /api/priorities/{id} [delete]
func (h *PriorityHandler) DeletePriority(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, priority.ErrNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "priority deleted"})
}
