package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/karakusgokhan/team-hub/internal/api/middleware"
	"github.com/karakusgokhan/team-hub/internal/domain/decision"
)

// DecisionHandler handles HTTP requests for the decision log
type DecisionHandler struct {
	service decision.Service
}

// NewDecisionHandler creates a new DecisionHandler instance
func NewDecisionHandler(service decision.Service) *DecisionHandler {
	return &DecisionHandler{service: service}
}

// ListDecisions godoc
// @Summary List decisions
// @Description List the decision log, newest first, optionally filtered
// @Tags decisions
// @Produce json
// @Param category query string false "Category filter"
// @Param status query string false "Status filter" Enums(active, reversed, superseded)
// @Success 200 {object} map[string]interface{} "Decisions"
// @Router /api/decisions [get]
func (h *DecisionHandler) ListDecisions(c *gin.Context) {
	filter := decision.Filter{
		Category: c.Query("category"),
		Status:   decision.Status(c.Query("status")),
	}
	decisions := h.service.List(c.Request.Context(), filter)
	c.JSON(http.StatusOK, gin.H{"data": decisions})
}

// CreateDecision godoc
// @Summary Record a decision
// @Tags decisions
// @Accept json
// @Produce json
// @Param decision body decision.CreateDecisionRequest true "Decision creation request"
// @Success 201 {object} map[string]interface{} "Decision recorded"
// @Failure 400 {object} map[string]string "Invalid request"
// @Router /api/decisions [post]
func (h *DecisionHandler) CreateDecision(c *gin.Context) {
	var req decision.CreateDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.DecidedBy == "" {
		req.DecidedBy = middleware.GetUser(c)
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, decision.ErrTitleRequired) || errors.Is(err, decision.ErrBadStatus) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": created})
}

// UpdateDecision godoc
// @Summary Update a decision
// @Description Update a decision's fields, typically to mark it reversed or superseded
// @Tags decisions
// @Accept json
// @Produce json
// @Param id path string true "Decision ID"
// @Param decision body decision.UpdateDecisionRequest true "Decision update request"
// @Success 200 {object} map[string]interface{} "Decision updated"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Decision not found"
// @Router /api/decisions/{id} [put]
func (h *DecisionHandler) UpdateDecision(c *gin.Context) {
	var req decision.UpdateDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, decision.ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(err, decision.ErrBadStatus), errors.Is(err, decision.ErrTitleRequired):
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": updated})
}

// DeleteDecision godoc
// @Summary Delete a decision
// @Tags decisions
// @Produce json
// @Param id path string true "Decision ID"
// @Success 200 {object} map[string]string "Decision deleted"
// @Failure 404 {object} map[string]string "Decision not found"
// @Router /api/decisions/{id} [delete]
func (h *DecisionHandler) DeleteDecision(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, decision.ErrNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "decision deleted"})
}
