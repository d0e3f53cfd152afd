package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/karakusgokhan/team-hub/internal/domain/team"
)

// TeamHandler handles HTTP requests for the roster
type TeamHandler struct {
	service team.Service
}

// NewTeamHandler creates a new TeamHandler instance
func NewTeamHandler(service team.Service) *TeamHandler {
	return &TeamHandler{service: service}
}

// ListMembers godoc
// @Summary List team members
// @Description List the full team roster
// @Tags team
// @Produce json
// @Success 200 {object} map[string]interface{} "Roster"
// @Router /api/team [get]
func (h *TeamHandler) ListMembers(c *gin.Context) {
	members := h.service.List(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"data": members})
}
