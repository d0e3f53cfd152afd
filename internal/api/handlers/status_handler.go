package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/karakusgokhan/team-hub/internal/domain/notice"
	"github.com/karakusgokhan/team-hub/internal/infrastructure/airtable"
)

// StatusHandler reports service health, sync mode and pending notices
type StatusHandler struct {
	client  *airtable.Client // nil in demo mode
	notices *notice.Board
}

// NewStatusHandler creates a new StatusHandler instance
func NewStatusHandler(client *airtable.Client, notices *notice.Board) *StatusHandler {
	return &StatusHandler{client: client, notices: notices}
}

// Health godoc
// @Summary Health check
// @Tags status
// @Produce json
// @Success 200 {object} map[string]string "Service is up"
// @Router /health [get]
func (h *StatusHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetStatus godoc
// @Summary Sync status
// @Description Report whether the hub runs against the remote base or demo data, and whether the base is reachable
// @Tags status
// @Produce json
// @Success 200 {object} map[string]interface{} "Sync status"
// @Router /api/status [get]
func (h *StatusHandler) GetStatus(c *gin.Context) {
	if h.client == nil {
		c.JSON(http.StatusOK, gin.H{
			"mode":       "demo",
			"connection": "not configured, changes are kept in memory only",
		})
		return
	}

	connection := "ok"
	if err := h.client.TestConnection(c.Request.Context()); err != nil {
		connection = err.Error()
	}
	c.JSON(http.StatusOK, gin.H{
		"mode":       "live",
		"connection": connection,
	})
}

// ListNotices godoc
// @Summary List sync notices
// @Description List recent notices about failed background saves, newest first
// @Tags status
// @Produce json
// @Success 200 {object} map[string]interface{} "Notices"
// @Router /api/notices [get]
func (h *StatusHandler) ListNotices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.notices.Recent()})
}
