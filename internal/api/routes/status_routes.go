package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/karakusgokhan/team-hub/internal/api/handlers"
)

type StatusRoutes struct {
	handler *handlers.StatusHandler
}

func NewStatusRoutes(handler *handlers.StatusHandler) *StatusRoutes {
	return &StatusRoutes{handler: handler}
}

// RegisterRoutes registers health, sync status and notice routes
func (r *StatusRoutes) RegisterRoutes(router *gin.Engine) {
	router.GET("/health", r.handler.Health)
	router.GET("/api/status", r.handler.GetStatus)
	router.GET("/api/notices", r.handler.ListNotices)
}
