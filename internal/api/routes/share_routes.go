package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/karakusgokhan/team-hub/internal/api/handlers"
)

type ShareRoutes struct {
	handler *handlers.ShareHandler
}

func NewShareRoutes(handler *handlers.ShareHandler) *ShareRoutes {
	return &ShareRoutes{handler: handler}
}

// RegisterRoutes registers the WhatsApp share routes. Share texts are
// point-in-time digests, so they bypass the response cache.
func (r *ShareRoutes) RegisterRoutes(router *gin.Engine) {
	share := router.Group("/api/share")
	share.GET("/schedule", r.handler.ShareSchedule)
	share.GET("/status", r.handler.ShareStatus)
	share.GET("/priorities", r.handler.SharePriorities)
	share.GET("/tasks", r.handler.ShareTasks)
	share.GET("/decisions", r.handler.ShareDecisions)
}
