package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/karakusgokhan/team-hub/internal/api/handlers"
	"github.com/karakusgokhan/team-hub/internal/api/middleware"
)

type PriorityRoutes struct {
	handler *handlers.PriorityHandler
}

func NewPriorityRoutes(handler *handlers.PriorityHandler) *PriorityRoutes {
	return &PriorityRoutes{handler: handler}
}

// RegisterRoutes registers the weekly priority board routes
func (r *PriorityRoutes) RegisterRoutes(router *gin.Engine, cache *middleware.CacheMiddleware) {
	priorities := router.Group("/api/priorities")
	priorities.GET("", cache.CacheResponse(), r.handler.ListPriorities)
	priorities.POST("", cache.CacheInvalidate("priorities:*"), r.handler.CreatePriority)
	priorities.PUT("/:id", cache.CacheInvalidate("priorities:*"), r.handler.UpdatePriority)
	priorities.DELETE("/:id", cache.CacheInvalidate("priorities:*"), r.handler.DeletePriority)
}
