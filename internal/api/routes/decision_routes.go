package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/karakusgokhan/team-hub/internal/api/handlers"
	"github.com/karakusgokhan/team-hub/internal/api/middleware"
)

type DecisionRoutes struct {
	handler *handlers.DecisionHandler
}

func NewDecisionRoutes(handler *handlers.DecisionHandler) *DecisionRoutes {
	return &DecisionRoutes{handler: handler}
}

// RegisterRoutes registers the decision log routes
func (r *DecisionRoutes) RegisterRoutes(router *gin.Engine, cache *middleware.CacheMiddleware) {
	decisions := router.Group("/api/decisions")
	decisions.GET("", cache.CacheResponse(), r.handler.ListDecisions)
	decisions.POST("", cache.CacheInvalidate("decisions:*"), r.handler.CreateDecision)
	decisions.PUT("/:id", cache.CacheInvalidate("decisions:*"), r.handler.UpdateDecision)
	decisions.DELETE("/:id", cache.CacheInvalidate("decisions:*"), r.handler.DeleteDecision)
}
