package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/karakusgokhan/team-hub/internal/api/handlers"
	"github.com/karakusgokhan/team-hub/internal/api/middleware"
)

type CheckInRoutes struct {
	handler *handlers.CheckInHandler
}

func NewCheckInRoutes(handler *handlers.CheckInHandler) *CheckInRoutes {
	return &CheckInRoutes{handler: handler}
}

// RegisterRoutes registers the daily check-in routes
func (r *CheckInRoutes) RegisterRoutes(router *gin.Engine, cache *middleware.CacheMiddleware) {
	checkins := router.Group("/api/checkins")
	checkins.GET("", cache.CacheResponse(), r.handler.ListCheckIns)
	checkins.POST("", cache.CacheInvalidate("checkins:*"), r.handler.CreateCheckIn)
}
