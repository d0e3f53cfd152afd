package routes

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/karakusgokhan/team-hub/internal/api/handlers"
	"github.com/karakusgokhan/team-hub/internal/api/middleware"
)

type CalendarRoutes struct {
	handler *handlers.CalendarHandler
}

func NewCalendarRoutes(handler *handlers.CalendarHandler) *CalendarRoutes {
	return &CalendarRoutes{handler: handler}
}

// RegisterRoutes registers the calendar routes. The grid views are the
// heavy responses, so they get compression and caching.
func (r *CalendarRoutes) RegisterRoutes(router *gin.Engine, cache *middleware.CacheMiddleware) {
	calendar := router.Group("/api/calendar")

	calendar.GET("/week", gzip.Gzip(gzip.DefaultCompression), cache.CacheResponse(), r.handler.GetWeek)
	calendar.GET("/month", gzip.Gzip(gzip.DefaultCompression), cache.CacheResponse(), r.handler.GetMonth)

	events := calendar.Group("/events")
	events.GET("", gzip.Gzip(gzip.DefaultCompression), cache.CacheResponse(), r.handler.ListEvents)
	events.POST("", cache.CacheInvalidate("calendar:*"), r.handler.CreateEvent)
	events.GET("/:id", r.handler.GetEvent)
	events.PUT("/:id", cache.CacheInvalidate("calendar:*"), r.handler.UpdateEvent)
	events.DELETE("/:id", cache.CacheInvalidate("calendar:*"), r.handler.DeleteEvent)
}
