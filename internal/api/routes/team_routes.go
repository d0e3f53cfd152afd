package routes

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/karakusgokhan/team-hub/internal/api/handlers"
	"github.com/karakusgokhan/team-hub/internal/api/middleware"
)

type TeamRoutes struct {
	handler *handlers.TeamHandler
}

func NewTeamRoutes(handler *handlers.TeamHandler) *TeamRoutes {
	return &TeamRoutes{handler: handler}
}

// RegisterRoutes registers the roster routes
func (r *TeamRoutes) RegisterRoutes(router *gin.Engine, cache *middleware.CacheMiddleware) {
	team := router.Group("/api/team")
	team.GET("", gzip.Gzip(gzip.DefaultCompression), cache.CacheResponse(), r.handler.ListMembers)
}
