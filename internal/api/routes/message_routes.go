package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/karakusgokhan/team-hub/internal/api/handlers"
	"github.com/karakusgokhan/team-hub/internal/api/middleware"
)

type MessageRoutes struct {
	handler *handlers.MessageHandler
}

func NewMessageRoutes(handler *handlers.MessageHandler) *MessageRoutes {
	return &MessageRoutes{handler: handler}
}

// RegisterRoutes registers the message board routes
func (r *MessageRoutes) RegisterRoutes(router *gin.Engine, cache *middleware.CacheMiddleware) {
	messages := router.Group("/api/messages")
	messages.GET("", cache.CacheResponse(), r.handler.ListMessages)
	messages.POST("", cache.CacheInvalidate("messages:*"), r.handler.CreateMessage)
	messages.PUT("/:id/pin", cache.CacheInvalidate("messages:*"), r.handler.PinMessage)
	messages.DELETE("/:id", cache.CacheInvalidate("messages:*"), r.handler.DeleteMessage)
}
