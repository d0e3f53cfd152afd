package routes

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/karakusgokhan/team-hub/internal/api/handlers"
	"github.com/karakusgokhan/team-hub/internal/api/middleware"
)

type TaskRoutes struct {
	handler *handlers.TaskHandler
}

func NewTaskRoutes(handler *handlers.TaskHandler) *TaskRoutes {
	return &TaskRoutes{handler: handler}
}

// RegisterRoutes registers the task board routes
func (r *TaskRoutes) RegisterRoutes(router *gin.Engine, cache *middleware.CacheMiddleware) {
	tasks := router.Group("/api/tasks")
	tasks.GET("", gzip.Gzip(gzip.DefaultCompression), cache.CacheResponse(), r.handler.ListTasks)
	tasks.POST("", cache.CacheInvalidate("tasks:*"), r.handler.CreateTask)
	tasks.GET("/:id", cache.CacheResponse(), r.handler.GetTask)
	tasks.PUT("/:id", cache.CacheInvalidate("tasks:*"), r.handler.UpdateTask)
	tasks.DELETE("/:id", cache.CacheInvalidate("tasks:*"), r.handler.DeleteTask)
}
