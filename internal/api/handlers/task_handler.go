package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/karakusgokhan/team-hub/internal/api/middleware"
	"github.com/karakusgokhan/team-hub/internal/domain/task"
)

// TaskHandler handles HTTP requests for the task board
type TaskHandler struct {
	service task.Service
}

// NewTaskHandler creates a new TaskHandler instance
func NewTaskHandler(service task.Service) *TaskHandler {
	return &TaskHandler{service: service}
}

// ListTasks godoc
// @Summary List tasks
// @Description List tasks by urgency then due date, optionally filtered
// @Tags tasks
// @Produce json
// @Param assigned_to query string false "Assignee filter; 'me' resolves to the acting member"
// @Param status query string false "Status filter" Enums(todo, in-progress, blocked, done)
// @Success 200 {object} map[string]interface{} "Tasks"
// @Router /api/tasks [get]
func (h *TaskHandler) ListTasks(c *gin.Context) {
	assignedTo := c.Query("assigned_to")
	if assignedTo == "me" {
		assignedTo = middleware.GetUser(c)
	}
	filter := task.Filter{
		AssignedTo: assignedTo,
		Status:     task.Status(c.Query("status")),
	}
	tasks := h.service.List(c.Request.Context(), filter)
	c.JSON(http.StatusOK, gin.H{"data": tasks})
}

// GetTask godoc
// @Summary Get a task by ID
// @Tags tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} map[string]interface{} "Task details"
// @Failure 404 {object} map[string]string "Task not found"
// @Router /api/tasks/{id} [get]
func (h *TaskHandler) GetTask(c *gin.Context) {
	t, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, task.ErrNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": t})
}

// CreateTask godoc
// @Summary Create a task
// @Tags tasks
// @Accept json
// @Produce json
// @Param task body task.CreateTaskRequest true "Task creation request"
// @Success 201 {object} map[string]interface{} "Task created"
// @Failure 400 {object} map[string]string "Invalid request"
// @Router /api/tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req task.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.CreatedBy == "" {
		req.CreatedBy = middleware.GetUser(c)
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, task.ErrTitleRequired) || errors.Is(err, task.ErrBadPriority) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": created})
}

// UpdateTask godoc
// @Summary Update a task
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param task body task.UpdateTaskRequest true "Task update request"
// @Success 200 {object} map[string]interface{} "Task updated"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Task not found"
// @Router /api/tasks/{id} [put]
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	var req task.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, task.ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(err, task.ErrTitleRequired), errors.Is(err, task.ErrBadPriority),
			errors.Is(err, task.ErrBadStatus):
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": updated})
}

// DeleteTask godoc
// @Summary Delete a task
// @Tags tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} map[string]string "Task deleted"
// @Failure 404 {object} map[string]string "Task not found"
// @Router /api/tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, task.ErrNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "task deleted"})
}
