package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/karakusgokhan/team-hub/internal/api/middleware"
	"github.com/karakusgokhan/team-hub/internal/domain/message"
)

// MessageHandler handles HTTP requests for the message board
type MessageHandler struct {
	service message.Service
}

// NewMessageHandler creates a new MessageHandler instance
func NewMessageHandler(service message.Service) *MessageHandler {
	return &MessageHandler{service: service}
}

// ListMessages godoc
// @Summary List board messages
// @Description List messages for a channel, pinned first then newest
// @Tags messages
// @Produce json
// @Param channel query string false "Channel name" default(general)
// @Success 200 {object} map[string]interface{} "Messages"
// @Router /api/messages [get]
func (h *MessageHandler) ListMessages(c *gin.Context) {
	messages := h.service.List(c.Request.Context(), c.Query("channel"))
	c.JSON(http.StatusOK, gin.H{"data": messages})
}

// CreateMessage godoc
// @Summary Post a message
// @Tags messages
// @Accept json
// @Produce json
// @Param message body message.CreateMessageRequest true "Message creation request"
// @Success 201 {object} map[string]interface{} "Message posted"
// @Failure 400 {object} map[string]string "Invalid request"
// @Router /api/messages [post]
func (h *MessageHandler) CreateMessage(c *gin.Context) {
	var req message.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Person == "" {
		req.Person = middleware.GetUser(c)
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, message.ErrTextRequired) || errors.Is(err, message.ErrPersonRequired) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": created})
}

// PinMessage godoc
// @Summary Pin or unpin a message
// @Description Pinned messages float above the rest of their channel
// @Tags messages
// @Accept json
// @Produce json
// @Param id path string true "Message ID"
// @Param pin body message.PinRequest true "Pin request"
// @Success 200 {object} map[string]interface{} "Message updated"
// @Failure 404 {object} map[string]string "Message not found"
// @Router /api/messages/{id}/pin [put]
func (h *MessageHandler) PinMessage(c *gin.Context) {
	var req message.PinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.service.SetPinned(c.Request.Context(), c.Param("id"), req.Pinned)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, message.ErrNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": updated})
}

// DeleteMessage godoc
// @Summary Delete a message
// @Tags messages
// @Produce json
// @Param id path string true "Message ID"
// @Success 200 {object} map[string]string "Message deleted"
// @Failure 404 {object} map[string]string "Message not found"
// @Router /api/messages/{id} [delete]
func (h *MessageHandler) DeleteMessage(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, message.ErrNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "message deleted"})
}
