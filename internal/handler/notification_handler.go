package handler

import (
	"net/http"
	"time"

	"github.com/Metatavu/lipsanen-project-management-ui-sub000/internal/middleware"
	"github.com/Metatavu/lipsanen-project-management-ui-sub000/internal/model"
	"github.com/Metatavu/lipsanen-project-management-ui-sub000/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type NotificationHandler struct {
	notificationRepo *repository.NotificationRepository
}

func NewNotificationHandler(notificationRepo *repository.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{
		notificationRepo: notificationRepo,
	}
}

type NotificationEventResponse struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	TaskID    string `json:"task_id"`
	Message   string `json:"message"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"created_at"`
}

func notificationEventResponse(event *model.NotificationEvent) NotificationEventResponse {
	return NotificationEventResponse{
		ID:        event.ID.String(),
		Type:      event.Notification.Type,
		TaskID:    event.Notification.TaskID.String(),
		Message:   event.Notification.Message,
		Read:      event.Read,
		CreatedAt: event.CreatedAt.Format(time.RFC3339),
	}
}

// GetEvents lists the authenticated user's notification events, newest first
func (h *NotificationHandler) GetEvents(c *gin.Context) {
	userID, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	authenticatedUserID, ok := userID.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID format"})
		return
	}

	events, err := h.notificationRepo.GetEventsForUser(c.Request.Context(), authenticatedUserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve notifications"})
		return
	}

	response := make([]NotificationEventResponse, len(events))
	for i := range events {
		response[i] = notificationEventResponse(&events[i])
	}

	c.JSON(http.StatusOK, response)
}

// MarkRead flags one of the authenticated user's events as read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	authenticatedUserID, ok := userID.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID format"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID format"})
		return
	}

	event, err := h.notificationRepo.GetEventByID(c.Request.Context(), id)
	if err != nil {
		if err == repository.ErrNotificationEventNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Notification event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve notification event"})
		return
	}

	if event.UserID != authenticatedUserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Notification belongs to another user"})
		return
	}

	if err := h.notificationRepo.MarkRead(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark notification as read"})
		return
	}

	event.Read = true
	c.JSON(http.StatusOK, notificationEventResponse(event))
}

// Dismiss deletes one of the authenticated user's events
func (h *NotificationHandler) Dismiss(c *gin.Context) {
	userID, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	authenticatedUserID, ok := userID.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID format"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID format"})
		return
	}

	event, err := h.notificationRepo.GetEventByID(c.Request.Context(), id)
	if err != nil {
		if err == repository.ErrNotificationEventNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Notification event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve notification event"})
		return
	}

	if event.UserID != authenticatedUserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Notification belongs to another user"})
		return
	}

	if err := h.notificationRepo.DeleteEvent(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to dismiss notification"})
		return
	}

	c.Status(http.StatusNoContent)
}
