package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Metatavu/lipsanen-project-management-ui-sub000/internal/middleware"
	"github.com/Metatavu/lipsanen-project-management-ui-sub000/internal/model"
	"github.com/Metatavu/lipsanen-project-management-ui-sub000/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ChangeProposalHandler struct {
	proposalRepo     *repository.ChangeProposalRepository
	taskRepo         *repository.TaskRepository
	notificationRepo *repository.NotificationRepository
}

func NewChangeProposalHandler(
	proposalRepo *repository.ChangeProposalRepository,
	taskRepo *repository.TaskRepository,
	notificationRepo *repository.NotificationRepository,
) *ChangeProposalHandler {
	return &ChangeProposalHandler{
		proposalRepo:     proposalRepo,
		taskRepo:         taskRepo,
		notificationRepo: notificationRepo,
	}
}

type ChangeProposalRequest struct {
	TaskID    string    `json:"task_id" binding:"required,uuid"`
	StartDate time.Time `json:"start_date" binding:"required"`
	EndDate   time.Time `json:"end_date" binding:"required"`
	Reason    string    `json:"reason" binding:"required"`
	Comment   string    `json:"comment"`
}

type ChangeProposalStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ChangeProposalResponse struct {
	ID        string `json:"id"`
	TaskID    string `json:"task_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
	Comment   string `json:"comment,omitempty"`
	Status    string `json:"status"`
	CreatedBy string `json:"created_by"`
	CreatedAt string `json:"created_at"`
}

func proposalResponse(proposal *model.ChangeProposal) ChangeProposalResponse {
	return ChangeProposalResponse{
		ID:        proposal.ID.String(),
		TaskID:    proposal.TaskID.String(),
		StartDate: proposal.StartDate.Format(time.RFC3339),
		EndDate:   proposal.EndDate.Format(time.RFC3339),
		Reason:    proposal.Reason,
		Comment:   proposal.Comment,
		Status:    proposal.Status,
		CreatedBy: proposal.CreatedBy.String(),
		CreatedAt: proposal.CreatedAt.Format(time.RFC3339),
	}
}

// notifyAssignees fans a notification out to everyone assigned to the task.
// Failures are swallowed because the proposal itself was already stored.
func (h *ChangeProposalHandler) notifyAssignees(c *gin.Context, taskID uuid.UUID, notificationType, message string) {
	assignees, err := h.taskRepo.GetAssignees(c.Request.Context(), taskID)
	if err != nil || len(assignees) == 0 {
		return
	}

	recipientIDs := make([]uuid.UUID, len(assignees))
	for i, assignee := range assignees {
		recipientIDs[i] = assignee.ID
	}

	notification := &model.Notification{
		Type:    notificationType,
		TaskID:  taskID,
		Message: message,
	}
	_ = h.notificationRepo.Notify(c.Request.Context(), notification, recipientIDs)
}

// Create files a new change proposal for a task and notifies its assignees
func (h *ChangeProposalHandler) Create(c *gin.Context) {
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

	var req ChangeProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if req.EndDate.Before(req.StartDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "End date must not precede start date"})
		return
	}

	taskID, err := uuid.Parse(req.TaskID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	task, err := h.taskRepo.GetByID(c.Request.Context(), taskID)
	if err != nil {
		if err == repository.ErrTaskNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve task"})
		return
	}

	proposal := &model.ChangeProposal{
		TaskID:    taskID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Reason:    req.Reason,
		Comment:   req.Comment,
		Status:    model.ProposalStatusPending,
		CreatedBy: authenticatedUserID,
	}

	if err := h.proposalRepo.Create(c.Request.Context(), proposal); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create change proposal"})
		return
	}

	h.notifyAssignees(c, taskID, model.NotificationChangeProposalCreated,
		fmt.Sprintf("New change proposal for task %q", task.Name))

	c.JSON(http.StatusCreated, proposalResponse(proposal))
}

// GetByTaskID lists the change proposals of a task
func (h *ChangeProposalHandler) GetByTaskID(c *gin.Context) {
	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	proposals, err := h.proposalRepo.GetByTaskID(c.Request.Context(), taskID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve change proposals"})
		return
	}

	response := make([]ChangeProposalResponse, len(proposals))
	for i := range proposals {
		response[i] = proposalResponse(&proposals[i])
	}

	c.JSON(http.StatusOK, response)
}

// GetByProjectID lists every change proposal across a project's tasks
func (h *ChangeProposalHandler) GetByProjectID(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID format"})
		return
	}

	proposals, err := h.proposalRepo.GetByProjectID(c.Request.Context(), projectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve change proposals"})
		return
	}

	response := make([]ChangeProposalResponse, len(proposals))
	for i := range proposals {
		response[i] = proposalResponse(&proposals[i])
	}

	c.JSON(http.StatusOK, response)
}

// SetStatus transitions a pending proposal. Approval also moves the task to
// the proposed dates; assignees are notified either way.
func (h *ChangeProposalHandler) SetStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid change proposal ID format"})
		return
	}

	var req ChangeProposalStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if req.Status != model.ProposalStatusApproved && req.Status != model.ProposalStatusRejected {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be APPROVED or REJECTED"})
		return
	}

	existing, err := h.proposalRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == repository.ErrProposalNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Change proposal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve change proposal"})
		return
	}

	if existing.Status != model.ProposalStatusPending {
		c.JSON(http.StatusConflict, gin.H{"error": "Change proposal has already been resolved"})
		return
	}

	proposal, err := h.proposalRepo.SetStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update change proposal"})
		return
	}

	h.notifyAssignees(c, proposal.TaskID, model.NotificationChangeProposalStatus,
		fmt.Sprintf("Change proposal was %s", proposal.Status))

	c.JSON(http.StatusOK, proposalResponse(proposal))
}

// Delete removes a change proposal. Only its creator may withdraw it.
func (h *ChangeProposalHandler) Delete(c *gin.Context) {
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
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid change proposal ID format"})
		return
	}

	proposal, err := h.proposalRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == repository.ErrProposalNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Change proposal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve change proposal"})
		return
	}

	if proposal.CreatedBy != authenticatedUserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the proposal creator can withdraw it"})
		return
	}

	if err := h.proposalRepo.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete change proposal"})
		return
	}

	c.Status(http.StatusNoContent)
}
