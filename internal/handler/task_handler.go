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

type TaskHandler struct {
	taskRepo         *repository.TaskRepository
	milestoneRepo    *repository.MilestoneRepository
	userRepo         *repository.UserRepository
	notificationRepo *repository.NotificationRepository
}

func NewTaskHandler(
	taskRepo *repository.TaskRepository,
	milestoneRepo *repository.MilestoneRepository,
	userRepo *repository.UserRepository,
	notificationRepo *repository.NotificationRepository,
) *TaskHandler {
	return &TaskHandler{
		taskRepo:         taskRepo,
		milestoneRepo:    milestoneRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
	}
}

type TaskRequest struct {
	MilestoneID       string    `json:"milestone_id" binding:"required,uuid"`
	Name              string    `json:"name" binding:"required"`
	StartDate         time.Time `json:"start_date" binding:"required"`
	EndDate           time.Time `json:"end_date" binding:"required"`
	Status            string    `json:"status"`
	EstimatedDuration float64   `json:"estimated_duration"`
}

type UpdateTaskRequest struct {
	Name              string     `json:"name"`
	StartDate         *time.Time `json:"start_date"`
	EndDate           *time.Time `json:"end_date"`
	Status            string     `json:"status"`
	EstimatedDuration *float64   `json:"estimated_duration"`
}

type TaskAssignRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

type TaskStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type TaskResponse struct {
	ID                string   `json:"id"`
	MilestoneID       string   `json:"milestone_id"`
	Name              string   `json:"name"`
	StartDate         string   `json:"start_date"`
	EndDate           string   `json:"end_date"`
	Status            string   `json:"status"`
	EstimatedDuration float64  `json:"estimated_duration,omitempty"`
	CreatedBy         string   `json:"created_by"`
	AssigneeIDs       []string `json:"assignee_ids"`
}

func taskResponse(task *model.Task) TaskResponse {
	assigneeIDs := make([]string, len(task.Assignees))
	for i, assignee := range task.Assignees {
		assigneeIDs[i] = assignee.ID.String()
	}

	return TaskResponse{
		ID:                task.ID.String(),
		MilestoneID:       task.MilestoneID.String(),
		Name:              task.Name,
		StartDate:         task.StartDate.Format(time.RFC3339),
		EndDate:           task.EndDate.Format(time.RFC3339),
		Status:            task.Status,
		EstimatedDuration: task.EstimatedDuration,
		CreatedBy:         task.CreatedBy.String(),
		AssigneeIDs:       assigneeIDs,
	}
}

// Create creates a new task inside a milestone
func (h *TaskHandler) Create(c *gin.Context) {
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

	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if req.EndDate.Before(req.StartDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "End date must not precede start date"})
		return
	}

	status := req.Status
	if status == "" {
		status = model.TaskStatusNotStarted
	}
	if !model.ValidTaskStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown task status"})
		return
	}

	milestoneID, err := uuid.Parse(req.MilestoneID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid milestone ID format"})
		return
	}

	milestone, err := h.milestoneRepo.GetByID(c.Request.Context(), milestoneID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve milestone"})
		return
	}
	if milestone == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Milestone not found"})
		return
	}

	task := &model.Task{
		MilestoneID:       milestoneID,
		Name:              req.Name,
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
		Status:            status,
		EstimatedDuration: req.EstimatedDuration,
		CreatedBy:         authenticatedUserID,
	}

	if err := h.taskRepo.Create(c.Request.Context(), task); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}

	c.JSON(http.StatusCreated, taskResponse(task))
}

// GetByID returns a single task with its assignees
func (h *TaskHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	task, err := h.taskRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == repository.ErrTaskNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve task"})
		return
	}

	c.JSON(http.StatusOK, taskResponse(task))
}

// GetByMilestoneID lists all tasks inside a milestone
func (h *TaskHandler) GetByMilestoneID(c *gin.Context) {
	milestoneID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid milestone ID format"})
		return
	}

	tasks, err := h.taskRepo.GetByMilestoneID(c.Request.Context(), milestoneID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tasks"})
		return
	}

	response := make([]TaskResponse, len(tasks))
	for i := range tasks {
		response[i] = taskResponse(&tasks[i])
	}

	c.JSON(http.StatusOK, response)
}

// GetByProjectID lists all tasks across a project's milestones
func (h *TaskHandler) GetByProjectID(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID format"})
		return
	}

	tasks, err := h.taskRepo.GetByProjectID(c.Request.Context(), projectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tasks"})
		return
	}

	response := make([]TaskResponse, len(tasks))
	for i := range tasks {
		response[i] = taskResponse(&tasks[i])
	}

	c.JSON(http.StatusOK, response)
}

// Update changes a task's fields
func (h *TaskHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	task, err := h.taskRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == repository.ErrTaskNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve task"})
		return
	}

	if req.Name != "" {
		task.Name = req.Name
	}
	if req.StartDate != nil {
		task.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		task.EndDate = *req.EndDate
	}
	if req.EstimatedDuration != nil {
		task.EstimatedDuration = *req.EstimatedDuration
	}
	if req.Status != "" {
		if !model.ValidTaskStatus(req.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown task status"})
			return
		}
		task.Status = req.Status
	}
	if task.EndDate.Before(task.StartDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "End date must not precede start date"})
		return
	}

	if err := h.taskRepo.Update(c.Request.Context(), task); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		return
	}

	c.JSON(http.StatusOK, taskResponse(task))
}

// Delete removes a task
func (h *TaskHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	if err := h.taskRepo.Delete(c.Request.Context(), id); err != nil {
		if err == repository.ErrTaskNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task"})
		return
	}

	c.Status(http.StatusNoContent)
}

// SetStatus updates the status of a task
func (h *TaskHandler) SetStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	var req TaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if !model.ValidTaskStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown task status"})
		return
	}

	if err := h.taskRepo.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		if err == repository.ErrTaskNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": req.Status})
}

// AssignUser adds a user to the task's assignees and notifies them
func (h *TaskHandler) AssignUser(c *gin.Context) {
	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	var req TaskAssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	assigneeID, err := uuid.Parse(req.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
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

	user, err := h.userRepo.GetByID(c.Request.Context(), assigneeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if err := h.taskRepo.AssignUser(c.Request.Context(), taskID, assigneeID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign user"})
		return
	}

	notification := &model.Notification{
		Type:    model.NotificationTaskAssigned,
		TaskID:  taskID,
		Message: fmt.Sprintf("You were assigned to task %q", task.Name),
	}
	if err := h.notificationRepo.Notify(c.Request.Context(), notification, []uuid.UUID{assigneeID}); err != nil {
		// Assignment already succeeded, the missing notification is not worth a 500
		c.JSON(http.StatusOK, gin.H{"assigned": true, "notified": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"assigned": true, "notified": true})
}

// UnassignUser removes a user from the task's assignees
func (h *TaskHandler) UnassignUser(c *gin.Context) {
	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	assigneeID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}

	if err := h.taskRepo.UnassignUser(c.Request.Context(), taskID, assigneeID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unassign user"})
		return
	}

	c.Status(http.StatusNoContent)
}
