package handler

import (
	"net/http"
	"time"

	"github.com/Metatavu/lipsanen-project-management-ui-sub000/internal/model"
	"github.com/Metatavu/lipsanen-project-management-ui-sub000/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AttachmentHandler struct {
	attachmentRepo *repository.AttachmentRepository
	projectRepo    *repository.ProjectRepository
}

func NewAttachmentHandler(attachmentRepo *repository.AttachmentRepository, projectRepo *repository.ProjectRepository) *AttachmentHandler {
	return &AttachmentHandler{attachmentRepo: attachmentRepo, projectRepo: projectRepo}
}

type AttachmentRequest struct {
	ProjectID string  `json:"project_id" binding:"required,uuid"`
	TaskID    *string `json:"task_id" binding:"omitempty,uuid"`
	Name      string  `json:"name" binding:"required"`
	URL       string  `json:"url" binding:"required,url"`
	Type      string  `json:"type" binding:"required"`
}

type UpdateAttachmentRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type AttachmentResponse struct {
	ID        string  `json:"id"`
	ProjectID string  `json:"project_id"`
	TaskID    *string `json:"task_id,omitempty"`
	Name      string  `json:"name"`
	URL       string  `json:"url"`
	Type      string  `json:"type"`
	CreatedAt string  `json:"created_at"`
}

func attachmentResponse(attachment *model.Attachment) AttachmentResponse {
	resp := AttachmentResponse{
		ID:        attachment.ID.String(),
		ProjectID: attachment.ProjectID.String(),
		Name:      attachment.Name,
		URL:       attachment.URL,
		Type:      attachment.Type,
		CreatedAt: attachment.CreatedAt.Format(time.RFC3339),
	}
	if attachment.TaskID != nil {
		taskID := attachment.TaskID.String()
		resp.TaskID = &taskID
	}
	return resp
}

// Create registers an attachment on a project, optionally linked to a task
func (h *AttachmentHandler) Create(c *gin.Context) {
	var req AttachmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID format"})
		return
	}

	project, err := h.projectRepo.GetByID(c.Request.Context(), projectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve project"})
		return
	}
	if project == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	attachment := &model.Attachment{
		ProjectID: projectID,
		Name:      req.Name,
		URL:       req.URL,
		Type:      req.Type,
	}

	if req.TaskID != nil {
		taskID, err := uuid.Parse(*req.TaskID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
			return
		}
		attachment.TaskID = &taskID
	}

	if err := h.attachmentRepo.Create(c.Request.Context(), attachment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create attachment"})
		return
	}

	c.JSON(http.StatusCreated, attachmentResponse(attachment))
}

// GetByID returns a single attachment
func (h *AttachmentHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid attachment ID format"})
		return
	}

	attachment, err := h.attachmentRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == repository.ErrAttachmentNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Attachment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve attachment"})
		return
	}

	c.JSON(http.StatusOK, attachmentResponse(attachment))
}

// GetByProjectID lists all attachments of a project
func (h *AttachmentHandler) GetByProjectID(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID format"})
		return
	}

	attachments, err := h.attachmentRepo.GetByProjectID(c.Request.Context(), projectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve attachments"})
		return
	}

	response := make([]AttachmentResponse, len(attachments))
	for i := range attachments {
		response[i] = attachmentResponse(&attachments[i])
	}

	c.JSON(http.StatusOK, response)
}

// GetByTaskID lists the attachments linked to a task
func (h *AttachmentHandler) GetByTaskID(c *gin.Context) {
	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	attachments, err := h.attachmentRepo.GetByTaskID(c.Request.Context(), taskID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve attachments"})
		return
	}

	response := make([]AttachmentResponse, len(attachments))
	for i := range attachments {
		response[i] = attachmentResponse(&attachments[i])
	}

	c.JSON(http.StatusOK, response)
}

// Update renames or retypes an attachment
func (h *AttachmentHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid attachment ID format"})
		return
	}

	var req UpdateAttachmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	attachment, err := h.attachmentRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == repository.ErrAttachmentNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Attachment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve attachment"})
		return
	}

	if req.Name != "" {
		attachment.Name = req.Name
	}
	if req.Type != "" {
		attachment.Type = req.Type
	}

	if err := h.attachmentRepo.Update(c.Request.Context(), attachment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update attachment"})
		return
	}

	c.JSON(http.StatusOK, attachmentResponse(attachment))
}

// Delete removes an attachment
func (h *AttachmentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid attachment ID format"})
		return
	}

	if err := h.attachmentRepo.Delete(c.Request.Context(), id); err != nil {
		if err == repository.ErrAttachmentNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Attachment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete attachment"})
		return
	}

	c.Status(http.StatusNoContent)
}
