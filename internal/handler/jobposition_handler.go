package handler

import (
	"net/http"

	"github.com/Metatavu/lipsanen-project-management-ui-sub000/internal/model"
	"github.com/Metatavu/lipsanen-project-management-ui-sub000/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type JobPositionHandler struct {
	positionRepo *repository.JobPositionRepository
}

func NewJobPositionHandler(positionRepo *repository.JobPositionRepository) *JobPositionHandler {
	return &JobPositionHandler{
		positionRepo: positionRepo,
	}
}

type JobPositionRequest struct {
	Name     string `json:"name" binding:"required"`
	Color    string `json:"color" binding:"required"`
	IconName string `json:"icon_name" binding:"required"`
}

type UpdateJobPositionRequest struct {
	Name     string `json:"name"`
	Color    string `json:"color"`
	IconName string `json:"icon_name"`
}

type JobPositionResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Color    string `json:"color"`
	IconName string `json:"icon_name"`
}

func jobPositionResponse(position *model.JobPosition) JobPositionResponse {
	return JobPositionResponse{
		ID:       position.ID.String(),
		Name:     position.Name,
		Color:    position.Color,
		IconName: position.IconName,
	}
}

// Create creates a new job position
func (h *JobPositionHandler) Create(c *gin.Context) {
	var req JobPositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	position := &model.JobPosition{
		Name:     req.Name,
		Color:    req.Color,
		IconName: req.IconName,
	}

	if err := h.positionRepo.Create(c.Request.Context(), position); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create job position"})
		return
	}

	c.JSON(http.StatusCreated, jobPositionResponse(position))
}

// GetAll lists every job position
func (h *JobPositionHandler) GetAll(c *gin.Context) {
	positions, err := h.positionRepo.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve job positions"})
		return
	}

	response := make([]JobPositionResponse, len(positions))
	for i := range positions {
		response[i] = jobPositionResponse(&positions[i])
	}

	c.JSON(http.StatusOK, response)
}

// GetByID returns a single job position
func (h *JobPositionHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job position ID format"})
		return
	}

	position, err := h.positionRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == repository.ErrJobPositionNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job position not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve job position"})
		return
	}

	c.JSON(http.StatusOK, jobPositionResponse(position))
}

// GetUsers lists the users holding a job position
func (h *JobPositionHandler) GetUsers(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job position ID format"})
		return
	}

	users, err := h.positionRepo.GetUsersWithPosition(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve users"})
		return
	}

	response := make([]UserResponse, len(users))
	for i := range users {
		response[i] = userResponse(&users[i])
	}

	c.JSON(http.StatusOK, response)
}

// Update changes a job position
func (h *JobPositionHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job position ID format"})
		return
	}

	var req UpdateJobPositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	position, err := h.positionRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == repository.ErrJobPositionNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job position not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve job position"})
		return
	}

	if req.Name != "" {
		position.Name = req.Name
	}
	if req.Color != "" {
		position.Color = req.Color
	}
	if req.IconName != "" {
		position.IconName = req.IconName
	}

	if err := h.positionRepo.Update(c.Request.Context(), position); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update job position"})
		return
	}

	c.JSON(http.StatusOK, jobPositionResponse(position))
}

// Delete removes a job position
func (h *JobPositionHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job position ID format"})
		return
	}

	if err := h.positionRepo.Delete(c.Request.Context(), id); err != nil {
		if err == repository.ErrJobPositionNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job position not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete job position"})
		return
	}

	c.Status(http.StatusNoContent)
}
