package handler

import (
	"net/http"
	"time"

	"github.com/Metatavu/lipsanen-project-management-ui-sub000/internal/model"
	"github.com/Metatavu/lipsanen-project-management-ui-sub000/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MilestoneHandler struct {
	milestoneRepo *repository.MilestoneRepository
	projectRepo   *repository.ProjectRepository
}

func NewMilestoneHandler(milestoneRepo *repository.MilestoneRepository, projectRepo *repository.ProjectRepository) *MilestoneHandler {
	return &MilestoneHandler{
		milestoneRepo: milestoneRepo,
		projectRepo:   projectRepo,
	}
}

type CreateMilestoneRequest struct {
	ProjectID string    `json:"project_id" binding:"required,uuid"`
	Name      string    `json:"name" binding:"required"`
	StartDate time.Time `json:"start_date" binding:"required"`
	EndDate   time.Time `json:"end_date" binding:"required"`
}

type UpdateMilestoneRequest struct {
	Name      string     `json:"name"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

type MilestoneResponse struct {
	ID                string `json:"id"`
	ProjectID         string `json:"project_id"`
	Name              string `json:"name"`
	StartDate         string `json:"start_date"`
	EndDate           string `json:"end_date"`
	OriginalStartDate string `json:"original_start_date"`
	OriginalEndDate   string `json:"original_end_date"`
}

func milestoneResponse(m *model.Milestone) MilestoneResponse {
	return MilestoneResponse{
		ID:                m.ID.String(),
		ProjectID:         m.ProjectID.String(),
		Name:              m.Name,
		StartDate:         m.StartDate.Format(time.RFC3339),
		EndDate:           m.EndDate.Format(time.RFC3339),
		OriginalStartDate: m.OriginalStartDate.Format(time.RFC3339),
		OriginalEndDate:   m.OriginalEndDate.Format(time.RFC3339),
	}
}

// Create creates a new milestone inside a project
func (h *MilestoneHandler) Create(c *gin.Context) {
	var req CreateMilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if req.EndDate.Before(req.StartDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "End date must not precede start date"})
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

	milestone := &model.Milestone{
		ProjectID:         projectID,
		Name:              req.Name,
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
		OriginalStartDate: req.StartDate,
		OriginalEndDate:   req.EndDate,
	}

	if err := h.milestoneRepo.Create(c.Request.Context(), milestone); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create milestone"})
		return
	}

	c.JSON(http.StatusCreated, milestoneResponse(milestone))
}

// GetByProjectID lists the milestones of a project in chronological order
func (h *MilestoneHandler) GetByProjectID(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID format"})
		return
	}

	milestones, err := h.milestoneRepo.GetByProjectID(c.Request.Context(), projectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve milestones"})
		return
	}

	response := make([]MilestoneResponse, len(milestones))
	for i := range milestones {
		response[i] = milestoneResponse(&milestones[i])
	}

	c.JSON(http.StatusOK, response)
}

// GetByID returns a single milestone
func (h *MilestoneHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid milestone ID format"})
		return
	}

	milestone, err := h.milestoneRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve milestone"})
		return
	}
	if milestone == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Milestone not found"})
		return
	}

	c.JSON(http.StatusOK, milestoneResponse(milestone))
}

// Update changes a milestone's name or current dates. Original dates are
// kept as created.
func (h *MilestoneHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid milestone ID format"})
		return
	}

	var req UpdateMilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	milestone, err := h.milestoneRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve milestone"})
		return
	}
	if milestone == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Milestone not found"})
		return
	}

	if req.Name != "" {
		milestone.Name = req.Name
	}
	if req.StartDate != nil {
		milestone.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		milestone.EndDate = *req.EndDate
	}
	if milestone.EndDate.Before(milestone.StartDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "End date must not precede start date"})
		return
	}

	if err := h.milestoneRepo.Update(c.Request.Context(), milestone); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update milestone"})
		return
	}

	c.JSON(http.StatusOK, milestoneResponse(milestone))
}

// Delete removes a milestone
func (h *MilestoneHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid milestone ID format"})
		return
	}

	if err := h.milestoneRepo.Delete(c.Request.Context(), id); err != nil {
		if err == repository.ErrMilestoneNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Milestone not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete milestone"})
		return
	}

	c.Status(http.StatusNoContent)
}
