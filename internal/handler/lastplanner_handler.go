package handler

import (
	"net/http"
	"sort"
	"time"

	"github.com/Metatavu/lipsanen-project-management-ui-sub000/internal/lastplanner"
	"github.com/Metatavu/lipsanen-project-management-ui-sub000/internal/model"
	"github.com/Metatavu/lipsanen-project-management-ui-sub000/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LastPlannerHandler struct {
	taskRepo    *repository.TaskRepository
	projectRepo *repository.ProjectRepository
}

func NewLastPlannerHandler(taskRepo *repository.TaskRepository, projectRepo *repository.ProjectRepository) *LastPlannerHandler {
	return &LastPlannerHandler{taskRepo: taskRepo, projectRepo: projectRepo}
}

type TimelineWindowResponse struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Days      int    `json:"days"`
}

type PlannerCellResponse struct {
	Days int                  `json:"days"`
	Task *PlannerTaskResponse `json:"task,omitempty"`
}

type PlannerTaskResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Status    string `json:"status"`
}

type PlannerUserResponse struct {
	UserID   string                  `json:"user_id"`
	UserName string                  `json:"user_name"`
	Rows     [][]PlannerCellResponse `json:"rows"`
}

type LastPlannerResponse struct {
	ProjectID string                 `json:"project_id"`
	EditMode  bool                   `json:"edit_mode"`
	Window    TimelineWindowResponse `json:"window"`
	Users     []PlannerUserResponse  `json:"users"`
}

// GetGrid renders the Last Planner view of a project: a shared timeline
// window and, per assignee, their tasks packed into rows of day-spanning
// cells with blank fillers for every uncovered day. Pass ?edit=true to get
// the grid in edit mode.
func (h *LastPlannerHandler) GetGrid(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
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

	tasks, err := h.taskRepo.GetByProjectID(c.Request.Context(), projectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tasks"})
		return
	}

	editMode := c.Query("edit") == "true"

	window := lastplanner.BuildTimelineWindow(tasks)
	grid := lastplanner.BuildGrid(window, assignedUsers(tasks), tasks, editMode, lastplanner.CellHandlers{})

	users := make([]PlannerUserResponse, len(grid))
	for i, section := range grid {
		rows := make([][]PlannerCellResponse, len(section.Rows))
		for j, row := range section.Rows {
			cells := make([]PlannerCellResponse, len(row))
			for k, cell := range row {
				cells[k] = plannerCellResponse(cell)
			}
			rows[j] = cells
		}
		users[i] = PlannerUserResponse{
			UserID:   section.User.ID.String(),
			UserName: section.User.Name,
			Rows:     rows,
		}
	}

	c.JSON(http.StatusOK, LastPlannerResponse{
		ProjectID: projectID.String(),
		EditMode:  editMode,
		Window: TimelineWindowResponse{
			StartDate: window.Start.Format(time.RFC3339),
			EndDate:   window.End.Format(time.RFC3339),
			Days:      window.Days(),
		},
		Users: users,
	})
}

func plannerCellResponse(cell lastplanner.Cell) PlannerCellResponse {
	resp := PlannerCellResponse{Days: cell.Days}
	if cell.Task != nil {
		resp.Task = &PlannerTaskResponse{
			ID:        cell.Task.ID.String(),
			Name:      cell.Task.Name,
			StartDate: cell.Task.StartDate.Format(time.RFC3339),
			EndDate:   cell.Task.EndDate.Format(time.RFC3339),
			Status:    cell.Task.Status,
		}
	}
	return resp
}

// assignedUsers collects the distinct assignees across all tasks, ordered by
// name so the grid sections come out stable between requests.
func assignedUsers(tasks []model.Task) []model.User {
	seen := make(map[uuid.UUID]bool)
	var users []model.User
	for _, t := range tasks {
		for _, u := range t.Assignees {
			if !seen[u.ID] {
				seen[u.ID] = true
				users = append(users, u)
			}
		}
	}
	sort.Slice(users, func(i, j int) bool {
		if users[i].Name != users[j].Name {
			return users[i].Name < users[j].Name
		}
		return users[i].ID.String() < users[j].ID.String()
	})
	return users
}
