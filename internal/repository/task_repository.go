package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Metatavu/lipsanen-project-management-ui-sub000/internal/model"
)

var (
	ErrTaskNotFound = errors.New("task not found")
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create adds a new task to the database
func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// GetByID retrieves a task by its ID
func (r *TaskRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	var task model.Task
	result := r.db.WithContext(ctx).Preload("Assignees").First(&task, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, result.Error
	}
	return &task, nil
}

// GetByMilestoneID retrieves all tasks in a specific milestone
func (r *TaskRepository) GetByMilestoneID(ctx context.Context, milestoneID uuid.UUID) ([]model.Task, error) {
	var tasks []model.Task
	result := r.db.WithContext(ctx).
		Preload("Assignees").
		Where("milestone_id = ?", milestoneID).
		Order("start_date").
		Find(&tasks)
	if result.Error != nil {
		return nil, result.Error
	}
	return tasks, nil
}

// GetByProjectID retrieves all tasks across every milestone of a project
func (r *TaskRepository) GetByProjectID(ctx context.Context, projectID uuid.UUID) ([]model.Task, error) {
	var tasks []model.Task
	result := r.db.WithContext(ctx).
		Preload("Assignees").
		Joins("JOIN milestones ON milestones.id = tasks.milestone_id").
		Where("milestones.project_id = ?", projectID).
		Order("tasks.start_date").
		Find(&tasks)

	if result.Error != nil {
		return nil, result.Error
	}
	return tasks, nil
}

// GetByAssignee retrieves all tasks assigned to a specific user
func (r *TaskRepository) GetByAssignee(ctx context.Context, userID uuid.UUID) ([]model.Task, error) {
	var tasks []model.Task
	result := r.db.WithContext(ctx).
		Preload("Assignees").
		Joins("JOIN task_assignees ON task_assignees.task_id = tasks.id").
		Where("task_assignees.user_id = ?", userID).
		Order("tasks.start_date").
		Find(&tasks)

	if result.Error != nil {
		return nil, result.Error
	}
	return tasks, nil
}

// Update updates an existing task
func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	result := r.db.WithContext(ctx).Save(task)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// Delete removes a task by its ID
func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Task{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// UpdateStatus sets the status of a task
func (r *TaskRepository) UpdateStatus(ctx context.Context, taskID uuid.UUID, status string) error {
	result := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", taskID).
		Update("status", status)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// UpdateDates moves the task to the given start and end dates
func (r *TaskRepository) UpdateDates(ctx context.Context, taskID uuid.UUID, start, end time.Time) error {
	result := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", taskID).
		Updates(map[string]interface{}{"start_date": start, "end_date": end})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// AssignUser adds a user to the task's assignees
func (r *TaskRepository) AssignUser(ctx context.Context, taskID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Exec(
		"INSERT INTO task_assignees (task_id, user_id) VALUES (?, ?) ON CONFLICT DO NOTHING",
		taskID, userID,
	).Error
}

// UnassignUser removes a user from the task's assignees
func (r *TaskRepository) UnassignUser(ctx context.Context, taskID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Exec(
		"DELETE FROM task_assignees WHERE task_id = ? AND user_id = ?",
		taskID, userID,
	).Error
}

// GetAssignees retrieves the users assigned to a task
func (r *TaskRepository) GetAssignees(ctx context.Context, taskID uuid.UUID) ([]model.User, error) {
	var users []model.User
	result := r.db.WithContext(ctx).
		Joins("JOIN task_assignees ON task_assignees.user_id = users.id").
		Where("task_assignees.task_id = ?", taskID).
		Find(&users)

	if result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}
