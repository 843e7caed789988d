package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Metatavu/lipsanen-project-management-ui-sub000/internal/model"
)

type JobPositionRepository struct {
	db *gorm.DB
}

func NewJobPositionRepository(db *gorm.DB) *JobPositionRepository {
	return &JobPositionRepository{db: db}
}

// Create adds a new job position to the database
func (r *JobPositionRepository) Create(ctx context.Context, position *model.JobPosition) error {
	return r.db.WithContext(ctx).Create(position).Error
}

// GetByID retrieves a job position by its ID
func (r *JobPositionRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.JobPosition, error) {
	var position model.JobPosition
	result := r.db.WithContext(ctx).First(&position, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrJobPositionNotFound
		}
		return nil, result.Error
	}
	return &position, nil
}

// GetAll retrieves every job position
func (r *JobPositionRepository) GetAll(ctx context.Context) ([]model.JobPosition, error) {
	var positions []model.JobPosition
	result := r.db.WithContext(ctx).Order("name").Find(&positions)
	if result.Error != nil {
		return nil, result.Error
	}
	return positions, nil
}

// GetUsersWithPosition retrieves all users holding a specific job position
func (r *JobPositionRepository) GetUsersWithPosition(ctx context.Context, positionID uuid.UUID) ([]model.User, error) {
	var users []model.User
	result := r.db.WithContext(ctx).
		Where("job_position_id = ?", positionID).
		Find(&users)

	if result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}

// Update updates an existing job position
func (r *JobPositionRepository) Update(ctx context.Context, position *model.JobPosition) error {
	result := r.db.WithContext(ctx).Save(position)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobPositionNotFound
	}
	return nil
}

// Delete removes a job position by its ID
func (r *JobPositionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.JobPosition{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobPositionNotFound
	}
	return nil
}
