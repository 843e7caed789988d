package repository

import (
	"context"
	"errors"

	"github.com/Metatavu/lipsanen-project-management-ui-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MilestoneRepository struct {
	db *gorm.DB
}

func NewMilestoneRepository(db *gorm.DB) *MilestoneRepository {
	return &MilestoneRepository{db: db}
}

func (r *MilestoneRepository) Create(ctx context.Context, milestone *model.Milestone) error {
	return r.db.WithContext(ctx).Create(milestone).Error
}

func (r *MilestoneRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Milestone, error) {
	var milestone model.Milestone
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&milestone).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &milestone, nil
}

func (r *MilestoneRepository) GetByProjectID(ctx context.Context, projectID uuid.UUID) ([]model.Milestone, error) {
	var milestones []model.Milestone
	err := r.db.WithContext(ctx).Where("project_id = ?", projectID).Order("start_date").Find(&milestones).Error
	return milestones, err
}

func (r *MilestoneRepository) Update(ctx context.Context, milestone *model.Milestone) error {
	result := r.db.WithContext(ctx).Save(milestone)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMilestoneNotFound
	}
	return nil
}

func (r *MilestoneRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Milestone{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMilestoneNotFound
	}
	return nil
}
