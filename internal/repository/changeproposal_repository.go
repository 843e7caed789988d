package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Metatavu/lipsanen-project-management-ui-sub000/internal/model"
)

type ChangeProposalRepository struct {
	db *gorm.DB
}

func NewChangeProposalRepository(db *gorm.DB) *ChangeProposalRepository {
	return &ChangeProposalRepository{db: db}
}

// Create adds a new change proposal to the database
func (r *ChangeProposalRepository) Create(ctx context.Context, proposal *model.ChangeProposal) error {
	return r.db.WithContext(ctx).Create(proposal).Error
}

// GetByID retrieves a change proposal by its ID
func (r *ChangeProposalRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.ChangeProposal, error) {
	var proposal model.ChangeProposal
	result := r.db.WithContext(ctx).First(&proposal, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrProposalNotFound
		}
		return nil, result.Error
	}
	return &proposal, nil
}

// GetByTaskID retrieves all change proposals for a specific task
func (r *ChangeProposalRepository) GetByTaskID(ctx context.Context, taskID uuid.UUID) ([]model.ChangeProposal, error) {
	var proposals []model.ChangeProposal
	result := r.db.WithContext(ctx).Where("task_id = ?", taskID).Order("created_at").Find(&proposals)
	if result.Error != nil {
		return nil, result.Error
	}
	return proposals, nil
}

// GetByProjectID retrieves all change proposals across a project's tasks
func (r *ChangeProposalRepository) GetByProjectID(ctx context.Context, projectID uuid.UUID) ([]model.ChangeProposal, error) {
	var proposals []model.ChangeProposal
	result := r.db.WithContext(ctx).
		Joins("JOIN tasks ON tasks.id = change_proposals.task_id").
		Joins("JOIN milestones ON milestones.id = tasks.milestone_id").
		Where("milestones.project_id = ?", projectID).
		Order("change_proposals.created_at").
		Find(&proposals)

	if result.Error != nil {
		return nil, result.Error
	}
	return proposals, nil
}

// Delete removes a change proposal by its ID
func (r *ChangeProposalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ChangeProposal{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProposalNotFound
	}
	return nil
}

// SetStatus transitions a proposal and, on approval, applies the proposed
// dates to the task in the same transaction so the two never diverge.
func (r *ChangeProposalRepository) SetStatus(ctx context.Context, proposalID uuid.UUID, status string) (*model.ChangeProposal, error) {
	var proposal model.ChangeProposal

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&proposal, "id = ?", proposalID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProposalNotFound
			}
			return err
		}

		proposal.Status = status
		if err := tx.Save(&proposal).Error; err != nil {
			return err
		}

		if status != model.ProposalStatusApproved {
			return nil
		}

		result := tx.Model(&model.Task{}).
			Where("id = ?", proposal.TaskID).
			Updates(map[string]interface{}{
				"start_date": proposal.StartDate,
				"end_date":   proposal.EndDate,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrTaskNotFound
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &proposal, nil
}
