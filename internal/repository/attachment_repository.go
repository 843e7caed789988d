package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Metatavu/lipsanen-project-management-ui-sub000/internal/model"
)

type AttachmentRepository struct {
	db *gorm.DB
}

func NewAttachmentRepository(db *gorm.DB) *AttachmentRepository {
	return &AttachmentRepository{db: db}
}

// Create adds a new attachment to the database
func (r *AttachmentRepository) Create(ctx context.Context, attachment *model.Attachment) error {
	return r.db.WithContext(ctx).Create(attachment).Error
}

// GetByID retrieves an attachment by its ID
func (r *AttachmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Attachment, error) {
	var attachment model.Attachment
	result := r.db.WithContext(ctx).First(&attachment, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrAttachmentNotFound
		}
		return nil, result.Error
	}
	return &attachment, nil
}

// GetByProjectID retrieves all attachments of a project
func (r *AttachmentRepository) GetByProjectID(ctx context.Context, projectID uuid.UUID) ([]model.Attachment, error) {
	var attachments []model.Attachment
	result := r.db.WithContext(ctx).Where("project_id = ?", projectID).Order("created_at").Find(&attachments)
	if result.Error != nil {
		return nil, result.Error
	}
	return attachments, nil
}

// GetByTaskID retrieves all attachments linked to a specific task
func (r *AttachmentRepository) GetByTaskID(ctx context.Context, taskID uuid.UUID) ([]model.Attachment, error) {
	var attachments []model.Attachment
	result := r.db.WithContext(ctx).Where("task_id = ?", taskID).Order("created_at").Find(&attachments)
	if result.Error != nil {
		return nil, result.Error
	}
	return attachments, nil
}

// Update updates an existing attachment
func (r *AttachmentRepository) Update(ctx context.Context, attachment *model.Attachment) error {
	result := r.db.WithContext(ctx).Save(attachment)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAttachmentNotFound
	}
	return nil
}

// Delete removes an attachment by its ID
func (r *AttachmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Attachment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAttachmentNotFound
	}
	return nil
}
