package repository

import (
	"context"
	"errors"

	"github.com/Metatavu/lipsanen-project-management-ui-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Notify stores a notification and fans it out to the given recipients in a
// single transaction, one event per user.
func (r *NotificationRepository) Notify(ctx context.Context, notification *model.Notification, recipientIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(notification).Error; err != nil {
			return err
		}

		for _, userID := range recipientIDs {
			event := model.NotificationEvent{
				NotificationID: notification.ID,
				UserID:         userID,
			}
			if err := tx.Create(&event).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetEventsForUser returns a user's notification events, newest first.
func (r *NotificationRepository) GetEventsForUser(ctx context.Context, userID uuid.UUID) ([]model.NotificationEvent, error) {
	var events []model.NotificationEvent

	err := r.db.WithContext(ctx).
		Preload("Notification").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&events).Error

	return events, err
}

// GetEventByID retrieves a single notification event.
func (r *NotificationRepository) GetEventByID(ctx context.Context, id uuid.UUID) (*model.NotificationEvent, error) {
	var event model.NotificationEvent

	err := r.db.WithContext(ctx).
		Preload("Notification").
		Where("id = ?", id).
		First(&event).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotificationEventNotFound
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// MarkRead flags a notification event as read for its recipient.
func (r *NotificationRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&model.NotificationEvent{}).
		Where("id = ?", id).
		Update("read", true)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotificationEventNotFound
	}
	return nil
}

// DeleteEvent dismisses a single recipient's copy of a notification.
func (r *NotificationRepository) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.NotificationEvent{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotificationEventNotFound
	}
	return nil
}
