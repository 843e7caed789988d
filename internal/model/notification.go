package model

import (
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Type      string    `gorm:"not null"`
	TaskID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Message   string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	Task Task `gorm:"foreignKey:TaskID"`
}

// NotificationEvent is the per-recipient fanout of a notification. Each
// recipient tracks their own read state and can dismiss the event without
// touching anyone else's copy.
type NotificationEvent struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	NotificationID uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Read           bool      `gorm:"not null;default:false"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`

	Notification Notification `gorm:"foreignKey:NotificationID"`
	User         User         `gorm:"foreignKey:UserID"`
}

// Notification types
const (
	NotificationTaskAssigned          = "TASK_ASSIGNED"
	NotificationChangeProposalCreated = "CHANGE_PROPOSAL_CREATED"
	NotificationChangeProposalStatus  = "CHANGE_PROPOSAL_STATUS_CHANGED"
)
