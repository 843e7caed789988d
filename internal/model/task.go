package model

import (
	"time"

	"github.com/google/uuid"
)

type Task struct {
	ID                uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	MilestoneID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Name              string    `gorm:"not null"`
	StartDate         time.Time `gorm:"not null"`
	EndDate           time.Time `gorm:"not null"`
	Status            string    `gorm:"not null;default:'NOT_STARTED'"`
	EstimatedDuration float64
	CreatedBy         uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Milestone Milestone `gorm:"foreignKey:MilestoneID"`
	Creator   User      `gorm:"foreignKey:CreatedBy"`
	Assignees []User    `gorm:"many2many:task_assignees"`
}

// Task statuses
const (
	TaskStatusNotStarted = "NOT_STARTED"
	TaskStatusInProgress = "IN_PROGRESS"
	TaskStatusDone       = "DONE"
)

// ValidTaskStatus reports whether s is a known task status.
func ValidTaskStatus(s string) bool {
	return s == TaskStatusNotStarted || s == TaskStatusInProgress || s == TaskStatusDone
}
