package model

import (
	"time"

	"github.com/google/uuid"
)

// ChangeProposal is a request to move a task's dates. Proposals start out
// PENDING; approving one applies the proposed dates to the task.
type ChangeProposal struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	TaskID    uuid.UUID `gorm:"type:uuid;not null;index"`
	StartDate time.Time `gorm:"not null"`
	EndDate   time.Time `gorm:"not null"`
	Reason    string    `gorm:"not null"`
	Comment   string
	Status    string    `gorm:"not null;default:'PENDING';check:status IN ('PENDING', 'APPROVED', 'REJECTED')"`
	CreatedBy uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time

	Task    Task `gorm:"foreignKey:TaskID"`
	Creator User `gorm:"foreignKey:CreatedBy"`
}

// Change proposal statuses
const (
	ProposalStatusPending  = "PENDING"
	ProposalStatusApproved = "APPROVED"
	ProposalStatusRejected = "REJECTED"
)
