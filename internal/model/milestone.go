package model

import (
	"time"

	"github.com/google/uuid"
)

type Milestone struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"not null"`
	StartDate time.Time `gorm:"not null"`
	EndDate   time.Time `gorm:"not null"`

	// Original dates are frozen at creation so schedule slip stays visible
	// after change proposals move the current dates.
	OriginalStartDate time.Time
	OriginalEndDate   time.Time

	Project Project `gorm:"foreignKey:ProjectID"`
}
