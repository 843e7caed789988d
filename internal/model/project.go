package model

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name      string    `gorm:"not null"`
	Status    string    `gorm:"not null;default:'PLANNING'"`
	CreatedBy uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Creator User `gorm:"foreignKey:CreatedBy"`
}

// Project lifecycle stages
const (
	ProjectStatusPlanning     = "PLANNING"
	ProjectStatusInitiation   = "INITIATION"
	ProjectStatusDesign       = "DESIGN"
	ProjectStatusProcurement  = "PROCUREMENT"
	ProjectStatusConstruction = "CONSTRUCTION"
	ProjectStatusInspection   = "INSPECTION"
	ProjectStatusCompletion   = "COMPLETION"
)

// ProjectStatuses lists the valid lifecycle stages in order.
var ProjectStatuses = []string{
	ProjectStatusPlanning,
	ProjectStatusInitiation,
	ProjectStatusDesign,
	ProjectStatusProcurement,
	ProjectStatusConstruction,
	ProjectStatusInspection,
	ProjectStatusCompletion,
}

// ValidProjectStatus reports whether s is one of the lifecycle stages.
func ValidProjectStatus(s string) bool {
	for _, status := range ProjectStatuses {
		if s == status {
			return true
		}
	}
	return false
}
