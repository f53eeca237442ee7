package models

import (
	"time"

	"github.com/google/uuid"
)

// Class is a tenant-scoped workshop or course run by an OSC
type Class struct {
	BaseModel
	TenantID        uuid.UUID   `json:"tenant_id" gorm:"type:uuid;not null;index"`
	ProjectID       *uuid.UUID  `json:"project_id,omitempty" gorm:"type:uuid;index"`
	Name            string      `json:"name" gorm:"not null;size:255" validate:"required,min=1,max=255"`
	Description     string      `json:"description,omitempty" gorm:"type:text"`
	StartDate       time.Time   `json:"start_date" gorm:"not null"`
	EndDate         *time.Time  `json:"end_date,omitempty"`
	MaxParticipants int         `json:"max_participants,omitempty"`
	Status          ClassStatus `json:"status" gorm:"not null;size:20;default:'planning'"`

	Tenant *Tenant `json:"tenant,omitempty" gorm:"foreignKey:TenantID"`
}

// TableName returns the table name for Class
func (Class) TableName() string {
	return "classes"
}
