package models

import (
	"time"

	"github.com/google/uuid"
)

// Attendance is a tenant-scoped record of assistance given to a beneficiary
type Attendance struct {
	BaseModel
	TenantID      uuid.UUID        `json:"tenant_id" gorm:"type:uuid;not null;index"`
	BeneficiaryID *uuid.UUID       `json:"beneficiary_id,omitempty" gorm:"type:uuid;index"`
	ProjectID     *uuid.UUID       `json:"project_id,omitempty" gorm:"type:uuid;index"`
	Type          AttendanceType   `json:"type" gorm:"not null;size:20" validate:"required"`
	Date          time.Time        `json:"date" gorm:"not null"`
	Duration      int              `json:"duration,omitempty"`
	Notes         string           `json:"notes,omitempty" gorm:"type:text"`
	Status        AttendanceStatus `json:"status" gorm:"not null;size:20;default:'completed'"`

	Tenant      *Tenant      `json:"tenant,omitempty" gorm:"foreignKey:TenantID"`
	Beneficiary *Beneficiary `json:"beneficiary,omitempty" gorm:"foreignKey:BeneficiaryID"`
}

// TableName returns the table name for Attendance
func (Attendance) TableName() string {
	return "attendances"
}
