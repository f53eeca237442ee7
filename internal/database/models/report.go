package models

import (
	"time"

	"github.com/google/uuid"
)

// Report is a tenant-scoped accountability report, optionally tied to a project
type Report struct {
	BaseModel
	TenantID    uuid.UUID    `json:"tenant_id" gorm:"type:uuid;not null;index"`
	ProjectID   *uuid.UUID   `json:"project_id,omitempty" gorm:"type:uuid;index"`
	Type        ReportType   `json:"type" gorm:"not null;size:20" validate:"required"`
	Title       string       `json:"title" gorm:"not null;size:255" validate:"required,min=1,max=255"`
	Content     string       `json:"content,omitempty" gorm:"type:text"`
	Status      ReportStatus `json:"status" gorm:"not null;size:20;default:'draft'"`
	SubmittedAt *time.Time   `json:"submitted_at,omitempty"`
	ApprovedAt  *time.Time   `json:"approved_at,omitempty"`

	Tenant *Tenant `json:"tenant,omitempty" gorm:"foreignKey:TenantID"`
}

// TableName returns the table name for Report
func (Report) TableName() string {
	return "reports"
}
