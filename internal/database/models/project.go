package models

import (
	"time"

	"github.com/google/uuid"
)

// Project is a tenant-scoped social-impact project run by an OSC
type Project struct {
	BaseModel
	TenantID       uuid.UUID     `json:"tenant_id" gorm:"type:uuid;not null;index"`
	Name           string        `json:"name" gorm:"not null;size:255" validate:"required,min=1,max=255"`
	Description    string        `json:"description,omitempty" gorm:"type:text"`
	Objectives     string        `json:"objectives,omitempty" gorm:"type:text"`
	StartDate      time.Time     `json:"start_date" gorm:"not null"`
	EndDate        time.Time     `json:"end_date" gorm:"not null"`
	Budget         float64       `json:"budget,omitempty" gorm:"type:numeric(15,2)"`
	Status         ProjectStatus `json:"status" gorm:"not null;size:20;default:'planning'"`
	TargetAudience string        `json:"target_audience,omitempty" gorm:"size:255"`
	Location       string        `json:"location,omitempty" gorm:"size:255"`

	Tenant *Tenant `json:"tenant,omitempty" gorm:"foreignKey:TenantID"`

	// Relationships (cascade: removing a project removes its dependents)
	Attendances []Attendance `json:"attendances,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Classes     []Class      `json:"classes,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Reports     []Report     `json:"reports,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Investments []Investment `json:"investments,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}
