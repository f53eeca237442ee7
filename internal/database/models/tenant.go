package models

import (
	"time"

	"github.com/google/uuid"
)

// Tenant is the root entity for multi-tenancy: an OSC or investor account.
// Every tenant-scoped record carries a TenantID that never changes after
// creation.
type Tenant struct {
	BaseModel
	Name        string       `json:"name" gorm:"not null;size:255" validate:"required,min=1,max=255"`
	Kind        TenantKind   `json:"kind" gorm:"not null;size:20" validate:"required"`
	CNPJ        string       `json:"cnpj,omitempty" gorm:"uniqueIndex;size:20"`
	Email       string       `json:"email" gorm:"not null;size:320" validate:"required,email"`
	Phone       string       `json:"phone,omitempty" gorm:"size:20"`
	Website     string       `json:"website,omitempty" gorm:"size:255"`
	Description string       `json:"description,omitempty" gorm:"type:text"`
	LogoURL     string       `json:"logo_url,omitempty" gorm:"size:500"`
	Status      TenantStatus `json:"status" gorm:"not null;size:20;default:'pending'"`

	SubscriptionPlanID *uuid.UUID `json:"subscription_plan_id,omitempty" gorm:"type:uuid"`
	LicenseExpiresAt   *time.Time `json:"license_expires_at,omitempty"`

	// Relationships
	Users         []User         `json:"users,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
	Projects      []Project      `json:"projects,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
	Beneficiaries []Beneficiary  `json:"beneficiaries,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
	Invoices      []Invoice      `json:"invoices,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
	Proposals     []Proposal     `json:"proposals,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
	Notifications []Notification `json:"notifications,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Tenant
func (Tenant) TableName() string {
	return "tenants"
}

// IsActive reports whether the tenant has been approved and may operate
func (t *Tenant) IsActive() bool {
	return t.Status == TenantStatusActive
}
