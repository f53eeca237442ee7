package models

import (
	"time"

	"github.com/google/uuid"
)

// Proposal is a commercial proposal sent to a tenant by the back office
type Proposal struct {
	BaseModel
	TenantID       uuid.UUID      `json:"tenant_id" gorm:"type:uuid;not null;index"`
	ProposalNumber string         `json:"proposal_number" gorm:"uniqueIndex;not null;size:50" validate:"required,max=50"`
	PlanID         uuid.UUID      `json:"plan_id" gorm:"type:uuid;not null"`
	Amount         float64        `json:"amount" gorm:"type:numeric(10,2);not null" validate:"required,gt=0"`
	Status         ProposalStatus `json:"status" gorm:"not null;size:20;default:'draft'"`
	ValidUntil     time.Time      `json:"valid_until" gorm:"not null"`
	Notes          string         `json:"notes,omitempty" gorm:"type:text"`

	Tenant *Tenant           `json:"tenant,omitempty" gorm:"foreignKey:TenantID"`
	Plan   *SubscriptionPlan `json:"plan,omitempty" gorm:"foreignKey:PlanID"`
}

// TableName returns the table name for Proposal
func (Proposal) TableName() string {
	return "proposals"
}
