package models

import "github.com/google/uuid"

// Investment links an investor tenant to a project it funds. Status moves
// one way out of pending; approval triggers notifications to both sides.
type Investment struct {
	BaseModel
	ProjectID        uuid.UUID        `json:"project_id" gorm:"type:uuid;not null;index"`
	InvestorTenantID uuid.UUID        `json:"investor_tenant_id" gorm:"type:uuid;not null;index"`
	Amount           float64          `json:"amount" gorm:"type:numeric(15,2);not null" validate:"required,gt=0"`
	Status           InvestmentStatus `json:"status" gorm:"not null;size:20;default:'pending'"`
	Notes            string           `json:"notes,omitempty" gorm:"type:text"`

	Project        *Project `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
	InvestorTenant *Tenant  `json:"investor_tenant,omitempty" gorm:"foreignKey:InvestorTenantID"`
}

// TableName returns the table name for Investment
func (Investment) TableName() string {
	return "investments"
}
