package models

import (
	"time"

	"github.com/google/uuid"
)

// Invoice is a tenant-scoped billing document managed by the back office
type Invoice struct {
	BaseModel
	TenantID      uuid.UUID     `json:"tenant_id" gorm:"type:uuid;not null;index"`
	InvoiceNumber string        `json:"invoice_number" gorm:"uniqueIndex;not null;size:50" validate:"required,max=50"`
	Amount        float64       `json:"amount" gorm:"type:numeric(10,2);not null" validate:"required,gt=0"`
	Status        InvoiceStatus `json:"status" gorm:"not null;size:20;default:'pending'"`
	DueDate       time.Time     `json:"due_date" gorm:"not null"`
	PaidDate      *time.Time    `json:"paid_date,omitempty"`
	BoletoURL     string        `json:"boleto_url,omitempty" gorm:"size:500"`
	Description   string        `json:"description,omitempty" gorm:"type:text"`

	Tenant *Tenant `json:"tenant,omitempty" gorm:"foreignKey:TenantID"`
}

// TableName returns the table name for Invoice
func (Invoice) TableName() string {
	return "invoices"
}
