package models

import (
	"time"

	"github.com/google/uuid"
)

// Beneficiary is a tenant-scoped person assisted by an OSC
type Beneficiary struct {
	BaseModel
	TenantID         uuid.UUID         `json:"tenant_id" gorm:"type:uuid;not null;index"`
	Name             string            `json:"name" gorm:"not null;size:255" validate:"required,min=1,max=255"`
	BirthDate        *time.Time        `json:"birth_date,omitempty"`
	Gender           string            `json:"gender,omitempty" gorm:"size:20"`
	Ethnicity        string            `json:"ethnicity,omitempty" gorm:"size:100"`
	MaritalStatus    string            `json:"marital_status,omitempty" gorm:"size:50"`
	Education        string            `json:"education,omitempty" gorm:"size:100"`
	Income           string            `json:"income,omitempty" gorm:"size:20"`
	Occupation       string            `json:"occupation,omitempty" gorm:"size:255"`
	AddressStreet    string            `json:"address_street,omitempty" gorm:"size:255"`
	AddressNumber    string            `json:"address_number,omitempty" gorm:"size:20"`
	AddressCity      string            `json:"address_city,omitempty" gorm:"size:100"`
	AddressState     string            `json:"address_state,omitempty" gorm:"size:2"`
	AddressZipCode   string            `json:"address_zip_code,omitempty" gorm:"size:10"`
	ContactPhone     string            `json:"contact_phone,omitempty" gorm:"size:20"`
	ContactEmail     string            `json:"contact_email,omitempty" gorm:"size:320"`
	RegistrationDate time.Time         `json:"registration_date" gorm:"not null"`
	Status           BeneficiaryStatus `json:"status" gorm:"not null;size:20;default:'active'"`
	Notes            string            `json:"notes,omitempty" gorm:"type:text"`

	Tenant *Tenant `json:"tenant,omitempty" gorm:"foreignKey:TenantID"`
}

// TableName returns the table name for Beneficiary
func (Beneficiary) TableName() string {
	return "beneficiaries"
}
