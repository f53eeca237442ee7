package models

// SubscriptionPlan is a billing plan tenants subscribe to
type SubscriptionPlan struct {
	BaseModel
	Name             string  `json:"name" gorm:"uniqueIndex;not null;size:255" validate:"required,max=255"`
	Description      string  `json:"description,omitempty" gorm:"type:text"`
	MonthlyPrice     float64 `json:"monthly_price" gorm:"type:numeric(10,2);not null"`
	YearlyPrice      float64 `json:"yearly_price,omitempty" gorm:"type:numeric(10,2)"`
	MaxUsers         int     `json:"max_users,omitempty"`
	MaxProjects      int     `json:"max_projects,omitempty"`
	MaxBeneficiaries int     `json:"max_beneficiaries,omitempty"`
	IsActive         bool    `json:"is_active" gorm:"not null;default:true"`
}

// TableName returns the table name for SubscriptionPlan
func (SubscriptionPlan) TableName() string {
	return "subscription_plans"
}
