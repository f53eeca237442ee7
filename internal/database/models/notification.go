package models

import "github.com/google/uuid"

// Notification is an in-app notification row addressed to one user of a tenant
type Notification struct {
	BaseModel
	TenantID uuid.UUID        `json:"tenant_id" gorm:"type:uuid;not null;index"`
	UserID   *uuid.UUID       `json:"user_id,omitempty" gorm:"type:uuid;index"`
	Title    string           `json:"title" gorm:"not null;size:255"`
	Message  string           `json:"message" gorm:"not null;type:text"`
	Type     NotificationType `json:"type" gorm:"size:20"`
	Link     string           `json:"link,omitempty" gorm:"size:500"`
	IsRead   bool             `json:"is_read" gorm:"not null;default:false"`

	Tenant *Tenant `json:"tenant,omitempty" gorm:"foreignKey:TenantID"`
}

// TableName returns the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}
