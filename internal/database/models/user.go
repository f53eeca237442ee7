package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a principal. Non-admin users always carry the tenant id of the
// tenant they belong to; admins carry none.
type User struct {
	BaseModel
	Name         string     `json:"name" gorm:"size:255"`
	Email        string     `json:"email" gorm:"uniqueIndex;not null;size:320" validate:"required,email"`
	Role         UserRole   `json:"role" gorm:"not null;size:20;default:'client_user'"`
	TenantID     *uuid.UUID `json:"tenant_id,omitempty" gorm:"type:uuid;index"`
	LastSignedIn time.Time  `json:"last_signed_in"`

	Tenant *Tenant `json:"tenant,omitempty" gorm:"foreignKey:TenantID"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user holds the back-office admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
