package auth

import (
	"impactohub-backend/internal/database/models"

	"github.com/google/uuid"
)

// Identity is the resolved caller of an operation. It is passed explicitly
// into every service method instead of being read from ambient state, so the
// authorization path stays testable without a request context.
type Identity struct {
	UserID   uuid.UUID       `json:"user_id"`
	Email    string          `json:"email"`
	Name     string          `json:"name,omitempty"`
	Role     models.UserRole `json:"role"`
	TenantID *uuid.UUID      `json:"tenant_id,omitempty"`
}

// IsAdmin reports whether the caller holds the back-office admin role
func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == models.RoleAdmin
}

// IdentityFromUser builds an Identity from a stored user record
func IdentityFromUser(user *models.User) *Identity {
	return &Identity{
		UserID:   user.ID,
		Email:    user.Email,
		Name:     user.Name,
		Role:     user.Role,
		TenantID: user.TenantID,
	}
}
