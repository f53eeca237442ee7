package auth

import (
	"impactohub-backend/internal/database/models"

	apperrors "impactohub-backend/internal/errors"

	"github.com/google/uuid"
)

// OperationCategory classifies every exposed procedure for authorization
type OperationCategory string

const (
	// CategoryAdmin covers back-office operations: tenant lifecycle,
	// billing, branding. Only admins pass.
	CategoryAdmin OperationCategory = "admin"
	// CategoryTenantRead covers reads over tenant-scoped records
	CategoryTenantRead OperationCategory = "tenant_read"
	// CategoryTenantWrite covers mutations of tenant-scoped records
	CategoryTenantWrite OperationCategory = "tenant_write"
)

// Authorize is the role policy: it decides whether the caller may perform an
// operation of the given category and resolves the tenant id the operation
// must be scoped by.
//
// Admins pass every category and are the only callers whose explicitly
// supplied target tenant is honored. Every other role passes only the
// tenant-scoped categories and always resolves to its own tenant id; a
// supplied target is ignored. A tenant-scoped role without a tenant id is an
// inconsistent user record and fails closed.
//
// The resolved id is uuid.Nil only for admin-category operations that target
// no particular tenant (e.g. listing all tenants).
func Authorize(caller *Identity, category OperationCategory, target *uuid.UUID) (uuid.UUID, error) {
	if caller == nil {
		return uuid.Nil, apperrors.ErrUnauthenticated
	}

	if caller.Role == models.RoleAdmin {
		if target != nil {
			return *target, nil
		}
		if category == CategoryAdmin {
			return uuid.Nil, nil
		}
		// Tenant-scoped operations need a concrete tenant to scope by,
		// and admins belong to none.
		return uuid.Nil, apperrors.ErrForbidden
	}

	if category == CategoryAdmin {
		return uuid.Nil, apperrors.ErrForbidden
	}

	if caller.TenantID == nil {
		return uuid.Nil, apperrors.ErrNoTenant
	}

	return *caller.TenantID, nil
}
