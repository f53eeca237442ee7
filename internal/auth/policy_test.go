package auth_test

import (
	"testing"

	"impactohub-backend/internal/auth"
	"impactohub-backend/internal/database/models"
	apperrors "impactohub-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	tenantID := uuid.New()
	otherTenantID := uuid.New()

	admin := &auth.Identity{UserID: uuid.New(), Role: models.RoleAdmin}
	clientAdmin := &auth.Identity{UserID: uuid.New(), Role: models.RoleClientAdmin, TenantID: &tenantID}
	clientUser := &auth.Identity{UserID: uuid.New(), Role: models.RoleClientUser, TenantID: &tenantID}
	investor := &auth.Identity{UserID: uuid.New(), Role: models.RoleInvestor, TenantID: &tenantID}
	orphan := &auth.Identity{UserID: uuid.New(), Role: models.RoleClientUser}

	tests := []struct {
		name     string
		caller   *auth.Identity
		category auth.OperationCategory
		target   *uuid.UUID
		want     uuid.UUID
		wantErr  error
	}{
		{
			name:     "nil caller is unauthenticated",
			caller:   nil,
			category: auth.CategoryTenantRead,
			wantErr:  apperrors.ErrUnauthenticated,
		},
		{
			name:     "admin passes admin category without target",
			caller:   admin,
			category: auth.CategoryAdmin,
			want:     uuid.Nil,
		},
		{
			name:     "admin target is honored",
			caller:   admin,
			category: auth.CategoryAdmin,
			target:   &otherTenantID,
			want:     otherTenantID,
		},
		{
			name:     "admin target is honored on tenant categories too",
			caller:   admin,
			category: auth.CategoryTenantRead,
			target:   &otherTenantID,
			want:     otherTenantID,
		},
		{
			name:     "admin without target cannot run tenant-scoped operations",
			caller:   admin,
			category: auth.CategoryTenantWrite,
			wantErr:  apperrors.ErrForbidden,
		},
		{
			name:     "client admin cannot run back-office operations",
			caller:   clientAdmin,
			category: auth.CategoryAdmin,
			wantErr:  apperrors.ErrForbidden,
		},
		{
			name:     "client user resolves own tenant on reads",
			caller:   clientUser,
			category: auth.CategoryTenantRead,
			want:     tenantID,
		},
		{
			name:     "investor resolves own tenant on writes",
			caller:   investor,
			category: auth.CategoryTenantWrite,
			want:     tenantID,
		},
		{
			name:     "non-admin target is ignored",
			caller:   clientUser,
			category: auth.CategoryTenantRead,
			target:   &otherTenantID,
			want:     tenantID,
		},
		{
			name:     "tenant role without tenant fails closed",
			caller:   orphan,
			category: auth.CategoryTenantRead,
			wantErr:  apperrors.ErrNoTenant,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := auth.Authorize(tt.caller, tt.category, tt.target)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ErrNoTenant and ErrForbidden must present the same message so a broken
// user record is not distinguishable from a plain denial.
func TestDenialMessagesMatch(t *testing.T) {
	assert.Equal(t, apperrors.ErrForbidden.Error(), apperrors.ErrNoTenant.Error())
	assert.True(t, apperrors.IsForbidden(apperrors.ErrNoTenant))
}
