package auth_test

import (
	"testing"
	"time"

	"impactohub-backend/internal/auth"
	"impactohub-backend/internal/database/models"
	apperrors "impactohub-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubUserRepo satisfies auth.UserRepository with a fixed user set
type stubUserRepo struct {
	users map[uuid.UUID]*models.User
}

func (r *stubUserRepo) GetByID(id uuid.UUID) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func newTestService(t *testing.T, repo auth.UserRepository) *auth.Service {
	svc, err := auth.NewService("test-secret", "session_token", repo)
	require.NoError(t, err)
	return svc
}

func TestNewServiceRequiresSecret(t *testing.T) {
	_, err := auth.NewService("", "session_token", nil)
	assert.Error(t, err)
}

func TestTokenRoundTrip(t *testing.T) {
	tenantID := uuid.New()
	user := &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "user@osc.test",
		Role:      models.RoleClientUser,
		TenantID:  &tenantID,
	}
	repo := &stubUserRepo{users: map[uuid.UUID]*models.User{user.ID: user}}
	svc := newTestService(t, repo)

	token, err := svc.GenerateToken(user)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.Subject)
	assert.Equal(t, user.Email, claims.Email)

	identity, err := svc.ResolveIdentity(claims)
	require.NoError(t, err)
	assert.Equal(t, user.ID, identity.UserID)
	assert.Equal(t, models.RoleClientUser, identity.Role)
	require.NotNil(t, identity.TenantID)
	assert.Equal(t, tenantID, *identity.TenantID)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	user := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "user@osc.test"}

	other, err := auth.NewService("other-secret", "session_token", nil)
	require.NoError(t, err)
	token, err := other.GenerateToken(user)
	require.NoError(t, err)

	svc := newTestService(t, &stubUserRepo{})
	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsNonHMAC(t *testing.T) {
	// alg=none tokens must never validate
	token := jwt.NewWithClaims(jwt.SigningMethodNone, &auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: uuid.New().String()},
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	svc := newTestService(t, &stubUserRepo{})
	_, err = svc.ValidateToken(signed)
	assert.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	claims := &auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	svc := newTestService(t, &stubUserRepo{})
	_, err = svc.ValidateToken(signed)
	assert.Error(t, err)
}

func TestResolveIdentityUnknownUser(t *testing.T) {
	svc := newTestService(t, &stubUserRepo{})
	claims := &auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: uuid.New().String()},
	}
	_, err := svc.ResolveIdentity(claims)
	assert.Error(t, err)
}

// Role and tenant come from the user row at resolution time, not from the
// token, so role changes take effect on the next request.
func TestResolveIdentityReadsFreshRole(t *testing.T) {
	user := &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "user@osc.test",
		Role:      models.RoleClientUser,
	}
	repo := &stubUserRepo{users: map[uuid.UUID]*models.User{user.ID: user}}
	svc := newTestService(t, repo)

	token, err := svc.GenerateToken(user)
	require.NoError(t, err)
	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	user.Role = models.RoleClientAdmin
	identity, err := svc.ResolveIdentity(claims)
	require.NoError(t, err)
	assert.Equal(t, models.RoleClientAdmin, identity.Role)
}
