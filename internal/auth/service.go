package auth

import (
	"errors"
	"fmt"
	"time"

	"impactohub-backend/internal/database/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const defaultTokenTTL = 24 * time.Hour

// UserRepository defines the user lookup the session layer needs to resolve
// a token subject into a fresh identity
type UserRepository interface {
	GetByID(id uuid.UUID) (*models.User, error)
}

// Service validates session tokens and resolves caller identities. Token
// issuance happens upstream in the identity provider; this service only
// mints tokens for bootstrap tooling and tests.
type Service struct {
	secret     []byte
	cookieName string
	tokenTTL   time.Duration
	userRepo   UserRepository
}

// Claims represents session JWT claims
type Claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// NewService creates a new session service
func NewService(secret, cookieName string, userRepo UserRepository) (*Service, error) {
	if secret == "" {
		return nil, fmt.Errorf("session JWT secret is required")
	}
	if cookieName == "" {
		cookieName = "session_token"
	}
	return &Service{
		secret:     []byte(secret),
		cookieName: cookieName,
		tokenTTL:   defaultTokenTTL,
		userRepo:   userRepo,
	}, nil
}

// CookieName returns the name of the session cookie
func (s *Service) CookieName() string {
	return s.cookieName
}

// GenerateToken creates a signed session JWT for a user
func (s *Service) GenerateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "impactohub-backend",
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken parses and validates a session JWT
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// ResolveIdentity turns validated claims into a fresh identity. Role and
// tenant come from the user record, not the token, so revoked or moved users
// lose access as soon as the row changes.
func (s *Service) ResolveIdentity(claims *Claims) (*Identity, error) {
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("invalid token subject: %w", err)
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("resolve user: %w", err)
	}

	return IdentityFromUser(user), nil
}
