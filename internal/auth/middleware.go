package auth

import (
	"net/http"
	"strings"

	"impactohub-backend/internal/database/models"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// Middleware provides session authentication middleware
type Middleware struct {
	service *Service
}

// NewMiddleware creates a new authentication middleware
func NewMiddleware(service *Service) *Middleware {
	return &Middleware{service: service}
}

// RequireAuth resolves the caller from the session cookie or bearer token
// and sets the identity on the request context. Unauthenticated callers get
// a generic failure with no detail about why resolution failed.
func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := m.extractToken(c)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}

		claims, err := m.service.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}

		identity, err := m.service.ResolveIdentity(claims)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}

		c.Set(identityKey, identity)
		c.Set("user_id", identity.UserID.String())
		c.Set("email", identity.Email)

		c.Next()
	}
}

// RequireAdmin rejects callers that do not hold the admin role. Must run
// after RequireAuth. The response carries nothing beyond the category
// mismatch.
func (m *Middleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}

		if identity.Role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// extractToken reads the session token from the cookie, falling back to a
// bearer Authorization header for API clients
func (m *Middleware) extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(m.service.CookieName()); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return ""
	}
	return tokenString
}

// GetIdentity extracts the resolved caller identity from the request context
func GetIdentity(c *gin.Context) (*Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return nil, false
	}

	identity, ok := value.(*Identity)
	return identity, ok
}
