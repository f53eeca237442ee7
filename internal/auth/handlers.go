package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for the session surface
type Handler struct {
	service *Service
}

// NewHandler creates a new session handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Me handles GET /api/auth/me
// @Summary Current caller identity
// @Description Returns the resolved identity of the authenticated caller, or null when unauthenticated
// @Tags auth
// @Produce json
// @Success 200 {object} auth.Identity "Resolved identity (null when no session)"
// @Router /auth/me [get]
func (h *Handler) Me(c *gin.Context) {
	// Public operation: an anonymous caller gets a null identity, not 401.
	tokenString := ""
	if cookie, err := c.Cookie(h.service.CookieName()); err == nil {
		tokenString = cookie
	}
	if tokenString == "" {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}

	claims, err := h.service.ValidateToken(tokenString)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}

	identity, err := h.service.ResolveIdentity(claims)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": identity})
}

// Logout handles POST /api/auth/logout
// @Summary Log out
// @Description Clears the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{} "Logout confirmation"
// @Router /auth/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie(h.service.CookieName(), "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
