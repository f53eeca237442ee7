package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"impactohub-backend/internal/auth"
	apperrors "impactohub-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// respondError maps a service error onto the wire. The mapping is by error
// category only: not-found answers never distinguish absent from
// cross-tenant, and unexpected errors answer with an opaque body while the
// full detail goes to the server log.
func respondError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		details := make(map[string]string, len(validationErrs))
		for _, fieldErr := range validationErrs {
			details[fieldErr.Field()] = fieldErr.Tag()
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": details})
		return
	}

	switch {
	case apperrors.IsUnauthenticated(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
	case apperrors.IsForbidden(err):
		c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err),
		errors.Is(err, apperrors.ErrInvalidStatusTransition),
		errors.Is(err, apperrors.ErrInvalidPaginationParams):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logrus.WithFields(logrus.Fields{
			"request_id": c.GetString("request_id"),
			"path":       c.Request.URL.Path,
		}).Errorf("request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// caller extracts the resolved identity placed on the context by RequireAuth
func caller(c *gin.Context) *auth.Identity {
	identity, _ := auth.GetIdentity(c)
	return identity
}

// parseIDParam parses a uuid path parameter
func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}

// pagination reads page/page_size query parameters
func pagination(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "20"))
	return page, pageSize
}
