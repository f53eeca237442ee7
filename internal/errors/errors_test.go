package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "project"}
		assert.Equal(t, "project not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "project"}
		err2 := &NotFoundError{Entity: "project"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "project"}
		err2 := &NotFoundError{Entity: "tenant"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrProjectNotFound, ErrProjectNotFound))
		assert.False(t, errors.Is(ErrProjectNotFound, ErrTenantNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrProjectNotFound))
		assert.True(t, IsNotFound(fmt.Errorf("lookup: %w", ErrTenantNotFound)))
		assert.False(t, IsNotFound(ErrInvalidStatus))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "invoice", Context: "with this number"}
		assert.Equal(t, "invoice already exists with this number", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "invoice"}
		assert.Equal(t, "invoice already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err1 := &AlreadyExistsError{Entity: "invoice", Context: "with this number"}
		err2 := &AlreadyExistsError{Entity: "invoice", Context: "with this number"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrInvoiceExists))
		assert.False(t, IsAlreadyExists(ErrInvoiceNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := &ValidationError{Field: "email", Message: "must be a valid email"}
		assert.Equal(t, "validation error: email - must be a valid email", err.Error())
	})

	t.Run("without field", func(t *testing.T) {
		err := &ValidationError{Message: "payload malformed"}
		assert.Equal(t, "validation error: payload malformed", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(&ValidationError{Message: "bad"}))
		assert.False(t, IsValidation(ErrProjectNotFound))
	})
}

func TestAuthErrors(t *testing.T) {
	t.Run("unauthenticated vs forbidden are distinct kinds", func(t *testing.T) {
		assert.True(t, IsUnauthenticated(ErrUnauthenticated))
		assert.False(t, IsUnauthenticated(ErrForbidden))
		assert.True(t, IsForbidden(ErrForbidden))
		assert.False(t, IsForbidden(ErrUnauthenticated))
	})

	t.Run("missing tenant fails closed as authorization error", func(t *testing.T) {
		assert.True(t, IsForbidden(ErrNoTenant))
		// The message leaks nothing about the misconfiguration.
		assert.Equal(t, ErrForbidden.Error(), ErrNoTenant.Error())
	})

	t.Run("wrapped errors keep their kind", func(t *testing.T) {
		wrapped := fmt.Errorf("gate: %w", ErrForbidden)
		assert.True(t, IsForbidden(wrapped))
	})
}
