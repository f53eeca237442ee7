package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found.
// Cross-tenant reads deliberately collapse into this error so that probing
// ids cannot distinguish "exists in another tenant" from "does not exist".
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this number"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrTenantNotFound             = &NotFoundError{Entity: "tenant"}
	ErrUserNotFound               = &NotFoundError{Entity: "user"}
	ErrProjectNotFound            = &NotFoundError{Entity: "project"}
	ErrBeneficiaryNotFound        = &NotFoundError{Entity: "beneficiary"}
	ErrAttendanceNotFound         = &NotFoundError{Entity: "attendance"}
	ErrClassNotFound              = &NotFoundError{Entity: "class"}
	ErrReportNotFound             = &NotFoundError{Entity: "report"}
	ErrInvoiceNotFound            = &NotFoundError{Entity: "invoice"}
	ErrProposalNotFound           = &NotFoundError{Entity: "proposal"}
	ErrSubscriptionPlanNotFound   = &NotFoundError{Entity: "subscription plan"}
	ErrInvestmentNotFound         = &NotFoundError{Entity: "investment"}
	ErrNotificationNotFound       = &NotFoundError{Entity: "notification"}
	ErrThemeCustomizationNotFound = &NotFoundError{Entity: "theme customization"}
	ErrPageCustomizationNotFound  = &NotFoundError{Entity: "page customization"}
)

// Already Exists Errors
var (
	ErrTenantExists           = &AlreadyExistsError{Entity: "tenant", Context: "with this CNPJ"}
	ErrUserExists             = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrInvoiceExists          = &AlreadyExistsError{Entity: "invoice", Context: "with this number"}
	ErrProposalExists         = &AlreadyExistsError{Entity: "proposal", Context: "with this number"}
	ErrSubscriptionPlanExists = &AlreadyExistsError{Entity: "subscription plan", Context: "with this name"}
)

// Authorization Errors
var (
	ErrUnauthenticated = &AuthenticationError{Message: "authentication required"}
	ErrForbidden       = &AuthorizationError{Message: "access denied"}
	// ErrNoTenant signals an inconsistent user record: a tenant-scoped role
	// without a tenant id. Fails closed as a plain authorization denial.
	ErrNoTenant = &AuthorizationError{Message: "access denied"}
)

// Business Logic Errors
var (
	ErrInvalidStatus           = errors.New("invalid status")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrTenantNotApproved       = errors.New("tenant is not approved")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsUnauthenticated checks if an error is an AuthenticationError
func IsUnauthenticated(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsForbidden checks if an error is an AuthorizationError
func IsForbidden(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}
