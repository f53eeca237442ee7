package service

import (
	"errors"
	"fmt"
	"time"

	"impactohub-backend/internal/auth"
	"impactohub-backend/internal/database/models"
	apperrors "impactohub-backend/internal/errors"
	"impactohub-backend/internal/notify"
	"impactohub-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TenantService handles the back-office tenant lifecycle. Every operation is
// admin-category: non-admin callers are rejected before any data is touched.
type TenantService struct {
	repo       repository.TenantRepositoryInterface
	planRepo   repository.SubscriptionPlanRepositoryInterface
	dispatcher *notify.Dispatcher
	validator  *validator.Validate
}

// NewTenantService creates a new tenant service
func NewTenantService(
	repo repository.TenantRepositoryInterface,
	planRepo repository.SubscriptionPlanRepositoryInterface,
	dispatcher *notify.Dispatcher,
	validator *validator.Validate,
) *TenantService {
	return &TenantService{
		repo:       repo,
		planRepo:   planRepo,
		dispatcher: dispatcher,
		validator:  validator,
	}
}

// CreateTenantRequest represents the request to register a tenant
type CreateTenantRequest struct {
	Name        string            `json:"name" validate:"required,min=1,max=255"`
	Kind        models.TenantKind `json:"kind" validate:"required"`
	CNPJ        string            `json:"cnpj,omitempty" validate:"omitempty,max=20"`
	Email       string            `json:"email" validate:"required,email"`
	Phone       string            `json:"phone,omitempty" validate:"omitempty,max=20"`
	Website     string            `json:"website,omitempty" validate:"omitempty,max=255"`
	Description string            `json:"description,omitempty"`
}

// UpdateTenantRequest represents the request to update a tenant
type UpdateTenantRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone       *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	Website     *string `json:"website,omitempty" validate:"omitempty,max=255"`
	Description *string `json:"description,omitempty"`
	LogoURL     *string `json:"logo_url,omitempty" validate:"omitempty,max=500"`
}

// ApproveTenantRequest represents the request to approve a pending tenant
type ApproveTenantRequest struct {
	PlanID        *uuid.UUID `json:"plan_id,omitempty"`
	LicenseMonths int        `json:"license_months,omitempty" validate:"omitempty,min=1,max=120"`
}

// TenantListResponse represents a paginated list of tenants
type TenantListResponse struct {
	Tenants  []models.Tenant `json:"tenants"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// Create registers a new tenant in pending status
func (s *TenantService) Create(caller *auth.Identity, req *CreateTenantRequest) (*models.Tenant, error) {
	if _, err := auth.Authorize(caller, auth.CategoryAdmin, nil); err != nil {
		return nil, err
	}

	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Kind.IsValid() {
		return nil, &apperrors.ValidationError{Field: "kind", Message: "unknown tenant kind"}
	}

	if req.CNPJ != "" {
		existing, err := s.repo.GetByCNPJ(req.CNPJ)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check existing tenant: %w", err)
		}
		if existing != nil {
			return nil, apperrors.ErrTenantExists
		}
	}

	tenant := &models.Tenant{
		Name:        req.Name,
		Kind:        req.Kind,
		CNPJ:        req.CNPJ,
		Email:       req.Email,
		Phone:       req.Phone,
		Website:     req.Website,
		Description: req.Description,
		Status:      models.TenantStatusPending,
	}

	if err := s.repo.Create(tenant); err != nil {
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}

	return tenant, nil
}

// GetByID retrieves a tenant by ID
func (s *TenantService) GetByID(caller *auth.Identity, id uuid.UUID) (*models.Tenant, error) {
	if _, err := auth.Authorize(caller, auth.CategoryAdmin, nil); err != nil {
		return nil, err
	}

	tenant, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	return tenant, nil
}

// GetAll retrieves all tenants with pagination
func (s *TenantService) GetAll(caller *auth.Identity, page, pageSize int) (*TenantListResponse, error) {
	if _, err := auth.Authorize(caller, auth.CategoryAdmin, nil); err != nil {
		return nil, err
	}

	limit, offset, err := normalizePagination(page, pageSize)
	if err != nil {
		return nil, err
	}

	tenants, total, err := s.repo.GetAll(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}

	return &TenantListResponse{
		Tenants:  tenants,
		Total:    total,
		Page:     pageOf(offset, limit),
		PageSize: limit,
	}, nil
}

// Update updates a tenant's profile fields
func (s *TenantService) Update(caller *auth.Identity, id uuid.UUID, req *UpdateTenantRequest) (*models.Tenant, error) {
	if _, err := auth.Authorize(caller, auth.CategoryAdmin, nil); err != nil {
		return nil, err
	}

	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	tenant, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	if req.Name != nil {
		tenant.Name = *req.Name
	}
	if req.Email != nil {
		tenant.Email = *req.Email
	}
	if req.Phone != nil {
		tenant.Phone = *req.Phone
	}
	if req.Website != nil {
		tenant.Website = *req.Website
	}
	if req.Description != nil {
		tenant.Description = *req.Description
	}
	if req.LogoURL != nil {
		tenant.LogoURL = *req.LogoURL
	}

	if err := s.repo.Update(tenant); err != nil {
		return nil, fmt.Errorf("failed to update tenant: %w", err)
	}

	return tenant, nil
}

// Approve moves a tenant to active status, optionally attaching a
// subscription plan and license window. Approving an already active tenant
// re-applies the plan and license instead of failing.
func (s *TenantService) Approve(caller *auth.Identity, id uuid.UUID, req *ApproveTenantRequest) (*models.Tenant, error) {
	if _, err := auth.Authorize(caller, auth.CategoryAdmin, nil); err != nil {
		return nil, err
	}

	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	tenant, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	if req.PlanID != nil {
		if _, err := s.planRepo.GetByID(*req.PlanID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrSubscriptionPlanNotFound
			}
			return nil, fmt.Errorf("failed to verify plan: %w", err)
		}
		tenant.SubscriptionPlanID = req.PlanID
	}

	wasActive := tenant.IsActive()
	tenant.Status = models.TenantStatusActive

	months := req.LicenseMonths
	if months == 0 {
		months = 12
	}
	expires := time.Now().AddDate(0, months, 0)
	tenant.LicenseExpiresAt = &expires

	if err := s.repo.Update(tenant); err != nil {
		return nil, fmt.Errorf("failed to approve tenant: %w", err)
	}

	// Only the first approval announces itself; re-approval is silent.
	if !wasActive && s.dispatcher != nil {
		s.dispatcher.TenantApproved(tenant)
	}

	return tenant, nil
}

// Reject moves a pending tenant to inactive status
func (s *TenantService) Reject(caller *auth.Identity, id uuid.UUID) (*models.Tenant, error) {
	if _, err := auth.Authorize(caller, auth.CategoryAdmin, nil); err != nil {
		return nil, err
	}

	tenant, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	if tenant.Status != models.TenantStatusPending {
		return nil, apperrors.ErrInvalidStatusTransition
	}

	tenant.Status = models.TenantStatusInactive
	if err := s.repo.Update(tenant); err != nil {
		return nil, fmt.Errorf("failed to reject tenant: %w", err)
	}

	return tenant, nil
}

// Delete removes a tenant and, via cascade, everything scoped to it
func (s *TenantService) Delete(caller *auth.Identity, id uuid.UUID) error {
	if _, err := auth.Authorize(caller, auth.CategoryAdmin, nil); err != nil {
		return err
	}

	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTenantNotFound
		}
		return fmt.Errorf("failed to get tenant: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete tenant: %w", err)
	}

	return nil
}

// pageOf recovers the 1-based page number from limit/offset
func pageOf(offset, limit int) int {
	if limit <= 0 {
		return 1
	}
	return offset/limit + 1
}
