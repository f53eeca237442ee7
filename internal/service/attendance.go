package service

import (
	"errors"
	"fmt"
	"time"

	"impactohub-backend/internal/auth"
	"impactohub-backend/internal/database/models"
	apperrors "impactohub-backend/internal/errors"
	"impactohub-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttendanceService handles business logic for attendances. Referenced
// beneficiaries and projects must live in the caller's own tenant.
type AttendanceService struct {
	repo            repository.AttendanceRepositoryInterface
	beneficiaryRepo repository.BeneficiaryRepositoryInterface
	projectRepo     repository.ProjectRepositoryInterface
	validator       *validator.Validate
}

// NewAttendanceService creates a new attendance service
func NewAttendanceService(
	repo repository.AttendanceRepositoryInterface,
	beneficiaryRepo repository.BeneficiaryRepositoryInterface,
	projectRepo repository.ProjectRepositoryInterface,
	validator *validator.Validate,
) *AttendanceService {
	return &AttendanceService{
		repo:            repo,
		beneficiaryRepo: beneficiaryRepo,
		projectRepo:     projectRepo,
		validator:       validator,
	}
}

// CreateAttendanceRequest represents the request to record an attendance
type CreateAttendanceRequest struct {
	BeneficiaryID *uuid.UUID            `json:"beneficiary_id,omitempty"`
	ProjectID     *uuid.UUID            `json:"project_id,omitempty"`
	Type          models.AttendanceType `json:"type" validate:"required"`
	Date          time.Time             `json:"date" validate:"required"`
	Duration      int                   `json:"duration,omitempty" validate:"omitempty,gte=0"`
	Notes         string                `json:"notes,omitempty"`
}

// AttendanceListResponse represents a paginated list of attendances
type AttendanceListResponse struct {
	Attendances []models.Attendance `json:"attendances"`
	Total       int64               `json:"total"`
	Page        int                 `json:"page"`
	PageSize    int                 `json:"page_size"`
}

// Create records a new attendance in the caller's tenant
func (s *AttendanceService) Create(caller *auth.Identity, req *CreateAttendanceRequest) (*models.Attendance, error) {
	tenantID, err := auth.Authorize(caller, auth.CategoryTenantWrite, nil)
	if err != nil {
		return nil, err
	}

	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Type.IsValid() {
		return nil, &apperrors.ValidationError{Field: "type", Message: "unknown attendance type"}
	}

	// Cross-tenant references resolve to not-found, same as direct lookups.
	if req.BeneficiaryID != nil {
		beneficiary, err := s.beneficiaryRepo.GetByID(*req.BeneficiaryID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrBeneficiaryNotFound
			}
			return nil, fmt.Errorf("failed to verify beneficiary: %w", err)
		}
		if beneficiary.TenantID != tenantID {
			return nil, apperrors.ErrBeneficiaryNotFound
		}
	}
	if req.ProjectID != nil {
		project, err := s.projectRepo.GetByID(*req.ProjectID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrProjectNotFound
			}
			return nil, fmt.Errorf("failed to verify project: %w", err)
		}
		if project.TenantID != tenantID {
			return nil, apperrors.ErrProjectNotFound
		}
	}

	attendance := &models.Attendance{
		TenantID:      tenantID,
		BeneficiaryID: req.BeneficiaryID,
		ProjectID:     req.ProjectID,
		Type:          req.Type,
		Date:          req.Date,
		Duration:      req.Duration,
		Notes:         req.Notes,
		Status:        models.AttendanceStatusCompleted,
	}

	if err := s.repo.Create(attendance); err != nil {
		return nil, fmt.Errorf("failed to create attendance: %w", err)
	}

	return attendance, nil
}

// List retrieves the caller tenant's attendances with pagination
func (s *AttendanceService) List(caller *auth.Identity, page, pageSize int) (*AttendanceListResponse, error) {
	tenantID, err := auth.Authorize(caller, auth.CategoryTenantRead, nil)
	if err != nil {
		return nil, err
	}

	limit, offset, err := normalizePagination(page, pageSize)
	if err != nil {
		return nil, err
	}

	attendances, total, err := s.repo.GetByTenantID(tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}

	return &AttendanceListResponse{
		Attendances: attendances,
		Total:       total,
		Page:        pageOf(offset, limit),
		PageSize:    limit,
	}, nil
}

// ListByBeneficiary retrieves one beneficiary's attendances within the
// caller's tenant
func (s *AttendanceService) ListByBeneficiary(caller *auth.Identity, beneficiaryID uuid.UUID, page, pageSize int) (*AttendanceListResponse, error) {
	tenantID, err := auth.Authorize(caller, auth.CategoryTenantRead, nil)
	if err != nil {
		return nil, err
	}

	limit, offset, err := normalizePagination(page, pageSize)
	if err != nil {
		return nil, err
	}

	attendances, total, err := s.repo.GetByBeneficiaryID(tenantID, beneficiaryID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}

	return &AttendanceListResponse{
		Attendances: attendances,
		Total:       total,
		Page:        pageOf(offset, limit),
		PageSize:    limit,
	}, nil
}
