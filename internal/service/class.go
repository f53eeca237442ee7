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

// ClassService handles business logic for classes
type ClassService struct {
	repo        repository.ClassRepositoryInterface
	projectRepo repository.ProjectRepositoryInterface
	validator   *validator.Validate
}

// NewClassService creates a new class service
func NewClassService(repo repository.ClassRepositoryInterface, projectRepo repository.ProjectRepositoryInterface, validator *validator.Validate) *ClassService {
	return &ClassService{repo: repo, projectRepo: projectRepo, validator: validator}
}

// CreateClassRequest represents the request to create a class
type CreateClassRequest struct {
	ProjectID       *uuid.UUID `json:"project_id,omitempty"`
	Name            string     `json:"name" validate:"required,min=1,max=255"`
	Description     string     `json:"description,omitempty"`
	StartDate       time.Time  `json:"start_date" validate:"required"`
	EndDate         *time.Time `json:"end_date,omitempty"`
	MaxParticipants int        `json:"max_participants,omitempty" validate:"omitempty,gte=0"`
}

// ClassListResponse represents a paginated list of classes
type ClassListResponse struct {
	Classes  []models.Class `json:"classes"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// Create creates a new class in the caller's tenant
func (s *ClassService) Create(caller *auth.Identity, req *CreateClassRequest) (*models.Class, error) {
	tenantID, err := auth.Authorize(caller, auth.CategoryTenantWrite, nil)
	if err != nil {
		return nil, err
	}

	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
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

	class := &models.Class{
		TenantID:        tenantID,
		ProjectID:       req.ProjectID,
		Name:            req.Name,
		Description:     req.Description,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		MaxParticipants: req.MaxParticipants,
		Status:          models.ClassStatusPlanning,
	}

	if err := s.repo.Create(class); err != nil {
		return nil, fmt.Errorf("failed to create class: %w", err)
	}

	return class, nil
}

// List retrieves the caller tenant's classes with pagination
func (s *ClassService) List(caller *auth.Identity, page, pageSize int) (*ClassListResponse, error) {
	tenantID, err := auth.Authorize(caller, auth.CategoryTenantRead, nil)
	if err != nil {
		return nil, err
	}

	limit, offset, err := normalizePagination(page, pageSize)
	if err != nil {
		return nil, err
	}

	classes, total, err := s.repo.GetByTenantID(tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list classes: %w", err)
	}

	return &ClassListResponse{
		Classes:  classes,
		Total:    total,
		Page:     pageOf(offset, limit),
		PageSize: limit,
	}, nil
}
