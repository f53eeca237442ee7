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

// ProjectService handles business logic for projects. All operations are
// tenant-scoped: the record's tenant is re-checked after every lookup by
// primary key, and a cross-tenant id resolves to not-found.
type ProjectService struct {
	repo       repository.ProjectRepositoryInterface
	dispatcher *notify.Dispatcher
	validator  *validator.Validate
}

// NewProjectService creates a new project service
func NewProjectService(repo repository.ProjectRepositoryInterface, dispatcher *notify.Dispatcher, validator *validator.Validate) *ProjectService {
	return &ProjectService{repo: repo, dispatcher: dispatcher, validator: validator}
}

// CreateProjectRequest represents the request to create a project
type CreateProjectRequest struct {
	Name           string    `json:"name" validate:"required,min=1,max=255"`
	Description    string    `json:"description,omitempty"`
	Objectives     string    `json:"objectives,omitempty"`
	StartDate      time.Time `json:"start_date" validate:"required"`
	EndDate        time.Time `json:"end_date" validate:"required,gtfield=StartDate"`
	Budget         float64   `json:"budget,omitempty" validate:"omitempty,gte=0"`
	TargetAudience string    `json:"target_audience,omitempty" validate:"omitempty,max=255"`
	Location       string    `json:"location,omitempty" validate:"omitempty,max=255"`
}

// UpdateProjectRequest represents the request to update a project
type UpdateProjectRequest struct {
	Name           *string               `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Description    *string               `json:"description,omitempty"`
	Objectives     *string               `json:"objectives,omitempty"`
	StartDate      *time.Time            `json:"start_date,omitempty"`
	EndDate        *time.Time            `json:"end_date,omitempty"`
	Budget         *float64              `json:"budget,omitempty" validate:"omitempty,gte=0"`
	Status         *models.ProjectStatus `json:"status,omitempty"`
	TargetAudience *string               `json:"target_audience,omitempty" validate:"omitempty,max=255"`
	Location       *string               `json:"location,omitempty" validate:"omitempty,max=255"`
}

// ProjectListResponse represents a paginated list of projects
type ProjectListResponse struct {
	Projects []models.Project `json:"projects"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// Create creates a new project in the caller's tenant. The tenant id is
// stamped from the resolved identity; nothing in the payload can move the
// record into another tenant.
func (s *ProjectService) Create(caller *auth.Identity, req *CreateProjectRequest) (*models.Project, error) {
	tenantID, err := auth.Authorize(caller, auth.CategoryTenantWrite, nil)
	if err != nil {
		return nil, err
	}

	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	project := &models.Project{
		TenantID:       tenantID,
		Name:           req.Name,
		Description:    req.Description,
		Objectives:     req.Objectives,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Budget:         req.Budget,
		Status:         models.ProjectStatusPlanning,
		TargetAudience: req.TargetAudience,
		Location:       req.Location,
	}

	if err := s.repo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return project, nil
}

// GetByID retrieves a project by ID within the caller's scope
func (s *ProjectService) GetByID(caller *auth.Identity, id uuid.UUID) (*models.Project, error) {
	return s.getScoped(caller, auth.CategoryTenantRead, id)
}

// List retrieves the caller tenant's projects with pagination
func (s *ProjectService) List(caller *auth.Identity, page, pageSize int) (*ProjectListResponse, error) {
	tenantID, err := auth.Authorize(caller, auth.CategoryTenantRead, nil)
	if err != nil {
		return nil, err
	}

	limit, offset, err := normalizePagination(page, pageSize)
	if err != nil {
		return nil, err
	}

	projects, total, err := s.repo.GetByTenantID(tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	return &ProjectListResponse{
		Projects: projects,
		Total:    total,
		Page:     pageOf(offset, limit),
		PageSize: limit,
	}, nil
}

// Update updates a project and fans the change out to approved investors
func (s *ProjectService) Update(caller *auth.Identity, id uuid.UUID, req *UpdateProjectRequest) (*models.Project, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.Status != nil && !req.Status.IsValid() {
		return nil, &apperrors.ValidationError{Field: "status", Message: "unknown project status"}
	}

	project, err := s.getScoped(caller, auth.CategoryTenantWrite, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Objectives != nil {
		project.Objectives = *req.Objectives
	}
	if req.StartDate != nil {
		project.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		project.EndDate = *req.EndDate
	}
	if req.Budget != nil {
		project.Budget = *req.Budget
	}
	if req.Status != nil {
		project.Status = *req.Status
	}
	if req.TargetAudience != nil {
		project.TargetAudience = *req.TargetAudience
	}
	if req.Location != nil {
		project.Location = *req.Location
	}

	if err := s.repo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	if s.dispatcher != nil {
		s.dispatcher.ProjectUpdated(project)
	}

	return project, nil
}

// Delete removes a project and, via cascade, its dependents
func (s *ProjectService) Delete(caller *auth.Identity, id uuid.UUID) error {
	if _, err := s.getScoped(caller, auth.CategoryTenantWrite, id); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	return nil
}

// getScoped fetches a project by primary key and verifies the caller may see
// it. A record belonging to another tenant is indistinguishable from a
// missing one.
func (s *ProjectService) getScoped(caller *auth.Identity, category auth.OperationCategory, id uuid.UUID) (*models.Project, error) {
	project, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	tenantID, err := auth.Authorize(caller, category, &project.TenantID)
	if err != nil {
		return nil, err
	}
	if project.TenantID != tenantID {
		return nil, apperrors.ErrProjectNotFound
	}

	return project, nil
}
