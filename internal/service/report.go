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

// ReportService handles business logic for accountability reports
type ReportService struct {
	repo        repository.ReportRepositoryInterface
	projectRepo repository.ProjectRepositoryInterface
	dispatcher  *notify.Dispatcher
	validator   *validator.Validate
}

// NewReportService creates a new report service
func NewReportService(
	repo repository.ReportRepositoryInterface,
	projectRepo repository.ProjectRepositoryInterface,
	dispatcher *notify.Dispatcher,
	validator *validator.Validate,
) *ReportService {
	return &ReportService{
		repo:        repo,
		projectRepo: projectRepo,
		dispatcher:  dispatcher,
		validator:   validator,
	}
}

// CreateReportRequest represents the request to create a report draft
type CreateReportRequest struct {
	ProjectID *uuid.UUID        `json:"project_id,omitempty"`
	Type      models.ReportType `json:"type" validate:"required"`
	Title     string            `json:"title" validate:"required,min=1,max=255"`
	Content   string            `json:"content,omitempty"`
}

// ReportListResponse represents a paginated list of reports
type ReportListResponse struct {
	Reports  []models.Report `json:"reports"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// Create creates a new report draft in the caller's tenant
func (s *ReportService) Create(caller *auth.Identity, req *CreateReportRequest) (*models.Report, error) {
	tenantID, err := auth.Authorize(caller, auth.CategoryTenantWrite, nil)
	if err != nil {
		return nil, err
	}

	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Type.IsValid() {
		return nil, &apperrors.ValidationError{Field: "type", Message: "unknown report type"}
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

	report := &models.Report{
		TenantID:  tenantID,
		ProjectID: req.ProjectID,
		Type:      req.Type,
		Title:     req.Title,
		Content:   req.Content,
		Status:    models.ReportStatusDraft,
	}

	if err := s.repo.Create(report); err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}

	return report, nil
}

// List retrieves the caller tenant's reports with pagination
func (s *ReportService) List(caller *auth.Identity, page, pageSize int) (*ReportListResponse, error) {
	tenantID, err := auth.Authorize(caller, auth.CategoryTenantRead, nil)
	if err != nil {
		return nil, err
	}

	limit, offset, err := normalizePagination(page, pageSize)
	if err != nil {
		return nil, err
	}

	reports, total, err := s.repo.GetByTenantID(tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	return &ReportListResponse{
		Reports:  reports,
		Total:    total,
		Page:     pageOf(offset, limit),
		PageSize: limit,
	}, nil
}

// Submit moves a draft report to submitted and announces it. Only drafts may
// be submitted.
func (s *ReportService) Submit(caller *auth.Identity, id uuid.UUID) (*models.Report, error) {
	report, err := s.getScoped(caller, auth.CategoryTenantWrite, id)
	if err != nil {
		return nil, err
	}

	if report.Status != models.ReportStatusDraft {
		return nil, apperrors.ErrInvalidStatusTransition
	}

	now := time.Now()
	report.Status = models.ReportStatusSubmitted
	report.SubmittedAt = &now

	if err := s.repo.Update(report); err != nil {
		return nil, fmt.Errorf("failed to submit report: %w", err)
	}

	if s.dispatcher != nil {
		s.dispatcher.ReportSubmitted(report)
	}

	return report, nil
}

func (s *ReportService) getScoped(caller *auth.Identity, category auth.OperationCategory, id uuid.UUID) (*models.Report, error) {
	report, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	tenantID, err := auth.Authorize(caller, category, &report.TenantID)
	if err != nil {
		return nil, err
	}
	if report.TenantID != tenantID {
		return nil, apperrors.ErrReportNotFound
	}

	return report, nil
}
