package service

import (
	"errors"
	"fmt"

	"impactohub-backend/internal/auth"
	"impactohub-backend/internal/database/models"
	apperrors "impactohub-backend/internal/errors"
	"impactohub-backend/internal/notify"
	"impactohub-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InvestmentService handles business logic for investments. Creation is an
// investor-side write; the approve/reject decision belongs to the tenant that
// owns the funded project.
type InvestmentService struct {
	repo        repository.InvestmentRepositoryInterface
	projectRepo repository.ProjectRepositoryInterface
	tenantRepo  repository.TenantRepositoryInterface
	dispatcher  *notify.Dispatcher
	validator   *validator.Validate
}

// NewInvestmentService creates a new investment service
func NewInvestmentService(
	repo repository.InvestmentRepositoryInterface,
	projectRepo repository.ProjectRepositoryInterface,
	tenantRepo repository.TenantRepositoryInterface,
	dispatcher *notify.Dispatcher,
	validator *validator.Validate,
) *InvestmentService {
	return &InvestmentService{
		repo:        repo,
		projectRepo: projectRepo,
		tenantRepo:  tenantRepo,
		dispatcher:  dispatcher,
		validator:   validator,
	}
}

// CreateInvestmentRequest represents the request to invest in a project
type CreateInvestmentRequest struct {
	ProjectID uuid.UUID `json:"project_id" validate:"required"`
	Amount    float64   `json:"amount" validate:"required,gt=0"`
	Notes     string    `json:"notes,omitempty"`
}

// InvestmentListResponse represents a paginated list of investments
type InvestmentListResponse struct {
	Investments []models.Investment `json:"investments"`
	Total       int64               `json:"total"`
	Page        int                 `json:"page"`
	PageSize    int                 `json:"page_size"`
}

// Create records a pending investment from the caller's tenant into a
// project. The investor tenant is stamped from the resolved identity and
// must be of an investor kind.
func (s *InvestmentService) Create(caller *auth.Identity, req *CreateInvestmentRequest) (*models.Investment, error) {
	tenantID, err := auth.Authorize(caller, auth.CategoryTenantWrite, nil)
	if err != nil {
		return nil, err
	}

	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	tenant, err := s.tenantRepo.GetByID(tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to verify tenant: %w", err)
	}
	if tenant.Kind == models.TenantKindOSC {
		return nil, apperrors.ErrForbidden
	}

	// Investing reaches across tenants on purpose; the project only has to
	// exist. Self-investment stays possible for "both"-kind tenants.
	project, err := s.projectRepo.GetByID(req.ProjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to verify project: %w", err)
	}

	investment := &models.Investment{
		ProjectID:        project.ID,
		InvestorTenantID: tenantID,
		Amount:           req.Amount,
		Status:           models.InvestmentStatusPending,
		Notes:            req.Notes,
	}

	if err := s.repo.Create(investment); err != nil {
		return nil, fmt.Errorf("failed to create investment: %w", err)
	}

	if s.dispatcher != nil {
		s.dispatcher.InvestmentCreated(investment)
	}

	return investment, nil
}

// ListMine retrieves the investments made by the caller's tenant
func (s *InvestmentService) ListMine(caller *auth.Identity, page, pageSize int) (*InvestmentListResponse, error) {
	tenantID, err := auth.Authorize(caller, auth.CategoryTenantRead, nil)
	if err != nil {
		return nil, err
	}

	limit, offset, err := normalizePagination(page, pageSize)
	if err != nil {
		return nil, err
	}

	investments, total, err := s.repo.GetByInvestorTenantID(tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list investments: %w", err)
	}

	return &InvestmentListResponse{
		Investments: investments,
		Total:       total,
		Page:        pageOf(offset, limit),
		PageSize:    limit,
	}, nil
}

// Approve approves a pending investment. The decision belongs to the tenant
// owning the funded project.
func (s *InvestmentService) Approve(caller *auth.Identity, id uuid.UUID) (*models.Investment, error) {
	return s.decide(caller, id, true)
}

// Reject rejects a pending investment
func (s *InvestmentService) Reject(caller *auth.Identity, id uuid.UUID) (*models.Investment, error) {
	return s.decide(caller, id, false)
}

func (s *InvestmentService) decide(caller *auth.Identity, id uuid.UUID, approved bool) (*models.Investment, error) {
	investment, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvestmentNotFound
		}
		return nil, fmt.Errorf("failed to get investment: %w", err)
	}

	project, err := s.projectRepo.GetByID(investment.ProjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvestmentNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	// The authority over the decision is the project-owning tenant. A caller
	// from any other tenant cannot learn the investment exists.
	tenantID, err := auth.Authorize(caller, auth.CategoryTenantWrite, &project.TenantID)
	if err != nil {
		return nil, err
	}
	if project.TenantID != tenantID {
		return nil, apperrors.ErrInvestmentNotFound
	}

	if investment.Status != models.InvestmentStatusPending {
		return nil, apperrors.ErrInvalidStatusTransition
	}

	if approved {
		investment.Status = models.InvestmentStatusApproved
	} else {
		investment.Status = models.InvestmentStatusRejected
	}

	if err := s.repo.Update(investment); err != nil {
		return nil, fmt.Errorf("failed to update investment: %w", err)
	}

	if s.dispatcher != nil {
		s.dispatcher.InvestmentDecided(investment, approved)
	}

	return investment, nil
}
