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

// ProposalService handles business logic for commercial proposals
type ProposalService struct {
	repo       repository.ProposalRepositoryInterface
	tenantRepo repository.TenantRepositoryInterface
	planRepo   repository.SubscriptionPlanRepositoryInterface
	validator  *validator.Validate
}

// NewProposalService creates a new proposal service
func NewProposalService(
	repo repository.ProposalRepositoryInterface,
	tenantRepo repository.TenantRepositoryInterface,
	planRepo repository.SubscriptionPlanRepositoryInterface,
	validator *validator.Validate,
) *ProposalService {
	return &ProposalService{
		repo:       repo,
		tenantRepo: tenantRepo,
		planRepo:   planRepo,
		validator:  validator,
	}
}

// CreateProposalRequest represents the request to send a proposal
type CreateProposalRequest struct {
	TenantID       uuid.UUID `json:"tenant_id" validate:"required"`
	ProposalNumber string    `json:"proposal_number" validate:"required,max=50"`
	PlanID         uuid.UUID `json:"plan_id" validate:"required"`
	Amount         float64   `json:"amount" validate:"required,gt=0"`
	ValidUntil     time.Time `json:"valid_until" validate:"required"`
	Notes          string    `json:"notes,omitempty"`
}

// ProposalListResponse represents a paginated list of proposals
type ProposalListResponse struct {
	Proposals []models.Proposal `json:"proposals"`
	Total     int64             `json:"total"`
	Page      int               `json:"page"`
	PageSize  int               `json:"page_size"`
}

// Create sends a new proposal to a tenant
func (s *ProposalService) Create(caller *auth.Identity, req *CreateProposalRequest) (*models.Proposal, error) {
	if _, err := auth.Authorize(caller, auth.CategoryAdmin, nil); err != nil {
		return nil, err
	}

	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.tenantRepo.GetByID(req.TenantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to verify tenant: %w", err)
	}

	if _, err := s.planRepo.GetByID(req.PlanID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSubscriptionPlanNotFound
		}
		return nil, fmt.Errorf("failed to verify plan: %w", err)
	}

	existing, err := s.repo.GetByNumber(req.ProposalNumber)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing proposal: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrProposalExists
	}

	proposal := &models.Proposal{
		TenantID:       req.TenantID,
		ProposalNumber: req.ProposalNumber,
		PlanID:         req.PlanID,
		Amount:         req.Amount,
		Status:         models.ProposalStatusSent,
		ValidUntil:     req.ValidUntil,
		Notes:          req.Notes,
	}

	if err := s.repo.Create(proposal); err != nil {
		return nil, fmt.Errorf("failed to create proposal: %w", err)
	}

	return proposal, nil
}

// GetByTenant retrieves the proposals of one tenant, admin-side
func (s *ProposalService) GetByTenant(caller *auth.Identity, tenantID uuid.UUID, page, pageSize int) (*ProposalListResponse, error) {
	if _, err := auth.Authorize(caller, auth.CategoryAdmin, nil); err != nil {
		return nil, err
	}
	return s.list(tenantID, page, pageSize)
}

// ListOwn retrieves the caller tenant's own proposals
func (s *ProposalService) ListOwn(caller *auth.Identity, page, pageSize int) (*ProposalListResponse, error) {
	tenantID, err := auth.Authorize(caller, auth.CategoryTenantRead, nil)
	if err != nil {
		return nil, err
	}
	return s.list(tenantID, page, pageSize)
}

func (s *ProposalService) list(tenantID uuid.UUID, page, pageSize int) (*ProposalListResponse, error) {
	limit, offset, err := normalizePagination(page, pageSize)
	if err != nil {
		return nil, err
	}

	proposals, total, err := s.repo.GetByTenantID(tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list proposals: %w", err)
	}

	return &ProposalListResponse{
		Proposals: proposals,
		Total:     total,
		Page:      pageOf(offset, limit),
		PageSize:  limit,
	}, nil
}
