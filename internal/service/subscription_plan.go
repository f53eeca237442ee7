package service

import (
	"errors"
	"fmt"

	"impactohub-backend/internal/auth"
	"impactohub-backend/internal/database/models"
	apperrors "impactohub-backend/internal/errors"
	"impactohub-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubscriptionPlanService handles business logic for subscription plans
type SubscriptionPlanService struct {
	repo      repository.SubscriptionPlanRepositoryInterface
	validator *validator.Validate
}

// NewSubscriptionPlanService creates a new subscription plan service
func NewSubscriptionPlanService(repo repository.SubscriptionPlanRepositoryInterface, validator *validator.Validate) *SubscriptionPlanService {
	return &SubscriptionPlanService{repo: repo, validator: validator}
}

// CreateSubscriptionPlanRequest represents the request to create a plan
type CreateSubscriptionPlanRequest struct {
	Name             string  `json:"name" validate:"required,max=255"`
	Description      string  `json:"description,omitempty"`
	MonthlyPrice     float64 `json:"monthly_price" validate:"required,gte=0"`
	YearlyPrice      float64 `json:"yearly_price,omitempty" validate:"omitempty,gte=0"`
	MaxUsers         int     `json:"max_users,omitempty" validate:"omitempty,gte=0"`
	MaxProjects      int     `json:"max_projects,omitempty" validate:"omitempty,gte=0"`
	MaxBeneficiaries int     `json:"max_beneficiaries,omitempty" validate:"omitempty,gte=0"`
}

// SubscriptionPlanListResponse represents a paginated list of plans
type SubscriptionPlanListResponse struct {
	Plans    []models.SubscriptionPlan `json:"plans"`
	Total    int64                     `json:"total"`
	Page     int                       `json:"page"`
	PageSize int                       `json:"page_size"`
}

// Create creates a new subscription plan
func (s *SubscriptionPlanService) Create(caller *auth.Identity, req *CreateSubscriptionPlanRequest) (*models.SubscriptionPlan, error) {
	if _, err := auth.Authorize(caller, auth.CategoryAdmin, nil); err != nil {
		return nil, err
	}

	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.repo.GetByName(req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing plan: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrSubscriptionPlanExists
	}

	plan := &models.SubscriptionPlan{
		Name:             req.Name,
		Description:      req.Description,
		MonthlyPrice:     req.MonthlyPrice,
		YearlyPrice:      req.YearlyPrice,
		MaxUsers:         req.MaxUsers,
		MaxProjects:      req.MaxProjects,
		MaxBeneficiaries: req.MaxBeneficiaries,
		IsActive:         true,
	}

	if err := s.repo.Create(plan); err != nil {
		return nil, fmt.Errorf("failed to create plan: %w", err)
	}

	return plan, nil
}

// GetByID retrieves a subscription plan by ID
func (s *SubscriptionPlanService) GetByID(caller *auth.Identity, id uuid.UUID) (*models.SubscriptionPlan, error) {
	if _, err := auth.Authorize(caller, auth.CategoryAdmin, nil); err != nil {
		return nil, err
	}

	plan, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSubscriptionPlanNotFound
		}
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	return plan, nil
}

// GetAll retrieves all subscription plans with pagination
func (s *SubscriptionPlanService) GetAll(caller *auth.Identity, page, pageSize int) (*SubscriptionPlanListResponse, error) {
	if _, err := auth.Authorize(caller, auth.CategoryAdmin, nil); err != nil {
		return nil, err
	}

	limit, offset, err := normalizePagination(page, pageSize)
	if err != nil {
		return nil, err
	}

	plans, total, err := s.repo.GetAll(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	return &SubscriptionPlanListResponse{
		Plans:    plans,
		Total:    total,
		Page:     pageOf(offset, limit),
		PageSize: limit,
	}, nil
}
