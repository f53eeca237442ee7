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

// BeneficiaryService handles business logic for beneficiaries
type BeneficiaryService struct {
	repo      repository.BeneficiaryRepositoryInterface
	validator *validator.Validate
}

// NewBeneficiaryService creates a new beneficiary service
func NewBeneficiaryService(repo repository.BeneficiaryRepositoryInterface, validator *validator.Validate) *BeneficiaryService {
	return &BeneficiaryService{repo: repo, validator: validator}
}

// CreateBeneficiaryRequest represents the request to register a beneficiary
type CreateBeneficiaryRequest struct {
	Name           string     `json:"name" validate:"required,min=1,max=255"`
	BirthDate      *time.Time `json:"birth_date,omitempty"`
	Gender         string     `json:"gender,omitempty" validate:"omitempty,max=20"`
	Ethnicity      string     `json:"ethnicity,omitempty" validate:"omitempty,max=100"`
	MaritalStatus  string     `json:"marital_status,omitempty" validate:"omitempty,max=50"`
	Education      string     `json:"education,omitempty" validate:"omitempty,max=100"`
	Income         string     `json:"income,omitempty" validate:"omitempty,max=20"`
	Occupation     string     `json:"occupation,omitempty" validate:"omitempty,max=255"`
	AddressStreet  string     `json:"address_street,omitempty" validate:"omitempty,max=255"`
	AddressNumber  string     `json:"address_number,omitempty" validate:"omitempty,max=20"`
	AddressCity    string     `json:"address_city,omitempty" validate:"omitempty,max=100"`
	AddressState   string     `json:"address_state,omitempty" validate:"omitempty,len=2"`
	AddressZipCode string     `json:"address_zip_code,omitempty" validate:"omitempty,max=10"`
	ContactPhone   string     `json:"contact_phone,omitempty" validate:"omitempty,max=20"`
	ContactEmail   string     `json:"contact_email,omitempty" validate:"omitempty,email"`
	Notes          string     `json:"notes,omitempty"`
}

// UpdateBeneficiaryRequest represents the request to update a beneficiary
type UpdateBeneficiaryRequest struct {
	Name         *string                   `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Status       *models.BeneficiaryStatus `json:"status,omitempty"`
	Occupation   *string                   `json:"occupation,omitempty" validate:"omitempty,max=255"`
	ContactPhone *string                   `json:"contact_phone,omitempty" validate:"omitempty,max=20"`
	ContactEmail *string                   `json:"contact_email,omitempty" validate:"omitempty,email"`
	Notes        *string                   `json:"notes,omitempty"`
}

// BeneficiaryListResponse represents a paginated list of beneficiaries
type BeneficiaryListResponse struct {
	Beneficiaries []models.Beneficiary `json:"beneficiaries"`
	Total         int64                `json:"total"`
	Page          int                  `json:"page"`
	PageSize      int                  `json:"page_size"`
}

// Create registers a new beneficiary in the caller's tenant
func (s *BeneficiaryService) Create(caller *auth.Identity, req *CreateBeneficiaryRequest) (*models.Beneficiary, error) {
	tenantID, err := auth.Authorize(caller, auth.CategoryTenantWrite, nil)
	if err != nil {
		return nil, err
	}

	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	beneficiary := &models.Beneficiary{
		TenantID:         tenantID,
		Name:             req.Name,
		BirthDate:        req.BirthDate,
		Gender:           req.Gender,
		Ethnicity:        req.Ethnicity,
		MaritalStatus:    req.MaritalStatus,
		Education:        req.Education,
		Income:           req.Income,
		Occupation:       req.Occupation,
		AddressStreet:    req.AddressStreet,
		AddressNumber:    req.AddressNumber,
		AddressCity:      req.AddressCity,
		AddressState:     req.AddressState,
		AddressZipCode:   req.AddressZipCode,
		ContactPhone:     req.ContactPhone,
		ContactEmail:     req.ContactEmail,
		RegistrationDate: time.Now(),
		Status:           models.BeneficiaryStatusActive,
		Notes:            req.Notes,
	}

	if err := s.repo.Create(beneficiary); err != nil {
		return nil, fmt.Errorf("failed to create beneficiary: %w", err)
	}

	return beneficiary, nil
}

// GetByID retrieves a beneficiary by ID within the caller's scope
func (s *BeneficiaryService) GetByID(caller *auth.Identity, id uuid.UUID) (*models.Beneficiary, error) {
	return s.getScoped(caller, auth.CategoryTenantRead, id)
}

// List retrieves the caller tenant's beneficiaries with pagination
func (s *BeneficiaryService) List(caller *auth.Identity, page, pageSize int) (*BeneficiaryListResponse, error) {
	tenantID, err := auth.Authorize(caller, auth.CategoryTenantRead, nil)
	if err != nil {
		return nil, err
	}

	limit, offset, err := normalizePagination(page, pageSize)
	if err != nil {
		return nil, err
	}

	beneficiaries, total, err := s.repo.GetByTenantID(tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list beneficiaries: %w", err)
	}

	return &BeneficiaryListResponse{
		Beneficiaries: beneficiaries,
		Total:         total,
		Page:          pageOf(offset, limit),
		PageSize:      limit,
	}, nil
}

// Update updates a beneficiary within the caller's scope
func (s *BeneficiaryService) Update(caller *auth.Identity, id uuid.UUID, req *UpdateBeneficiaryRequest) (*models.Beneficiary, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.Status != nil && !req.Status.IsValid() {
		return nil, &apperrors.ValidationError{Field: "status", Message: "unknown beneficiary status"}
	}

	beneficiary, err := s.getScoped(caller, auth.CategoryTenantWrite, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		beneficiary.Name = *req.Name
	}
	if req.Status != nil {
		beneficiary.Status = *req.Status
	}
	if req.Occupation != nil {
		beneficiary.Occupation = *req.Occupation
	}
	if req.ContactPhone != nil {
		beneficiary.ContactPhone = *req.ContactPhone
	}
	if req.ContactEmail != nil {
		beneficiary.ContactEmail = *req.ContactEmail
	}
	if req.Notes != nil {
		beneficiary.Notes = *req.Notes
	}

	if err := s.repo.Update(beneficiary); err != nil {
		return nil, fmt.Errorf("failed to update beneficiary: %w", err)
	}

	return beneficiary, nil
}

func (s *BeneficiaryService) getScoped(caller *auth.Identity, category auth.OperationCategory, id uuid.UUID) (*models.Beneficiary, error) {
	beneficiary, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBeneficiaryNotFound
		}
		return nil, fmt.Errorf("failed to get beneficiary: %w", err)
	}

	tenantID, err := auth.Authorize(caller, category, &beneficiary.TenantID)
	if err != nil {
		return nil, err
	}
	if beneficiary.TenantID != tenantID {
		return nil, apperrors.ErrBeneficiaryNotFound
	}

	return beneficiary, nil
}
