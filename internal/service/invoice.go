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

// InvoiceService handles business logic for billing invoices. Issuing is
// admin-category; a tenant may read its own invoices.
type InvoiceService struct {
	repo       repository.InvoiceRepositoryInterface
	tenantRepo repository.TenantRepositoryInterface
	validator  *validator.Validate
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(repo repository.InvoiceRepositoryInterface, tenantRepo repository.TenantRepositoryInterface, validator *validator.Validate) *InvoiceService {
	return &InvoiceService{repo: repo, tenantRepo: tenantRepo, validator: validator}
}

// CreateInvoiceRequest represents the request to issue an invoice
type CreateInvoiceRequest struct {
	TenantID      uuid.UUID `json:"tenant_id" validate:"required"`
	InvoiceNumber string    `json:"invoice_number" validate:"required,max=50"`
	Amount        float64   `json:"amount" validate:"required,gt=0"`
	DueDate       time.Time `json:"due_date" validate:"required"`
	BoletoURL     string    `json:"boleto_url,omitempty" validate:"omitempty,max=500"`
	Description   string    `json:"description,omitempty"`
}

// InvoiceListResponse represents a paginated list of invoices
type InvoiceListResponse struct {
	Invoices []models.Invoice `json:"invoices"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// Create issues a new invoice for a tenant
func (s *InvoiceService) Create(caller *auth.Identity, req *CreateInvoiceRequest) (*models.Invoice, error) {
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

	existing, err := s.repo.GetByNumber(req.InvoiceNumber)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing invoice: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrInvoiceExists
	}

	invoice := &models.Invoice{
		TenantID:      req.TenantID,
		InvoiceNumber: req.InvoiceNumber,
		Amount:        req.Amount,
		Status:        models.InvoiceStatusPending,
		DueDate:       req.DueDate,
		BoletoURL:     req.BoletoURL,
		Description:   req.Description,
	}

	if err := s.repo.Create(invoice); err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}

	return invoice, nil
}

// GetByTenant retrieves the invoices of one tenant, admin-side
func (s *InvoiceService) GetByTenant(caller *auth.Identity, tenantID uuid.UUID, page, pageSize int) (*InvoiceListResponse, error) {
	if _, err := auth.Authorize(caller, auth.CategoryAdmin, nil); err != nil {
		return nil, err
	}
	return s.list(tenantID, page, pageSize)
}

// ListOwn retrieves the caller tenant's own invoices
func (s *InvoiceService) ListOwn(caller *auth.Identity, page, pageSize int) (*InvoiceListResponse, error) {
	tenantID, err := auth.Authorize(caller, auth.CategoryTenantRead, nil)
	if err != nil {
		return nil, err
	}
	return s.list(tenantID, page, pageSize)
}

func (s *InvoiceService) list(tenantID uuid.UUID, page, pageSize int) (*InvoiceListResponse, error) {
	limit, offset, err := normalizePagination(page, pageSize)
	if err != nil {
		return nil, err
	}

	invoices, total, err := s.repo.GetByTenantID(tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}

	return &InvoiceListResponse{
		Invoices: invoices,
		Total:    total,
		Page:     pageOf(offset, limit),
		PageSize: limit,
	}, nil
}

// MarkPaid marks an invoice as paid, admin-side
func (s *InvoiceService) MarkPaid(caller *auth.Identity, id uuid.UUID) (*models.Invoice, error) {
	if _, err := auth.Authorize(caller, auth.CategoryAdmin, nil); err != nil {
		return nil, err
	}

	invoice, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}

	if invoice.Status == models.InvoiceStatusPaid {
		return invoice, nil
	}

	now := time.Now()
	invoice.Status = models.InvoiceStatusPaid
	invoice.PaidDate = &now

	if err := s.repo.Update(invoice); err != nil {
		return nil, fmt.Errorf("failed to update invoice: %w", err)
	}

	return invoice, nil
}
