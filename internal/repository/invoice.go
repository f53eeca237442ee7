package repository

import (
	"impactohub-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InvoiceRepository handles database operations for invoices
type InvoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// Create creates a new invoice
func (r *InvoiceRepository) Create(invoice *models.Invoice) error {
	return r.db.Create(invoice).Error
}

// GetByID retrieves an invoice by ID
func (r *InvoiceRepository) GetByID(id uuid.UUID) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.First(&invoice, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

// GetByNumber retrieves an invoice by its invoice number
func (r *InvoiceRepository) GetByNumber(number string) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.First(&invoice, "invoice_number = ?", number).Error
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

// GetByTenantID retrieves all invoices for a tenant with pagination
func (r *InvoiceRepository) GetByTenantID(tenantID uuid.UUID, limit, offset int) ([]models.Invoice, int64, error) {
	var invoices []models.Invoice
	var total int64

	query := r.db.Model(&models.Invoice{}).Where("tenant_id = ?", tenantID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("due_date DESC").Limit(limit).Offset(offset).Find(&invoices).Error
	if err != nil {
		return nil, 0, err
	}

	return invoices, total, nil
}

// GetAll retrieves all invoices with pagination
func (r *InvoiceRepository) GetAll(limit, offset int) ([]models.Invoice, int64, error) {
	var invoices []models.Invoice
	var total int64

	if err := r.db.Model(&models.Invoice{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("due_date DESC").Limit(limit).Offset(offset).Find(&invoices).Error
	if err != nil {
		return nil, 0, err
	}

	return invoices, total, nil
}

// Update updates an existing invoice
func (r *InvoiceRepository) Update(invoice *models.Invoice) error {
	return r.db.Save(invoice).Error
}

// Delete deletes an invoice by ID
func (r *InvoiceRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Invoice{}, "id = ?", id).Error
}
