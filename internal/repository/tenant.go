package repository

import (
	"impactohub-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TenantRepository handles database operations for tenants
type TenantRepository struct {
	db *gorm.DB
}

// NewTenantRepository creates a new tenant repository
func NewTenantRepository(db *gorm.DB) *TenantRepository {
	return &TenantRepository{db: db}
}

// Create creates a new tenant
func (r *TenantRepository) Create(tenant *models.Tenant) error {
	return r.db.Create(tenant).Error
}

// GetByID retrieves a tenant by ID
func (r *TenantRepository) GetByID(id uuid.UUID) (*models.Tenant, error) {
	var tenant models.Tenant
	err := r.db.First(&tenant, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

// GetByCNPJ retrieves a tenant by its registration number
func (r *TenantRepository) GetByCNPJ(cnpj string) (*models.Tenant, error) {
	var tenant models.Tenant
	err := r.db.First(&tenant, "cnpj = ?", cnpj).Error
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

// GetAll retrieves all tenants with pagination
func (r *TenantRepository) GetAll(limit, offset int) ([]models.Tenant, int64, error) {
	var tenants []models.Tenant
	var total int64

	if err := r.db.Model(&models.Tenant{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&tenants).Error
	if err != nil {
		return nil, 0, err
	}

	return tenants, total, nil
}

// GetByStatus retrieves all tenants with a specific status
func (r *TenantRepository) GetByStatus(status models.TenantStatus, limit, offset int) ([]models.Tenant, int64, error) {
	var tenants []models.Tenant
	var total int64

	query := r.db.Model(&models.Tenant{}).Where("status = ?", status)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&tenants).Error
	if err != nil {
		return nil, 0, err
	}

	return tenants, total, nil
}

// Update updates an existing tenant
func (r *TenantRepository) Update(tenant *models.Tenant) error {
	return r.db.Save(tenant).Error
}

// Delete deletes a tenant by ID; dependent rows go with it via cascade
func (r *TenantRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Tenant{}, "id = ?", id).Error
}
