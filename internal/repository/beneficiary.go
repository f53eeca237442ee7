package repository

import (
	"impactohub-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BeneficiaryRepository handles database operations for beneficiaries
type BeneficiaryRepository struct {
	db *gorm.DB
}

// NewBeneficiaryRepository creates a new beneficiary repository
func NewBeneficiaryRepository(db *gorm.DB) *BeneficiaryRepository {
	return &BeneficiaryRepository{db: db}
}

// Create creates a new beneficiary
func (r *BeneficiaryRepository) Create(beneficiary *models.Beneficiary) error {
	return r.db.Create(beneficiary).Error
}

// GetByID retrieves a beneficiary by ID
func (r *BeneficiaryRepository) GetByID(id uuid.UUID) (*models.Beneficiary, error) {
	var beneficiary models.Beneficiary
	err := r.db.First(&beneficiary, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &beneficiary, nil
}

// GetByTenantID retrieves all beneficiaries for a tenant with pagination
func (r *BeneficiaryRepository) GetByTenantID(tenantID uuid.UUID, limit, offset int) ([]models.Beneficiary, int64, error) {
	var beneficiaries []models.Beneficiary
	var total int64

	query := r.db.Model(&models.Beneficiary{}).Where("tenant_id = ?", tenantID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("name ASC").Limit(limit).Offset(offset).Find(&beneficiaries).Error
	if err != nil {
		return nil, 0, err
	}

	return beneficiaries, total, nil
}

// Update updates an existing beneficiary
func (r *BeneficiaryRepository) Update(beneficiary *models.Beneficiary) error {
	return r.db.Save(beneficiary).Error
}

// Delete deletes a beneficiary by ID
func (r *BeneficiaryRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Beneficiary{}, "id = ?", id).Error
}
