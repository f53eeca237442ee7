package repository

import (
	"impactohub-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InvestmentRepository handles database operations for investments
type InvestmentRepository struct {
	db *gorm.DB
}

// NewInvestmentRepository creates a new investment repository
func NewInvestmentRepository(db *gorm.DB) *InvestmentRepository {
	return &InvestmentRepository{db: db}
}

// Create creates a new investment
func (r *InvestmentRepository) Create(investment *models.Investment) error {
	return r.db.Create(investment).Error
}

// GetByID retrieves an investment by ID
func (r *InvestmentRepository) GetByID(id uuid.UUID) (*models.Investment, error) {
	var investment models.Investment
	err := r.db.Preload("Project").First(&investment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &investment, nil
}

// GetByInvestorTenantID retrieves all investments made by an investor tenant
func (r *InvestmentRepository) GetByInvestorTenantID(tenantID uuid.UUID, limit, offset int) ([]models.Investment, int64, error) {
	var investments []models.Investment
	var total int64

	query := r.db.Model(&models.Investment{}).Where("investor_tenant_id = ?", tenantID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("Project").Where("investor_tenant_id = ?", tenantID).
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&investments).Error
	if err != nil {
		return nil, 0, err
	}

	return investments, total, nil
}

// GetByProjectID retrieves all investments into a project
func (r *InvestmentRepository) GetByProjectID(projectID uuid.UUID, limit, offset int) ([]models.Investment, int64, error) {
	var investments []models.Investment
	var total int64

	query := r.db.Model(&models.Investment{}).Where("project_id = ?", projectID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&investments).Error
	if err != nil {
		return nil, 0, err
	}

	return investments, total, nil
}

// Update updates an existing investment
func (r *InvestmentRepository) Update(investment *models.Investment) error {
	return r.db.Save(investment).Error
}

// Delete deletes an investment by ID
func (r *InvestmentRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Investment{}, "id = ?", id).Error
}
