package repository

import (
	"impactohub-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReportRepository handles database operations for reports
type ReportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// Create creates a new report
func (r *ReportRepository) Create(report *models.Report) error {
	return r.db.Create(report).Error
}

// GetByID retrieves a report by ID
func (r *ReportRepository) GetByID(id uuid.UUID) (*models.Report, error) {
	var report models.Report
	err := r.db.First(&report, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// GetByTenantID retrieves all reports for a tenant with pagination
func (r *ReportRepository) GetByTenantID(tenantID uuid.UUID, limit, offset int) ([]models.Report, int64, error) {
	var reports []models.Report
	var total int64

	query := r.db.Model(&models.Report{}).Where("tenant_id = ?", tenantID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&reports).Error
	if err != nil {
		return nil, 0, err
	}

	return reports, total, nil
}

// Update updates an existing report
func (r *ReportRepository) Update(report *models.Report) error {
	return r.db.Save(report).Error
}

// Delete deletes a report by ID
func (r *ReportRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Report{}, "id = ?", id).Error
}
