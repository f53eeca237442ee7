package repository

import (
	"impactohub-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttendanceRepository handles database operations for attendances
type AttendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// Create creates a new attendance
func (r *AttendanceRepository) Create(attendance *models.Attendance) error {
	return r.db.Create(attendance).Error
}

// GetByID retrieves an attendance by ID
func (r *AttendanceRepository) GetByID(id uuid.UUID) (*models.Attendance, error) {
	var attendance models.Attendance
	err := r.db.First(&attendance, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &attendance, nil
}

// GetByTenantID retrieves all attendances for a tenant with pagination
func (r *AttendanceRepository) GetByTenantID(tenantID uuid.UUID, limit, offset int) ([]models.Attendance, int64, error) {
	var attendances []models.Attendance
	var total int64

	query := r.db.Model(&models.Attendance{}).Where("tenant_id = ?", tenantID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("date DESC").Limit(limit).Offset(offset).Find(&attendances).Error
	if err != nil {
		return nil, 0, err
	}

	return attendances, total, nil
}

// GetByBeneficiaryID retrieves all attendances of one beneficiary within a tenant
func (r *AttendanceRepository) GetByBeneficiaryID(tenantID, beneficiaryID uuid.UUID, limit, offset int) ([]models.Attendance, int64, error) {
	var attendances []models.Attendance
	var total int64

	query := r.db.Model(&models.Attendance{}).Where("tenant_id = ? AND beneficiary_id = ?", tenantID, beneficiaryID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("date DESC").Limit(limit).Offset(offset).Find(&attendances).Error
	if err != nil {
		return nil, 0, err
	}

	return attendances, total, nil
}

// Update updates an existing attendance
func (r *AttendanceRepository) Update(attendance *models.Attendance) error {
	return r.db.Save(attendance).Error
}

// Delete deletes an attendance by ID
func (r *AttendanceRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Attendance{}, "id = ?", id).Error
}
