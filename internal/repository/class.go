package repository

import (
	"impactohub-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClassRepository handles database operations for classes
type ClassRepository struct {
	db *gorm.DB
}

// NewClassRepository creates a new class repository
func NewClassRepository(db *gorm.DB) *ClassRepository {
	return &ClassRepository{db: db}
}

// Create creates a new class
func (r *ClassRepository) Create(class *models.Class) error {
	return r.db.Create(class).Error
}

// GetByID retrieves a class by ID
func (r *ClassRepository) GetByID(id uuid.UUID) (*models.Class, error) {
	var class models.Class
	err := r.db.First(&class, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &class, nil
}

// GetByTenantID retrieves all classes for a tenant with pagination
func (r *ClassRepository) GetByTenantID(tenantID uuid.UUID, limit, offset int) ([]models.Class, int64, error) {
	var classes []models.Class
	var total int64

	query := r.db.Model(&models.Class{}).Where("tenant_id = ?", tenantID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("start_date DESC").Limit(limit).Offset(offset).Find(&classes).Error
	if err != nil {
		return nil, 0, err
	}

	return classes, total, nil
}

// Update updates an existing class
func (r *ClassRepository) Update(class *models.Class) error {
	return r.db.Save(class).Error
}

// Delete deletes a class by ID
func (r *ClassRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Class{}, "id = ?", id).Error
}
