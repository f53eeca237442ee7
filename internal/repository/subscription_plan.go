package repository

import (
	"impactohub-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubscriptionPlanRepository handles database operations for subscription plans
type SubscriptionPlanRepository struct {
	db *gorm.DB
}

// NewSubscriptionPlanRepository creates a new subscription plan repository
func NewSubscriptionPlanRepository(db *gorm.DB) *SubscriptionPlanRepository {
	return &SubscriptionPlanRepository{db: db}
}

// Create creates a new subscription plan
func (r *SubscriptionPlanRepository) Create(plan *models.SubscriptionPlan) error {
	return r.db.Create(plan).Error
}

// GetByID retrieves a subscription plan by ID
func (r *SubscriptionPlanRepository) GetByID(id uuid.UUID) (*models.SubscriptionPlan, error) {
	var plan models.SubscriptionPlan
	err := r.db.First(&plan, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// GetByName retrieves a subscription plan by name
func (r *SubscriptionPlanRepository) GetByName(name string) (*models.SubscriptionPlan, error) {
	var plan models.SubscriptionPlan
	err := r.db.First(&plan, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// GetAll retrieves all subscription plans with pagination
func (r *SubscriptionPlanRepository) GetAll(limit, offset int) ([]models.SubscriptionPlan, int64, error) {
	var plans []models.SubscriptionPlan
	var total int64

	if err := r.db.Model(&models.SubscriptionPlan{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("monthly_price ASC").Limit(limit).Offset(offset).Find(&plans).Error
	if err != nil {
		return nil, 0, err
	}

	return plans, total, nil
}

// Update updates an existing subscription plan
func (r *SubscriptionPlanRepository) Update(plan *models.SubscriptionPlan) error {
	return r.db.Save(plan).Error
}

// Delete deletes a subscription plan by ID
func (r *SubscriptionPlanRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.SubscriptionPlan{}, "id = ?", id).Error
}
