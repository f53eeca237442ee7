package repository

import (
	"impactohub-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CustomizationRepository handles database operations for tenant branding
type CustomizationRepository struct {
	db *gorm.DB
}

// NewCustomizationRepository creates a new customization repository
func NewCustomizationRepository(db *gorm.DB) *CustomizationRepository {
	return &CustomizationRepository{db: db}
}

// GetThemeByTenantID retrieves the theme customization of a tenant
func (r *CustomizationRepository) GetThemeByTenantID(tenantID uuid.UUID) (*models.ThemeCustomization, error) {
	var theme models.ThemeCustomization
	err := r.db.First(&theme, "tenant_id = ?", tenantID).Error
	if err != nil {
		return nil, err
	}
	return &theme, nil
}

// UpsertTheme inserts or replaces the single theme row of a tenant
func (r *CustomizationRepository) UpsertTheme(theme *models.ThemeCustomization) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "tenant_id"}},
		UpdateAll: true,
	}).Create(theme).Error
}

// GetPageByTenantID retrieves the landing-page customization of a tenant
func (r *CustomizationRepository) GetPageByTenantID(tenantID uuid.UUID) (*models.PageCustomization, error) {
	var page models.PageCustomization
	err := r.db.First(&page, "tenant_id = ?", tenantID).Error
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// UpsertPage inserts or replaces the single landing-page row of a tenant
func (r *CustomizationRepository) UpsertPage(page *models.PageCustomization) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "tenant_id"}},
		UpdateAll: true,
	}).Create(page).Error
}
