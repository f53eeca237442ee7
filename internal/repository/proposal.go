package repository

import (
	"impactohub-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProposalRepository handles database operations for proposals
type ProposalRepository struct {
	db *gorm.DB
}

// NewProposalRepository creates a new proposal repository
func NewProposalRepository(db *gorm.DB) *ProposalRepository {
	return &ProposalRepository{db: db}
}

// Create creates a new proposal
func (r *ProposalRepository) Create(proposal *models.Proposal) error {
	return r.db.Create(proposal).Error
}

// GetByID retrieves a proposal by ID
func (r *ProposalRepository) GetByID(id uuid.UUID) (*models.Proposal, error) {
	var proposal models.Proposal
	err := r.db.Preload("Plan").First(&proposal, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &proposal, nil
}

// GetByNumber retrieves a proposal by its proposal number
func (r *ProposalRepository) GetByNumber(number string) (*models.Proposal, error) {
	var proposal models.Proposal
	err := r.db.First(&proposal, "proposal_number = ?", number).Error
	if err != nil {
		return nil, err
	}
	return &proposal, nil
}

// GetByTenantID retrieves all proposals for a tenant with pagination
func (r *ProposalRepository) GetByTenantID(tenantID uuid.UUID, limit, offset int) ([]models.Proposal, int64, error) {
	var proposals []models.Proposal
	var total int64

	query := r.db.Model(&models.Proposal{}).Where("tenant_id = ?", tenantID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("Plan").Where("tenant_id = ?", tenantID).
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&proposals).Error
	if err != nil {
		return nil, 0, err
	}

	return proposals, total, nil
}

// GetAll retrieves all proposals with pagination
func (r *ProposalRepository) GetAll(limit, offset int) ([]models.Proposal, int64, error) {
	var proposals []models.Proposal
	var total int64

	if err := r.db.Model(&models.Proposal{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("Plan").Order("created_at DESC").Limit(limit).Offset(offset).Find(&proposals).Error
	if err != nil {
		return nil, 0, err
	}

	return proposals, total, nil
}

// Update updates an existing proposal
func (r *ProposalRepository) Update(proposal *models.Proposal) error {
	return r.db.Save(proposal).Error
}

// Delete deletes a proposal by ID
func (r *ProposalRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Proposal{}, "id = ?", id).Error
}
