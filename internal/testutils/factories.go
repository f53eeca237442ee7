package testutils

import (
	"time"

	"impactohub-backend/internal/database/models"

	"github.com/google/uuid"
)

// TenantFactory provides methods to create test Tenant data
type TenantFactory struct{}

// NewTenantFactory creates a new TenantFactory
func NewTenantFactory() *TenantFactory {
	return &TenantFactory{}
}

// Create creates a test OSC tenant with default values
func (f *TenantFactory) Create() *models.Tenant {
	id := uuid.New()
	return &models.Tenant{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:   "Test OSC",
		Kind:   models.TenantKindOSC,
		CNPJ:   "11.222.333/0001-" + id.String()[:2],
		Email:  "contact-" + id.String()[:8] + "@osc.test",
		Status: models.TenantStatusActive,
	}
}

// WithKind sets a custom tenant kind
func (f *TenantFactory) WithKind(kind models.TenantKind) *models.Tenant {
	t := f.Create()
	t.Kind = kind
	if kind == models.TenantKindInvestor {
		t.Name = "Test Investor"
	}
	return t
}

// WithStatus sets a custom tenant status
func (f *TenantFactory) WithStatus(status models.TenantStatus) *models.Tenant {
	t := f.Create()
	t.Status = status
	return t
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a tenant-bound user with default values
func (f *UserFactory) Create(tenantID uuid.UUID) *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:     "Jane Doe",
		Email:    "jane-" + id.String()[:8] + "@test.com",
		Role:     models.RoleClientUser,
		TenantID: &tenantID,
	}
}

// CreateAdmin creates a back-office admin user with no tenant
func (f *UserFactory) CreateAdmin() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:  "Platform Admin",
		Email: "admin-" + id.String()[:8] + "@test.com",
		Role:  models.RoleAdmin,
	}
}

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a test Project owned by the given tenant
func (f *ProjectFactory) Create(tenantID uuid.UUID) *models.Project {
	now := time.Now()
	return &models.Project{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		TenantID:    tenantID,
		Name:        "Test Project",
		Description: "A test project",
		StartDate:   now,
		EndDate:     now.AddDate(1, 0, 0),
		Budget:      50000,
		Status:      models.ProjectStatusActive,
		Location:    "Sao Paulo",
	}
}

// WithStatus sets a custom project status
func (f *ProjectFactory) WithStatus(tenantID uuid.UUID, status models.ProjectStatus) *models.Project {
	p := f.Create(tenantID)
	p.Status = status
	return p
}

// BeneficiaryFactory provides methods to create test Beneficiary data
type BeneficiaryFactory struct{}

// NewBeneficiaryFactory creates a new BeneficiaryFactory
func NewBeneficiaryFactory() *BeneficiaryFactory {
	return &BeneficiaryFactory{}
}

// Create creates a test Beneficiary owned by the given tenant
func (f *BeneficiaryFactory) Create(tenantID uuid.UUID) *models.Beneficiary {
	now := time.Now()
	return &models.Beneficiary{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		TenantID:         tenantID,
		Name:             "Maria Silva",
		RegistrationDate: now,
		Status:           models.BeneficiaryStatusActive,
	}
}

// InvestmentFactory provides methods to create test Investment data
type InvestmentFactory struct{}

// NewInvestmentFactory creates a new InvestmentFactory
func NewInvestmentFactory() *InvestmentFactory {
	return &InvestmentFactory{}
}

// Create creates a pending test Investment from an investor tenant into a project
func (f *InvestmentFactory) Create(projectID, investorTenantID uuid.UUID) *models.Investment {
	now := time.Now()
	return &models.Investment{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		ProjectID:        projectID,
		InvestorTenantID: investorTenantID,
		Amount:           10000,
		Status:           models.InvestmentStatusPending,
	}
}

// WithStatus sets a custom investment status
func (f *InvestmentFactory) WithStatus(projectID, investorTenantID uuid.UUID, status models.InvestmentStatus) *models.Investment {
	inv := f.Create(projectID, investorTenantID)
	inv.Status = status
	return inv
}
