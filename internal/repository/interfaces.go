package repository

import (
	"impactohub-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TenantRepositoryInterface defines the interface for tenant repository operations
type TenantRepositoryInterface interface {
	Create(tenant *models.Tenant) error
	GetByID(id uuid.UUID) (*models.Tenant, error)
	GetByCNPJ(cnpj string) (*models.Tenant, error)
	GetAll(limit, offset int) ([]models.Tenant, int64, error)
	GetByStatus(status models.TenantStatus, limit, offset int) ([]models.Tenant, int64, error)
	Update(tenant *models.Tenant) error
	Delete(id uuid.UUID) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByTenantID(tenantID uuid.UUID, limit, offset int) ([]models.User, int64, error)
	GetOwnerByTenantID(tenantID uuid.UUID) (*models.User, error)
	Update(user *models.User) error
	Delete(id uuid.UUID) error
}

// SubscriptionPlanRepositoryInterface defines the interface for plan repository operations
type SubscriptionPlanRepositoryInterface interface {
	Create(plan *models.SubscriptionPlan) error
	GetByID(id uuid.UUID) (*models.SubscriptionPlan, error)
	GetByName(name string) (*models.SubscriptionPlan, error)
	GetAll(limit, offset int) ([]models.SubscriptionPlan, int64, error)
	Update(plan *models.SubscriptionPlan) error
	Delete(id uuid.UUID) error
}

// InvoiceRepositoryInterface defines the interface for invoice repository operations
type InvoiceRepositoryInterface interface {
	Create(invoice *models.Invoice) error
	GetByID(id uuid.UUID) (*models.Invoice, error)
	GetByNumber(number string) (*models.Invoice, error)
	GetByTenantID(tenantID uuid.UUID, limit, offset int) ([]models.Invoice, int64, error)
	GetAll(limit, offset int) ([]models.Invoice, int64, error)
	Update(invoice *models.Invoice) error
	Delete(id uuid.UUID) error
}

// ProposalRepositoryInterface defines the interface for proposal repository operations
type ProposalRepositoryInterface interface {
	Create(proposal *models.Proposal) error
	GetByID(id uuid.UUID) (*models.Proposal, error)
	GetByNumber(number string) (*models.Proposal, error)
	GetByTenantID(tenantID uuid.UUID, limit, offset int) ([]models.Proposal, int64, error)
	GetAll(limit, offset int) ([]models.Proposal, int64, error)
	Update(proposal *models.Proposal) error
	Delete(id uuid.UUID) error
}

// CustomizationRepositoryInterface defines the interface for branding repository operations
type CustomizationRepositoryInterface interface {
	GetThemeByTenantID(tenantID uuid.UUID) (*models.ThemeCustomization, error)
	UpsertTheme(theme *models.ThemeCustomization) error
	GetPageByTenantID(tenantID uuid.UUID) (*models.PageCustomization, error)
	UpsertPage(page *models.PageCustomization) error
}

// ProjectRepositoryInterface defines the interface for project repository operations
type ProjectRepositoryInterface interface {
	Create(project *models.Project) error
	GetByID(id uuid.UUID) (*models.Project, error)
	GetByTenantID(tenantID uuid.UUID, limit, offset int) ([]models.Project, int64, error)
	GetByStatus(tenantID uuid.UUID, status models.ProjectStatus, limit, offset int) ([]models.Project, int64, error)
	Update(project *models.Project) error
	Delete(id uuid.UUID) error
}

// BeneficiaryRepositoryInterface defines the interface for beneficiary repository operations
type BeneficiaryRepositoryInterface interface {
	Create(beneficiary *models.Beneficiary) error
	GetByID(id uuid.UUID) (*models.Beneficiary, error)
	GetByTenantID(tenantID uuid.UUID, limit, offset int) ([]models.Beneficiary, int64, error)
	Update(beneficiary *models.Beneficiary) error
	Delete(id uuid.UUID) error
}

// AttendanceRepositoryInterface defines the interface for attendance repository operations
type AttendanceRepositoryInterface interface {
	Create(attendance *models.Attendance) error
	GetByID(id uuid.UUID) (*models.Attendance, error)
	GetByTenantID(tenantID uuid.UUID, limit, offset int) ([]models.Attendance, int64, error)
	GetByBeneficiaryID(tenantID, beneficiaryID uuid.UUID, limit, offset int) ([]models.Attendance, int64, error)
	Update(attendance *models.Attendance) error
	Delete(id uuid.UUID) error
}

// ClassRepositoryInterface defines the interface for class repository operations
type ClassRepositoryInterface interface {
	Create(class *models.Class) error
	GetByID(id uuid.UUID) (*models.Class, error)
	GetByTenantID(tenantID uuid.UUID, limit, offset int) ([]models.Class, int64, error)
	Update(class *models.Class) error
	Delete(id uuid.UUID) error
}

// ReportRepositoryInterface defines the interface for report repository operations
type ReportRepositoryInterface interface {
	Create(report *models.Report) error
	GetByID(id uuid.UUID) (*models.Report, error)
	GetByTenantID(tenantID uuid.UUID, limit, offset int) ([]models.Report, int64, error)
	Update(report *models.Report) error
	Delete(id uuid.UUID) error
}

// InvestmentRepositoryInterface defines the interface for investment repository operations
type InvestmentRepositoryInterface interface {
	Create(investment *models.Investment) error
	GetByID(id uuid.UUID) (*models.Investment, error)
	GetByInvestorTenantID(tenantID uuid.UUID, limit, offset int) ([]models.Investment, int64, error)
	GetByProjectID(projectID uuid.UUID, limit, offset int) ([]models.Investment, int64, error)
	Update(investment *models.Investment) error
	Delete(id uuid.UUID) error
}

// NotificationRepositoryInterface defines the interface for notification repository operations
type NotificationRepositoryInterface interface {
	Create(notification *models.Notification) error
	GetByID(id uuid.UUID) (*models.Notification, error)
	GetByRecipient(tenantID, userID uuid.UUID, limit, offset int) ([]models.Notification, int64, error)
	CountUnread(tenantID, userID uuid.UUID) (int64, error)
	MarkRead(id uuid.UUID) error
	MarkAllRead(tenantID, userID uuid.UUID) error
	Delete(id uuid.UUID) error
}
