package service_test

import (
	"testing"

	"impactohub-backend/internal/auth"
	"impactohub-backend/internal/database/models"
	apperrors "impactohub-backend/internal/errors"
	"impactohub-backend/internal/mocks"
	"impactohub-backend/internal/notify"
	"impactohub-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type TenantServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	tenantRepo       *mocks.MockTenantRepositoryInterface
	planRepo         *mocks.MockSubscriptionPlanRepositoryInterface
	notificationRepo *mocks.MockNotificationRepositoryInterface
	userRepo         *mocks.MockUserRepositoryInterface
	projectRepo      *mocks.MockProjectRepositoryInterface
	investmentRepo   *mocks.MockInvestmentRepositoryInterface
	sender           *mocks.MockSender
	service          *service.TenantService

	admin *auth.Identity
}

func (s *TenantServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.tenantRepo = mocks.NewMockTenantRepositoryInterface(s.ctrl)
	s.planRepo = mocks.NewMockSubscriptionPlanRepositoryInterface(s.ctrl)
	s.notificationRepo = mocks.NewMockNotificationRepositoryInterface(s.ctrl)
	s.userRepo = mocks.NewMockUserRepositoryInterface(s.ctrl)
	s.projectRepo = mocks.NewMockProjectRepositoryInterface(s.ctrl)
	s.investmentRepo = mocks.NewMockInvestmentRepositoryInterface(s.ctrl)
	s.sender = mocks.NewMockSender(s.ctrl)

	dispatcher := notify.NewDispatcher(
		s.notificationRepo,
		s.userRepo,
		s.tenantRepo,
		s.projectRepo,
		s.investmentRepo,
		s.sender,
	)
	s.service = service.NewTenantService(s.tenantRepo, s.planRepo, dispatcher, validator.New())

	s.admin = &auth.Identity{UserID: uuid.New(), Role: models.RoleAdmin}
}

func (s *TenantServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *TenantServiceTestSuite) pendingTenant() *models.Tenant {
	return &models.Tenant{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Instituto Esperanca",
		Kind:      models.TenantKindOSC,
		Email:     "contato@esperanca.org",
		Status:    models.TenantStatusPending,
	}
}

func (s *TenantServiceTestSuite) TestCreateRegistersPendingTenant() {
	s.tenantRepo.EXPECT().GetByCNPJ("12.345.678/0001-90").Return(nil, gorm.ErrRecordNotFound)
	s.tenantRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(t *models.Tenant) error {
		s.Equal(models.TenantStatusPending, t.Status)
		return nil
	})

	tenant, err := s.service.Create(s.admin, &service.CreateTenantRequest{
		Name:  "Instituto Esperanca",
		Kind:  models.TenantKindOSC,
		CNPJ:  "12.345.678/0001-90",
		Email: "contato@esperanca.org",
	})
	s.NoError(err)
	s.Equal(models.TenantStatusPending, tenant.Status)
}

func (s *TenantServiceTestSuite) TestCreateRejectsNonAdmin() {
	tenantID := uuid.New()
	caller := &auth.Identity{UserID: uuid.New(), Role: models.RoleClientAdmin, TenantID: &tenantID}
	_, err := s.service.Create(caller, &service.CreateTenantRequest{
		Name:  "Instituto Esperanca",
		Kind:  models.TenantKindOSC,
		Email: "contato@esperanca.org",
	})
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *TenantServiceTestSuite) TestCreateRejectsDuplicateCNPJ() {
	s.tenantRepo.EXPECT().GetByCNPJ("12.345.678/0001-90").Return(s.pendingTenant(), nil)

	_, err := s.service.Create(s.admin, &service.CreateTenantRequest{
		Name:  "Instituto Esperanca",
		Kind:  models.TenantKindOSC,
		CNPJ:  "12.345.678/0001-90",
		Email: "contato@esperanca.org",
	})
	s.ErrorIs(err, apperrors.ErrTenantExists)
}

func (s *TenantServiceTestSuite) TestCreateRejectsUnknownKind() {
	_, err := s.service.Create(s.admin, &service.CreateTenantRequest{
		Name:  "Instituto Esperanca",
		Kind:  models.TenantKind("charity"),
		Email: "contato@esperanca.org",
	})
	s.True(apperrors.IsValidation(err))
}

func (s *TenantServiceTestSuite) TestApproveActivatesAndNotifiesOwner() {
	tenant := s.pendingTenant()
	owner := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}}

	s.tenantRepo.EXPECT().GetByID(tenant.ID).Return(tenant, nil)
	s.tenantRepo.EXPECT().Update(gomock.Any()).Return(nil)
	// dispatcher resolves the owner and delivers
	s.tenantRepo.EXPECT().GetByID(tenant.ID).Return(tenant, nil)
	s.userRepo.EXPECT().GetOwnerByTenantID(tenant.ID).Return(owner, nil)
	s.notificationRepo.EXPECT().Create(gomock.Any()).Return(nil)
	s.sender.EXPECT().Send(gomock.Any()).Return(nil)

	approved, err := s.service.Approve(s.admin, tenant.ID, &service.ApproveTenantRequest{})
	s.NoError(err)
	s.Equal(models.TenantStatusActive, approved.Status)
	s.NotNil(approved.LicenseExpiresAt)
}

func (s *TenantServiceTestSuite) TestApproveVerifiesPlan() {
	tenant := s.pendingTenant()
	planID := uuid.New()

	s.tenantRepo.EXPECT().GetByID(tenant.ID).Return(tenant, nil)
	s.planRepo.EXPECT().GetByID(planID).Return(nil, gorm.ErrRecordNotFound)

	_, err := s.service.Approve(s.admin, tenant.ID, &service.ApproveTenantRequest{PlanID: &planID})
	s.ErrorIs(err, apperrors.ErrSubscriptionPlanNotFound)
}

func (s *TenantServiceTestSuite) TestReapproveDoesNotNotifyAgain() {
	tenant := s.pendingTenant()
	tenant.Status = models.TenantStatusActive

	s.tenantRepo.EXPECT().GetByID(tenant.ID).Return(tenant, nil)
	s.tenantRepo.EXPECT().Update(gomock.Any()).Return(nil)
	// no dispatcher expectations: re-approval must stay silent

	_, err := s.service.Approve(s.admin, tenant.ID, &service.ApproveTenantRequest{LicenseMonths: 6})
	s.NoError(err)
}

func (s *TenantServiceTestSuite) TestRejectOnlyFromPending() {
	tenant := s.pendingTenant()
	tenant.Status = models.TenantStatusActive
	s.tenantRepo.EXPECT().GetByID(tenant.ID).Return(tenant, nil)

	_, err := s.service.Reject(s.admin, tenant.ID)
	s.ErrorIs(err, apperrors.ErrInvalidStatusTransition)
}

func (s *TenantServiceTestSuite) TestRejectMovesToInactive() {
	tenant := s.pendingTenant()
	s.tenantRepo.EXPECT().GetByID(tenant.ID).Return(tenant, nil)
	s.tenantRepo.EXPECT().Update(gomock.Any()).Return(nil)

	rejected, err := s.service.Reject(s.admin, tenant.ID)
	s.NoError(err)
	s.Equal(models.TenantStatusInactive, rejected.Status)
}

func (s *TenantServiceTestSuite) TestGetByIDMissing() {
	id := uuid.New()
	s.tenantRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	_, err := s.service.GetByID(s.admin, id)
	s.ErrorIs(err, apperrors.ErrTenantNotFound)
}

func TestTenantServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TenantServiceTestSuite))
}
