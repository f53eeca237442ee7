package service_test

import (
	"errors"
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

type InvestmentServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	investmentRepo   *mocks.MockInvestmentRepositoryInterface
	projectRepo      *mocks.MockProjectRepositoryInterface
	tenantRepo       *mocks.MockTenantRepositoryInterface
	notificationRepo *mocks.MockNotificationRepositoryInterface
	userRepo         *mocks.MockUserRepositoryInterface
	sender           *mocks.MockSender
	service          *service.InvestmentService

	investorTenantID uuid.UUID
	oscTenantID      uuid.UUID
	investor         *auth.Identity
	oscUser          *auth.Identity
}

func (s *InvestmentServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.investmentRepo = mocks.NewMockInvestmentRepositoryInterface(s.ctrl)
	s.projectRepo = mocks.NewMockProjectRepositoryInterface(s.ctrl)
	s.tenantRepo = mocks.NewMockTenantRepositoryInterface(s.ctrl)
	s.notificationRepo = mocks.NewMockNotificationRepositoryInterface(s.ctrl)
	s.userRepo = mocks.NewMockUserRepositoryInterface(s.ctrl)
	s.sender = mocks.NewMockSender(s.ctrl)

	dispatcher := notify.NewDispatcher(
		s.notificationRepo,
		s.userRepo,
		s.tenantRepo,
		s.projectRepo,
		s.investmentRepo,
		s.sender,
	)
	s.service = service.NewInvestmentService(
		s.investmentRepo,
		s.projectRepo,
		s.tenantRepo,
		dispatcher,
		validator.New(),
	)

	s.investorTenantID = uuid.New()
	s.oscTenantID = uuid.New()
	s.investor = &auth.Identity{
		UserID:   uuid.New(),
		Role:     models.RoleInvestor,
		TenantID: &s.investorTenantID,
	}
	s.oscUser = &auth.Identity{
		UserID:   uuid.New(),
		Role:     models.RoleClientAdmin,
		TenantID: &s.oscTenantID,
	}
}

func (s *InvestmentServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *InvestmentServiceTestSuite) oscProject() *models.Project {
	return &models.Project{
		BaseModel: models.BaseModel{ID: uuid.New()},
		TenantID:  s.oscTenantID,
		Name:      "Horta Comunitaria",
	}
}

func (s *InvestmentServiceTestSuite) TestCreateStampsInvestorTenantAndNotifies() {
	project := s.oscProject()
	oscOwner := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}}

	s.tenantRepo.EXPECT().GetByID(s.investorTenantID).
		Return(&models.Tenant{Kind: models.TenantKindInvestor}, nil)
	s.projectRepo.EXPECT().GetByID(project.ID).Return(project, nil)
	s.investmentRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(inv *models.Investment) error {
		s.Equal(s.investorTenantID, inv.InvestorTenantID)
		s.Equal(models.InvestmentStatusPending, inv.Status)
		return nil
	})
	// dispatcher notifies the project-owning tenant
	s.projectRepo.EXPECT().GetByID(project.ID).Return(project, nil)
	s.tenantRepo.EXPECT().GetByID(s.oscTenantID).Return(&models.Tenant{}, nil)
	s.userRepo.EXPECT().GetOwnerByTenantID(s.oscTenantID).Return(oscOwner, nil)
	s.notificationRepo.EXPECT().Create(gomock.Any()).Return(nil)
	s.sender.EXPECT().Send(gomock.Any()).Return(nil)

	investment, err := s.service.Create(s.investor, &service.CreateInvestmentRequest{
		ProjectID: project.ID,
		Amount:    25000,
	})
	s.NoError(err)
	s.Equal(s.investorTenantID, investment.InvestorTenantID)
}

func (s *InvestmentServiceTestSuite) TestCreateRejectsOSCTenant() {
	s.tenantRepo.EXPECT().GetByID(s.oscTenantID).
		Return(&models.Tenant{Kind: models.TenantKindOSC}, nil)

	_, err := s.service.Create(s.oscUser, &service.CreateInvestmentRequest{
		ProjectID: uuid.New(),
		Amount:    1000,
	})
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *InvestmentServiceTestSuite) TestCreateRejectsZeroAmount() {
	_, err := s.service.Create(s.investor, &service.CreateInvestmentRequest{
		ProjectID: uuid.New(),
		Amount:    0,
	})
	s.Error(err)
}

func (s *InvestmentServiceTestSuite) TestCreateMissingProject() {
	projectID := uuid.New()
	s.tenantRepo.EXPECT().GetByID(s.investorTenantID).
		Return(&models.Tenant{Kind: models.TenantKindInvestor}, nil)
	s.projectRepo.EXPECT().GetByID(projectID).Return(nil, gorm.ErrRecordNotFound)

	_, err := s.service.Create(s.investor, &service.CreateInvestmentRequest{
		ProjectID: projectID,
		Amount:    1000,
	})
	s.ErrorIs(err, apperrors.ErrProjectNotFound)
}

func (s *InvestmentServiceTestSuite) TestSenderFailureDoesNotFailCreate() {
	project := s.oscProject()
	oscOwner := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}}

	s.tenantRepo.EXPECT().GetByID(s.investorTenantID).
		Return(&models.Tenant{Kind: models.TenantKindInvestor}, nil)
	s.projectRepo.EXPECT().GetByID(project.ID).Return(project, nil).Times(2)
	s.investmentRepo.EXPECT().Create(gomock.Any()).Return(nil)
	s.tenantRepo.EXPECT().GetByID(s.oscTenantID).Return(&models.Tenant{}, nil)
	s.userRepo.EXPECT().GetOwnerByTenantID(s.oscTenantID).Return(oscOwner, nil)
	s.notificationRepo.EXPECT().Create(gomock.Any()).Return(nil)
	s.sender.EXPECT().Send(gomock.Any()).Return(errors.New("webhook down"))

	_, err := s.service.Create(s.investor, &service.CreateInvestmentRequest{
		ProjectID: project.ID,
		Amount:    25000,
	})
	s.NoError(err)
}

func (s *InvestmentServiceTestSuite) pendingInvestment(project *models.Project) *models.Investment {
	return &models.Investment{
		BaseModel:        models.BaseModel{ID: uuid.New()},
		ProjectID:        project.ID,
		InvestorTenantID: s.investorTenantID,
		Amount:           25000,
		Status:           models.InvestmentStatusPending,
	}
}

func (s *InvestmentServiceTestSuite) TestApproveByProjectOwner() {
	project := s.oscProject()
	investment := s.pendingInvestment(project)
	investorOwner := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}}
	oscOwner := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}}

	s.investmentRepo.EXPECT().GetByID(investment.ID).Return(investment, nil)
	s.projectRepo.EXPECT().GetByID(project.ID).Return(project, nil).Times(2)
	s.investmentRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(inv *models.Investment) error {
		s.Equal(models.InvestmentStatusApproved, inv.Status)
		return nil
	})
	// decision notifies both sides
	s.tenantRepo.EXPECT().GetByID(s.investorTenantID).Return(&models.Tenant{}, nil)
	s.userRepo.EXPECT().GetOwnerByTenantID(s.investorTenantID).Return(investorOwner, nil)
	s.tenantRepo.EXPECT().GetByID(s.oscTenantID).Return(&models.Tenant{}, nil)
	s.userRepo.EXPECT().GetOwnerByTenantID(s.oscTenantID).Return(oscOwner, nil)
	s.notificationRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(2)
	s.sender.EXPECT().Send(gomock.Any()).Return(nil).Times(2)

	approved, err := s.service.Approve(s.oscUser, investment.ID)
	s.NoError(err)
	s.Equal(models.InvestmentStatusApproved, approved.Status)
}

func (s *InvestmentServiceTestSuite) TestDecisionHiddenFromOtherTenants() {
	project := s.oscProject()
	investment := s.pendingInvestment(project)

	s.investmentRepo.EXPECT().GetByID(investment.ID).Return(investment, nil)
	s.projectRepo.EXPECT().GetByID(project.ID).Return(project, nil)

	// The investor who created it cannot decide on it either.
	_, err := s.service.Approve(s.investor, investment.ID)
	s.ErrorIs(err, apperrors.ErrInvestmentNotFound)
}

func (s *InvestmentServiceTestSuite) TestDecideNonPendingInvestment() {
	project := s.oscProject()
	investment := s.pendingInvestment(project)
	investment.Status = models.InvestmentStatusApproved

	s.investmentRepo.EXPECT().GetByID(investment.ID).Return(investment, nil)
	s.projectRepo.EXPECT().GetByID(project.ID).Return(project, nil)

	_, err := s.service.Reject(s.oscUser, investment.ID)
	s.ErrorIs(err, apperrors.ErrInvalidStatusTransition)
}

func (s *InvestmentServiceTestSuite) TestListMineScopesToCallerTenant() {
	s.investmentRepo.EXPECT().GetByInvestorTenantID(s.investorTenantID, 20, 0).
		Return([]models.Investment{{InvestorTenantID: s.investorTenantID}}, int64(1), nil)

	resp, err := s.service.ListMine(s.investor, 1, 20)
	s.NoError(err)
	s.Equal(int64(1), resp.Total)
}

func TestInvestmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvestmentServiceTestSuite))
}
