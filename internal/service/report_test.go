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

type ReportServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	reportRepo       *mocks.MockReportRepositoryInterface
	projectRepo      *mocks.MockProjectRepositoryInterface
	notificationRepo *mocks.MockNotificationRepositoryInterface
	userRepo         *mocks.MockUserRepositoryInterface
	tenantRepo       *mocks.MockTenantRepositoryInterface
	investmentRepo   *mocks.MockInvestmentRepositoryInterface
	sender           *mocks.MockSender
	service          *service.ReportService

	tenantID uuid.UUID
	caller   *auth.Identity
}

func (s *ReportServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.reportRepo = mocks.NewMockReportRepositoryInterface(s.ctrl)
	s.projectRepo = mocks.NewMockProjectRepositoryInterface(s.ctrl)
	s.notificationRepo = mocks.NewMockNotificationRepositoryInterface(s.ctrl)
	s.userRepo = mocks.NewMockUserRepositoryInterface(s.ctrl)
	s.tenantRepo = mocks.NewMockTenantRepositoryInterface(s.ctrl)
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
	s.service = service.NewReportService(s.reportRepo, s.projectRepo, dispatcher, validator.New())

	s.tenantID = uuid.New()
	s.caller = &auth.Identity{
		UserID:   uuid.New(),
		Role:     models.RoleClientAdmin,
		TenantID: &s.tenantID,
	}
}

func (s *ReportServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ReportServiceTestSuite) draftReport(projectID *uuid.UUID) *models.Report {
	return &models.Report{
		BaseModel: models.BaseModel{ID: uuid.New()},
		TenantID:  s.tenantID,
		ProjectID: projectID,
		Type:      models.ReportTypeImpact,
		Title:     "Relatorio Q1",
		Status:    models.ReportStatusDraft,
	}
}

func (s *ReportServiceTestSuite) TestCreateDraftInOwnTenant() {
	s.reportRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(r *models.Report) error {
		s.Equal(s.tenantID, r.TenantID)
		s.Equal(models.ReportStatusDraft, r.Status)
		return nil
	})

	report, err := s.service.Create(s.caller, &service.CreateReportRequest{
		Type:  models.ReportTypeImpact,
		Title: "Relatorio Q1",
	})
	s.NoError(err)
	s.Equal(models.ReportStatusDraft, report.Status)
}

func (s *ReportServiceTestSuite) TestCreateRejectsCrossTenantProject() {
	projectID := uuid.New()
	s.projectRepo.EXPECT().GetByID(projectID).
		Return(&models.Project{BaseModel: models.BaseModel{ID: projectID}, TenantID: uuid.New()}, nil)

	_, err := s.service.Create(s.caller, &service.CreateReportRequest{
		ProjectID: &projectID,
		Type:      models.ReportTypeImpact,
		Title:     "Relatorio Q1",
	})
	s.ErrorIs(err, apperrors.ErrProjectNotFound)
}

func (s *ReportServiceTestSuite) TestCreateRejectsUnknownType() {
	_, err := s.service.Create(s.caller, &service.CreateReportRequest{
		Type:  models.ReportType("quarterly"),
		Title: "Relatorio Q1",
	})
	s.True(apperrors.IsValidation(err))
}

func (s *ReportServiceTestSuite) TestSubmitNotifiesProjectInvestors() {
	projectID := uuid.New()
	report := s.draftReport(&projectID)
	project := &models.Project{
		BaseModel: models.BaseModel{ID: projectID},
		TenantID:  s.tenantID,
		Name:      "Horta",
	}
	investorTenantID := uuid.New()
	investorOwner := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}}

	s.reportRepo.EXPECT().GetByID(report.ID).Return(report, nil)
	s.reportRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(r *models.Report) error {
		s.Equal(models.ReportStatusSubmitted, r.Status)
		s.NotNil(r.SubmittedAt)
		return nil
	})
	// fan-out goes to the project's approved investors, not back to the OSC
	s.projectRepo.EXPECT().GetByID(projectID).Return(project, nil)
	s.investmentRepo.EXPECT().GetByProjectID(projectID, gomock.Any(), gomock.Any()).Return([]models.Investment{
		{InvestorTenantID: investorTenantID, Status: models.InvestmentStatusApproved},
	}, int64(1), nil)
	s.tenantRepo.EXPECT().GetByID(investorTenantID).Return(&models.Tenant{}, nil)
	s.userRepo.EXPECT().GetOwnerByTenantID(investorTenantID).Return(investorOwner, nil)
	s.notificationRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(n *models.Notification) error {
		s.Equal(investorTenantID, n.TenantID)
		s.Equal(investorOwner.ID, *n.UserID)
		return nil
	})
	s.sender.EXPECT().Send(gomock.Any()).Return(nil)

	submitted, err := s.service.Submit(s.caller, report.ID)
	s.NoError(err)
	s.Equal(models.ReportStatusSubmitted, submitted.Status)
}

func (s *ReportServiceTestSuite) TestSubmitStandaloneReportIsSilent() {
	report := s.draftReport(nil)

	s.reportRepo.EXPECT().GetByID(report.ID).Return(report, nil)
	s.reportRepo.EXPECT().Update(gomock.Any()).Return(nil)
	// no project, no fan-out

	_, err := s.service.Submit(s.caller, report.ID)
	s.NoError(err)
}

func (s *ReportServiceTestSuite) TestSubmitOnlyFromDraft() {
	report := s.draftReport(nil)
	report.Status = models.ReportStatusSubmitted

	s.reportRepo.EXPECT().GetByID(report.ID).Return(report, nil)

	_, err := s.service.Submit(s.caller, report.ID)
	s.ErrorIs(err, apperrors.ErrInvalidStatusTransition)
}

func (s *ReportServiceTestSuite) TestSubmitHidesOtherTenantsReport() {
	report := s.draftReport(nil)
	report.TenantID = uuid.New()

	s.reportRepo.EXPECT().GetByID(report.ID).Return(report, nil)

	_, err := s.service.Submit(s.caller, report.ID)
	s.ErrorIs(err, apperrors.ErrReportNotFound)
}

func (s *ReportServiceTestSuite) TestSubmitMissingReport() {
	id := uuid.New()
	s.reportRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	_, err := s.service.Submit(s.caller, id)
	s.ErrorIs(err, apperrors.ErrReportNotFound)
}

func TestReportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}
