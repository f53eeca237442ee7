package service_test

import (
	"testing"
	"time"

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

type ProjectServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	projectRepo      *mocks.MockProjectRepositoryInterface
	notificationRepo *mocks.MockNotificationRepositoryInterface
	userRepo         *mocks.MockUserRepositoryInterface
	tenantRepo       *mocks.MockTenantRepositoryInterface
	investmentRepo   *mocks.MockInvestmentRepositoryInterface
	sender           *mocks.MockSender
	service          *service.ProjectService

	tenantID      uuid.UUID
	otherTenantID uuid.UUID
	caller        *auth.Identity
}

func (s *ProjectServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
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
	s.service = service.NewProjectService(s.projectRepo, dispatcher, validator.New())

	s.tenantID = uuid.New()
	s.otherTenantID = uuid.New()
	s.caller = &auth.Identity{
		UserID:   uuid.New(),
		Role:     models.RoleClientUser,
		TenantID: &s.tenantID,
	}
}

func (s *ProjectServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ProjectServiceTestSuite) validCreateRequest() *service.CreateProjectRequest {
	return &service.CreateProjectRequest{
		Name:      "Alfabetizacao Digital",
		StartDate: time.Now(),
		EndDate:   time.Now().AddDate(1, 0, 0),
		Budget:    75000,
	}
}

func (s *ProjectServiceTestSuite) TestCreateStampsCallerTenant() {
	s.projectRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(p *models.Project) error {
		s.Equal(s.tenantID, p.TenantID)
		s.Equal(models.ProjectStatusPlanning, p.Status)
		return nil
	})

	project, err := s.service.Create(s.caller, s.validCreateRequest())
	s.NoError(err)
	s.Equal(s.tenantID, project.TenantID)
}

func (s *ProjectServiceTestSuite) TestCreateRejectsUnauthenticated() {
	_, err := s.service.Create(nil, s.validCreateRequest())
	s.ErrorIs(err, apperrors.ErrUnauthenticated)
}

func (s *ProjectServiceTestSuite) TestCreateRejectsAdminWithoutTenant() {
	admin := &auth.Identity{UserID: uuid.New(), Role: models.RoleAdmin}
	_, err := s.service.Create(admin, s.validCreateRequest())
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *ProjectServiceTestSuite) TestCreateValidatesDates() {
	req := s.validCreateRequest()
	req.EndDate = req.StartDate.AddDate(0, 0, -1)
	_, err := s.service.Create(s.caller, req)
	s.Error(err)
}

func (s *ProjectServiceTestSuite) TestGetByIDReturnsOwnProject() {
	project := &models.Project{
		BaseModel: models.BaseModel{ID: uuid.New()},
		TenantID:  s.tenantID,
		Name:      "Alfabetizacao Digital",
	}
	s.projectRepo.EXPECT().GetByID(project.ID).Return(project, nil)

	got, err := s.service.GetByID(s.caller, project.ID)
	s.NoError(err)
	s.Equal(project.ID, got.ID)
}

func (s *ProjectServiceTestSuite) TestGetByIDHidesOtherTenantsProject() {
	project := &models.Project{
		BaseModel: models.BaseModel{ID: uuid.New()},
		TenantID:  s.otherTenantID,
	}
	s.projectRepo.EXPECT().GetByID(project.ID).Return(project, nil)

	_, err := s.service.GetByID(s.caller, project.ID)
	s.ErrorIs(err, apperrors.ErrProjectNotFound)
}

func (s *ProjectServiceTestSuite) TestGetByIDMissingRecord() {
	id := uuid.New()
	s.projectRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	_, err := s.service.GetByID(s.caller, id)
	s.ErrorIs(err, apperrors.ErrProjectNotFound)
}

func (s *ProjectServiceTestSuite) TestAdminReadsAnyProject() {
	admin := &auth.Identity{UserID: uuid.New(), Role: models.RoleAdmin}
	project := &models.Project{
		BaseModel: models.BaseModel{ID: uuid.New()},
		TenantID:  s.otherTenantID,
	}
	s.projectRepo.EXPECT().GetByID(project.ID).Return(project, nil)

	got, err := s.service.GetByID(admin, project.ID)
	s.NoError(err)
	s.Equal(project.ID, got.ID)
}

func (s *ProjectServiceTestSuite) TestListScopesToCallerTenant() {
	s.projectRepo.EXPECT().GetByTenantID(s.tenantID, 20, 0).
		Return([]models.Project{{TenantID: s.tenantID}}, int64(1), nil)

	resp, err := s.service.List(s.caller, 0, 0)
	s.NoError(err)
	s.Equal(int64(1), resp.Total)
	s.Equal(1, resp.Page)
	s.Equal(20, resp.PageSize)
}

func (s *ProjectServiceTestSuite) TestListRejectsNegativePagination() {
	_, err := s.service.List(s.caller, -1, 10)
	s.ErrorIs(err, apperrors.ErrInvalidPaginationParams)
}

func (s *ProjectServiceTestSuite) TestUpdateFansOutToApprovedInvestors() {
	project := &models.Project{
		BaseModel: models.BaseModel{ID: uuid.New()},
		TenantID:  s.tenantID,
		Name:      "Alfabetizacao Digital",
	}
	investorTenantID := uuid.New()
	owner := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, TenantID: &investorTenantID}

	s.projectRepo.EXPECT().GetByID(project.ID).Return(project, nil)
	s.projectRepo.EXPECT().Update(gomock.Any()).Return(nil)
	s.investmentRepo.EXPECT().GetByProjectID(project.ID, gomock.Any(), gomock.Any()).Return([]models.Investment{
		{InvestorTenantID: investorTenantID, Status: models.InvestmentStatusApproved},
		{InvestorTenantID: uuid.New(), Status: models.InvestmentStatusPending},
	}, int64(2), nil)
	s.tenantRepo.EXPECT().GetByID(investorTenantID).Return(&models.Tenant{}, nil)
	s.userRepo.EXPECT().GetOwnerByTenantID(investorTenantID).Return(owner, nil)
	s.notificationRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(n *models.Notification) error {
		s.Equal(investorTenantID, n.TenantID)
		s.Equal(owner.ID, *n.UserID)
		return nil
	})
	s.sender.EXPECT().Send(gomock.Any()).Return(nil)

	name := "Alfabetizacao Digital 2.0"
	updated, err := s.service.Update(s.caller, project.ID, &service.UpdateProjectRequest{Name: &name})
	s.NoError(err)
	s.Equal(name, updated.Name)
}

func (s *ProjectServiceTestSuite) TestUpdateRejectsUnknownStatus() {
	bad := models.ProjectStatus("archived")
	_, err := s.service.Update(s.caller, uuid.New(), &service.UpdateProjectRequest{Status: &bad})
	s.True(apperrors.IsValidation(err))
}

func (s *ProjectServiceTestSuite) TestUpdateHidesOtherTenantsProject() {
	project := &models.Project{
		BaseModel: models.BaseModel{ID: uuid.New()},
		TenantID:  s.otherTenantID,
	}
	s.projectRepo.EXPECT().GetByID(project.ID).Return(project, nil)

	name := "renamed"
	_, err := s.service.Update(s.caller, project.ID, &service.UpdateProjectRequest{Name: &name})
	s.ErrorIs(err, apperrors.ErrProjectNotFound)
}

func (s *ProjectServiceTestSuite) TestDeleteScopedToOwnTenant() {
	project := &models.Project{
		BaseModel: models.BaseModel{ID: uuid.New()},
		TenantID:  s.tenantID,
	}
	s.projectRepo.EXPECT().GetByID(project.ID).Return(project, nil)
	s.projectRepo.EXPECT().Delete(project.ID).Return(nil)

	s.NoError(s.service.Delete(s.caller, project.ID))
}

func TestProjectServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectServiceTestSuite))
}
