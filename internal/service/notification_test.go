package service_test

import (
	"testing"

	"impactohub-backend/internal/auth"
	"impactohub-backend/internal/database/models"
	apperrors "impactohub-backend/internal/errors"
	"impactohub-backend/internal/mocks"
	"impactohub-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type NotificationServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	repo    *mocks.MockNotificationRepositoryInterface
	service *service.NotificationService

	tenantID uuid.UUID
	caller   *auth.Identity
}

func (s *NotificationServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = mocks.NewMockNotificationRepositoryInterface(s.ctrl)
	s.service = service.NewNotificationService(s.repo)

	s.tenantID = uuid.New()
	s.caller = &auth.Identity{
		UserID:   uuid.New(),
		Role:     models.RoleClientUser,
		TenantID: &s.tenantID,
	}
}

func (s *NotificationServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *NotificationServiceTestSuite) TestListIncludesUnreadCount() {
	s.repo.EXPECT().GetByRecipient(s.tenantID, s.caller.UserID, 20, 0).
		Return([]models.Notification{{TenantID: s.tenantID}}, int64(1), nil)
	s.repo.EXPECT().CountUnread(s.tenantID, s.caller.UserID).Return(int64(1), nil)

	resp, err := s.service.List(s.caller, 1, 20)
	s.NoError(err)
	s.Equal(int64(1), resp.Total)
	s.Equal(int64(1), resp.Unread)
}

func (s *NotificationServiceTestSuite) TestMarkReadOwnNotification() {
	userID := s.caller.UserID
	notification := &models.Notification{
		BaseModel: models.BaseModel{ID: uuid.New()},
		TenantID:  s.tenantID,
		UserID:    &userID,
	}
	s.repo.EXPECT().GetByID(notification.ID).Return(notification, nil)
	s.repo.EXPECT().MarkRead(notification.ID).Return(nil)

	s.NoError(s.service.MarkRead(s.caller, notification.ID))
}

func (s *NotificationServiceTestSuite) TestMarkReadTenantBroadcast() {
	// A notification with no addressee belongs to everyone in the tenant
	notification := &models.Notification{
		BaseModel: models.BaseModel{ID: uuid.New()},
		TenantID:  s.tenantID,
	}
	s.repo.EXPECT().GetByID(notification.ID).Return(notification, nil)
	s.repo.EXPECT().MarkRead(notification.ID).Return(nil)

	s.NoError(s.service.MarkRead(s.caller, notification.ID))
}

func (s *NotificationServiceTestSuite) TestMarkReadHidesOtherTenants() {
	notification := &models.Notification{
		BaseModel: models.BaseModel{ID: uuid.New()},
		TenantID:  uuid.New(),
	}
	s.repo.EXPECT().GetByID(notification.ID).Return(notification, nil)

	err := s.service.MarkRead(s.caller, notification.ID)
	s.ErrorIs(err, apperrors.ErrNotificationNotFound)
}

func (s *NotificationServiceTestSuite) TestMarkReadHidesOtherUsers() {
	otherUserID := uuid.New()
	notification := &models.Notification{
		BaseModel: models.BaseModel{ID: uuid.New()},
		TenantID:  s.tenantID,
		UserID:    &otherUserID,
	}
	s.repo.EXPECT().GetByID(notification.ID).Return(notification, nil)

	err := s.service.MarkRead(s.caller, notification.ID)
	s.ErrorIs(err, apperrors.ErrNotificationNotFound)
}

func (s *NotificationServiceTestSuite) TestMarkReadMissing() {
	id := uuid.New()
	s.repo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	err := s.service.MarkRead(s.caller, id)
	s.ErrorIs(err, apperrors.ErrNotificationNotFound)
}

func (s *NotificationServiceTestSuite) TestMarkAllRead() {
	s.repo.EXPECT().MarkAllRead(s.tenantID, s.caller.UserID).Return(nil)
	s.NoError(s.service.MarkAllRead(s.caller))
}

func TestNotificationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationServiceTestSuite))
}
