//go:build integration
// +build integration

package repository

import (
	"testing"

	"impactohub-backend/internal/database/models"
	"impactohub-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// NotificationRepositoryTestSuite tests the NotificationRepository
type NotificationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *NotificationRepository
	tenantFactory *testutils.TenantFactory
	userFactory   *testutils.UserFactory
}

// SetupSuite runs before all tests in the suite
func (suite *NotificationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewNotificationRepository(suite.baseTestSuite.DB)
	suite.tenantFactory = testutils.NewTenantFactory()
	suite.userFactory = testutils.NewUserFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *NotificationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *NotificationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *NotificationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *NotificationRepositoryTestSuite) createTenantWithUser() (*models.Tenant, *models.User) {
	tenant := suite.tenantFactory.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(tenant).Error)
	user := suite.userFactory.Create(tenant.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(user).Error)
	return tenant, user
}

func (suite *NotificationRepositoryTestSuite) createNotification(tenantID uuid.UUID, userID *uuid.UUID) *models.Notification {
	n := &models.Notification{
		TenantID: tenantID,
		UserID:   userID,
		Title:    "Test",
		Message:  "Test message",
		Type:     models.NotificationTypeInfo,
	}
	suite.NoError(suite.repo.Create(n))
	return n
}

func (suite *NotificationRepositoryTestSuite) TestGetByRecipientIncludesBroadcasts() {
	tenant, user := suite.createTenantWithUser()
	_, otherUser := suite.createTenantWithUser()

	suite.createNotification(tenant.ID, &user.ID)          // addressed
	suite.createNotification(tenant.ID, nil)               // tenant-wide
	suite.createNotification(tenant.ID, &otherUser.ID)     // someone else
	suite.createNotification(*otherUser.TenantID, &user.ID) // other tenant

	notifications, total, err := suite.repo.GetByRecipient(tenant.ID, user.ID, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(notifications, 2)
}

func (suite *NotificationRepositoryTestSuite) TestCountUnreadAndMarkRead() {
	tenant, user := suite.createTenantWithUser()

	first := suite.createNotification(tenant.ID, &user.ID)
	suite.createNotification(tenant.ID, &user.ID)

	unread, err := suite.repo.CountUnread(tenant.ID, user.ID)
	suite.NoError(err)
	suite.Equal(int64(2), unread)

	suite.NoError(suite.repo.MarkRead(first.ID))

	unread, err = suite.repo.CountUnread(tenant.ID, user.ID)
	suite.NoError(err)
	suite.Equal(int64(1), unread)
}

func (suite *NotificationRepositoryTestSuite) TestMarkAllRead() {
	tenant, user := suite.createTenantWithUser()
	_, otherUser := suite.createTenantWithUser()

	suite.createNotification(tenant.ID, &user.ID)
	suite.createNotification(tenant.ID, nil)
	untouched := suite.createNotification(*otherUser.TenantID, &otherUser.ID)

	suite.NoError(suite.repo.MarkAllRead(tenant.ID, user.ID))

	unread, err := suite.repo.CountUnread(tenant.ID, user.ID)
	suite.NoError(err)
	suite.Equal(int64(0), unread)

	got, err := suite.repo.GetByID(untouched.ID)
	suite.NoError(err)
	suite.False(got.IsRead)
}

// Run the test suite
func TestNotificationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationRepositoryTestSuite))
}
