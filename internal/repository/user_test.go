//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"impactohub-backend/internal/database/models"
	"impactohub-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserRepositoryTestSuite tests the UserRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	tenantFactory *testutils.TenantFactory
	userFactory   *testutils.UserFactory
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
	suite.tenantFactory = testutils.NewTenantFactory()
	suite.userFactory = testutils.NewUserFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *UserRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *UserRepositoryTestSuite) createTenant() *models.Tenant {
	tenant := suite.tenantFactory.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(tenant).Error)
	return tenant
}

func (suite *UserRepositoryTestSuite) TestGetByEmail() {
	tenant := suite.createTenant()
	user := suite.userFactory.Create(tenant.ID)
	suite.NoError(suite.repo.Create(user))

	got, err := suite.repo.GetByEmail(user.Email)
	suite.NoError(err)
	suite.Equal(user.ID, got.ID)
}

func (suite *UserRepositoryTestSuite) TestGetOwnerReturnsEarliestUser() {
	tenant := suite.createTenant()

	owner := suite.userFactory.Create(tenant.ID)
	owner.CreatedAt = time.Now().Add(-48 * time.Hour)
	suite.NoError(suite.repo.Create(owner))

	later := suite.userFactory.Create(tenant.ID)
	suite.NoError(suite.repo.Create(later))

	got, err := suite.repo.GetOwnerByTenantID(tenant.ID)
	suite.NoError(err)
	suite.Equal(owner.ID, got.ID)
}

func (suite *UserRepositoryTestSuite) TestGetOwnerWithoutUsers() {
	tenant := suite.createTenant()
	_, err := suite.repo.GetOwnerByTenantID(tenant.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *UserRepositoryTestSuite) TestGetByTenantIDExcludesAdmins() {
	tenant := suite.createTenant()
	suite.NoError(suite.repo.Create(suite.userFactory.Create(tenant.ID)))
	suite.NoError(suite.repo.Create(suite.userFactory.CreateAdmin()))

	users, total, err := suite.repo.GetByTenantID(tenant.ID, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(users, 1)
}

func (suite *UserRepositoryTestSuite) TestDuplicateEmailFails() {
	tenant := suite.createTenant()
	user := suite.userFactory.Create(tenant.ID)
	suite.NoError(suite.repo.Create(user))

	dup := suite.userFactory.Create(tenant.ID)
	dup.Email = user.Email
	dup.ID = uuid.New()
	suite.Error(suite.repo.Create(dup))
}

// Run the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
