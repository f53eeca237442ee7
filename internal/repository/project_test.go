//go:build integration
// +build integration

package repository

import (
	"testing"

	"impactohub-backend/internal/database/models"
	"impactohub-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ProjectRepositoryTestSuite tests the ProjectRepository against a real
// Postgres instance
type ProjectRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ProjectRepository
	tenantFactory *testutils.TenantFactory
	factory       *testutils.ProjectFactory
}

// SetupSuite runs before all tests in the suite
func (suite *ProjectRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewProjectRepository(suite.baseTestSuite.DB)
	suite.tenantFactory = testutils.NewTenantFactory()
	suite.factory = testutils.NewProjectFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *ProjectRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ProjectRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ProjectRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ProjectRepositoryTestSuite) createTenant() *models.Tenant {
	tenant := suite.tenantFactory.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(tenant).Error)
	return tenant
}

func (suite *ProjectRepositoryTestSuite) TestCreateAndGetByID() {
	tenant := suite.createTenant()
	project := suite.factory.Create(tenant.ID)

	suite.NoError(suite.repo.Create(project))

	got, err := suite.repo.GetByID(project.ID)
	suite.NoError(err)
	suite.Equal(project.Name, got.Name)
	suite.Equal(tenant.ID, got.TenantID)
}

func (suite *ProjectRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *ProjectRepositoryTestSuite) TestGetByTenantIDIsScoped() {
	tenant := suite.createTenant()
	other := suite.createTenant()

	for i := 0; i < 3; i++ {
		suite.NoError(suite.repo.Create(suite.factory.Create(tenant.ID)))
	}
	suite.NoError(suite.repo.Create(suite.factory.Create(other.ID)))

	projects, total, err := suite.repo.GetByTenantID(tenant.ID, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(projects, 3)
	for _, p := range projects {
		suite.Equal(tenant.ID, p.TenantID)
	}
}

func (suite *ProjectRepositoryTestSuite) TestGetByTenantIDPagination() {
	tenant := suite.createTenant()
	for i := 0; i < 5; i++ {
		suite.NoError(suite.repo.Create(suite.factory.Create(tenant.ID)))
	}

	page1, total, err := suite.repo.GetByTenantID(tenant.ID, 2, 0)
	suite.NoError(err)
	suite.Equal(int64(5), total)
	suite.Len(page1, 2)

	page3, total, err := suite.repo.GetByTenantID(tenant.ID, 2, 4)
	suite.NoError(err)
	suite.Equal(int64(5), total)
	suite.Len(page3, 1)
}

func (suite *ProjectRepositoryTestSuite) TestGetByStatus() {
	tenant := suite.createTenant()
	suite.NoError(suite.repo.Create(suite.factory.WithStatus(tenant.ID, models.ProjectStatusActive)))
	suite.NoError(suite.repo.Create(suite.factory.WithStatus(tenant.ID, models.ProjectStatusCompleted)))

	active, total, err := suite.repo.GetByStatus(tenant.ID, models.ProjectStatusActive, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(active, 1)
	suite.Equal(models.ProjectStatusActive, active[0].Status)
}

func (suite *ProjectRepositoryTestSuite) TestUpdate() {
	tenant := suite.createTenant()
	project := suite.factory.Create(tenant.ID)
	suite.NoError(suite.repo.Create(project))

	project.Name = "Renamed Project"
	suite.NoError(suite.repo.Update(project))

	got, err := suite.repo.GetByID(project.ID)
	suite.NoError(err)
	suite.Equal("Renamed Project", got.Name)
}

func (suite *ProjectRepositoryTestSuite) TestDelete() {
	tenant := suite.createTenant()
	project := suite.factory.Create(tenant.ID)
	suite.NoError(suite.repo.Create(project))

	suite.NoError(suite.repo.Delete(project.ID))

	_, err := suite.repo.GetByID(project.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// Run the test suite
func TestProjectRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectRepositoryTestSuite))
}
