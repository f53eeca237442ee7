package auth_test

import (
	"net/http"
	"testing"

	"impactohub-backend/internal/auth"
	"impactohub-backend/internal/database/models"
	"impactohub-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type MiddlewareTestSuite struct {
	suite.Suite
	http    *testutils.HTTPTestSuite
	service *auth.Service
	admin   *models.User
	user    *models.User
}

func (s *MiddlewareTestSuite) SetupTest() {
	tenantID := uuid.New()
	s.admin = &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "admin@test.com",
		Role:      models.RoleAdmin,
	}
	s.user = &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "user@test.com",
		Role:      models.RoleClientUser,
		TenantID:  &tenantID,
	}

	repo := &stubUserRepo{users: map[uuid.UUID]*models.User{
		s.admin.ID: s.admin,
		s.user.ID:  s.user,
	}}

	svc, err := auth.NewService("test-secret", "session_token", repo)
	require.NoError(s.T(), err)
	s.service = svc

	mw := auth.NewMiddleware(svc)
	s.http = testutils.SetupHTTPTest()
	protected := s.http.Router.Group("/", mw.RequireAuth())
	protected.GET("/me", func(c *gin.Context) {
		identity, _ := auth.GetIdentity(c)
		c.JSON(http.StatusOK, identity)
	})
	protected.GET("/admin", mw.RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
}

func (s *MiddlewareTestSuite) token(user *models.User) string {
	token, err := s.service.GenerateToken(user)
	require.NoError(s.T(), err)
	return token
}

func (s *MiddlewareTestSuite) TestMissingTokenIsUnauthorized() {
	rec := s.http.MakeRequest(http.MethodGet, "/me", nil)
	testutils.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "authentication required")
}

func (s *MiddlewareTestSuite) TestGarbageTokenIsUnauthorized() {
	rec := s.http.MakeRequestWithHeaders(http.MethodGet, "/me", nil, map[string]string{
		"Authorization": "Bearer not-a-token",
	})
	testutils.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "authentication required")
}

func (s *MiddlewareTestSuite) TestUnknownSubjectIsUnauthorized() {
	ghost := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "ghost@test.com"}
	rec := s.http.MakeRequestWithHeaders(http.MethodGet, "/me", nil, map[string]string{
		"Authorization": "Bearer " + s.token(ghost),
	})
	testutils.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "authentication required")
}

func (s *MiddlewareTestSuite) TestBearerTokenResolvesIdentity() {
	rec := s.http.MakeRequestWithHeaders(http.MethodGet, "/me", nil, map[string]string{
		"Authorization": "Bearer " + s.token(s.user),
	})
	var identity auth.Identity
	testutils.AssertJSONResponse(s.T(), rec, http.StatusOK, &identity)
	s.Equal(s.user.ID, identity.UserID)
	s.Equal(models.RoleClientUser, identity.Role)
}

func (s *MiddlewareTestSuite) TestCookieResolvesIdentity() {
	rec := s.http.MakeRequestWithHeaders(http.MethodGet, "/me", nil, map[string]string{
		"Cookie": "session_token=" + s.token(s.user),
	})
	var identity auth.Identity
	testutils.AssertJSONResponse(s.T(), rec, http.StatusOK, &identity)
	s.Equal(s.user.ID, identity.UserID)
}

func (s *MiddlewareTestSuite) TestRequireAdminRejectsTenantUser() {
	rec := s.http.MakeRequestWithHeaders(http.MethodGet, "/admin", nil, map[string]string{
		"Authorization": "Bearer " + s.token(s.user),
	})
	testutils.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "access denied")
}

func (s *MiddlewareTestSuite) TestRequireAdminAllowsAdmin() {
	rec := s.http.MakeRequestWithHeaders(http.MethodGet, "/admin", nil, map[string]string{
		"Authorization": "Bearer " + s.token(s.admin),
	})
	s.Equal(http.StatusOK, rec.Code)
}

func TestMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(MiddlewareTestSuite))
}
