package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"card-rewards-api/internal/dto"
	apperrors "card-rewards-api/internal/errors"
	"card-rewards-api/internal/models"
	"card-rewards-api/internal/services"
	"card-rewards-api/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type DevHandlerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	tokenService *service_mocks.MockTokenServiceInterface
	demoService  *service_mocks.MockDemoDataServiceInterface
	handler      *DevHandler
	e            *echo.Echo
}

func (s *DevHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.tokenService = service_mocks.NewMockTokenServiceInterface(s.ctrl)
	s.demoService = service_mocks.NewMockDemoDataServiceInterface(s.ctrl)
	s.handler = NewDevHandler(s.tokenService, s.demoService)
	s.e = newTestEcho()
}

func (s *DevHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestDevHandlerSuite(t *testing.T) {
	suite.Run(t, new(DevHandlerTestSuite))
}

func (s *DevHandlerTestSuite) TestIssueToken_WithUserID() {
	userID := uuid.New()
	email := gofakeit.Email()
	expiresAt := time.Now().Add(15 * time.Minute).UTC().Truncate(time.Second)

	s.tokenService.EXPECT().IssueAccessToken(userID, email).Return("signed.jwt.token", expiresAt, nil)

	body := `{"user_id":"` + userID.String() + `","email":"` + email + `"}`
	c, rec := newJSONContext(s.e, http.MethodPost, "/api/v1/dev/token", body, uuid.Nil)
	s.NoError(s.handler.IssueToken(c))

	s.Equal(http.StatusOK, rec.Code)
	var resp dto.TokenResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("signed.jwt.token", resp.AccessToken)
	s.Equal("Bearer", resp.TokenType)
	s.Equal(userID.String(), resp.UserID)
	s.True(expiresAt.Equal(resp.ExpiresAt))
}

func (s *DevHandlerTestSuite) TestIssueToken_GeneratesUserID() {
	email := gofakeit.Email()
	var issuedFor uuid.UUID

	s.tokenService.EXPECT().
		IssueAccessToken(gomock.Any(), email).
		DoAndReturn(func(userID uuid.UUID, _ string) (string, time.Time, error) {
			issuedFor = userID
			return "token", time.Now().Add(time.Minute), nil
		})

	c, rec := newJSONContext(s.e, http.MethodPost, "/api/v1/dev/token", `{"email":"`+email+`"}`, uuid.Nil)
	s.NoError(s.handler.IssueToken(c))

	s.Equal(http.StatusOK, rec.Code)
	s.NotEqual(uuid.Nil, issuedFor)
	s.Contains(rec.Body.String(), issuedFor.String())
}

func (s *DevHandlerTestSuite) TestIssueToken_InvalidRequest() {
	bodies := map[string]string{
		"missing email": `{}`,
		"bad email":     `{"email":"not-an-email"}`,
		"bad user id":   `{"email":"dev@example.com","user_id":"123"}`,
	}

	for name, body := range bodies {
		s.Run(name, func() {
			c, rec := newJSONContext(s.e, http.MethodPost, "/api/v1/dev/token", body, uuid.Nil)
			s.NoError(s.handler.IssueToken(c))
			assertStatus(s.T(), rec, http.StatusBadRequest, apperrors.ValidationGeneral)
		})
	}
}

func (s *DevHandlerTestSuite) TestIssueToken_NilUserID() {
	c, rec := newJSONContext(s.e, http.MethodPost, "/api/v1/dev/token",
		`{"email":"dev@example.com","user_id":"00000000-0000-0000-0000-000000000000"}`, uuid.Nil)
	s.NoError(s.handler.IssueToken(c))

	assertStatus(s.T(), rec, http.StatusBadRequest, apperrors.ValidationInvalidFormat)
}

func (s *DevHandlerTestSuite) TestIssueToken_SigningDisabled() {
	s.tokenService.EXPECT().
		IssueAccessToken(gomock.Any(), "dev@example.com").
		Return("", time.Time{}, services.ErrSigningDisabled)

	c, rec := newJSONContext(s.e, http.MethodPost, "/api/v1/dev/token", `{"email":"dev@example.com"}`, uuid.Nil)
	s.NoError(s.handler.IssueToken(c))

	assertStatus(s.T(), rec, http.StatusInternalServerError, apperrors.SystemConfigurationError)
}

func (s *DevHandlerTestSuite) TestIssueToken_SigningFailure() {
	s.tokenService.EXPECT().
		IssueAccessToken(gomock.Any(), "dev@example.com").
		Return("", time.Time{}, errors.New("rsa: key too small"))

	c, rec := newJSONContext(s.e, http.MethodPost, "/api/v1/dev/token", `{"email":"dev@example.com"}`, uuid.Nil)
	s.NoError(s.handler.IssueToken(c))

	assertStatus(s.T(), rec, http.StatusInternalServerError, apperrors.SystemInternalError)
}

func (s *DevHandlerTestSuite) TestSeedTransactions() {
	userID := uuid.New()
	summary := &models.SeedSummary{Created: 120, PointsEarned: 48000}
	s.demoService.EXPECT().SeedTransactions(gomock.Any(), userID, 6).Return(summary, nil)

	c, rec := newJSONContext(s.e, http.MethodPost, "/api/v1/dev/seed", `{"months":6}`, userID)
	s.NoError(s.handler.SeedTransactions(c))

	s.Equal(http.StatusCreated, rec.Code)
	s.Contains(rec.Body.String(), `"created":120`)
}

func (s *DevHandlerTestSuite) TestSeedTransactions_EmptyBodyUsesDefault() {
	userID := uuid.New()
	s.demoService.EXPECT().SeedTransactions(gomock.Any(), userID, 0).Return(&models.SeedSummary{}, nil)

	c, rec := newJSONContext(s.e, http.MethodPost, "/api/v1/dev/seed", "", userID)
	s.NoError(s.handler.SeedTransactions(c))

	s.Equal(http.StatusCreated, rec.Code)
}

func (s *DevHandlerTestSuite) TestSeedTransactions_Errors() {
	userID := uuid.New()

	c, rec := newJSONContext(s.e, http.MethodPost, "/api/v1/dev/seed", `{"months":24}`, userID)
	s.NoError(s.handler.SeedTransactions(c))
	assertStatus(s.T(), rec, http.StatusBadRequest, apperrors.ValidationGeneral)

	s.demoService.EXPECT().SeedTransactions(gomock.Any(), userID, 0).Return(nil, services.ErrNoCards)
	c, rec = newJSONContext(s.e, http.MethodPost, "/api/v1/dev/seed", "", userID)
	s.NoError(s.handler.SeedTransactions(c))
	assertStatus(s.T(), rec, http.StatusNotFound, apperrors.CardNoneAvailable)
}
