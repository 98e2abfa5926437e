package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"networth-tracker/internal/dto"
	"networth-tracker/internal/models"
	"networth-tracker/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// PreferenceHandlerSuite defines the test suite for PreferenceHandler
type PreferenceHandlerSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *repository_mocks.MockUserPreferenceRepositoryInterface
	handler  *PreferenceHandler
	echo     *echo.Echo
}

// SetupTest runs before each test in the suite
func (s *PreferenceHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = repository_mocks.NewMockUserPreferenceRepositoryInterface(s.ctrl)
	s.handler = NewPreferenceHandler(s.mockRepo)

	s.echo = echo.New()
	s.echo.Validator = NewValidator()
}

// TearDownTest runs after each test in the suite
func (s *PreferenceHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestPreferenceHandlerSuite runs the test suite
func TestPreferenceHandlerSuite(t *testing.T) {
	suite.Run(t, new(PreferenceHandlerSuite))
}

func (s *PreferenceHandlerSuite) TestGetPreferences() {
	s.mockRepo.EXPECT().Get().Return(&models.UserPreference{
		ID:              uuid.New(),
		DefaultCurrency: "EUR",
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/preferences", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.Require().NoError(s.handler.GetPreferences(c))
	s.Equal(http.StatusOK, rec.Code)

	var pref models.UserPreference
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &pref))
	s.Equal("EUR", pref.DefaultCurrency)
}

func (s *PreferenceHandlerSuite) TestUpdatePreferences() {
	s.mockRepo.EXPECT().Set("GBP").Return(&models.UserPreference{
		ID:              uuid.New(),
		DefaultCurrency: "GBP",
	}, nil)

	body, _ := json.Marshal(dto.UpdatePreferenceRequest{DefaultCurrency: "GBP"})
	req := httptest.NewRequest(http.MethodPut, "/api/v1/preferences", bytes.NewBuffer(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.Require().NoError(s.handler.UpdatePreferences(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *PreferenceHandlerSuite) TestUpdatePreferencesRejectsBadCurrency() {
	body, _ := json.Marshal(dto.UpdatePreferenceRequest{DefaultCurrency: "POUNDS"})
	req := httptest.NewRequest(http.MethodPut, "/api/v1/preferences", bytes.NewBuffer(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.Error(s.handler.UpdatePreferences(c))
}
