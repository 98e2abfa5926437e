package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"networth-tracker/internal/dto"
	"networth-tracker/internal/models"
	"networth-tracker/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// ExchangeRateHandlerSuite defines the test suite for ExchangeRateHandler
type ExchangeRateHandlerSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *repository_mocks.MockExchangeRateRepositoryInterface
	handler  *ExchangeRateHandler
	echo     *echo.Echo
}

// SetupTest runs before each test in the suite
func (s *ExchangeRateHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = repository_mocks.NewMockExchangeRateRepositoryInterface(s.ctrl)
	s.handler = NewExchangeRateHandler(s.mockRepo)

	s.echo = echo.New()
	s.echo.Validator = NewValidator()
}

// TearDownTest runs after each test in the suite
func (s *ExchangeRateHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestExchangeRateHandlerSuite runs the test suite
func TestExchangeRateHandlerSuite(t *testing.T) {
	suite.Run(t, new(ExchangeRateHandlerSuite))
}

func (s *ExchangeRateHandlerSuite) createRateContext(method, path string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	rec := httptest.NewRecorder()
	return s.echo.NewContext(req, rec), rec
}

func (s *ExchangeRateHandlerSuite) TestUpsertRateSuccess() {
	s.mockRepo.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(rate *models.ExchangeRate) error {
		s.Equal("EUR", rate.BaseCurrency)
		s.Equal("USD", rate.QuoteCurrency)
		s.Equal("2024-01-15", models.FormatDate(rate.Date))
		s.True(rate.Rate.Equal(decimal.RequireFromString("1.0865")))
		return nil
	})

	c, rec := s.createRateContext(http.MethodPut, "/api/v1/rates", dto.UpsertExchangeRateRequest{
		BaseCurrency:  "EUR",
		QuoteCurrency: "USD",
		Date:          "2024-01-15",
		Rate:          "1.0865",
	})
	s.Require().NoError(s.handler.UpsertRate(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *ExchangeRateHandlerSuite) TestUpsertRateIdentityPair() {
	c, rec := s.createRateContext(http.MethodPut, "/api/v1/rates", dto.UpsertExchangeRateRequest{
		BaseCurrency:  "USD",
		QuoteCurrency: "USD",
		Date:          "2024-01-15",
		Rate:          "1",
	})
	s.Require().NoError(s.handler.UpsertRate(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("RATE_003", resp.Error.Code)
}

func (s *ExchangeRateHandlerSuite) TestUpsertRateNonPositive() {
	for _, value := range []string{"0", "-1.5"} {
		c, rec := s.createRateContext(http.MethodPut, "/api/v1/rates", dto.UpsertExchangeRateRequest{
			BaseCurrency:  "EUR",
			QuoteCurrency: "USD",
			Date:          "2024-01-15",
			Rate:          value,
		})
		s.Require().NoError(s.handler.UpsertRate(c))
		s.Equal(http.StatusBadRequest, rec.Code)

		var resp ErrorResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.Equal("RATE_002", resp.Error.Code)
	}
}

func (s *ExchangeRateHandlerSuite) TestUpsertRateBadCurrency() {
	c, _ := s.createRateContext(http.MethodPut, "/api/v1/rates", dto.UpsertExchangeRateRequest{
		BaseCurrency:  "EURO",
		QuoteCurrency: "USD",
		Date:          "2024-01-15",
		Rate:          "1.1",
	})
	s.Error(s.handler.UpsertRate(c))
}

func (s *ExchangeRateHandlerSuite) TestGetRatesSuccess() {
	upTo := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	s.mockRepo.EXPECT().ListByPair("EUR", "USD", upTo).Return([]models.ExchangeRate{
		{BaseCurrency: "EUR", QuoteCurrency: "USD", Date: upTo, Rate: decimal.RequireFromString("1.1")},
	}, nil)

	c, rec := s.createRateContext(http.MethodGet, "/api/v1/rates?base=EUR&quote=USD&up_to=2024-03-01", nil)
	s.Require().NoError(s.handler.GetRates(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.ExchangeRateListResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(1, resp.Total)
}

func (s *ExchangeRateHandlerSuite) TestGetRatesRejectsMissingPair() {
	c, rec := s.createRateContext(http.MethodGet, "/api/v1/rates?base=EUR", nil)
	s.Require().NoError(s.handler.GetRates(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("REQUEST_001", resp.Error.Code)
}
