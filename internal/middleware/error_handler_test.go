package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"fintrack/internal/errors"
	"fintrack/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type ErrorHandlerTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func TestErrorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ErrorHandlerTestSuite))
}

func (s *ErrorHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.HTTPErrorHandler = CustomHTTPErrorHandler
}

func (s *ErrorHandlerTestSuite) handle(err error) (*httptest.ResponseRecorder, errors.ErrorResponse) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(TraceIDContextKey, "trace-456")

	CustomHTTPErrorHandler(err, c)

	var response errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	return rec, response
}

func (s *ErrorHandlerTestSuite) TestEchoHTTPErrorMapping() {
	testCases := []struct {
		name         string
		status       int
		expectedCode string
	}{
		{"not found", http.StatusNotFound, "TRANSACTION_001"},
		{"unauthorized", http.StatusUnauthorized, "AUTH_001"},
		{"bad request", http.StatusBadRequest, "VALIDATION_001"},
		{"method not allowed", http.StatusMethodNotAllowed, "VALIDATION_001"},
		{"too many requests", http.StatusTooManyRequests, "SYSTEM_005"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			rec, response := s.handle(echo.NewHTTPError(tc.status, http.StatusText(tc.status)))

			s.Equal(tc.status, rec.Code)
			s.Equal(tc.expectedCode, response.Error.Code)
			s.Equal("trace-456", response.Error.TraceID)
		})
	}
}

func (s *ErrorHandlerTestSuite) TestValidationErrors() {
	type createRequest struct {
		Amount float64 `json:"amount" validate:"required,positive_amount"`
		Type   string  `json:"type" validate:"required,transaction_type"`
	}

	err := validation.GetValidator().GetValidate().Struct(&createRequest{Amount: -1, Type: "transfer"})
	s.Require().Error(err)

	rec, response := s.handle(err)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_001", response.Error.Code)
	s.NotEmpty(response.Error.Details)
}

func (s *ErrorHandlerTestSuite) TestUnknownErrorBecomesSystemError() {
	rec, response := s.handle(fmt.Errorf("pq: connection refused"))

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("SYSTEM_001", response.Error.Code)
	s.NotContains(response.Error.Message, "connection refused")
}

func (s *ErrorHandlerTestSuite) TestCommittedResponseLeftAlone() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(c.NoContent(http.StatusOK))
	CustomHTTPErrorHandler(fmt.Errorf("late failure"), c)

	s.Equal(http.StatusOK, rec.Code)
	s.Empty(rec.Body.String())
}
