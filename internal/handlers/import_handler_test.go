package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"fintrack/internal/dto"
	"fintrack/internal/services"
	"fintrack/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

const statementFixture = "Txn Date,Description,Debit,Credit\n" +
	"01/03/2024,UPI/DR/123/zomato@payu,450.50,\n" +
	"05/03/2024,SALARY CREDIT MAR,,85000.00\n"

type ImportHandlerTestSuite struct {
	suite.Suite
	echo        *echo.Echo
	ctrl        *gomock.Controller
	mockService *service_mocks.MockImportServiceInterface
	handler     *ImportHandler
	userID      uuid.UUID
}

func TestImportHandlerSuite(t *testing.T) {
	suite.Run(t, new(ImportHandlerTestSuite))
}

func (s *ImportHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockImportServiceInterface(s.ctrl)
	s.handler = NewImportHandler(s.mockService, 10<<20)
	s.userID = uuid.New()
}

func (s *ImportHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ImportHandlerTestSuite) newUploadContext(fieldName, content string) (echo.Context, *httptest.ResponseRecorder) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(fieldName, "statement.csv")
	s.Require().NoError(err)
	_, err = part.Write([]byte(content))
	s.Require().NoError(err)
	s.Require().NoError(writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions/import", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.userID)
	return c, rec
}

func (s *ImportHandlerTestSuite) TestImportStatement_Success() {
	summary := &dto.ImportSummary{
		ImportedCount:    2,
		CategorizedCount: 2,
		TotalRows:        2,
	}

	s.mockService.EXPECT().
		ImportStatement(s.userID, []byte(statementFixture)).
		Return(summary, nil)

	c, rec := s.newUploadContext("file", statementFixture)

	s.NoError(s.handler.ImportStatement(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.ImportResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("Imported 2 of 2 transactions", response.Message)
	s.Equal(2, response.Summary.ImportedCount)
	s.Equal(2, response.Summary.CategorizedCount)
}

func (s *ImportHandlerTestSuite) TestImportStatement_ReportsSkippedRows() {
	summary := &dto.ImportSummary{
		ImportedCount:    1,
		CategorizedCount: 1,
		TotalRows:        2,
		SkippedRows: []dto.SkippedRow{
			{Line: 2, Reason: services.SkipReasonNoAmount},
		},
	}

	s.mockService.EXPECT().
		ImportStatement(s.userID, gomock.Any()).
		Return(summary, nil)

	c, rec := s.newUploadContext("file", statementFixture)

	s.NoError(s.handler.ImportStatement(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.ImportResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Len(response.Summary.SkippedRows, 1)
	s.Equal(2, response.Summary.SkippedRows[0].Line)
}

func (s *ImportHandlerTestSuite) TestImportStatement_MissingFile() {
	c, rec := s.newUploadContext("attachment", statementFixture)

	s.NoError(s.handler.ImportStatement(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	var response ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("IMPORT_001", response.Error.Code)
}

func (s *ImportHandlerTestSuite) TestImportStatement_Unauthorized() {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	_, err := writer.CreateFormFile("file", "statement.csv")
	s.Require().NoError(err)
	s.Require().NoError(writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions/import", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(s.handler.ImportStatement(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *ImportHandlerTestSuite) TestImportStatement_ServiceErrorMapping() {
	testCases := []struct {
		name         string
		serviceError error
		expectedCode string
		expectedHTTP int
	}{
		{"empty statement", services.ErrEmptyStatement, "IMPORT_002", http.StatusBadRequest},
		{"header not found", services.ErrHeaderNotFound, "IMPORT_003", http.StatusBadRequest},
		{"no valid rows", services.ErrNoValidRows, "IMPORT_004", http.StatusBadRequest},
		{"persist failed", services.ErrImportPersistFailed, "IMPORT_005", http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockService.EXPECT().
				ImportStatement(s.userID, gomock.Any()).
				Return(nil, tc.serviceError)

			c, rec := s.newUploadContext("file", statementFixture)

			s.NoError(s.handler.ImportStatement(c))
			s.Equal(tc.expectedHTTP, rec.Code)

			var response ErrorResponse
			s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
			s.Equal(tc.expectedCode, response.Error.Code)
		})
	}
}

func (s *ImportHandlerTestSuite) TestImportStatement_FileTooLarge() {
	handler := NewImportHandler(s.mockService, 16)

	c, rec := s.newUploadContext("file", statementFixture)

	s.NoError(handler.ImportStatement(c))
	s.Equal(http.StatusRequestEntityTooLarge, rec.Code)

	var response ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("VALIDATION_004", response.Error.Code)
}
