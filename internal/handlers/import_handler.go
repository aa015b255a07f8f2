package handlers

import (
	"fmt"
	"io"
	"net/http"

	"fintrack/internal/dto"
	"fintrack/internal/errors"
	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
)

// ImportHandler handles bank statement uploads
type ImportHandler struct {
	importService  services.ImportServiceInterface
	maxUploadBytes int64
}

// NewImportHandler creates a new statement import handler
func NewImportHandler(importService services.ImportServiceInterface, maxUploadBytes int64) *ImportHandler {
	return &ImportHandler{
		importService:  importService,
		maxUploadBytes: maxUploadBytes,
	}
}

// ImportStatement ingests an uploaded bank statement export
// @Summary Import bank statement
// @Description Upload a CSV bank statement export. Preamble lines before the header are discarded, rows are extracted, categorized and saved in bulk. Rows that cannot be resolved are reported back with a reason, never failing the whole import.
// @Tags Import
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Statement file (CSV)"
// @Success 200 {object} dto.ImportResponse "Import summary"
// @Failure 400 {object} errors.ErrorResponse "IMPORT_001..IMPORT_004 - File missing, empty, header not found or no valid rows"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 413 {object} errors.ErrorResponse "VALIDATION_004 - File exceeds the upload size limit"
// @Failure 500 {object} errors.ErrorResponse "IMPORT_005 - Transactions parsed but could not be saved"
// @Router /transactions/import [post]
func (h *ImportHandler) ImportStatement(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return SendError(c, errors.ImportFileMissing)
	}

	if fileHeader.Size > h.maxUploadBytes {
		traceID := getTraceID(c)
		errorResponse := errors.NewErrorResponse(
			errors.ValidationOutOfRange,
			traceID,
			errors.WithDetails(fmt.Sprintf("File exceeds the %d byte upload limit", h.maxUploadBytes)),
		)
		return c.JSON(http.StatusRequestEntityTooLarge, errorResponse)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return SendSystemError(c, err)
	}
	defer file.Close()

	raw, err := io.ReadAll(io.LimitReader(file, h.maxUploadBytes+1))
	if err != nil {
		return SendSystemError(c, err)
	}
	if int64(len(raw)) > h.maxUploadBytes {
		traceID := getTraceID(c)
		errorResponse := errors.NewErrorResponse(
			errors.ValidationOutOfRange,
			traceID,
			errors.WithDetails(fmt.Sprintf("File exceeds the %d byte upload limit", h.maxUploadBytes)),
		)
		return c.JSON(http.StatusRequestEntityTooLarge, errorResponse)
	}

	summary, err := h.importService.ImportStatement(userID, raw)
	if err != nil {
		switch err {
		case services.ErrEmptyStatement:
			return SendError(c, errors.ImportEmptyFile)
		case services.ErrHeaderNotFound:
			return SendError(c, errors.ImportHeaderNotFound)
		case services.ErrNoValidRows:
			return SendError(c, errors.ImportNoValidRows)
		case services.ErrImportPersistFailed:
			return SendError(c, errors.ImportPersistFailed)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, dto.ImportResponse{
		Message: fmt.Sprintf("Imported %d of %d transactions", summary.ImportedCount, summary.TotalRows),
		Summary: *summary,
	})
}
