package handlers

import (
	"context"
	"errors"
	"io"

	"github.com/gofiber/fiber/v3"

	"github.com/subtally/subtally-api/internal/middleware"
	"github.com/subtally/subtally-api/internal/models"
	"github.com/subtally/subtally-api/internal/services"
	"github.com/subtally/subtally-api/internal/utils"
)

// FileProcessor runs the statement pipeline on one uploaded file.
type FileProcessor interface {
	ProcessFile(ctx context.Context, data []byte, filename, contentType string, accountType models.AccountType) (*models.ProcessedData, error)
}

// ProcessHandler handles statement processing requests.
type ProcessHandler struct {
	processor FileProcessor
}

// NewProcessHandler creates a new process handler instance.
func NewProcessHandler(processor FileProcessor) *ProcessHandler {
	return &ProcessHandler{processor: processor}
}

// ProcessStatement accepts a multipart upload and returns the report.
// POST /v1/process
// Form fields: file (required), account_type ("checking" | "credit", optional)
func (h *ProcessHandler) ProcessStatement(c fiber.Ctx) error {
	log := middleware.LoggerFrom(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "no file provided")
	}

	accountType := models.ParseAccountType(c.FormValue("account_type"))

	file, err := fileHeader.Open()
	if err != nil {
		log.Error().Err(err).Msg("failed to open uploaded file")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to process file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Error().Err(err).Msg("failed to read uploaded file")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to process file")
	}

	contentType := fileHeader.Header.Get("Content-Type")

	report, err := h.processor.ProcessFile(c.Context(), data, fileHeader.Filename, contentType, accountType)
	if err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, vErr.Message)
		}
		// Processing failures surface as a single generic error; details
		// stay in the logs.
		log.Error().Err(err).Str("filename", fileHeader.Filename).Msg("pipeline failed")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to process file")
	}

	log.Info().
		Str("filename", fileHeader.Filename).
		Int("transactions", report.NumberOfTransactions).
		Float64("total", report.Total).
		Msg("statement processed")

	return c.JSON(report)
}
