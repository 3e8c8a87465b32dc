package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/subtally/subtally-api/internal/models"
)

// DefaultMaxPDFPages bounds worst-case CPU cost when extracting text from an
// adversarial PDF.
const DefaultMaxPDFPages = 50

// TextExtractor converts PDF bytes into plain text, processing at most
// maxPages pages. The pipeline itself never touches PDF binary structure.
type TextExtractor interface {
	ExtractText(ctx context.Context, data []byte, maxPages int) (string, error)
}

// ValidationError carries the user-facing message for an upload rejected
// before parsing started.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Processor runs one uploaded statement end-to-end: validation, extraction,
// classification, aggregation. Each call operates on a freshly supplied
// buffer and produces an independent report; there is no shared mutable
// state between uploads.
type Processor struct {
	validator   *FileValidator
	extractor   TextExtractor
	maxPDFPages int
}

// NewProcessor creates a processor. maxPDFPages caps PDF text extraction;
// non-positive values fall back to DefaultMaxPDFPages.
func NewProcessor(validator *FileValidator, extractor TextExtractor, maxPDFPages int) *Processor {
	if maxPDFPages <= 0 {
		maxPDFPages = DefaultMaxPDFPages
	}
	return &Processor{
		validator:   validator,
		extractor:   extractor,
		maxPDFPages: maxPDFPages,
	}
}

// ProcessFile validates an upload and routes it through the matching parsing
// path. A *ValidationError means the file was rejected before parsing; any
// other error is a processing failure with no partial report.
func (p *Processor) ProcessFile(ctx context.Context, data []byte, filename, contentType string, accountType models.AccountType) (*models.ProcessedData, error) {
	if result := p.validator.ValidateFile(filename, contentType, int64(len(data))); !result.Valid {
		return nil, &ValidationError{Message: result.Error}
	}

	switch {
	case IsCSV(filename, contentType):
		transactions, err := ParseCSV(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to parse CSV: %w", err)
		}
		return Organize(transactions, accountType), nil

	case IsPDF(filename, contentType):
		text, err := p.extractor.ExtractText(ctx, data, p.maxPDFPages)
		if err != nil {
			return nil, fmt.Errorf("failed to extract PDF text: %w", err)
		}
		return Organize(ExtractPDFText(text), accountType), nil

	default:
		// Unreachable while the validator's allowed set matches the routing
		// rules, but kept so a future set change fails loudly.
		return nil, &ValidationError{Message: "only CSV and PDF files are allowed"}
	}
}
