package services

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/subtally/subtally-api/internal/models"
)

// DefaultMaxFileSize is the upload size ceiling when no limit is configured.
const DefaultMaxFileSize = 10 * 1024 * 1024 // 10MB

// Allowed MIME types for statement uploads.
var allowedMimeTypes = map[string]bool{
	"text/csv":        true,
	"application/pdf": true,
}

// Allowed file extensions for statement uploads.
var allowedExtensions = map[string]bool{
	".csv": true,
	".pdf": true,
}

// FileValidator gates uploads before any parsing begins. A file passes when
// it is within the size ceiling and either its declared MIME type or its
// filename extension is in the allowed set.
type FileValidator struct {
	maxSizeBytes int64
}

// NewFileValidator creates a validator with the given size ceiling in bytes.
// Non-positive values fall back to DefaultMaxFileSize.
func NewFileValidator(maxSizeBytes int64) *FileValidator {
	if maxSizeBytes <= 0 {
		maxSizeBytes = DefaultMaxFileSize
	}
	return &FileValidator{maxSizeBytes: maxSizeBytes}
}

// MaxSizeBytes returns the configured upload ceiling.
func (v *FileValidator) MaxSizeBytes() int64 {
	return v.maxSizeBytes
}

// ValidateFile checks size and type constraints for an upload. The error
// string is user-facing and names the concrete violated constraint.
func (v *FileValidator) ValidateFile(filename, contentType string, size int64) models.ValidationResult {
	if size > v.maxSizeBytes {
		return models.ValidationResult{
			Valid: false,
			Error: fmt.Sprintf("file size must be less than %dMB", v.maxSizeBytes/(1024*1024)),
		}
	}

	if !allowedMimeTypes[contentType] && !allowedExtensions[normalizedExt(filename)] {
		return models.ValidationResult{
			Valid: false,
			Error: "only CSV and PDF files are allowed",
		}
	}

	return models.ValidationResult{Valid: true}
}

func normalizedExt(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}

// IsCSV reports whether an upload should take the CSV path, judged by the
// declared MIME type or the filename extension.
func IsCSV(filename, contentType string) bool {
	return contentType == "text/csv" || normalizedExt(filename) == ".csv"
}

// IsPDF reports whether an upload should take the PDF path.
func IsPDF(filename, contentType string) bool {
	return contentType == "application/pdf" || normalizedExt(filename) == ".pdf"
}
