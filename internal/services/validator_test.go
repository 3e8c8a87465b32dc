package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFile_CSVAccepted(t *testing.T) {
	v := NewFileValidator(DefaultMaxFileSize)
	result := v.ValidateFile("statement.csv", "text/csv", 1024)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Error)
}

func TestValidateFile_PDFAccepted(t *testing.T) {
	v := NewFileValidator(DefaultMaxFileSize)
	result := v.ValidateFile("statement.pdf", "application/pdf", 1024)
	assert.True(t, result.Valid)
}

func TestValidateFile_ExtensionAloneSuffices(t *testing.T) {
	// Browsers sometimes send a generic MIME type; the extension still gets
	// the file through.
	v := NewFileValidator(DefaultMaxFileSize)
	result := v.ValidateFile("statement.CSV", "application/octet-stream", 1024)
	assert.True(t, result.Valid)
}

func TestValidateFile_MimeTypeAloneSuffices(t *testing.T) {
	v := NewFileValidator(DefaultMaxFileSize)
	result := v.ValidateFile("download", "application/pdf", 1024)
	assert.True(t, result.Valid)
}

func TestValidateFile_UnsupportedType(t *testing.T) {
	v := NewFileValidator(DefaultMaxFileSize)
	result := v.ValidateFile("notes.txt", "text/plain", 1024)
	require.False(t, result.Valid)
	assert.Equal(t, "only CSV and PDF files are allowed", result.Error)
}

func TestValidateFile_Oversized(t *testing.T) {
	v := NewFileValidator(10 * 1024 * 1024)
	result := v.ValidateFile("statement.csv", "text/csv", 10*1024*1024+1)
	require.False(t, result.Valid)
	assert.Contains(t, result.Error, "10MB")
}

func TestValidateFile_ExactlyAtSizeLimit(t *testing.T) {
	v := NewFileValidator(10 * 1024 * 1024)
	result := v.ValidateFile("statement.csv", "text/csv", 10*1024*1024)
	assert.True(t, result.Valid)
}

func TestValidateFile_SizeCheckedBeforeType(t *testing.T) {
	// An oversized file of the wrong type reports the size violation
	v := NewFileValidator(1024)
	result := v.ValidateFile("notes.txt", "text/plain", 2048)
	require.False(t, result.Valid)
	assert.Contains(t, result.Error, "file size")
}

func TestNewFileValidator_DefaultCeiling(t *testing.T) {
	v := NewFileValidator(0)
	assert.Equal(t, int64(DefaultMaxFileSize), v.MaxSizeBytes())
}

func TestIsCSV(t *testing.T) {
	assert.True(t, IsCSV("statement.csv", ""))
	assert.True(t, IsCSV("weird.name", "text/csv"))
	assert.False(t, IsCSV("statement.pdf", "application/pdf"))
}

func TestIsPDF(t *testing.T) {
	assert.True(t, IsPDF("statement.PDF", ""))
	assert.True(t, IsPDF("download", "application/pdf"))
	assert.False(t, IsPDF("statement.csv", "text/csv"))
}
