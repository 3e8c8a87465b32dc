package services

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/subtally/subtally-api/internal/models"
)

// ColumnMap holds the inferred positions of the three columns the pipeline
// cares about in an arbitrary bank CSV export.
type ColumnMap struct {
	Date        int
	Description int
	Amount      int
}

// InferColumns guesses which headers carry the date, description and amount
// for an unknown CSV schema. Matching is case-insensitive substring search
// over header names, with positional fallbacks: amount falls back to the last
// column, date to the first, description to the second. The trade is per-file
// schema configuration for tolerance of varied bank export layouts.
func InferColumns(headers []string) ColumnMap {
	cols := ColumnMap{
		Date:        0,
		Description: 1,
		Amount:      len(headers) - 1,
	}
	if len(headers) < 2 {
		cols.Description = 0
	}

	foundDate, foundDesc, foundAmount := false, false, false
	for i, header := range headers {
		lower := strings.ToLower(header)

		if !foundAmount && (strings.Contains(lower, "amount") || strings.Contains(lower, "charge")) {
			cols.Amount = i
			foundAmount = true
		}
		if !foundDate && strings.Contains(lower, "date") {
			cols.Date = i
			foundDate = true
		}
		if !foundDesc && (strings.Contains(lower, "description") ||
			strings.Contains(lower, "merchant") ||
			strings.Contains(lower, "name")) {
			cols.Description = i
			foundDesc = true
		}
	}

	return cols
}

// ParseCSV extracts transactions from a headered CSV of unknown schema.
// Rows whose normalized amount is zero or implausibly large are skipped, as
// are rows the CSV decoder cannot parse; one bad line never discards the rest
// of the file. Positive-amount rows are force-labeled Income regardless of
// description; this rule is specific to the CSV path, where sign conventions
// are clean.
func ParseCSV(r io.Reader) ([]models.Transaction, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	headers, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("empty file")
		}
		return nil, fmt.Errorf("failed to read headers: %w", err)
	}

	cols := InferColumns(headers)

	var transactions []models.Transaction
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				continue
			}
			return nil, fmt.Errorf("error reading row: %w", err)
		}

		if isEmptyRow(row) {
			continue
		}

		amount := NormalizeAmount(field(row, cols.Amount))
		if !WithinAmountBounds(amount) {
			continue
		}

		description := CleanDescription(field(row, cols.Description))
		date := strings.TrimSpace(field(row, cols.Date))

		category := IncomeCategory
		if amount < 0 {
			category = DetectCategory(description)
		}
		service, _ := DetectService(description)

		transactions = append(transactions, models.Transaction{
			Date:        date,
			Description: description,
			Amount:      amount,
			Category:    category,
			Service:     service,
		})
	}

	return transactions, nil
}

// field returns the column at idx, or empty when the row is short.
func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// isEmptyRow checks if all fields in a row are empty.
func isEmptyRow(row []string) bool {
	for _, f := range row {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
