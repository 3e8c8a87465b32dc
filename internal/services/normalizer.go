package services

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// MaxTransactionAmount is the largest magnitude accepted as a real transaction.
// Anything larger is almost certainly a running balance line, not a charge.
const MaxTransactionAmount = 100000

var nonAmountChars = regexp.MustCompile(`[^0-9.\-]`)

// NormalizeAmount parses a raw amount token into a signed float64.
// Currency symbols, thousands separators and any other decoration are
// stripped; only digits, '.' and '-' survive. A token that still fails to
// parse degrades to 0, which callers treat as "not a transaction".
func NormalizeAmount(raw string) float64 {
	cleaned := nonAmountChars.ReplaceAllString(strings.TrimSpace(raw), "")
	if cleaned == "" {
		return 0
	}

	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0
	}
	return amount
}

// WithinAmountBounds reports whether a normalized amount is a plausible
// transaction: nonzero and at most MaxTransactionAmount in magnitude.
func WithinAmountBounds(amount float64) bool {
	return amount != 0 && math.Abs(amount) <= MaxTransactionAmount
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// CleanDescription collapses whitespace runs and trims the result.
func CleanDescription(raw string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(raw, " "))
}
