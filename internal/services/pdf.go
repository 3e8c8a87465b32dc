package services

import (
	"regexp"
	"strings"

	"github.com/subtally/subtally-api/internal/models"
)

// pageBreakSentinel marks the end of the transaction listing in the primary
// statement layout; nothing after it is transaction data.
const pageBreakSentinel = "This Page Intentionally Left Blank"

var (
	// Transaction line: leading MM/DD date, any text, then a currency amount
	// with optional thousands separators and exactly two decimal digits.
	// The middle group is lazy, so the amount group binds to the first
	// amount-shaped token on the line.
	statementLinePattern = regexp.MustCompile(`^(\d{1,2}/\d{1,2})(.+?)(-?\$?\d{1,3}(?:,\d{3})*\.\d{2})`)

	pageNumberPattern  = regexp.MustCompile(`^Page \d+ of \d+$`)
	mangledPagePattern = regexp.MustCompile(`^\d+ \d+Pageof$`)
	bareHeaderPattern  = regexp.MustCompile(`(?i)^(DESCRIPTION|AMOUNT|BALANCE)$`)

	// Generic fallback tokens. Amounts and dates are located independently
	// and need not be adjacent or in any particular order on the line.
	genericAmountPattern = regexp.MustCompile(`\$?\d+\.\d{2}`)
	genericDatePattern   = regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{2,4}`)
)

// extractStrategy attempts to pull transactions out of extracted PDF text.
// An empty result means the strategy did not recognize the layout.
type extractStrategy func(text string) []models.Transaction

// pdfStrategies is the fixed strategy order: the bank-specific table layout
// first, then the generic line scan. The first non-empty result wins; partial
// results from two strategies are never blended.
var pdfStrategies = []extractStrategy{
	extractStatementLines,
	extractGenericLines,
}

// ExtractPDFText runs the strategy chain over extracted statement text and
// returns the first non-empty transaction list. Zero transactions is a valid
// outcome, not an error.
func ExtractPDFText(text string) []models.Transaction {
	for _, strategy := range pdfStrategies {
		if transactions := strategy(text); len(transactions) > 0 {
			return transactions
		}
	}
	return nil
}

// extractStatementLines parses the primary fixed-width statement layout:
// one transaction per line, date first, amount last. Header, balance and
// page-number noise is skipped; the scan stops entirely at the page-break
// sentinel. Sign is preserved as matched, for inflows and outflows alike.
func extractStatementLines(text string) []models.Transaction {
	var transactions []models.Transaction

	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimSpace(rawLine)

		if strings.Contains(line, pageBreakSentinel) {
			break
		}

		if line == "" ||
			(strings.Contains(line, "DATE") && strings.Contains(line, "DESCRIPTION")) ||
			strings.Contains(line, "Beginning Balance") ||
			pageNumberPattern.MatchString(line) ||
			mangledPagePattern.MatchString(line) {
			continue
		}

		match := statementLinePattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}

		description := CleanDescription(match[2])
		if len(description) < 3 || bareHeaderPattern.MatchString(description) {
			continue
		}

		amount := NormalizeAmount(match[3])
		if !WithinAmountBounds(amount) {
			continue
		}

		service, _ := DetectService(description)
		transactions = append(transactions, models.Transaction{
			Date:        match[1],
			Description: description,
			Amount:      amount,
			Category:    DetectCategory(description),
			Service:     service,
		})
	}

	return transactions
}

// extractGenericLines degrades gracefully for statement layouts the primary
// strategy does not recognize. Each line is scanned for the first
// amount-shaped token and the first date-shaped token; the description is
// whatever remains after removing every amount and date token.
func extractGenericLines(text string) []models.Transaction {
	var transactions []models.Transaction

	for _, line := range strings.Split(text, "\n") {
		amounts := genericAmountPattern.FindAllString(line, -1)
		if len(amounts) == 0 {
			continue
		}

		amount := NormalizeAmount(amounts[0])
		if !WithinAmountBounds(amount) {
			continue
		}

		description := genericAmountPattern.ReplaceAllString(line, "")
		description = genericDatePattern.ReplaceAllString(description, "")
		description = CleanDescription(description)
		if len(description) <= 3 {
			continue
		}

		date := ""
		if dates := genericDatePattern.FindAllString(line, -1); len(dates) > 0 {
			date = dates[0]
		}

		service, _ := DetectService(description)
		transactions = append(transactions, models.Transaction{
			Date:        date,
			Description: description,
			Amount:      amount,
			Category:    DetectCategory(description),
			Service:     service,
		})
	}

	return transactions
}
