package services

import (
	"math"

	"github.com/subtally/subtally-api/internal/models"
)

// Organize folds an extracted transaction list into the final report.
// Transactions keep their source order; category buckets and the service list
// follow first-occurrence order. Total counts expenses only: positive-amount
// entries never contribute. Nothing is mutated and the report shares no
// structure with any accumulator.
func Organize(transactions []models.Transaction, accountType models.AccountType) *models.ProcessedData {
	if transactions == nil {
		transactions = []models.Transaction{}
	}

	categories := models.NewCategoryMap()
	services := []string{}
	seenServices := make(map[string]bool)

	total := 0.0
	for _, txn := range transactions {
		categories.Add(txn.Category, txn)

		if txn.Service != "" && !seenServices[txn.Service] {
			seenServices[txn.Service] = true
			services = append(services, txn.Service)
		}

		if txn.Amount < 0 {
			total += math.Abs(txn.Amount)
		}
	}

	return &models.ProcessedData{
		Total:                total,
		Transactions:         transactions,
		Categories:           categories,
		Services:             services,
		NumberOfTransactions: len(transactions),
		AccountType:          accountType,
	}
}
