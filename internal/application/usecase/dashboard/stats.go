// Package dashboard contains the merchant dashboard analytics and use cases.
package dashboard

import (
	"github.com/shopspring/decimal"

	"github.com/merchant-dashboard/backend/internal/domain/entity"
	domainerror "github.com/merchant-dashboard/backend/internal/domain/error"
)

// moneyPlaces is the number of decimal places monetary values are rounded to on output.
const moneyPlaces = 2

var hundred = decimal.NewFromInt(100)

// TransactionStats holds per-status counts and the settled total of a transaction set.
type TransactionStats struct {
	Total       int             `json:"total"`
	Completed   int             `json:"completed"`
	Pending     int             `json:"pending"`
	Failed      int             `json:"failed"`
	Cancelled   int             `json:"cancelled"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// ComputeStats partitions transactions by status and sums the completed amounts.
// A status outside the known enumeration fails the whole computation.
func ComputeStats(transactions []*entity.Transaction) (TransactionStats, error) {
	stats := TransactionStats{TotalAmount: decimal.Zero}

	for _, tx := range transactions {
		switch tx.Status {
		case entity.TransactionStatusCompleted:
			stats.Completed++
			stats.TotalAmount = stats.TotalAmount.Add(tx.Amount)
		case entity.TransactionStatusPending:
			stats.Pending++
		case entity.TransactionStatusFailed:
			stats.Failed++
		case entity.TransactionStatusCancelled:
			stats.Cancelled++
		default:
			return TransactionStats{}, domainerror.NewInvalidStatusError(tx.ID.String(), string(tx.Status))
		}
		stats.Total++
	}

	stats.TotalAmount = stats.TotalAmount.Round(moneyPlaces)
	return stats, nil
}

// ComputeActiveCustomers counts distinct customer IDs. Guest transactions are not counted.
func ComputeActiveCustomers(transactions []*entity.Transaction) int {
	customers := make(map[string]struct{})
	for _, tx := range transactions {
		if tx.HasCustomer() {
			customers[*tx.CustomerID] = struct{}{}
		}
	}
	return len(customers)
}

// ComputeConversionRate returns completed/total as a percentage.
// The denominator is floored at 1, so an empty set yields 0 rather than NaN.
func ComputeConversionRate(stats TransactionStats) float64 {
	total := stats.Total
	if total < 1 {
		total = 1
	}
	return float64(stats.Completed) / float64(total) * 100
}
