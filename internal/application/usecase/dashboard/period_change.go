package dashboard

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/merchant-dashboard/backend/internal/domain/entity"
)

// ComparisonWindow is the length of each trailing window compared period over period.
const ComparisonWindow = 7 * 24 * time.Hour

// PeriodComparison holds a metric for the current and previous trailing windows.
type PeriodComparison struct {
	Current       decimal.Decimal `json:"current"`
	Previous      decimal.Decimal `json:"previous"`
	PercentChange float64         `json:"percent_change"`
}

// PeriodChanges holds the four week-over-week comparisons shown on the dashboard.
type PeriodChanges struct {
	Revenue          PeriodComparison `json:"revenue"`
	TransactionCount PeriodComparison `json:"transaction_count"`
	ActiveCustomers  PeriodComparison `json:"active_customers"`
	ConversionRate   PeriodComparison `json:"conversion_rate"`
}

// windowMetrics are the raw values computed for a single trailing window.
type windowMetrics struct {
	revenue         decimal.Decimal
	count           int
	activeCustomers int
	conversionRate  float64
}

// ComputePeriodChange compares the window [now-7d, now] against [now-14d, now-7d).
// A transaction created exactly at now-7d belongs to the current window.
func ComputePeriodChange(transactions []*entity.Transaction, now time.Time) (PeriodChanges, error) {
	if err := validateSnapshot(transactions); err != nil {
		return PeriodChanges{}, err
	}

	currentStart := now.Add(-ComparisonWindow)
	previousStart := now.Add(-2 * ComparisonWindow)

	var current, previous []*entity.Transaction
	for _, tx := range transactions {
		switch {
		case !tx.CreatedAt.Before(currentStart) && !tx.CreatedAt.After(now):
			current = append(current, tx)
		case !tx.CreatedAt.Before(previousStart) && tx.CreatedAt.Before(currentStart):
			previous = append(previous, tx)
		}
	}

	cur, err := computeWindowMetrics(current)
	if err != nil {
		return PeriodChanges{}, err
	}
	prev, err := computeWindowMetrics(previous)
	if err != nil {
		return PeriodChanges{}, err
	}

	return PeriodChanges{
		Revenue: NewPeriodComparison(cur.revenue, prev.revenue),
		TransactionCount: NewPeriodComparison(
			decimal.NewFromInt(int64(cur.count)),
			decimal.NewFromInt(int64(prev.count)),
		),
		ActiveCustomers: NewPeriodComparison(
			decimal.NewFromInt(int64(cur.activeCustomers)),
			decimal.NewFromInt(int64(prev.activeCustomers)),
		),
		ConversionRate: NewPeriodComparison(
			decimal.NewFromFloat(cur.conversionRate),
			decimal.NewFromFloat(prev.conversionRate),
		),
	}, nil
}

// computeWindowMetrics applies the whole-snapshot rules to a single window's subset.
func computeWindowMetrics(transactions []*entity.Transaction) (windowMetrics, error) {
	stats, err := ComputeStats(transactions)
	if err != nil {
		return windowMetrics{}, err
	}
	return windowMetrics{
		revenue:         stats.TotalAmount,
		count:           stats.Total,
		activeCustomers: ComputeActiveCustomers(transactions),
		conversionRate:  ComputeConversionRate(stats),
	}, nil
}

// NewPeriodComparison builds a comparison and its percent change.
func NewPeriodComparison(current, previous decimal.Decimal) PeriodComparison {
	return PeriodComparison{
		Current:       current,
		Previous:      previous,
		PercentChange: PercentChange(current, previous),
	}
}

// PercentChange returns (current-previous)/previous*100.
// When previous is not positive the change is reported as 0, even if current grew from zero.
func PercentChange(current, previous decimal.Decimal) float64 {
	if !previous.IsPositive() {
		return 0
	}
	return current.Sub(previous).Div(previous).Mul(hundred).InexactFloat64()
}
