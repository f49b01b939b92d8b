package dashboard

import (
	"time"

	"github.com/merchant-dashboard/backend/internal/domain/entity"
)

// Summary is the aggregate handed to presentation. It is rebuilt from scratch on every call.
type Summary struct {
	Stats           TransactionStats    `json:"stats"`
	ActiveCustomers int                 `json:"active_customers"`
	ConversionRate  float64             `json:"conversion_rate"`
	DailyRevenue    []DailyRevenuePoint `json:"daily_revenue"`
	Changes         PeriodChanges       `json:"changes"`
	GeneratedAt     time.Time           `json:"generated_at"`
}

// Aggregator computes dashboard summaries over a transaction snapshot.
type Aggregator struct {
	windowDays int
}

// NewAggregator creates an Aggregator producing a revenue series of windowDays points.
func NewAggregator(windowDays int) *Aggregator {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	return &Aggregator{windowDays: windowDays}
}

// WindowDays returns the length of the daily revenue series.
func (a *Aggregator) WindowDays() int {
	return a.windowDays
}

// Aggregate computes every dashboard metric for the snapshot relative to now.
func (a *Aggregator) Aggregate(transactions []*entity.Transaction, now time.Time) (*Summary, error) {
	stats, err := ComputeStats(transactions)
	if err != nil {
		return nil, err
	}

	series, err := BuildDailyRevenueSeries(transactions, now, a.windowDays)
	if err != nil {
		return nil, err
	}

	changes, err := ComputePeriodChange(transactions, now)
	if err != nil {
		return nil, err
	}

	return &Summary{
		Stats:           stats,
		ActiveCustomers: ComputeActiveCustomers(transactions),
		ConversionRate:  ComputeConversionRate(stats),
		DailyRevenue:    series,
		Changes:         changes,
		GeneratedAt:     now,
	}, nil
}
