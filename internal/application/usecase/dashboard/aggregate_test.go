package dashboard

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/merchant-dashboard/backend/internal/domain/entity"
	domainerror "github.com/merchant-dashboard/backend/internal/domain/error"
)

func TestAggregator_Aggregate(t *testing.T) {
	aggregator := NewAggregator(DefaultWindowDays)

	t.Run("empty snapshot", func(t *testing.T) {
		summary, err := aggregator.Aggregate(nil, testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if summary.Stats.Total != 0 || !summary.Stats.TotalAmount.IsZero() {
			t.Errorf("expected zero stats, got %+v", summary.Stats)
		}
		if summary.ActiveCustomers != 0 {
			t.Errorf("expected 0 active customers, got %d", summary.ActiveCustomers)
		}
		if summary.ConversionRate != 0 {
			t.Errorf("expected 0 conversion rate, got %v", summary.ConversionRate)
		}
		if len(summary.DailyRevenue) != 7 {
			t.Fatalf("expected 7 revenue points, got %d", len(summary.DailyRevenue))
		}
		for _, point := range summary.DailyRevenue {
			if !point.Revenue.IsZero() {
				t.Errorf("expected zero revenue on %s, got %s", point.Day(), point.Revenue)
			}
		}
		changes := summary.Changes
		if changes.Revenue.PercentChange != 0 || changes.TransactionCount.PercentChange != 0 ||
			changes.ActiveCustomers.PercentChange != 0 || changes.ConversionRate.PercentChange != 0 {
			t.Errorf("expected all changes to be 0, got %+v", changes)
		}
		if !summary.GeneratedAt.Equal(testNow) {
			t.Errorf("expected generated at %s, got %s", testNow, summary.GeneratedAt)
		}
	})

	t.Run("single completed transaction now", func(t *testing.T) {
		txs := []*entity.Transaction{
			newTx(entity.TransactionStatusCompleted, "100.00", testNow, "cus_1"),
		}

		summary, err := aggregator.Aggregate(txs, testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if summary.Stats.Completed != 1 {
			t.Errorf("expected 1 completed, got %d", summary.Stats.Completed)
		}
		if !summary.Stats.TotalAmount.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected total amount 100.00, got %s", summary.Stats.TotalAmount)
		}
		if summary.ConversionRate != 100 {
			t.Errorf("expected conversion rate 100, got %v", summary.ConversionRate)
		}
		last := summary.DailyRevenue[len(summary.DailyRevenue)-1]
		if !last.Revenue.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected last point 100.00, got %s", last.Revenue)
		}
		for _, point := range summary.DailyRevenue[:len(summary.DailyRevenue)-1] {
			if !point.Revenue.IsZero() {
				t.Errorf("expected zero revenue on %s, got %s", point.Day(), point.Revenue)
			}
		}
	})

	t.Run("repeat customer is counted once", func(t *testing.T) {
		txs := []*entity.Transaction{
			newTx(entity.TransactionStatusCompleted, "10.00", testNow.Add(-time.Hour), "cus_1"),
			newTx(entity.TransactionStatusCompleted, "15.00", testNow.Add(-2*time.Hour), "cus_1"),
		}

		summary, err := aggregator.Aggregate(txs, testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.ActiveCustomers != 1 {
			t.Errorf("expected 1 active customer, got %d", summary.ActiveCustomers)
		}
	})

	t.Run("same snapshot and now produce identical summaries", func(t *testing.T) {
		txs := []*entity.Transaction{
			newTx(entity.TransactionStatusCompleted, "200.00", testNow.AddDate(0, 0, -10), "a"),
			newTx(entity.TransactionStatusCompleted, "300.00", testNow.AddDate(0, 0, -1), "b"),
			newTx(entity.TransactionStatusPending, "20.00", testNow.AddDate(0, 0, -1), "c"),
			newTx(entity.TransactionStatusFailed, "5.00", testNow, ""),
		}

		first, err := aggregator.Aggregate(txs, testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := aggregator.Aggregate(txs, testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(first, second) {
			t.Errorf("expected identical summaries:\nfirst:  %+v\nsecond: %+v", first, second)
		}
		if first.Changes.Revenue.PercentChange != 50 {
			t.Errorf("expected revenue change 50, got %v", first.Changes.Revenue.PercentChange)
		}
	})

	t.Run("malformed row fails the whole summary", func(t *testing.T) {
		txs := []*entity.Transaction{
			newTx(entity.TransactionStatusCompleted, "10.00", testNow, ""),
			newTx(entity.TransactionStatusCompleted, "10.00", time.Time{}, ""),
		}

		summary, err := aggregator.Aggregate(txs, testNow)
		if !errors.Is(err, domainerror.ErrMalformedTimestamp) {
			t.Errorf("expected ErrMalformedTimestamp, got %v", err)
		}
		if summary != nil {
			t.Errorf("expected no summary, got %+v", summary)
		}
	})
}

func TestNewAggregator(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{name: "explicit window", input: 14, expected: 14},
		{name: "zero falls back", input: 0, expected: DefaultWindowDays},
		{name: "negative falls back", input: -3, expected: DefaultWindowDays},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewAggregator(tt.input).WindowDays(); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}
