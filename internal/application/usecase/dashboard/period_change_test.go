package dashboard

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/merchant-dashboard/backend/internal/domain/entity"
	domainerror "github.com/merchant-dashboard/backend/internal/domain/error"
)

func TestComputePeriodChange(t *testing.T) {
	currentDay := testNow.Add(-2 * 24 * time.Hour)
	previousDay := testNow.Add(-10 * 24 * time.Hour)

	t.Run("revenue grows fifty percent", func(t *testing.T) {
		txs := []*entity.Transaction{
			newTx(entity.TransactionStatusCompleted, "200.00", previousDay, "a"),
			newTx(entity.TransactionStatusCompleted, "300.00", currentDay, "a"),
		}

		changes, err := ComputePeriodChange(txs, testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if changes.Revenue.PercentChange != 50 {
			t.Errorf("expected revenue change 50, got %v", changes.Revenue.PercentChange)
		}
		if !changes.Revenue.Current.Equal(decimal.NewFromInt(300)) || !changes.Revenue.Previous.Equal(decimal.NewFromInt(200)) {
			t.Errorf("unexpected window values: %+v", changes.Revenue)
		}
	})

	t.Run("growth from zero is reported as zero", func(t *testing.T) {
		txs := []*entity.Transaction{
			newTx(entity.TransactionStatusCompleted, "150.00", currentDay, "a"),
		}

		changes, err := ComputePeriodChange(txs, testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if changes.Revenue.PercentChange != 0 {
			t.Errorf("expected revenue change 0, got %v", changes.Revenue.PercentChange)
		}
		if changes.TransactionCount.PercentChange != 0 ||
			changes.ActiveCustomers.PercentChange != 0 ||
			changes.ConversionRate.PercentChange != 0 {
			t.Errorf("expected every change to be 0 with an empty previous window, got %+v", changes)
		}
		if !changes.Revenue.Current.Equal(decimal.NewFromInt(150)) {
			t.Errorf("expected current revenue 150, got %s", changes.Revenue.Current)
		}
	})

	t.Run("revenue ignores non-completed while count includes them", func(t *testing.T) {
		txs := []*entity.Transaction{
			newTx(entity.TransactionStatusCompleted, "100.00", previousDay, "a"),
			newTx(entity.TransactionStatusCompleted, "50.00", currentDay, "a"),
			newTx(entity.TransactionStatusPending, "500.00", currentDay, "b"),
			newTx(entity.TransactionStatusFailed, "500.00", currentDay, "c"),
			newTx(entity.TransactionStatusCancelled, "500.00", currentDay, ""),
		}

		changes, err := ComputePeriodChange(txs, testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if changes.Revenue.PercentChange != -50 {
			t.Errorf("expected revenue change -50, got %v", changes.Revenue.PercentChange)
		}
		if changes.TransactionCount.PercentChange != 300 {
			t.Errorf("expected transaction count change 300, got %v", changes.TransactionCount.PercentChange)
		}
		if changes.ActiveCustomers.PercentChange != 200 {
			t.Errorf("expected active customers change 200, got %v", changes.ActiveCustomers.PercentChange)
		}
		// 100% -> 25% conversion
		if changes.ConversionRate.PercentChange != -75 {
			t.Errorf("expected conversion change -75, got %v", changes.ConversionRate.PercentChange)
		}
	})

	t.Run("window boundaries attribute each transaction exactly once", func(t *testing.T) {
		boundary := testNow.Add(-ComparisonWindow)
		txs := []*entity.Transaction{
			newTx(entity.TransactionStatusCompleted, "1.00", boundary, ""),
			newTx(entity.TransactionStatusCompleted, "2.00", boundary.Add(-time.Nanosecond), ""),
			newTx(entity.TransactionStatusCompleted, "4.00", testNow, ""),
			newTx(entity.TransactionStatusCompleted, "8.00", testNow.Add(-2*ComparisonWindow), ""),
			newTx(entity.TransactionStatusCompleted, "16.00", testNow.Add(-2*ComparisonWindow-time.Nanosecond), ""),
			newTx(entity.TransactionStatusCompleted, "32.00", testNow.Add(time.Second), ""),
		}

		changes, err := ComputePeriodChange(txs, testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !changes.Revenue.Current.Equal(decimal.NewFromInt(5)) {
			t.Errorf("expected current revenue 5 (boundary + now), got %s", changes.Revenue.Current)
		}
		if !changes.Revenue.Previous.Equal(decimal.NewFromInt(10)) {
			t.Errorf("expected previous revenue 10, got %s", changes.Revenue.Previous)
		}
		if !changes.TransactionCount.Current.Equal(decimal.NewFromInt(2)) ||
			!changes.TransactionCount.Previous.Equal(decimal.NewFromInt(2)) {
			t.Errorf("unexpected window counts: %+v", changes.TransactionCount)
		}
	})

	t.Run("active customers are distinct per window", func(t *testing.T) {
		txs := []*entity.Transaction{
			newTx(entity.TransactionStatusCompleted, "1.00", previousDay, "a"),
			newTx(entity.TransactionStatusCompleted, "1.00", previousDay, "a"),
			newTx(entity.TransactionStatusCompleted, "1.00", currentDay, "a"),
			newTx(entity.TransactionStatusCompleted, "1.00", currentDay, "b"),
		}

		changes, err := ComputePeriodChange(txs, testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !changes.ActiveCustomers.Previous.Equal(decimal.NewFromInt(1)) ||
			!changes.ActiveCustomers.Current.Equal(decimal.NewFromInt(2)) {
			t.Errorf("unexpected active customers: %+v", changes.ActiveCustomers)
		}
		if changes.ActiveCustomers.PercentChange != 100 {
			t.Errorf("expected 100, got %v", changes.ActiveCustomers.PercentChange)
		}
	})

	t.Run("invalid status fails the comparison", func(t *testing.T) {
		txs := []*entity.Transaction{newTx(entity.TransactionStatus("COMPLETED"), "1.00", currentDay, "")}

		_, err := ComputePeriodChange(txs, testNow)
		if !errors.Is(err, domainerror.ErrInvalidStatus) {
			t.Errorf("expected ErrInvalidStatus, got %v", err)
		}
	})
}

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name     string
		current  string
		previous string
		expected float64
	}{
		{name: "growth", current: "300", previous: "200", expected: 50},
		{name: "decline", current: "50", previous: "200", expected: -75},
		{name: "flat", current: "10", previous: "10", expected: 0},
		{name: "zero previous with growth", current: "150", previous: "0", expected: 0},
		{name: "both zero", current: "0", previous: "0", expected: 0},
		{name: "drop to zero", current: "0", previous: "80", expected: -100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PercentChange(decimal.RequireFromString(tt.current), decimal.RequireFromString(tt.previous))
			if got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}
