// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/merchant-dashboard/backend/internal/application/usecase/dashboard"
)

// OverviewResponse represents the response for the dashboard overview API.
type OverviewResponse struct {
	Data OverviewData `json:"data"`
}

// OverviewData represents the data section of the overview response.
type OverviewData struct {
	DisplayName        string                `json:"display_name"`
	Stats              TransactionStatsDTO   `json:"stats"`
	ActiveCustomers    int                   `json:"active_customers"`
	ConversionRate     float64               `json:"conversion_rate"`
	DailyRevenue       []DailyRevenueDTO     `json:"daily_revenue"`
	Changes            PeriodChangesDTO      `json:"changes"`
	RecentTransactions []TransactionResponse `json:"recent_transactions"`
	GeneratedAt        string                `json:"generated_at"`
}

// TransactionStatsDTO represents status counts and the completed amount.
type TransactionStatsDTO struct {
	Total       int    `json:"total"`
	Completed   int    `json:"completed"`
	Pending     int    `json:"pending"`
	Failed      int    `json:"failed"`
	Cancelled   int    `json:"cancelled"`
	TotalAmount string `json:"total_amount"`
}

// DailyRevenueDTO represents one day of the revenue chart.
type DailyRevenueDTO struct {
	Date    string `json:"date"`
	Revenue string `json:"revenue"`
}

// MoneyChangeDTO compares a monetary figure across two windows.
type MoneyChangeDTO struct {
	Current       string  `json:"current"`
	Previous      string  `json:"previous"`
	PercentChange float64 `json:"percent_change"`
}

// CountChangeDTO compares a count across two windows.
type CountChangeDTO struct {
	Current       int64   `json:"current"`
	Previous      int64   `json:"previous"`
	PercentChange float64 `json:"percent_change"`
}

// RateChangeDTO compares a percentage across two windows.
type RateChangeDTO struct {
	Current       float64 `json:"current"`
	Previous      float64 `json:"previous"`
	PercentChange float64 `json:"percent_change"`
}

// PeriodChangesDTO represents the current vs previous window comparison.
type PeriodChangesDTO struct {
	Revenue          MoneyChangeDTO `json:"revenue"`
	TransactionCount CountChangeDTO `json:"transaction_count"`
	ActiveCustomers  CountChangeDTO `json:"active_customers"`
	ConversionRate   RateChangeDTO  `json:"conversion_rate"`
}

// ToTransactionStatsDTO converts TransactionStats to its DTO.
func ToTransactionStatsDTO(stats dashboard.TransactionStats) TransactionStatsDTO {
	return TransactionStatsDTO{
		Total:       stats.Total,
		Completed:   stats.Completed,
		Pending:     stats.Pending,
		Failed:      stats.Failed,
		Cancelled:   stats.Cancelled,
		TotalAmount: stats.TotalAmount.StringFixed(2),
	}
}

// ToOverviewResponse converts a GetOverviewOutput to OverviewResponse DTO.
func ToOverviewResponse(output *dashboard.GetOverviewOutput) OverviewResponse {
	summary := output.Summary

	daily := make([]DailyRevenueDTO, len(summary.DailyRevenue))
	for i, point := range summary.DailyRevenue {
		daily[i] = DailyRevenueDTO{
			Date:    point.Day(),
			Revenue: point.Revenue.StringFixed(2),
		}
	}

	changes := summary.Changes
	return OverviewResponse{
		Data: OverviewData{
			DisplayName:     output.DisplayName,
			Stats:           ToTransactionStatsDTO(summary.Stats),
			ActiveCustomers: summary.ActiveCustomers,
			ConversionRate:  summary.ConversionRate,
			DailyRevenue:    daily,
			Changes: PeriodChangesDTO{
				Revenue: MoneyChangeDTO{
					Current:       changes.Revenue.Current.StringFixed(2),
					Previous:      changes.Revenue.Previous.StringFixed(2),
					PercentChange: changes.Revenue.PercentChange,
				},
				TransactionCount: toCountChange(changes.TransactionCount),
				ActiveCustomers:  toCountChange(changes.ActiveCustomers),
				ConversionRate: RateChangeDTO{
					Current:       changes.ConversionRate.Current.InexactFloat64(),
					Previous:      changes.ConversionRate.Previous.InexactFloat64(),
					PercentChange: changes.ConversionRate.PercentChange,
				},
			},
			RecentTransactions: ToTransactionResponses(output.RecentTransactions),
			GeneratedAt:        summary.GeneratedAt.UTC().Format(time.RFC3339),
		},
	}
}

func toCountChange(c dashboard.PeriodComparison) CountChangeDTO {
	return CountChangeDTO{
		Current:       c.Current.IntPart(),
		Previous:      c.Previous.IntPart(),
		PercentChange: c.PercentChange,
	}
}
