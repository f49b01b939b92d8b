// Package email provides email sending functionality.
package email

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/merchant-dashboard/backend/internal/application/adapter"
	"github.com/merchant-dashboard/backend/internal/domain/entity"
	domainerror "github.com/merchant-dashboard/backend/internal/domain/error"
)

const digestDateLayout = "Jan 2, 2006"

// Service handles email queueing operations.
type Service struct {
	queue adapter.EmailQueueRepository
	clock adapter.Clock
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository, clock adapter.Clock) *Service {
	return &Service{
		queue: queue,
		clock: clock,
	}
}

// QueueRevenueDigest queues a weekly revenue digest email.
// Template data is stored as display strings so it survives the JSON round trip unchanged.
func (s *Service) QueueRevenueDigest(ctx context.Context, input adapter.QueueRevenueDigestInput) error {
	weekRevenue := FormatMoney(input.WeekRevenue)
	change := FormatPercentChange(input.RevenueChange)
	subject := fmt.Sprintf("Your week: %s in revenue (%s)", weekRevenue, change)

	periodEnd := input.PeriodEnd
	periodStart := periodEnd.AddDate(0, 0, -7)

	templateData := map[string]any{
		"display_name":      input.DisplayName,
		"period_start":      periodStart.Format(digestDateLayout),
		"period_end":        periodEnd.Format(digestDateLayout),
		"week_revenue":      weekRevenue,
		"revenue_change":    change,
		"revenue_up":        strconv.FormatBool(input.RevenueChange >= 0),
		"total_revenue":     FormatMoney(input.TotalRevenue),
		"transaction_count": humanize.Comma(int64(input.TransactionCount)),
		"active_customers":  humanize.Comma(int64(input.ActiveCustomers)),
		"conversion_rate":   fmt.Sprintf("%.1f%%", input.ConversionRate),
		"dashboard_url":     input.DashboardURL,
	}

	job := entity.NewEmailJob(
		entity.TemplateRevenueDigest,
		input.RecipientEmail,
		input.RecipientName,
		subject,
		templateData,
		s.clock.Now(),
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue revenue digest email",
			err,
		)
	}

	return nil
}

// FormatMoney renders an amount as dollars with thousands separators, e.g. $1,234.56.
func FormatMoney(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}
	cents := rounded.Sub(rounded.Truncate(0)).Shift(2).IntPart()
	return fmt.Sprintf("%s$%s.%02d", sign, humanize.Comma(rounded.Truncate(0).IntPart()), cents)
}

// FormatPercentChange renders a percent change with an explicit sign, e.g. +12.5%.
func FormatPercentChange(change float64) string {
	if math.IsNaN(change) || math.IsInf(change, 0) {
		change = 0
	}
	rounded := math.Round(change*10) / 10
	if rounded == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%+.1f%%", rounded)
}

// Ensure Service implements adapter.EmailService.
var _ adapter.EmailService = (*Service)(nil)
