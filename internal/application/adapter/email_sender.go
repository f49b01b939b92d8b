// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
	Tag     string // provider-side category, e.g. the template type
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ResendID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// EmailService defines the interface for queueing emails.
type EmailService interface {
	// QueueRevenueDigest queues one weekly revenue digest email.
	QueueRevenueDigest(ctx context.Context, input QueueRevenueDigestInput) error
}

// QueueRevenueDigestInput represents the input for queueing a revenue digest.
// Values are raw numbers; formatting for display happens when the email is queued.
type QueueRevenueDigestInput struct {
	RecipientEmail   string
	RecipientName    string
	DisplayName      string
	PeriodEnd        time.Time
	TotalRevenue     decimal.Decimal
	WeekRevenue      decimal.Decimal
	RevenueChange    float64
	TransactionCount int
	ActiveCustomers  int
	ConversionRate   float64
	DashboardURL     string
}
