package email

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/merchant-dashboard/backend/internal/application/adapter"
)

// LogSender stands in for Resend when no API key is configured. Digests are
// logged and marked sent so the queue drains in local environments.
type LogSender struct{}

// NewLogSender creates a sender that only logs.
func NewLogSender() *LogSender {
	return &LogSender{}
}

// Send logs the digest instead of delivering it.
func (LogSender) Send(ctx context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	id := "log-" + uuid.NewString()
	slog.InfoContext(ctx, "Digest delivery skipped, no email provider configured",
		"to", input.To,
		"subject", input.Subject,
		"tag", input.Tag,
		"delivery_id", id,
	)
	return &adapter.SendEmailResult{ResendID: id}, nil
}

var _ adapter.EmailSender = LogSender{}
