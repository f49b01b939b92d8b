// Package email provides email sending functionality via Resend.
package email

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/resend/resend-go/v2"

	"github.com/merchant-dashboard/backend/internal/application/adapter"
	domainerror "github.com/merchant-dashboard/backend/internal/domain/error"
)

const resendTimeout = 15 * time.Second

// ResendClient delivers rendered digests through the Resend API.
type ResendClient struct {
	client    *resend.Client
	fromName  string
	fromEmail string
}

// NewResendClient creates a new Resend client.
func NewResendClient(apiKey, fromName, fromEmail string) *ResendClient {
	httpClient := &http.Client{
		Timeout:   resendTimeout,
		Transport: statusRecorder{next: http.DefaultTransport},
	}
	return &ResendClient{
		client:    resend.NewCustomClient(httpClient, apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

// Send sends an email via Resend.
func (c *ResendClient) Send(ctx context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	from := c.fromEmail
	if c.fromName != "" {
		from = fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail)
	}

	params := &resend.SendEmailRequest{
		From:    from,
		To:      []string{input.To},
		Subject: input.Subject,
		Html:    input.HTML,
		Text:    input.Text,
	}
	if input.Tag != "" {
		params.Tags = []resend.Tag{{Name: "category", Value: input.Tag}}
	}

	status := new(int)
	resp, err := c.client.Emails.SendWithContext(withStatusSlot(ctx, status), params)
	if err != nil {
		if isRejected(*status) {
			return nil, domainerror.NewEmailError(
				domainerror.ErrCodeDeliveryRejected,
				fmt.Sprintf("resend rejected digest (HTTP %d)", *status),
				err,
			)
		}
		return nil, domainerror.NewEmailError(
			domainerror.ErrCodeDeliveryRetryable,
			"resend delivery failed",
			err,
		)
	}

	return &adapter.SendEmailResult{
		ResendID: resp.Id,
	}, nil
}

// isRejected reports whether Resend refused the request in a way a retry cannot fix.
// 429 and 5xx are retried, as are transport failures (status 0).
func isRejected(status int) bool {
	return status >= 400 && status < 500 && status != http.StatusTooManyRequests
}

type statusSlotKey struct{}

func withStatusSlot(ctx context.Context, status *int) context.Context {
	return context.WithValue(ctx, statusSlotKey{}, status)
}

// statusRecorder copies the response status into the slot carried by the request
// context. The Resend SDK flattens API failures into plain string errors.
type statusRecorder struct {
	next http.RoundTripper
}

func (s statusRecorder) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := s.next.RoundTrip(req)
	if resp != nil {
		if slot, ok := req.Context().Value(statusSlotKey{}).(*int); ok {
			*slot = resp.StatusCode
		}
	}
	return resp, err
}

var _ adapter.EmailSender = (*ResendClient)(nil)
