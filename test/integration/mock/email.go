package mock

import (
	"context"
	"fmt"
	"sync"

	"github.com/merchant-dashboard/backend/internal/application/adapter"
)

// EmailSender records every digest handed to it instead of calling Resend.
type EmailSender struct {
	mu   sync.Mutex
	sent []adapter.SendEmailInput
}

func NewEmailSender() *EmailSender {
	return &EmailSender{}
}

func (s *EmailSender) Send(_ context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, input)
	return &adapter.SendEmailResult{ResendID: fmt.Sprintf("mock-%d", len(s.sent))}, nil
}

// Sent returns a copy of the recorded emails in send order.
func (s *EmailSender) Sent() []adapter.SendEmailInput {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]adapter.SendEmailInput(nil), s.sent...)
}

func (s *EmailSender) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = nil
}
