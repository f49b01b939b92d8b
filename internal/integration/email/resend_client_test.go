package email

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merchant-dashboard/backend/internal/application/adapter"
	domainerror "github.com/merchant-dashboard/backend/internal/domain/error"
)

func newTestResendClient(t *testing.T, handler http.HandlerFunc) *ResendClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewResendClient("re_test", "Merchant Dashboard", "digest@shop.test")
	baseURL, err := url.Parse(srv.URL + "/")
	require.NoError(t, err)
	client.client.BaseURL = baseURL
	return client
}

func digestEmail() adapter.SendEmailInput {
	return adapter.SendEmailInput{
		To:      "ana@shop.test",
		Subject: "Your week: $150.00 in revenue (+50.0%)",
		HTML:    "<p>digest</p>",
		Text:    "digest",
		Tag:     "revenue_digest",
	}
}

func TestResendClient_Send(t *testing.T) {
	var got map[string]any
	client := newTestResendClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer re_test", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"email_123"}`))
	})

	result, err := client.Send(context.Background(), digestEmail())

	require.NoError(t, err)
	assert.Equal(t, "email_123", result.ResendID)
	assert.Equal(t, "Merchant Dashboard <digest@shop.test>", got["from"])
	assert.Equal(t, []any{"ana@shop.test"}, got["to"])
}

func TestResendClient_ClassifiesFailuresByStatus(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		message  string
		rejected bool
	}{
		{name: "validation error", status: http.StatusUnprocessableEntity, message: "The to field is missing", rejected: true},
		{name: "bad api key", status: http.StatusUnauthorized, message: "API key is invalid", rejected: true},
		{name: "forbidden sender", status: http.StatusForbidden, message: "domain not verified", rejected: true},
		{name: "rate limited", status: http.StatusTooManyRequests, message: "Too many requests, invalid burst", rejected: false},
		{name: "server error", status: http.StatusInternalServerError, message: "invalid upstream state", rejected: false},
		{name: "unavailable", status: http.StatusServiceUnavailable, message: "Service Unavailable", rejected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestResendClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_ = json.NewEncoder(w).Encode(map[string]any{
					"statusCode": tt.status,
					"message":    tt.message,
				})
			})

			_, err := client.Send(context.Background(), digestEmail())

			var emailErr *domainerror.EmailError
			require.ErrorAs(t, err, &emailErr)
			assert.Equal(t, tt.rejected, domainerror.IsDeliveryRejected(err))
			if tt.rejected {
				assert.Equal(t, domainerror.ErrCodeDeliveryRejected, emailErr.Code)
			} else {
				assert.Equal(t, domainerror.ErrCodeDeliveryRetryable, emailErr.Code)
			}
		})
	}
}

func TestResendClient_TransportFailureIsRetryable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL, err := url.Parse(srv.URL + "/")
	require.NoError(t, err)
	srv.Close()

	client := NewResendClient("re_test", "", "digest@shop.test")
	client.client.BaseURL = baseURL

	_, err = client.Send(context.Background(), digestEmail())

	var emailErr *domainerror.EmailError
	require.ErrorAs(t, err, &emailErr)
	assert.Equal(t, domainerror.ErrCodeDeliveryRetryable, emailErr.Code)
}

func TestLogSender_MarksDigestDelivered(t *testing.T) {
	result, err := NewLogSender().Send(context.Background(), digestEmail())

	require.NoError(t, err)
	assert.Regexp(t, `^log-`, result.ResendID)
}
