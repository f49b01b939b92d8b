package digest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/merchant-dashboard/backend/internal/application/adapter"
	"github.com/merchant-dashboard/backend/internal/application/usecase/dashboard"
	"github.com/merchant-dashboard/backend/internal/domain/entity"
	domainerror "github.com/merchant-dashboard/backend/internal/domain/error"
)

var testNow = time.Date(2025, time.March, 15, 9, 0, 0, 0, time.UTC)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type profileRepoStub struct {
	subscribers []*entity.Profile
	err         error
}

func (r *profileRepoStub) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	return nil, domainerror.ErrProfileNotFound
}

func (r *profileRepoStub) Save(ctx context.Context, profile *entity.Profile) error { return nil }

func (r *profileRepoStub) ListDigestSubscribers(ctx context.Context) ([]*entity.Profile, error) {
	return r.subscribers, r.err
}

type transactionRepoStub struct {
	byMerchant map[uuid.UUID][]*entity.Transaction
}

func (r *transactionRepoStub) Create(ctx context.Context, tx *entity.Transaction) error { return nil }

func (r *transactionRepoStub) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	return nil, domainerror.ErrTransactionNotFound
}

func (r *transactionRepoStub) ListRecent(ctx context.Context, filter adapter.TransactionFilter) ([]*entity.Transaction, error) {
	return r.byMerchant[filter.MerchantID], nil
}

type emailServiceStub struct {
	queued []adapter.QueueRevenueDigestInput
	err    error
}

func (s *emailServiceStub) QueueRevenueDigest(ctx context.Context, input adapter.QueueRevenueDigestInput) error {
	if s.err != nil {
		return s.err
	}
	s.queued = append(s.queued, input)
	return nil
}

func completedTx(merchantID uuid.UUID, amount string, createdAt time.Time) *entity.Transaction {
	return &entity.Transaction{
		ID:         uuid.New(),
		MerchantID: merchantID,
		Amount:     decimal.RequireFromString(amount),
		Status:     entity.TransactionStatusCompleted,
		CreatedAt:  createdAt,
	}
}

func TestQueueWeeklyDigestUseCase_Execute(t *testing.T) {
	t.Run("queues one job per recipient", func(t *testing.T) {
		merchantID := uuid.New()
		profiles := &profileRepoStub{subscribers: []*entity.Profile{{
			UserID:           merchantID,
			Email:            "Owner@Shop.test",
			DisplayName:      "Corner Shop",
			DigestEnabled:    true,
			DigestRecipients: []string{"finance@shop.test", "owner@shop.test"},
		}}}
		transactions := &transactionRepoStub{byMerchant: map[uuid.UUID][]*entity.Transaction{
			merchantID: {
				completedTx(merchantID, "300.00", testNow.AddDate(0, 0, -1)),
				completedTx(merchantID, "200.00", testNow.AddDate(0, 0, -9)),
			},
		}}
		emails := &emailServiceStub{}

		uc := NewQueueWeeklyDigestUseCase(profiles, transactions, emails, dashboard.NewAggregator(7), fixedClock{now: testNow}, 100, "https://app.test")
		output, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Merchants != 1 || output.Queued != 2 || len(output.Skipped) != 0 {
			t.Fatalf("unexpected output: %+v", output)
		}
		if emails.queued[0].RecipientEmail != "owner@shop.test" || emails.queued[1].RecipientEmail != "finance@shop.test" {
			t.Errorf("unexpected recipients: %s, %s", emails.queued[0].RecipientEmail, emails.queued[1].RecipientEmail)
		}

		input := emails.queued[0]
		if input.DisplayName != "Corner Shop" {
			t.Errorf("expected display name Corner Shop, got %q", input.DisplayName)
		}
		if !input.TotalRevenue.Equal(decimal.NewFromInt(500)) {
			t.Errorf("expected total revenue 500, got %s", input.TotalRevenue)
		}
		if !input.WeekRevenue.Equal(decimal.NewFromInt(300)) {
			t.Errorf("expected week revenue 300, got %s", input.WeekRevenue)
		}
		if input.RevenueChange != 50 {
			t.Errorf("expected revenue change 50, got %v", input.RevenueChange)
		}
		if input.DashboardURL != "https://app.test/dashboard" {
			t.Errorf("unexpected dashboard url %q", input.DashboardURL)
		}
		if !input.PeriodEnd.Equal(testNow) {
			t.Errorf("expected period end %s, got %s", testNow, input.PeriodEnd)
		}
	})

	t.Run("skips merchants with bad data and continues", func(t *testing.T) {
		badMerchant := uuid.New()
		goodMerchant := uuid.New()
		profiles := &profileRepoStub{subscribers: []*entity.Profile{
			{UserID: badMerchant, Email: "bad@shop.test", DigestEnabled: true},
			{UserID: goodMerchant, Email: "good@shop.test", DigestEnabled: true},
		}}
		broken := completedTx(badMerchant, "10.00", testNow)
		broken.Status = entity.TransactionStatus("unknown")
		transactions := &transactionRepoStub{byMerchant: map[uuid.UUID][]*entity.Transaction{
			badMerchant:  {broken},
			goodMerchant: {completedTx(goodMerchant, "10.00", testNow)},
		}}
		emails := &emailServiceStub{}

		uc := NewQueueWeeklyDigestUseCase(profiles, transactions, emails, dashboard.NewAggregator(7), fixedClock{now: testNow}, 100, "https://app.test")
		output, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Queued != 1 || len(emails.queued) != 1 {
			t.Errorf("expected 1 queued digest, got %d", output.Queued)
		}
		if len(output.Skipped) != 1 || output.Skipped[0].MerchantID != badMerchant {
			t.Fatalf("expected bad merchant to be skipped, got %+v", output.Skipped)
		}
		if !errors.Is(output.Skipped[0].Reason, domainerror.ErrInvalidStatus) {
			t.Errorf("expected ErrInvalidStatus, got %v", output.Skipped[0].Reason)
		}
		if emails.queued[0].DisplayName != "good" {
			t.Errorf("expected e-mail local part as display name, got %q", emails.queued[0].DisplayName)
		}
	})

	t.Run("queue failure marks the merchant skipped", func(t *testing.T) {
		merchantID := uuid.New()
		profiles := &profileRepoStub{subscribers: []*entity.Profile{{UserID: merchantID, Email: "a@shop.test", DigestEnabled: true}}}
		emails := &emailServiceStub{err: errors.New("queue down")}

		uc := NewQueueWeeklyDigestUseCase(profiles, &transactionRepoStub{}, emails, dashboard.NewAggregator(7), fixedClock{now: testNow}, 100, "")
		output, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Skipped) != 1 || output.Queued != 0 {
			t.Errorf("unexpected output: %+v", output)
		}
	})

	t.Run("subscriber lookup failure aborts the run", func(t *testing.T) {
		lookupErr := errors.New("db down")
		uc := NewQueueWeeklyDigestUseCase(&profileRepoStub{err: lookupErr}, &transactionRepoStub{}, &emailServiceStub{}, dashboard.NewAggregator(7), fixedClock{now: testNow}, 100, "")

		_, err := uc.Execute(context.Background())
		if !errors.Is(err, lookupErr) {
			t.Errorf("expected lookup error, got %v", err)
		}
	})
}
