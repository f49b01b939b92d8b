// Package digest contains the weekly revenue digest use case.
package digest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/merchant-dashboard/backend/internal/application/adapter"
	"github.com/merchant-dashboard/backend/internal/application/usecase/dashboard"
	"github.com/merchant-dashboard/backend/internal/domain/entity"
)

// SkippedMerchant records a subscriber that received no digest in a run.
type SkippedMerchant struct {
	MerchantID uuid.UUID
	Reason     error
}

// QueueWeeklyDigestOutput summarises one digest run.
type QueueWeeklyDigestOutput struct {
	Merchants int
	Queued    int
	Skipped   []SkippedMerchant
}

// QueueWeeklyDigestUseCase queues a revenue digest e-mail for every subscribed merchant.
type QueueWeeklyDigestUseCase struct {
	profileRepo     adapter.ProfileRepository
	transactionRepo adapter.TransactionRepository
	emailService    adapter.EmailService
	aggregator      *dashboard.Aggregator
	clock           adapter.Clock
	snapshotLimit   int
	dashboardURL    string
}

// NewQueueWeeklyDigestUseCase creates a new QueueWeeklyDigestUseCase instance.
func NewQueueWeeklyDigestUseCase(
	profileRepo adapter.ProfileRepository,
	transactionRepo adapter.TransactionRepository,
	emailService adapter.EmailService,
	aggregator *dashboard.Aggregator,
	clock adapter.Clock,
	snapshotLimit int,
	appBaseURL string,
) *QueueWeeklyDigestUseCase {
	if snapshotLimit <= 0 || snapshotLimit > adapter.MaxSnapshotSize {
		snapshotLimit = adapter.MaxSnapshotSize
	}
	return &QueueWeeklyDigestUseCase{
		profileRepo:     profileRepo,
		transactionRepo: transactionRepo,
		emailService:    emailService,
		aggregator:      aggregator,
		clock:           clock,
		snapshotLimit:   snapshotLimit,
		dashboardURL:    appBaseURL + "/dashboard",
	}
}

// Execute runs one digest pass. A merchant whose snapshot cannot be loaded or aggregated
// is skipped and reported; the remaining merchants still get their digest.
func (uc *QueueWeeklyDigestUseCase) Execute(ctx context.Context) (*QueueWeeklyDigestOutput, error) {
	profiles, err := uc.profileRepo.ListDigestSubscribers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list digest subscribers: %w", err)
	}

	output := &QueueWeeklyDigestOutput{Merchants: len(profiles)}
	now := uc.clock.Now()

	for _, profile := range profiles {
		if err := ctx.Err(); err != nil {
			return output, err
		}

		queued, err := uc.queueForProfile(ctx, profile, now)
		output.Queued += queued
		if err != nil {
			slog.Warn("Skipping weekly digest for merchant",
				"merchantID", profile.UserID,
				"error", err,
			)
			output.Skipped = append(output.Skipped, SkippedMerchant{MerchantID: profile.UserID, Reason: err})
		}
	}

	slog.Info("Weekly digest run finished",
		"merchants", output.Merchants,
		"queued", output.Queued,
		"skipped", len(output.Skipped),
		"now", now,
	)

	return output, nil
}

func (uc *QueueWeeklyDigestUseCase) queueForProfile(ctx context.Context, profile *entity.Profile, now time.Time) (int, error) {
	transactions, err := uc.transactionRepo.ListRecent(ctx, adapter.TransactionFilter{
		MerchantID: profile.UserID,
		Limit:      uc.snapshotLimit,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to load transactions: %w", err)
	}

	summary, err := uc.aggregator.Aggregate(transactions, now)
	if err != nil {
		return 0, err
	}

	displayName := entity.ResolveDisplayName(profile, profile.Email)
	queued := 0
	for _, address := range profile.DigestAddresses() {
		err := uc.emailService.QueueRevenueDigest(ctx, adapter.QueueRevenueDigestInput{
			RecipientEmail:   address,
			RecipientName:    displayName,
			DisplayName:      displayName,
			PeriodEnd:        summary.GeneratedAt,
			TotalRevenue:     summary.Stats.TotalAmount,
			WeekRevenue:      summary.Changes.Revenue.Current,
			RevenueChange:    summary.Changes.Revenue.PercentChange,
			TransactionCount: summary.Stats.Total,
			ActiveCustomers:  summary.ActiveCustomers,
			ConversionRate:   summary.ConversionRate,
			DashboardURL:     uc.dashboardURL,
		})
		if err != nil {
			return queued, fmt.Errorf("failed to queue digest for %s: %w", address, err)
		}
		queued++
	}

	return queued, nil
}
