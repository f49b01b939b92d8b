package dashboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/merchant-dashboard/backend/internal/application/adapter"
	"github.com/merchant-dashboard/backend/internal/domain/entity"
	domainerror "github.com/merchant-dashboard/backend/internal/domain/error"
)

// recentTransactionsCount is how many of the newest transactions accompany the overview.
const recentTransactionsCount = 5

// GetOverviewInput represents the input for building the dashboard overview.
type GetOverviewInput struct {
	MerchantID uuid.UUID
	Email      string
}

// GetOverviewOutput represents the dashboard overview.
type GetOverviewOutput struct {
	DisplayName        string
	Summary            *Summary
	RecentTransactions []*entity.Transaction
}

// GetOverviewUseCase builds the merchant's dashboard overview from a fresh snapshot.
type GetOverviewUseCase struct {
	transactionRepo adapter.TransactionRepository
	profileRepo     adapter.ProfileRepository
	aggregator      *Aggregator
	clock           adapter.Clock
	snapshotLimit   int
}

// NewGetOverviewUseCase creates a new GetOverviewUseCase instance.
func NewGetOverviewUseCase(
	transactionRepo adapter.TransactionRepository,
	profileRepo adapter.ProfileRepository,
	aggregator *Aggregator,
	clock adapter.Clock,
	snapshotLimit int,
) *GetOverviewUseCase {
	if snapshotLimit <= 0 || snapshotLimit > adapter.MaxSnapshotSize {
		snapshotLimit = adapter.MaxSnapshotSize
	}
	return &GetOverviewUseCase{
		transactionRepo: transactionRepo,
		profileRepo:     profileRepo,
		aggregator:      aggregator,
		clock:           clock,
		snapshotLimit:   snapshotLimit,
	}
}

// Execute fetches the snapshot and aggregates it against the clock's current time.
// Analytics errors are returned unchanged so callers can tell bad data from an empty dashboard.
func (uc *GetOverviewUseCase) Execute(ctx context.Context, input GetOverviewInput) (*GetOverviewOutput, error) {
	profile, err := uc.profileRepo.FindByUserID(ctx, input.MerchantID)
	if err != nil && !errors.Is(err, domainerror.ErrProfileNotFound) {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	transactions, err := uc.transactionRepo.ListRecent(ctx, adapter.TransactionFilter{
		MerchantID: input.MerchantID,
		Limit:      uc.snapshotLimit,
	})
	if err != nil {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeDashboardInternalError,
			"failed to load transactions",
			fmt.Errorf("%w: %w", domainerror.ErrSnapshotUnavailable, err),
		)
	}

	summary, err := uc.aggregator.Aggregate(transactions, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	recent := transactions
	if len(recent) > recentTransactionsCount {
		recent = recent[:recentTransactionsCount]
	}

	return &GetOverviewOutput{
		DisplayName:        entity.ResolveDisplayName(profile, input.Email),
		Summary:            summary,
		RecentTransactions: recent,
	}, nil
}
