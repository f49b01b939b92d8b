// Package email provides email sending functionality.
package email

import (
	"context"
	"log/slog"
	"time"

	"github.com/merchant-dashboard/backend/internal/application/adapter"
	"github.com/merchant-dashboard/backend/internal/application/usecase/digest"
)

// DefaultSentRetention is how long sent jobs stay in the queue table.
const DefaultSentRetention = 30 * 24 * time.Hour

// DigestRunner queues one round of weekly digests.
type DigestRunner interface {
	Execute(ctx context.Context) (*digest.QueueWeeklyDigestOutput, error)
}

// DigestScheduler periodically queues revenue digests and prunes delivered jobs.
type DigestScheduler struct {
	runner    DigestRunner
	queue     adapter.EmailQueueRepository
	clock     adapter.Clock
	interval  time.Duration
	retention time.Duration
}

// NewDigestScheduler creates a new digest scheduler.
func NewDigestScheduler(
	runner DigestRunner,
	queue adapter.EmailQueueRepository,
	clock adapter.Clock,
	interval time.Duration,
) *DigestScheduler {
	if interval <= 0 {
		interval = 7 * 24 * time.Hour
	}
	return &DigestScheduler{
		runner:    runner,
		queue:     queue,
		clock:     clock,
		interval:  interval,
		retention: DefaultSentRetention,
	}
}

// Start runs a round on every tick. It blocks until the context is cancelled.
// The first round happens one interval after start so restarts do not resend digests.
func (s *DigestScheduler) Start(ctx context.Context) {
	slog.Info("Digest scheduler started", "interval", s.interval)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("Digest scheduler shutting down")
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce queues one round of digests and removes sent jobs older than the retention.
func (s *DigestScheduler) RunOnce(ctx context.Context) {
	output, err := s.runner.Execute(ctx)
	if err != nil {
		slog.Error("Failed to queue weekly digests", "error", err)
	} else {
		slog.Info("Weekly digest round finished",
			"merchants", output.Merchants,
			"queued", output.Queued,
			"skipped", len(output.Skipped),
		)
	}

	cutoff := s.clock.Now().Add(-s.retention)
	deleted, err := s.queue.DeleteSentBefore(ctx, cutoff)
	if err != nil {
		slog.Error("Failed to prune sent email jobs", "error", err)
		return
	}
	if deleted > 0 {
		slog.Info("Pruned sent email jobs", "count", deleted, "cutoff", cutoff)
	}
}
