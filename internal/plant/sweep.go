package plant

import (
	"context"
	"fmt"
	"time"

	"github.com/elizabethaxley/astrobotany/internal/logger"
	"github.com/elizabethaxley/astrobotany/internal/repository"
)

// SettleStale settles growth for up to batchSize living plants whose
// last refresh is older than olderThan. Without it a plant abandoned by
// its owner would only die the next time somebody looked at it, which
// keeps ghosts on the garden and leaderboard.
func (s *service) SettleStale(ctx context.Context, olderThan time.Duration, batchSize int) (int, error) {
	now := s.now()

	ids, err := s.repo.ListStaleUserIDs(ctx, now.Add(-olderThan), batchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to list stale plants: %w", err)
	}

	log := logger.FromContext(ctx)
	settled := 0
	for _, id := range ids {
		if err := s.settleOne(ctx, id, now); err != nil {
			// One bad row must not starve the rest of the batch.
			log.Error(LogMsgSweepSettleFailed, "user_id", id, "error", err)
			continue
		}
		settled++
	}
	return settled, nil
}

func (s *service) settleOne(ctx context.Context, userID string, now time.Time) error {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if _, err := s.refreshLocked(ctx, tx, userID, now); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf(ErrMsgCommitFailed, err)
	}
	return nil
}

// SweepJob is the periodic settling pass, sized so a single run stays
// short even on a large garden.
type SweepJob struct {
	svc       Service
	olderThan time.Duration
	batchSize int
}

// NewSweepJob creates a sweep job with the given staleness cutoff and
// per-run batch limit.
func NewSweepJob(svc Service, olderThan time.Duration, batchSize int) *SweepJob {
	return &SweepJob{svc: svc, olderThan: olderThan, batchSize: batchSize}
}

// Process runs one sweep pass.
func (j *SweepJob) Process(ctx context.Context) error {
	settled, err := j.svc.SettleStale(ctx, j.olderThan, j.batchSize)
	if err != nil {
		return err
	}
	if settled > 0 {
		logger.FromContext(ctx).Info(LogMsgSweepCompleted, "settled", settled)
	}
	return nil
}
