package plant

import (
	"context"
	"fmt"

	"github.com/elizabethaxley/astrobotany/internal/domain"
	"github.com/elizabethaxley/astrobotany/internal/growth"
	"github.com/elizabethaxley/astrobotany/internal/logger"
	"github.com/elizabethaxley/astrobotany/internal/repository"
)

// Water resets the plant's drought clock. Watering a dead plant fails;
// watering again within MinWaterInterval is reported but has no
// effect, so the drought clock cannot be kept pinned by spamming.
func (s *service) Water(ctx context.Context, userID string) (string, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgWaterCalled, "userID", userID)

	now := s.now()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return "", fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	p, err := s.refreshLocked(ctx, tx, userID, now)
	if err != nil {
		return "", err
	}
	if p.Dead {
		// Persist the settled death even though the action fails.
		if err := tx.Commit(ctx); err != nil {
			return "", fmt.Errorf(ErrMsgCommitFailed, err)
		}
		return "", domain.ErrPlantDead
	}

	if now.Sub(p.WateredAt) < MinWaterInterval {
		if err := tx.Commit(ctx); err != nil {
			return "", fmt.Errorf(ErrMsgCommitFailed, err)
		}
		return MsgWaterDrowning, nil
	}

	wasThirsty := growth.WaterLevel(p, now) == 0
	p.WateredAt = now

	if err := tx.UpdatePlant(ctx, *p); err != nil {
		return "", fmt.Errorf(ErrMsgUpdatePlantFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return "", fmt.Errorf(ErrMsgCommitFailed, err)
	}

	s.publish(ctx, domain.EventTypePlantWatered, domain.PlantWateredPayload{
		OwnerID:   userID,
		ActorID:   userID,
		Timestamp: now.Unix(),
	})

	if wasThirsty {
		return MsgWaterRelief, nil
	}
	return MsgWaterHealthy, nil
}
