package plant

import (
	"context"
	"fmt"

	"github.com/elizabethaxley/astrobotany/internal/domain"
	"github.com/elizabethaxley/astrobotany/internal/growth"
	"github.com/elizabethaxley/astrobotany/internal/logger"
	"github.com/elizabethaxley/astrobotany/internal/repository"
)

// Fertilize consumes one fertilizer from the owner's inventory and
// starts (or fails to start) the growth boost. One boost at a time:
// applying while a boost is active is rejected without consuming the
// item.
func (s *service) Fertilize(ctx context.Context, userID string) (string, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgFertilizeCalled, "userID", userID)

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
		if err := tx.Commit(ctx); err != nil {
			return "", fmt.Errorf(ErrMsgCommitFailed, err)
		}
		return "", domain.ErrPlantDead
	}
	if p.Fertilized(now) {
		return "", domain.ErrAlreadyBoosted
	}

	fertilizer := s.catalog.MustByName(domain.ItemFertilizer)

	inv, err := tx.GetInventory(ctx, userID)
	if err != nil {
		return "", fmt.Errorf(ErrMsgGetInventoryFailed, err)
	}
	if err := inv.Remove(fertilizer.ID, 1); err != nil {
		return "", err
	}
	if err := tx.UpdateInventory(ctx, userID, *inv); err != nil {
		return "", fmt.Errorf(ErrMsgUpdateInvFailed, err)
	}

	p.FertilizedUntil = now.Add(growth.FertilizerDuration)
	if err := tx.UpdatePlant(ctx, *p); err != nil {
		return "", fmt.Errorf(ErrMsgUpdatePlantFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return "", fmt.Errorf(ErrMsgCommitFailed, err)
	}

	s.publish(ctx, domain.EventTypePlantFertilized, domain.PlantFertilizedPayload{
		OwnerID:   userID,
		Timestamp: now.Unix(),
	})

	return MsgFertilized, nil
}
