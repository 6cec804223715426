package plant

import (
	"context"
	"fmt"

	"github.com/elizabethaxley/astrobotany/internal/domain"
	"github.com/elizabethaxley/astrobotany/internal/logger"
	"github.com/elizabethaxley/astrobotany/internal/repository"
)

// Shake rattles the plant for loose items. Most shakes find nothing;
// sometimes a few coins fall out, and rarely a paper clip turns up in
// the soil.
func (s *service) Shake(ctx context.Context, userID string) (string, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgShakeCalled, "userID", userID)

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

	roll := s.rnd()
	if roll < shakeNothingWeight {
		if err := tx.Commit(ctx); err != nil {
			return "", fmt.Errorf(ErrMsgCommitFailed, err)
		}
		return MsgShakeNothing, nil
	}

	inv, err := tx.GetInventory(ctx, userID)
	if err != nil {
		return "", fmt.Errorf(ErrMsgGetInventoryFailed, err)
	}

	var message string
	if roll < shakeCoinWeight {
		coins := 1 + int(s.rnd()*float64(maxShakeCoins))
		if coins > maxShakeCoins {
			coins = maxShakeCoins
		}
		inv.Add(s.catalog.MustByName(domain.ItemCoin).ID, coins)
		message = fmt.Sprintf(MsgShakeCoinsFmt, coins)
	} else {
		inv.Add(s.catalog.MustByName(domain.ItemPaperclip).ID, 1)
		message = MsgShakePaperclip
	}

	if err := tx.UpdateInventory(ctx, userID, *inv); err != nil {
		return "", fmt.Errorf(ErrMsgUpdateInvFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return "", fmt.Errorf(ErrMsgCommitFailed, err)
	}

	s.publish(ctx, domain.EventTypePlantShaken, domain.PlantShakenPayload{
		OwnerID:   userID,
		Timestamp: now.Unix(),
	})

	return message, nil
}
