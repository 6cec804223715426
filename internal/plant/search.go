package plant

import (
	"context"
	"fmt"

	"github.com/elizabethaxley/astrobotany/internal/domain"
	"github.com/elizabethaxley/astrobotany/internal/logger"
	"github.com/elizabethaxley/astrobotany/internal/repository"
)

// PickPetal searches a flowering plant for a loose petal and adds it
// to the owner's inventory. Only flowering plants yield petals; the
// petal's color is the plant's flower color.
func (s *service) PickPetal(ctx context.Context, userID string) (string, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgPickPetalCalled, "userID", userID)

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
	if p.Stage != domain.StageFlowering {
		return "", fmt.Errorf("%w: only flowering plants shed petals", domain.ErrWrongStage)
	}

	petal := s.catalog.MustByName(domain.PetalItemName(p.Color))

	inv, err := tx.GetInventory(ctx, userID)
	if err != nil {
		return "", fmt.Errorf(ErrMsgGetInventoryFailed, err)
	}
	inv.Add(petal.ID, 1)
	if err := tx.UpdateInventory(ctx, userID, *inv); err != nil {
		return "", fmt.Errorf(ErrMsgUpdateInvFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return "", fmt.Errorf(ErrMsgCommitFailed, err)
	}

	s.publish(ctx, domain.EventTypePetalPicked, domain.PetalPickedPayload{
		OwnerID:   userID,
		ActorID:   userID,
		Color:     p.Color,
		Timestamp: now.Unix(),
	})

	return fmt.Sprintf(MsgPetalFmt, p.Color), nil
}
