package plant

import (
	"context"
	"fmt"
	"time"

	"github.com/elizabethaxley/astrobotany/internal/domain"
	"github.com/elizabethaxley/astrobotany/internal/growth"
	"github.com/elizabethaxley/astrobotany/internal/logger"
	"github.com/elizabethaxley/astrobotany/internal/repository"
)

// Harvest sends off a finished or dead plant and starts the next
// generation. The flow is two-phase: called without a confirmation it
// returns the exact phrase the owner must repeat; called with the
// matching phrase it banks the score bonus, bumps the generation and
// resets the plant to a fresh seed with a new flower color.
func (s *service) Harvest(ctx context.Context, userID, confirmation string) (*HarvestResult, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgHarvestCalled, "userID", userID)

	now := s.now()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	p, err := s.refreshLocked(ctx, tx, userID, now)
	if err != nil {
		return nil, err
	}
	if !p.Harvestable() {
		return nil, fmt.Errorf("%w: the plant must finish its lifecycle or die first", domain.ErrNotHarvestable)
	}

	phrase := p.HarvestPhrase()
	if confirmation == "" {
		if err := tx.Commit(ctx); err != nil {
			return nil, fmt.Errorf(ErrMsgCommitFailed, err)
		}
		return &HarvestResult{
			NeedsConfirmation: true,
			Prompt:            phrase,
			Message:           fmt.Sprintf(PromptHarvestFmt, phrase),
		}, nil
	}
	if confirmation != phrase {
		return nil, fmt.Errorf("%w: expected %q", domain.ErrConfirmationFailed, phrase)
	}

	bonus := growth.HarvestBonus(p)
	oldName := p.Name

	p.Score += bonus
	p.Generation++
	p.Growth = 0
	p.Stage = domain.StageSeed
	p.Dead = false
	p.WateredAt = now
	p.FertilizedUntil = time.Time{}
	p.Color = s.randomColor()

	if err := tx.UpdatePlant(ctx, *p); err != nil {
		return nil, fmt.Errorf(ErrMsgUpdatePlantFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitFailed, err)
	}

	s.publish(ctx, domain.EventTypePlantHarvested, domain.PlantHarvestedPayload{
		OwnerID:    userID,
		Generation: p.Generation,
		ScoreBonus: bonus,
		Timestamp:  now.Unix(),
	})

	return &HarvestResult{
		Message:    fmt.Sprintf(MsgHarvestFmt, oldName, p.Generation),
		ScoreBonus: bonus,
		Generation: p.Generation,
	}, nil
}
