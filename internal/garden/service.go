// Package garden implements the social layer: discovering other
// users' plants, neighborly watering and petal picking, and postcard
// mail. Neighborly actions always operate on the plant owner's record
// under the same transactional refresh discipline as owner actions.
package garden

import (
	"context"
	"fmt"
	"time"

	"github.com/elizabethaxley/astrobotany/internal/domain"
	"github.com/elizabethaxley/astrobotany/internal/event"
	"github.com/elizabethaxley/astrobotany/internal/growth"
	"github.com/elizabethaxley/astrobotany/internal/item"
	"github.com/elizabethaxley/astrobotany/internal/logger"
	"github.com/elizabethaxley/astrobotany/internal/repository"
)

// Service defines the interface for garden social operations
type Service interface {
	Visit(ctx context.Context, viewerID string) ([]domain.VisitEntry, error)
	WaterPlant(ctx context.Context, actorID, ownerID string) (string, error)
	PickPetal(ctx context.Context, actorID, ownerID string) (string, error)
	SendPostcard(ctx context.Context, fromUserID, toUserID, subject, body string) (string, error)
	Inbox(ctx context.Context, userID string) ([]domain.Postcard, error)
	ReadPostcard(ctx context.Context, userID string, postcardID int64) (*domain.Postcard, error)
	UnseenCount(ctx context.Context, userID string) (int, error)
}

type service struct {
	plantRepo repository.Plant
	userRepo  repository.User
	mailRepo  repository.Mail
	catalog   *item.Catalog
	eventBus  event.Bus
	now       func() time.Time
}

// NewService creates a new garden service
func NewService(plantRepo repository.Plant, userRepo repository.User, mailRepo repository.Mail, catalog *item.Catalog, eventBus event.Bus) Service {
	return &service{
		plantRepo: plantRepo,
		userRepo:  userRepo,
		mailRepo:  mailRepo,
		catalog:   catalog,
		eventBus:  eventBus,
		now:       time.Now,
	}
}

// Visit lists the gardens currently open to the viewer: living plants
// with a positive score that have been watered recently. The viewer's
// own plant is excluded.
func (s *service) Visit(ctx context.Context, viewerID string) ([]domain.VisitEntry, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgVisitCalled, "viewerID", viewerID)

	wateredSince := s.now().AddDate(0, 0, -domain.VisitRecencyDays)
	entries, err := s.plantRepo.ListVisitable(ctx, viewerID, wateredSince)
	if err != nil {
		return nil, fmt.Errorf("failed to list visitable gardens: %w", err)
	}
	return entries, nil
}

// WaterPlant waters another user's plant. The owner's plant is settled
// and its drought clock reset; the first rewarded watering per visitor
// per day also credits the owner's score. The reward ledger row is
// locked so concurrent waterings by the same visitor cannot
// double-reward.
func (s *service) WaterPlant(ctx context.Context, actorID, ownerID string) (string, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgWaterPlantCalled, "actorID", actorID, "ownerID", ownerID)

	if actorID == ownerID {
		return "", domain.ErrCannotVisitYourself
	}

	now := s.now()

	tx, err := s.plantRepo.BeginTx(ctx)
	if err != nil {
		return "", fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	p, err := s.refreshLocked(ctx, tx, ownerID, now)
	if err != nil {
		return "", err
	}
	if p.Dead {
		if err := tx.Commit(ctx); err != nil {
			return "", fmt.Errorf(ErrMsgCommitFailed, err)
		}
		return "", domain.ErrPlantDead
	}

	if now.Sub(p.WateredAt) < soakedWindow {
		if err := tx.Commit(ctx); err != nil {
			return "", fmt.Errorf(ErrMsgCommitFailed, err)
		}
		return MsgNeighborWaterSoaked, nil
	}

	p.WateredAt = now

	last, err := tx.GetLastNeighborWaterForUpdate(ctx, actorID, ownerID)
	if err != nil {
		return "", fmt.Errorf("failed to check neighbor watering ledger: %w", err)
	}
	rewarded := last == nil || now.Sub(*last) >= NeighborRewardInterval
	if rewarded {
		p.Score += domain.NeighborWaterReward
		if err := tx.UpsertNeighborWater(ctx, actorID, ownerID, now); err != nil {
			return "", fmt.Errorf("failed to record neighbor watering: %w", err)
		}
	}

	if err := tx.UpdatePlant(ctx, *p); err != nil {
		return "", fmt.Errorf(ErrMsgUpdatePlantFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return "", fmt.Errorf(ErrMsgCommitFailed, err)
	}

	s.publish(ctx, domain.EventTypePlantWatered, domain.PlantWateredPayload{
		OwnerID:   ownerID,
		ActorID:   actorID,
		Neighbor:  true,
		Timestamp: now.Unix(),
	})

	if rewarded {
		return fmt.Sprintf(MsgNeighborWaterRewarded, domain.NeighborWaterReward), nil
	}
	return MsgNeighborWaterPlain, nil
}

// PickPetal picks a petal from another user's flowering plant. The
// petal lands in the visitor's inventory and the owner's plant is
// scored for the attention.
func (s *service) PickPetal(ctx context.Context, actorID, ownerID string) (string, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgPickPetalCalled, "actorID", actorID, "ownerID", ownerID)

	if actorID == ownerID {
		return "", domain.ErrCannotVisitYourself
	}

	now := s.now()

	tx, err := s.plantRepo.BeginTx(ctx)
	if err != nil {
		return "", fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	p, err := s.refreshLocked(ctx, tx, ownerID, now)
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

	inv, err := tx.GetInventory(ctx, actorID)
	if err != nil {
		return "", fmt.Errorf(ErrMsgGetInventoryFailed, err)
	}
	inv.Add(petal.ID, 1)
	if err := tx.UpdateInventory(ctx, actorID, *inv); err != nil {
		return "", fmt.Errorf(ErrMsgUpdateInvFailed, err)
	}

	p.Score += domain.NeighborPetalReward
	if err := tx.UpdatePlant(ctx, *p); err != nil {
		return "", fmt.Errorf(ErrMsgUpdatePlantFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return "", fmt.Errorf(ErrMsgCommitFailed, err)
	}

	s.publish(ctx, domain.EventTypePetalPicked, domain.PetalPickedPayload{
		OwnerID:   ownerID,
		ActorID:   actorID,
		Color:     p.Color,
		Timestamp: now.Unix(),
	})

	return fmt.Sprintf(MsgNeighborPetalFmt, p.Color, domain.NeighborPetalReward), nil
}

// refreshLocked loads the owner's plant under a row lock, settles
// pending growth and persists the settled record.
func (s *service) refreshLocked(ctx context.Context, tx repository.PlantTx, ownerID string, now time.Time) (*domain.Plant, error) {
	p, err := tx.GetPlantForUpdate(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetPlantFailed, err)
	}

	growth.Refresh(p, now)
	if err := tx.UpdatePlant(ctx, *p); err != nil {
		return nil, fmt.Errorf(ErrMsgUpdatePlantFailed, err)
	}
	return p, nil
}

func (s *service) publish(ctx context.Context, eventType string, payload interface{}) {
	if s.eventBus == nil {
		return
	}
	_ = s.eventBus.Publish(ctx, event.Event{
		Version: event.EventSchemaVersion,
		Type:    event.Type(eventType),
		Payload: payload,
	})
}
