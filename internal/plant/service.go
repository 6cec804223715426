// Package plant implements the owner-facing plant actions: observing,
// watering, fertilizing, shaking, petal searching, harvesting and
// renaming. All time-derived state is settled through the growth
// engine inside the same transaction that persists the action.
package plant

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/elizabethaxley/astrobotany/internal/domain"
	"github.com/elizabethaxley/astrobotany/internal/event"
	"github.com/elizabethaxley/astrobotany/internal/growth"
	"github.com/elizabethaxley/astrobotany/internal/item"
	"github.com/elizabethaxley/astrobotany/internal/repository"
)

// Service defines the interface for plant operations
type Service interface {
	Observe(ctx context.Context, userID string) (*Status, error)
	Info(ctx context.Context, userID string) (*Details, error)
	Water(ctx context.Context, userID string) (string, error)
	Fertilize(ctx context.Context, userID string) (string, error)
	Shake(ctx context.Context, userID string) (string, error)
	PickPetal(ctx context.Context, userID string) (string, error)
	Harvest(ctx context.Context, userID, confirmation string) (*HarvestResult, error)
	Rename(ctx context.Context, userID, name string) (string, error)
	SettleStale(ctx context.Context, olderThan time.Duration, batchSize int) (int, error)
}

// Status is a read-only snapshot of a plant's condition.
type Status struct {
	Name        string  `json:"name"`
	Stage       string  `json:"stage"`
	Color       string  `json:"color"`
	Dead        bool    `json:"dead"`
	WaterLevel  float64 `json:"water_level"`
	GrowthRate  float64 `json:"growth_rate"`
	Fertilized  bool    `json:"fertilized"`
	Score       int     `json:"score"`
	Generation  int     `json:"generation"`
	Observation string  `json:"observation"`
}

// Details is the numeric view of a plant: the figures behind the
// observation text, including the exact boost expiry.
type Details struct {
	Name         string     `json:"name"`
	Stage        string     `json:"stage"`
	Generation   int        `json:"generation"`
	GrowthRate   float64    `json:"growth_rate"`
	Fertilized   bool       `json:"fertilized"`
	BoostExpires *time.Time `json:"boost_expires,omitempty"`
	Score        int        `json:"score"`
}

// HarvestResult reports the outcome of a harvest attempt. When the
// caller has not yet confirmed, NeedsConfirmation is true and Prompt
// carries the exact phrase they must repeat.
type HarvestResult struct {
	Message           string `json:"message"`
	NeedsConfirmation bool   `json:"needs_confirmation"`
	Prompt            string `json:"prompt,omitempty"`
	ScoreBonus        int    `json:"score_bonus,omitempty"`
	Generation        int    `json:"generation,omitempty"`
}

type service struct {
	repo     repository.Plant
	catalog  *item.Catalog
	eventBus event.Bus
	now      func() time.Time
	rnd      func() float64
}

// NewService creates a new plant service
func NewService(repo repository.Plant, catalog *item.Catalog, eventBus event.Bus) Service {
	return &service{
		repo:     repo,
		catalog:  catalog,
		eventBus: eventBus,
		now:      time.Now,
		rnd:      rand.Float64,
	}
}

// Observe returns the plant's current condition, settling pending
// growth first so the snapshot reflects the present instant.
func (s *service) Observe(ctx context.Context, userID string) (*Status, error) {
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
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitFailed, err)
	}

	return &Status{
		Name:        p.Name,
		Stage:       p.Stage.String(),
		Color:       p.Color,
		Dead:        p.Dead,
		WaterLevel:  growth.WaterLevel(p, now),
		GrowthRate:  p.GrowthRate(now),
		Fertilized:  p.Fertilized(now),
		Score:       p.Score,
		Generation:  p.Generation,
		Observation: growth.Observation(p, now),
	}, nil
}

// Info returns the numeric view of the plant, settling pending growth
// first.
func (s *service) Info(ctx context.Context, userID string) (*Details, error) {
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
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitFailed, err)
	}

	d := &Details{
		Name:       p.Name,
		Stage:      p.Stage.String(),
		Generation: p.Generation,
		GrowthRate: p.GrowthRate(now),
		Fertilized: p.Fertilized(now),
		Score:      p.Score,
	}
	if p.Fertilized(now) {
		expires := p.FertilizedUntil
		d.BoostExpires = &expires
	}
	return d, nil
}

// Rename sets the plant's display name, truncated to the maximum
// length. The name is used in the harvest confirmation phrase.
func (s *service) Rename(ctx context.Context, userID, name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: name must not be empty", domain.ErrInvalidInput)
	}
	if runes := []rune(name); len(runes) > domain.MaxPlantNameLength {
		// Cut on a rune boundary so a multi-byte name is never split
		// into invalid UTF-8.
		name = string(runes[:domain.MaxPlantNameLength])
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return "", fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	p, err := s.refreshLocked(ctx, tx, userID, s.now())
	if err != nil {
		return "", err
	}

	p.Name = name
	if err := tx.UpdatePlant(ctx, *p); err != nil {
		return "", fmt.Errorf(ErrMsgUpdatePlantFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return "", fmt.Errorf(ErrMsgCommitFailed, err)
	}

	return fmt.Sprintf(MsgRenameFmt, name), nil
}

// refreshLocked loads the plant under a row lock, settles pending
// growth and persists the settled record. Callers that mutate further
// must call UpdatePlant again before commit.
func (s *service) refreshLocked(ctx context.Context, tx repository.PlantTx, userID string, now time.Time) (*domain.Plant, error) {
	p, err := tx.GetPlantForUpdate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetPlantFailed, err)
	}

	growth.Refresh(p, now)
	if err := tx.UpdatePlant(ctx, *p); err != nil {
		return nil, fmt.Errorf(ErrMsgUpdatePlantFailed, err)
	}
	return p, nil
}

// randomColor draws a flower color uniformly from the palette.
func (s *service) randomColor() string {
	i := int(s.rnd() * float64(len(domain.FlowerColors)))
	if i >= len(domain.FlowerColors) {
		i = len(domain.FlowerColors) - 1
	}
	return domain.FlowerColors[i]
}

func (s *service) publish(ctx context.Context, eventType string, payload interface{}) {
	if s.eventBus == nil {
		return
	}
	// Event delivery is best-effort; the action has already committed.
	_ = s.eventBus.Publish(ctx, event.Event{
		Version: event.EventSchemaVersion,
		Type:    event.Type(eventType),
		Payload: payload,
	})
}
