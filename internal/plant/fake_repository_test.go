package plant

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/elizabethaxley/astrobotany/internal/domain"
	"github.com/elizabethaxley/astrobotany/internal/repository"
)

// fakeRepository is a stateful in-memory repository.Plant. Mutations
// inside a transaction apply immediately; tests only exercise single
// transactions so staging is not needed.
type fakeRepository struct {
	mu             sync.Mutex
	plants         map[string]*domain.Plant
	inventories    map[string]*domain.Inventory
	neighborWaters map[string]time.Time
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		plants:         make(map[string]*domain.Plant),
		inventories:    make(map[string]*domain.Inventory),
		neighborWaters: make(map[string]time.Time),
	}
}

func (f *fakeRepository) addPlant(p domain.Plant) {
	f.plants[p.UserID] = &p
	if _, ok := f.inventories[p.UserID]; !ok {
		f.inventories[p.UserID] = &domain.Inventory{}
	}
}

func (f *fakeRepository) GetPlantByUserID(_ context.Context, userID string) (*domain.Plant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.plants[userID]
	if !ok {
		return nil, domain.ErrPlantNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeRepository) UpdatePlant(_ context.Context, plant domain.Plant) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.plants[plant.UserID] = &plant
	return nil
}

func (f *fakeRepository) ListVisitable(_ context.Context, viewerID string, wateredSince time.Time) ([]domain.VisitEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var entries []domain.VisitEntry
	for id, p := range f.plants {
		if id == viewerID || p.Dead || p.Score <= 0 || p.WateredAt.Before(wateredSince) {
			continue
		}
		entries = append(entries, domain.VisitEntry{
			UserID:    id,
			PlantName: p.Name,
			Stage:     p.Stage,
			Score:     p.Score,
			WateredAt: p.WateredAt,
		})
	}
	return entries, nil
}

func (f *fakeRepository) GetDailyLeaderboard(_ context.Context, _ time.Time, _ int) ([]domain.LeaderboardEntry, error) {
	return nil, nil
}

func (f *fakeRepository) ListStaleUserIDs(_ context.Context, refreshedBefore time.Time, limit int) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var ids []string
	for id, p := range f.plants {
		if !p.Dead && p.RefreshedAt.Before(refreshedBefore) {
			ids = append(ids, id)
		}
	}
	if len(ids) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}

func (f *fakeRepository) BeginTx(_ context.Context) (repository.PlantTx, error) {
	return &fakeTx{repo: f}, nil
}

type fakeTx struct {
	repo   *fakeRepository
	closed bool
}

func (t *fakeTx) Commit(_ context.Context) error {
	if t.closed {
		return errors.New(domain.ErrMsgTxClosed)
	}
	t.closed = true
	return nil
}

func (t *fakeTx) Rollback(_ context.Context) error {
	if t.closed {
		return errors.New(domain.ErrMsgTxClosed)
	}
	t.closed = true
	return nil
}

func (t *fakeTx) GetPlantForUpdate(ctx context.Context, userID string) (*domain.Plant, error) {
	return t.repo.GetPlantByUserID(ctx, userID)
}

func (t *fakeTx) UpdatePlant(ctx context.Context, plant domain.Plant) error {
	return t.repo.UpdatePlant(ctx, plant)
}

func (t *fakeTx) GetInventory(_ context.Context, userID string) (*domain.Inventory, error) {
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	inv, ok := t.repo.inventories[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *inv
	cp.Slots = append([]domain.InventorySlot(nil), inv.Slots...)
	return &cp, nil
}

func (t *fakeTx) UpdateInventory(_ context.Context, userID string, inventory domain.Inventory) error {
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	t.repo.inventories[userID] = &inventory
	return nil
}

func (t *fakeTx) GetLastNeighborWaterForUpdate(_ context.Context, actorID, ownerID string) (*time.Time, error) {
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	ts, ok := t.repo.neighborWaters[neighborKey(actorID, ownerID)]
	if !ok {
		return nil, nil
	}
	return &ts, nil
}

func (t *fakeTx) UpsertNeighborWater(_ context.Context, actorID, ownerID string, timestamp time.Time) error {
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	t.repo.neighborWaters[neighborKey(actorID, ownerID)] = timestamp
	return nil
}

func neighborKey(actorID, ownerID string) string {
	return fmt.Sprintf("%s->%s", actorID, ownerID)
}
