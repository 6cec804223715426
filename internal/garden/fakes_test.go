package garden

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/elizabethaxley/astrobotany/internal/domain"
	"github.com/elizabethaxley/astrobotany/internal/repository"
)

// fakePlantRepository is a stateful in-memory repository.Plant shared
// by the garden tests.
type fakePlantRepository struct {
	mu             sync.Mutex
	plants         map[string]*domain.Plant
	inventories    map[string]*domain.Inventory
	neighborWaters map[string]time.Time
}

func newFakePlantRepository() *fakePlantRepository {
	return &fakePlantRepository{
		plants:         make(map[string]*domain.Plant),
		inventories:    make(map[string]*domain.Inventory),
		neighborWaters: make(map[string]time.Time),
	}
}

func (f *fakePlantRepository) addPlant(p domain.Plant) {
	f.plants[p.UserID] = &p
	if _, ok := f.inventories[p.UserID]; !ok {
		f.inventories[p.UserID] = &domain.Inventory{}
	}
}

func (f *fakePlantRepository) GetPlantByUserID(_ context.Context, userID string) (*domain.Plant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.plants[userID]
	if !ok {
		return nil, domain.ErrPlantNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakePlantRepository) UpdatePlant(_ context.Context, plant domain.Plant) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.plants[plant.UserID] = &plant
	return nil
}

func (f *fakePlantRepository) ListVisitable(_ context.Context, viewerID string, wateredSince time.Time) ([]domain.VisitEntry, error) {
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

func (f *fakePlantRepository) GetDailyLeaderboard(_ context.Context, _ time.Time, _ int) ([]domain.LeaderboardEntry, error) {
	return nil, nil
}

func (f *fakePlantRepository) ListStaleUserIDs(_ context.Context, _ time.Time, _ int) ([]string, error) {
	return nil, nil
}

func (f *fakePlantRepository) BeginTx(_ context.Context) (repository.PlantTx, error) {
	return &fakePlantTx{repo: f}, nil
}

type fakePlantTx struct {
	repo   *fakePlantRepository
	closed bool
}

func (t *fakePlantTx) Commit(_ context.Context) error {
	if t.closed {
		return errors.New(domain.ErrMsgTxClosed)
	}
	t.closed = true
	return nil
}

func (t *fakePlantTx) Rollback(_ context.Context) error {
	if t.closed {
		return errors.New(domain.ErrMsgTxClosed)
	}
	t.closed = true
	return nil
}

func (t *fakePlantTx) GetPlantForUpdate(ctx context.Context, userID string) (*domain.Plant, error) {
	return t.repo.GetPlantByUserID(ctx, userID)
}

func (t *fakePlantTx) UpdatePlant(ctx context.Context, plant domain.Plant) error {
	return t.repo.UpdatePlant(ctx, plant)
}

func (t *fakePlantTx) GetInventory(_ context.Context, userID string) (*domain.Inventory, error) {
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

func (t *fakePlantTx) UpdateInventory(_ context.Context, userID string, inventory domain.Inventory) error {
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	t.repo.inventories[userID] = &inventory
	return nil
}

func (t *fakePlantTx) GetLastNeighborWaterForUpdate(_ context.Context, actorID, ownerID string) (*time.Time, error) {
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	ts, ok := t.repo.neighborWaters[actorID+"->"+ownerID]
	if !ok {
		return nil, nil
	}
	return &ts, nil
}

func (t *fakePlantTx) UpsertNeighborWater(_ context.Context, actorID, ownerID string, timestamp time.Time) error {
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	t.repo.neighborWaters[actorID+"->"+ownerID] = timestamp
	return nil
}

// fakeUserRepository backs the postcard flow: username lookup and the
// sender's inventory. Postcards created inside a transaction are
// staged and only land in the mail fake when the transaction commits.
type fakeUserRepository struct {
	mu          sync.Mutex
	users       map[string]*domain.User // keyed by ID
	inventories map[string]*domain.Inventory
	mail        *fakeMailRepository
	commitErr   error
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{
		users:       make(map[string]*domain.User),
		inventories: make(map[string]*domain.Inventory),
	}
}

func (f *fakeUserRepository) addUser(u domain.User) {
	f.users[u.ID] = &u
	if _, ok := f.inventories[u.ID]; !ok {
		f.inventories[u.ID] = &domain.Inventory{}
	}
}

func (f *fakeUserRepository) CreateUser(_ context.Context, user *domain.User, plant *domain.Plant, inventory domain.Inventory) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[user.ID] = user
	f.inventories[user.ID] = &inventory
	return nil
}

func (f *fakeUserRepository) GetUserByID(_ context.Context, userID string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepository) GetUserByUsername(_ context.Context, username string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepository) GetInventory(_ context.Context, userID string) (*domain.Inventory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	inv, ok := f.inventories[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *inv
	cp.Slots = append([]domain.InventorySlot(nil), inv.Slots...)
	return &cp, nil
}

func (f *fakeUserRepository) UpdateInventory(_ context.Context, userID string, inventory domain.Inventory) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inventories[userID] = &inventory
	return nil
}

func (f *fakeUserRepository) BeginTx(_ context.Context) (repository.UserTx, error) {
	return &fakeUserTx{repo: f}, nil
}

type fakeUserTx struct {
	repo   *fakeUserRepository
	staged []*domain.Postcard
	closed bool
}

func (t *fakeUserTx) Commit(ctx context.Context) error {
	if t.closed {
		return errors.New(domain.ErrMsgTxClosed)
	}
	t.closed = true
	if t.repo.commitErr != nil {
		return t.repo.commitErr
	}
	for _, pc := range t.staged {
		if err := t.repo.mail.deliver(ctx, pc); err != nil {
			return err
		}
	}
	return nil
}

func (t *fakeUserTx) Rollback(_ context.Context) error {
	if t.closed {
		return errors.New(domain.ErrMsgTxClosed)
	}
	t.closed = true
	return nil
}

func (t *fakeUserTx) GetInventory(ctx context.Context, userID string) (*domain.Inventory, error) {
	return t.repo.GetInventory(ctx, userID)
}

func (t *fakeUserTx) UpdateInventory(ctx context.Context, userID string, inventory domain.Inventory) error {
	return t.repo.UpdateInventory(ctx, userID, inventory)
}

func (t *fakeUserTx) CreatePostcard(_ context.Context, postcard *domain.Postcard) error {
	t.staged = append(t.staged, postcard)
	return nil
}

// fakeMailRepository stores postcards in memory.
type fakeMailRepository struct {
	mu     sync.Mutex
	nextID int64
	cards  []*domain.Postcard
}

func newFakeMailRepository() *fakeMailRepository {
	return &fakeMailRepository{nextID: 1}
}

func (f *fakeMailRepository) deliver(_ context.Context, postcard *domain.Postcard) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	postcard.ID = f.nextID
	f.nextID++
	cp := *postcard
	f.cards = append(f.cards, &cp)
	return nil
}

func (f *fakeMailRepository) ListInbox(_ context.Context, userID string) ([]domain.Postcard, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Postcard
	for i := len(f.cards) - 1; i >= 0; i-- {
		if f.cards[i].ToUserID == userID {
			out = append(out, *f.cards[i])
		}
	}
	return out, nil
}

func (f *fakeMailRepository) GetPostcard(_ context.Context, postcardID int64, toUserID string) (*domain.Postcard, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.cards {
		if c.ID == postcardID && c.ToUserID == toUserID {
			cp := *c
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("%w: id %d", domain.ErrMailNotFound, postcardID)
}

func (f *fakeMailRepository) MarkSeen(_ context.Context, postcardID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.cards {
		if c.ID == postcardID {
			c.IsSeen = true
			return nil
		}
	}
	return domain.ErrMailNotFound
}

func (f *fakeMailRepository) CountUnseen(_ context.Context, userID string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.cards {
		if c.ToUserID == userID && !c.IsSeen {
			n++
		}
	}
	return n, nil
}
