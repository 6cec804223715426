package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elizabethaxley/astrobotany/internal/domain"
	"github.com/elizabethaxley/astrobotany/internal/event"
	"github.com/elizabethaxley/astrobotany/internal/item"
	"github.com/elizabethaxley/astrobotany/internal/repository"
	"github.com/elizabethaxley/astrobotany/internal/session"
)

type fakeRepository struct {
	mu          sync.Mutex
	inventories map[string]*domain.Inventory
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{inventories: make(map[string]*domain.Inventory)}
}

func (f *fakeRepository) CreateUser(_ context.Context, user *domain.User, _ *domain.Plant, inventory domain.Inventory) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inventories[user.ID] = &inventory
	return nil
}

func (f *fakeRepository) GetUserByID(_ context.Context, _ string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (f *fakeRepository) GetUserByUsername(_ context.Context, _ string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (f *fakeRepository) GetInventory(_ context.Context, userID string) (*domain.Inventory, error) {
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

func (f *fakeRepository) UpdateInventory(_ context.Context, userID string, inventory domain.Inventory) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inventories[userID] = &inventory
	return nil
}

func (f *fakeRepository) BeginTx(_ context.Context) (repository.UserTx, error) {
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

func (t *fakeTx) GetInventory(ctx context.Context, userID string) (*domain.Inventory, error) {
	return t.repo.GetInventory(ctx, userID)
}

func (t *fakeTx) UpdateInventory(ctx context.Context, userID string, inventory domain.Inventory) error {
	return t.repo.UpdateInventory(ctx, userID, inventory)
}

func (t *fakeTx) CreatePostcard(_ context.Context, _ *domain.Postcard) error {
	return errors.New("not implemented")
}

type storeEnv struct {
	repo    *fakeRepository
	catalog *item.Catalog
	svc     Service
}

func newStoreEnv(t *testing.T) *storeEnv {
	t.Helper()
	env := &storeEnv{
		repo:    newFakeRepository(),
		catalog: item.NewCatalog(),
	}
	env.svc = NewService(env.repo, env.catalog, session.NewStore(16, time.Minute), event.NewMemoryBus())
	return env
}

func (e *storeEnv) itemID(name string) int {
	return e.catalog.MustByName(name).ID
}

func (e *storeEnv) giveCoins(userID string, n int) {
	coin := e.catalog.MustByName(domain.ItemCoin)
	inv := &domain.Inventory{}
	inv.Add(coin.ID, n)
	e.repo.inventories[userID] = inv
}

func TestBrowse_OnlyForSaleItems(t *testing.T) {
	env := newStoreEnv(t)

	items := env.svc.Browse(context.Background())
	require.Len(t, items, 2)
	for _, it := range items {
		assert.True(t, it.ForSale)
	}
}

func TestPurchase_FullFlow(t *testing.T) {
	env := newStoreEnv(t)
	env.giveCoins("u1", 100)

	quote, err := env.svc.StartPurchase(context.Background(), "u1", env.itemID(domain.ItemFertilizer))
	require.NoError(t, err)
	assert.Equal(t, 75, quote.Item.Price)
	assert.Equal(t, 100, quote.Balance)

	msg, err := env.svc.ConfirmPurchase(context.Background(), "u1", "yes")
	require.NoError(t, err)
	assert.Contains(t, msg, domain.ItemFertilizer)

	coin := env.catalog.MustByName(domain.ItemCoin)
	fertilizer := env.catalog.MustByName(domain.ItemFertilizer)
	assert.Equal(t, 25, env.repo.inventories["u1"].Quantity(coin.ID))
	assert.Equal(t, 1, env.repo.inventories["u1"].Quantity(fertilizer.ID))
}

func TestPurchase_AnswerVariants(t *testing.T) {
	env := newStoreEnv(t)
	env.giveCoins("u1", 100)

	// "Y" with surrounding space still confirms.
	_, err := env.svc.StartPurchase(context.Background(), "u1", env.itemID(domain.ItemPostcard))
	require.NoError(t, err)
	msg, err := env.svc.ConfirmPurchase(context.Background(), "u1", " Y ")
	require.NoError(t, err)
	assert.Contains(t, msg, domain.ItemPostcard)

	// Anything else cancels.
	_, err = env.svc.StartPurchase(context.Background(), "u1", env.itemID(domain.ItemPostcard))
	require.NoError(t, err)
	msg, err = env.svc.ConfirmPurchase(context.Background(), "u1", "nah")
	require.NoError(t, err)
	assert.Equal(t, MsgPurchaseCancelled, msg)

	postcard := env.catalog.MustByName(domain.ItemPostcard)
	assert.Equal(t, 1, env.repo.inventories["u1"].Quantity(postcard.ID))
}

func TestPurchase_QuoteIsConsumedOnce(t *testing.T) {
	env := newStoreEnv(t)
	env.giveCoins("u1", 100)

	_, err := env.svc.StartPurchase(context.Background(), "u1", env.itemID(domain.ItemPostcard))
	require.NoError(t, err)

	_, err = env.svc.ConfirmPurchase(context.Background(), "u1", "y")
	require.NoError(t, err)

	msg, err := env.svc.ConfirmPurchase(context.Background(), "u1", "y")
	require.NoError(t, err)
	assert.Equal(t, MsgNothingPending, msg)
}

func TestPurchase_InsufficientFundsAtQuote(t *testing.T) {
	env := newStoreEnv(t)
	env.giveCoins("u1", 10)

	_, err := env.svc.StartPurchase(context.Background(), "u1", env.itemID(domain.ItemFertilizer))
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)
}

func TestPurchase_FundsRecheckedAtConfirm(t *testing.T) {
	env := newStoreEnv(t)
	env.giveCoins("u1", 80)

	_, err := env.svc.StartPurchase(context.Background(), "u1", env.itemID(domain.ItemFertilizer))
	require.NoError(t, err)

	// Balance drops between quote and confirmation.
	env.giveCoins("u1", 5)

	_, err = env.svc.ConfirmPurchase(context.Background(), "u1", "y")
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)
}

func TestPurchase_NotForSale(t *testing.T) {
	env := newStoreEnv(t)
	env.giveCoins("u1", 100)

	_, err := env.svc.StartPurchase(context.Background(), "u1", env.itemID(domain.ItemPaperclip))
	require.ErrorIs(t, err, domain.ErrNotForSale)
}

func TestPurchase_UnknownItem(t *testing.T) {
	env := newStoreEnv(t)
	env.giveCoins("u1", 100)

	_, err := env.svc.StartPurchase(context.Background(), "u1", 999)
	require.ErrorIs(t, err, domain.ErrItemNotFound)
}
