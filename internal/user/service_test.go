package user

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elizabethaxley/astrobotany/internal/domain"
	"github.com/elizabethaxley/astrobotany/internal/item"
	"github.com/elizabethaxley/astrobotany/internal/repository"
)

type fakeRepository struct {
	mu          sync.Mutex
	users       map[string]*domain.User
	plants      map[string]*domain.Plant
	inventories map[string]*domain.Inventory
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		users:       make(map[string]*domain.User),
		plants:      make(map[string]*domain.Plant),
		inventories: make(map[string]*domain.Inventory),
	}
}

func (f *fakeRepository) CreateUser(_ context.Context, user *domain.User, plant *domain.Plant, inventory domain.Inventory) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[user.ID] = user
	f.plants[user.ID] = plant
	f.inventories[user.ID] = &inventory
	return nil
}

func (f *fakeRepository) GetUserByID(_ context.Context, userID string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeRepository) GetUserByUsername(_ context.Context, username string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeRepository) GetInventory(_ context.Context, userID string) (*domain.Inventory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	inv, ok := f.inventories[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return inv, nil
}

func (f *fakeRepository) UpdateInventory(_ context.Context, userID string, inventory domain.Inventory) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inventories[userID] = &inventory
	return nil
}

func (f *fakeRepository) BeginTx(_ context.Context) (repository.UserTx, error) {
	return nil, errors.New("not implemented")
}

func newTestService(repo *fakeRepository) *service {
	svc := NewService(repo, item.NewCatalog()).(*service)
	svc.rnd = func() float64 { return 0.0 }
	return svc
}

func TestRegister_CreatesUserPlantAndStarterInventory(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo)

	usr, err := svc.Register(context.Background(), "alice")
	require.NoError(t, err)
	assert.NotEmpty(t, usr.ID)
	assert.Equal(t, "alice", usr.Username)

	p := repo.plants[usr.ID]
	require.NotNil(t, p)
	assert.Equal(t, DefaultPlantName, p.Name)
	assert.Equal(t, domain.StageSeed, p.Stage)
	assert.Equal(t, 1, p.Generation)
	assert.Contains(t, domain.FlowerColors, p.Color)

	paperclip := item.NewCatalog().MustByName(domain.ItemPaperclip)
	assert.Equal(t, 1, repo.inventories[usr.ID].Quantity(paperclip.ID))
}

func TestRegister_DuplicateUsername(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), "alice")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "alice")
	require.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestRegister_InvalidUsernames(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo)

	cases := []struct {
		name     string
		username string
	}{
		{"empty", ""},
		{"only spaces", "   "},
		{"too long", strings.Repeat("a", domain.MaxUsernameLength+1)},
		{"embedded space", "space cadet"},
		{"non-ascii", "émile"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tc.username)
			require.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestRegister_TrimsSurroundingWhitespace(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo)

	usr, err := svc.Register(context.Background(), "  bob  ")
	require.NoError(t, err)
	assert.Equal(t, "bob", usr.Username)
}

func TestListInventory_ResolvesCatalogOrder(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo)

	usr, err := svc.Register(context.Background(), "alice")
	require.NoError(t, err)

	catalog := item.NewCatalog()
	coin := catalog.MustByName(domain.ItemCoin)
	repo.inventories[usr.ID].Add(coin.ID, 12)

	entries, err := svc.ListInventory(context.Background(), usr.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Catalog order: paper clip registers before coin.
	assert.Equal(t, domain.ItemPaperclip, entries[0].Item.Name)
	assert.Equal(t, 1, entries[0].Quantity)
	assert.Equal(t, domain.ItemCoin, entries[1].Item.Name)
	assert.Equal(t, 12, entries[1].Quantity)
}

func TestGetUser_NotFound(t *testing.T) {
	svc := newTestService(newFakeRepository())
	_, err := svc.GetUser(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}
