// Package user implements registration and account queries. A user,
// their plant and their starter inventory are created together; none
// of the three exists without the others.
package user

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/elizabethaxley/astrobotany/internal/domain"
	"github.com/elizabethaxley/astrobotany/internal/item"
	"github.com/elizabethaxley/astrobotany/internal/logger"
	"github.com/elizabethaxley/astrobotany/internal/repository"
)

// DefaultPlantName is the name a plant carries until its owner renames
// it.
const DefaultPlantName = "unnamed plant"

// Log message constants
const (
	LogMsgRegisterCalled = "Register called"
)

// Service defines the interface for user operations
type Service interface {
	Register(ctx context.Context, username string) (*domain.User, error)
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	ListInventory(ctx context.Context, userID string) ([]InventoryEntry, error)
}

// InventoryEntry is one owned item resolved against the catalog.
type InventoryEntry struct {
	Item     domain.Item `json:"item"`
	Quantity int         `json:"quantity"`
}

type service struct {
	repo    repository.User
	catalog *item.Catalog
	now     func() time.Time
	rnd     func() float64
}

// NewService creates a new user service
func NewService(repo repository.User, catalog *item.Catalog) Service {
	return &service{
		repo:    repo,
		catalog: catalog,
		now:     time.Now,
		rnd:     rand.Float64,
	}
}

// Register creates a user with a fresh seed and a starter inventory
// holding a single paper clip. The username must be printable ASCII
// and unique.
func (s *service) Register(ctx context.Context, username string) (*domain.User, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgRegisterCalled, "username", username)

	username = strings.TrimSpace(username)
	if err := validateUsername(username); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetUserByUsername(ctx, username); err == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUsernameTaken, username)
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	now := s.now()
	usr := &domain.User{
		ID:        uuid.NewString(),
		Username:  username,
		CreatedAt: now,
	}
	plant := &domain.Plant{
		UserID:      usr.ID,
		Name:        DefaultPlantName,
		Color:       s.randomColor(),
		Generation:  1,
		WateredAt:   now,
		RefreshedAt: now,
	}

	inventory := domain.Inventory{}
	inventory.Add(s.catalog.MustByName(domain.ItemPaperclip).ID, 1)

	if err := s.repo.CreateUser(ctx, usr, plant, inventory); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Info("User registered", "userID", usr.ID, "username", username)
	return usr, nil
}

// GetUser fetches a user by ID.
func (s *service) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	usr, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return usr, nil
}

// GetUserByUsername fetches a user by their unique username.
func (s *service) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	usr, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return usr, nil
}

// ListInventory returns the user's owned items resolved against the
// catalog, in catalog order.
func (s *service) ListInventory(ctx context.Context, userID string) ([]InventoryEntry, error) {
	inv, err := s.repo.GetInventory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}

	entries := make([]InventoryEntry, 0, len(inv.Slots))
	for _, it := range s.catalog.All() {
		if qty := inv.Quantity(it.ID); qty > 0 {
			entries = append(entries, InventoryEntry{Item: it, Quantity: qty})
		}
	}
	return entries, nil
}

// validateUsername enforces the registration rules: non-empty,
// printable ASCII, no spaces, at most MaxUsernameLength bytes.
func validateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("%w: username must not be empty", domain.ErrInvalidInput)
	}
	if len(username) > domain.MaxUsernameLength {
		return fmt.Errorf("%w: username must be at most %d characters", domain.ErrInvalidInput, domain.MaxUsernameLength)
	}
	for _, r := range username {
		if r <= ' ' || r > '~' {
			return fmt.Errorf("%w: username must be printable ASCII without spaces", domain.ErrInvalidInput)
		}
	}
	return nil
}

func (s *service) randomColor() string {
	i := int(s.rnd() * float64(len(domain.FlowerColors)))
	if i >= len(domain.FlowerColors) {
		i = len(domain.FlowerColors) - 1
	}
	return domain.FlowerColors[i]
}
