package repository

import (
	"context"

	"github.com/elizabethaxley/astrobotany/internal/domain"
)

// User defines the interface for user and inventory persistence
type User interface {
	// CreateUser registers a user together with their plant and
	// starter inventory in a single transaction.
	CreateUser(ctx context.Context, user *domain.User, plant *domain.Plant, inventory domain.Inventory) error
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)

	GetInventory(ctx context.Context, userID string) (*domain.Inventory, error)
	UpdateInventory(ctx context.Context, userID string, inventory domain.Inventory) error

	BeginTx(ctx context.Context) (UserTx, error)
}

// UserTx defines the interface for inventory transactions
type UserTx interface {
	Tx
	GetInventory(ctx context.Context, userID string) (*domain.Inventory, error)
	UpdateInventory(ctx context.Context, userID string, inventory domain.Inventory) error

	// CreatePostcard inserts a postcard inside the transaction, so
	// consuming the postcard item and delivering the message commit or
	// roll back together.
	CreatePostcard(ctx context.Context, postcard *domain.Postcard) error
}
