package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/elizabethaxley/astrobotany/internal/domain"
	"github.com/elizabethaxley/astrobotany/internal/repository"
)

// UserRepository implements the user repository for PostgreSQL
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser inserts the user, their plant and their starter inventory
// in one transaction. A duplicate username surfaces as
// domain.ErrUsernameTaken.
func (r *UserRepository) CreateUser(ctx context.Context, user *domain.User, plant *domain.Plant, inventory domain.Inventory) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO users (user_id, username, created_at, updated_at)
		VALUES ($1, $2, $3, NOW())
	`
	if _, err := tx.Exec(ctx, query, user.ID, user.Username, user.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation {
			return fmt.Errorf("%w: %s", domain.ErrUsernameTaken, user.Username)
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertUser, err)
	}

	if err := insertPlant(ctx, tx, plant); err != nil {
		return err
	}

	if err := updateInventory(ctx, tx, user.ID, inventory); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

// GetUserByID fetches a user by their ID
func (r *UserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `
		SELECT user_id, username, created_at
		FROM users
		WHERE user_id = $1
	`
	var user domain.User
	err := r.db.QueryRow(ctx, query, userID).Scan(&user.ID, &user.Username, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUser, err)
	}
	return &user, nil
}

// GetUserByUsername fetches a user by their unique username
func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
		SELECT user_id, username, created_at
		FROM users
		WHERE username = $1
	`
	var user domain.User
	err := r.db.QueryRow(ctx, query, username).Scan(&user.ID, &user.Username, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUserByUsername, err)
	}
	return &user, nil
}

// GetInventory retrieves the user's inventory
func (r *UserRepository) GetInventory(ctx context.Context, userID string) (*domain.Inventory, error) {
	return getInventory(ctx, r.db, userID)
}

// UpdateInventory updates the user's inventory
func (r *UserRepository) UpdateInventory(ctx context.Context, userID string, inventory domain.Inventory) error {
	return updateInventory(ctx, r.db, userID, inventory)
}

// UserTx implements repository.UserTx
type UserTx struct {
	tx pgx.Tx
}

// BeginTx starts a new transaction
func (r *UserRepository) BeginTx(ctx context.Context) (repository.UserTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &UserTx{tx: tx}, nil
}

// Commit commits the transaction
func (t *UserTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *UserTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// GetInventory retrieves the user's inventory, locking the row for the
// duration of the transaction
func (t *UserTx) GetInventory(ctx context.Context, userID string) (*domain.Inventory, error) {
	return getInventoryForUpdate(ctx, t.tx, userID)
}

// UpdateInventory updates the user's inventory within the transaction
func (t *UserTx) UpdateInventory(ctx context.Context, userID string, inventory domain.Inventory) error {
	return updateInventory(ctx, t.tx, userID, inventory)
}

// CreatePostcard inserts a postcard within the transaction
func (t *UserTx) CreatePostcard(ctx context.Context, postcard *domain.Postcard) error {
	return insertPostcard(ctx, t.tx, postcard)
}
