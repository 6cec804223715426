package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/elizabethaxley/astrobotany/internal/domain"
)

// querier is the subset of pgx shared by pools and transactions, so
// the query helpers work inside and outside a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func getInventory(ctx context.Context, q querier, userID string) (*domain.Inventory, error) {
	return scanInventory(q.QueryRow(ctx,
		`SELECT inventory FROM user_inventory WHERE user_id = $1`, userID))
}

func getInventoryForUpdate(ctx context.Context, q querier, userID string) (*domain.Inventory, error) {
	return scanInventory(q.QueryRow(ctx,
		`SELECT inventory FROM user_inventory WHERE user_id = $1 FOR UPDATE`, userID))
}

func scanInventory(row pgx.Row) (*domain.Inventory, error) {
	var raw []byte
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetInventory, err)
	}

	var inv domain.Inventory
	if err := json.Unmarshal(raw, &inv); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseInventory, err)
	}
	return &inv, nil
}

func updateInventory(ctx context.Context, q querier, userID string, inventory domain.Inventory) error {
	raw, err := json.Marshal(inventory)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToEncodeInventory, err)
	}

	query := `
		INSERT INTO user_inventory (user_id, inventory, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET inventory = EXCLUDED.inventory, updated_at = NOW()
	`
	if _, err := q.Exec(ctx, query, userID, raw); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateInventory, err)
	}
	return nil
}
