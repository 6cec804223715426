package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/elizabethaxley/astrobotany/internal/domain"
)

// ItemRepository implements the item repository for PostgreSQL. The
// catalog is authored in code; this table is a synced copy kept for
// reporting joins.
type ItemRepository struct {
	db *pgxpool.Pool
}

// NewItemRepository creates a new ItemRepository
func NewItemRepository(db *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{db: db}
}

// GetAllItems returns every item row in ID order
func (r *ItemRepository) GetAllItems(ctx context.Context) ([]domain.Item, error) {
	query := `
		SELECT item_id, item_name, item_description, price, for_sale
		FROM items
		ORDER BY item_id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetItems, err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var it domain.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, &it.Price, &it.ForSale); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetItems, err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetItems, err)
	}
	return items, nil
}

// UpsertItem writes one catalog entry, keyed by its stable ID
func (r *ItemRepository) UpsertItem(ctx context.Context, item domain.Item) error {
	query := `
		INSERT INTO items (item_id, item_name, item_description, price, for_sale)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (item_id) DO UPDATE
		SET item_name = EXCLUDED.item_name,
			item_description = EXCLUDED.item_description,
			price = EXCLUDED.price,
			for_sale = EXCLUDED.for_sale
	`
	if _, err := r.db.Exec(ctx, query,
		item.ID, item.Name, item.Description, item.Price, item.ForSale); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertItem, err)
	}
	return nil
}
