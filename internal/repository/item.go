package repository

import (
	"context"

	"github.com/elizabethaxley/astrobotany/internal/domain"
)

// Item defines the interface for item catalog persistence. The catalog
// is authored in code; the database copy exists for reporting joins
// and is synced once at startup.
type Item interface {
	GetAllItems(ctx context.Context) ([]domain.Item, error)
	UpsertItem(ctx context.Context, item domain.Item) error
}
