package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/elizabethaxley/astrobotany/internal/domain"
	"github.com/elizabethaxley/astrobotany/internal/item"
	"github.com/elizabethaxley/astrobotany/internal/repository"
)

// EnsureCatalog reconciles the items table with the in-code catalog at
// startup. The code is the source of truth; rows that are missing or
// stale (renamed item, price change) are upserted so reporting joins
// never disagree with what the game actually sells.
func EnsureCatalog(ctx context.Context, repo repository.Item, catalog *item.Catalog) error {
	stored, err := repo.GetAllItems(ctx)
	if err != nil {
		return fmt.Errorf("failed to read item table: %w", err)
	}

	byID := make(map[int]domain.Item, len(stored))
	for _, it := range stored {
		byID[it.ID] = it
	}

	synced := 0
	for _, it := range catalog.All() {
		if existing, ok := byID[it.ID]; ok && existing == it {
			continue
		}
		if err := repo.UpsertItem(ctx, it); err != nil {
			return fmt.Errorf("failed to sync item %q: %w", it.Name, err)
		}
		synced++
	}

	if synced > 0 {
		slog.Default().Info(LogMsgCatalogSynced, "synced", synced)
	}
	return nil
}
