package repository

import (
	"context"
	"time"

	"github.com/elizabethaxley/astrobotany/internal/domain"
)

// Plant defines the interface for plant persistence and the garden
// queries derived from plant records.
type Plant interface {
	GetPlantByUserID(ctx context.Context, userID string) (*domain.Plant, error)
	UpdatePlant(ctx context.Context, plant domain.Plant) error

	// ListVisitable returns the plants discoverable by a viewer:
	// excludes the viewer's own plant, dead plants, plants with a
	// non-positive score, and plants not watered since wateredSince.
	ListVisitable(ctx context.Context, viewerID string, wateredSince time.Time) ([]domain.VisitEntry, error)

	// GetDailyLeaderboard ranks plants by score descending, ties
	// broken by earliest watering, restricted to plants watered since
	// the given day boundary. Read-only.
	GetDailyLeaderboard(ctx context.Context, since time.Time, limit int) ([]domain.LeaderboardEntry, error)

	// ListStaleUserIDs returns owners of living plants whose state was
	// last settled before the cutoff, oldest first.
	ListStaleUserIDs(ctx context.Context, refreshedBefore time.Time, limit int) ([]string, error)

	BeginTx(ctx context.Context) (PlantTx, error)
}

// PlantTx groups the mutations a single garden action performs so they
// commit atomically: the plant record, the participating inventories,
// and the once-per-day neighbor-watering ledger.
type PlantTx interface {
	Tx
	// GetPlantForUpdate locks the plant row for the duration of the
	// transaction.
	GetPlantForUpdate(ctx context.Context, userID string) (*domain.Plant, error)
	UpdatePlant(ctx context.Context, plant domain.Plant) error

	GetInventory(ctx context.Context, userID string) (*domain.Inventory, error)
	UpdateInventory(ctx context.Context, userID string, inventory domain.Inventory) error

	// GetLastNeighborWaterForUpdate returns when the actor last earned
	// the neighbor-watering reward on the owner's plant, locking the
	// pair so concurrent waterings cannot double-reward.
	GetLastNeighborWaterForUpdate(ctx context.Context, actorID, ownerID string) (*time.Time, error)
	UpsertNeighborWater(ctx context.Context, actorID, ownerID string, timestamp time.Time) error
}
