package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/elizabethaxley/astrobotany/internal/domain"
	"github.com/elizabethaxley/astrobotany/internal/repository"
)

// PlantRepository implements the plant repository for PostgreSQL
type PlantRepository struct {
	db *pgxpool.Pool
}

// NewPlantRepository creates a new PlantRepository
func NewPlantRepository(db *pgxpool.Pool) *PlantRepository {
	return &PlantRepository{db: db}
}

const plantColumns = `user_id, name, color, growth, stage, dead,
	watered_at, fertilized_until, score, generation, refreshed_at, updated_at`

func scanPlant(row pgx.Row) (*domain.Plant, error) {
	var p domain.Plant
	var fertilizedUntil *time.Time
	err := row.Scan(&p.UserID, &p.Name, &p.Color, &p.Growth, &p.Stage, &p.Dead,
		&p.WateredAt, &fertilizedUntil, &p.Score, &p.Generation, &p.RefreshedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPlantNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPlant, err)
	}
	if fertilizedUntil != nil {
		p.FertilizedUntil = *fertilizedUntil
	}
	return &p, nil
}

func insertPlant(ctx context.Context, q querier, p *domain.Plant) error {
	query := `
		INSERT INTO plants (user_id, name, color, growth, stage, dead,
			watered_at, fertilized_until, score, generation, refreshed_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
	`
	_, err := q.Exec(ctx, query, p.UserID, p.Name, p.Color, p.Growth, p.Stage, p.Dead,
		p.WateredAt, nullableTime(p.FertilizedUntil), p.Score, p.Generation, p.RefreshedAt)
	if err != nil {
		return fmt.Errorf("failed to insert plant: %w", err)
	}
	return nil
}

func updatePlant(ctx context.Context, q querier, p domain.Plant) error {
	query := `
		UPDATE plants
		SET name = $2, color = $3, growth = $4, stage = $5, dead = $6,
			watered_at = $7, fertilized_until = $8, score = $9,
			generation = $10, refreshed_at = $11, updated_at = NOW()
		WHERE user_id = $1
	`
	tag, err := q.Exec(ctx, query, p.UserID, p.Name, p.Color, p.Growth, p.Stage, p.Dead,
		p.WateredAt, nullableTime(p.FertilizedUntil), p.Score, p.Generation, p.RefreshedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdatePlant, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlantNotFound
	}
	return nil
}

// nullableTime maps the zero time to NULL so "no fertilizer boost"
// does not persist as year one.
func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// GetPlantByUserID fetches a user's plant
func (r *PlantRepository) GetPlantByUserID(ctx context.Context, userID string) (*domain.Plant, error) {
	return scanPlant(r.db.QueryRow(ctx,
		`SELECT `+plantColumns+` FROM plants WHERE user_id = $1`, userID))
}

// UpdatePlant persists a plant record
func (r *PlantRepository) UpdatePlant(ctx context.Context, plant domain.Plant) error {
	return updatePlant(ctx, r.db, plant)
}

// ListVisitable returns the plants a viewer may visit: alive, scored,
// recently watered, and not their own.
func (r *PlantRepository) ListVisitable(ctx context.Context, viewerID string, wateredSince time.Time) ([]domain.VisitEntry, error) {
	query := `
		SELECT p.user_id, u.username, p.name, p.stage, p.score, p.watered_at
		FROM plants p
		JOIN users u ON u.user_id = p.user_id
		WHERE p.user_id != $1
		  AND NOT p.dead
		  AND p.score > 0
		  AND p.watered_at >= $2
		ORDER BY p.watered_at DESC
	`
	rows, err := r.db.Query(ctx, query, viewerID, wateredSince)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListVisitable, err)
	}
	defer rows.Close()

	var entries []domain.VisitEntry
	for rows.Next() {
		var e domain.VisitEntry
		if err := rows.Scan(&e.UserID, &e.Username, &e.PlantName, &e.Stage, &e.Score, &e.WateredAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListVisitable, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListVisitable, err)
	}
	return entries, nil
}

// GetDailyLeaderboard returns the top living plants watered since the
// day boundary, by score, ties broken by earliest watering.
func (r *PlantRepository) GetDailyLeaderboard(ctx context.Context, since time.Time, limit int) ([]domain.LeaderboardEntry, error) {
	query := `
		SELECT p.user_id, u.username, p.name, p.score, p.watered_at
		FROM plants p
		JOIN users u ON u.user_id = p.user_id
		WHERE NOT p.dead AND p.score > 0 AND p.watered_at >= $1
		ORDER BY p.score DESC, p.watered_at ASC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, since, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetLeaderboard, err)
	}
	defer rows.Close()

	var entries []domain.LeaderboardEntry
	for rows.Next() {
		var e domain.LeaderboardEntry
		if err := rows.Scan(&e.UserID, &e.Username, &e.PlantName, &e.Score, &e.WateredAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetLeaderboard, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetLeaderboard, err)
	}
	return entries, nil
}

// ListStaleUserIDs returns owners of living plants last settled before
// the cutoff, oldest first.
func (r *PlantRepository) ListStaleUserIDs(ctx context.Context, refreshedBefore time.Time, limit int) ([]string, error) {
	query := `
		SELECT user_id
		FROM plants
		WHERE NOT dead AND refreshed_at < $1
		ORDER BY refreshed_at ASC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, refreshedBefore, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListStale, err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListStale, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListStale, err)
	}
	return ids, nil
}

// PlantTx implements repository.PlantTx
type PlantTx struct {
	tx pgx.Tx
}

// BeginTx starts a new transaction
func (r *PlantRepository) BeginTx(ctx context.Context) (repository.PlantTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &PlantTx{tx: tx}, nil
}

// Commit commits the transaction
func (t *PlantTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *PlantTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// GetPlantForUpdate fetches a plant and locks its row for the duration
// of the transaction
func (t *PlantTx) GetPlantForUpdate(ctx context.Context, userID string) (*domain.Plant, error) {
	return scanPlant(t.tx.QueryRow(ctx,
		`SELECT `+plantColumns+` FROM plants WHERE user_id = $1 FOR UPDATE`, userID))
}

// UpdatePlant persists a plant record within the transaction
func (t *PlantTx) UpdatePlant(ctx context.Context, plant domain.Plant) error {
	return updatePlant(ctx, t.tx, plant)
}

// GetInventory retrieves a user's inventory, locking the row
func (t *PlantTx) GetInventory(ctx context.Context, userID string) (*domain.Inventory, error) {
	return getInventoryForUpdate(ctx, t.tx, userID)
}

// UpdateInventory updates a user's inventory within the transaction
func (t *PlantTx) UpdateInventory(ctx context.Context, userID string, inventory domain.Inventory) error {
	return updateInventory(ctx, t.tx, userID, inventory)
}

// GetLastNeighborWaterForUpdate returns when the actor last earned the
// neighbor-watering reward on the owner's plant, locking the ledger
// row. Returns nil when the pair has no record yet.
func (t *PlantTx) GetLastNeighborWaterForUpdate(ctx context.Context, actorID, ownerID string) (*time.Time, error) {
	var ts time.Time
	err := t.tx.QueryRow(ctx,
		`SELECT last_watered FROM neighbor_waterings WHERE actor_id = $1 AND owner_id = $2 FOR UPDATE`,
		actorID, ownerID).Scan(&ts)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetNeighborWater, err)
	}
	return &ts, nil
}

// UpsertNeighborWater records a rewarded neighbor watering
func (t *PlantTx) UpsertNeighborWater(ctx context.Context, actorID, ownerID string, timestamp time.Time) error {
	query := `
		INSERT INTO neighbor_waterings (actor_id, owner_id, last_watered)
		VALUES ($1, $2, $3)
		ON CONFLICT (actor_id, owner_id) DO UPDATE
		SET last_watered = EXCLUDED.last_watered
	`
	if _, err := t.tx.Exec(ctx, query, actorID, ownerID, timestamp); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSetNeighborWater, err)
	}
	return nil
}
