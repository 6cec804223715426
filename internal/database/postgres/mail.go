package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/elizabethaxley/astrobotany/internal/domain"
)

// MailRepository implements the mail repository for PostgreSQL
type MailRepository struct {
	db *pgxpool.Pool
}

// NewMailRepository creates a new MailRepository
func NewMailRepository(db *pgxpool.Pool) *MailRepository {
	return &MailRepository{db: db}
}

// insertPostcard writes a postcard and fills in its assigned ID. It
// runs on whatever querier the caller holds; delivery rides the
// sender's inventory transaction (see UserTx.CreatePostcard).
func insertPostcard(ctx context.Context, q querier, postcard *domain.Postcard) error {
	query := `
		INSERT INTO postcards (from_user_id, to_user_id, subject, body, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING postcard_id
	`
	err := q.QueryRow(ctx, query,
		postcard.FromUserID, postcard.ToUserID, postcard.Subject, postcard.Body, postcard.CreatedAt,
	).Scan(&postcard.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertPostcard, err)
	}
	return nil
}

// ListInbox returns a user's postcards, newest first, with the
// sender's username resolved.
func (r *MailRepository) ListInbox(ctx context.Context, userID string) ([]domain.Postcard, error) {
	query := `
		SELECT pc.postcard_id, pc.from_user_id, u.username, pc.to_user_id,
			pc.subject, pc.body, pc.is_seen, pc.created_at
		FROM postcards pc
		JOIN users u ON u.user_id = pc.from_user_id
		WHERE pc.to_user_id = $1
		ORDER BY pc.created_at DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListInbox, err)
	}
	defer rows.Close()

	var cards []domain.Postcard
	for rows.Next() {
		var c domain.Postcard
		if err := rows.Scan(&c.ID, &c.FromUserID, &c.FromName, &c.ToUserID,
			&c.Subject, &c.Body, &c.IsSeen, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListInbox, err)
		}
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListInbox, err)
	}
	return cards, nil
}

// GetPostcard fetches one postcard addressed to the given user
func (r *MailRepository) GetPostcard(ctx context.Context, postcardID int64, toUserID string) (*domain.Postcard, error) {
	query := `
		SELECT pc.postcard_id, pc.from_user_id, u.username, pc.to_user_id,
			pc.subject, pc.body, pc.is_seen, pc.created_at
		FROM postcards pc
		JOIN users u ON u.user_id = pc.from_user_id
		WHERE pc.postcard_id = $1 AND pc.to_user_id = $2
	`
	var c domain.Postcard
	err := r.db.QueryRow(ctx, query, postcardID, toUserID).Scan(
		&c.ID, &c.FromUserID, &c.FromName, &c.ToUserID,
		&c.Subject, &c.Body, &c.IsSeen, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", domain.ErrMailNotFound, postcardID)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPostcard, err)
	}
	return &c, nil
}

// MarkSeen marks a postcard as read
func (r *MailRepository) MarkSeen(ctx context.Context, postcardID int64) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE postcards SET is_seen = TRUE WHERE postcard_id = $1`, postcardID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMarkSeen, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMailNotFound
	}
	return nil
}

// CountUnseen counts a user's unread postcards
func (r *MailRepository) CountUnseen(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM postcards WHERE to_user_id = $1 AND NOT is_seen`, userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCountUnseen, err)
	}
	return n, nil
}
