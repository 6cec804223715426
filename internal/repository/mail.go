package repository

import (
	"context"

	"github.com/elizabethaxley/astrobotany/internal/domain"
)

// Mail defines the read side of postcard persistence. Inserts happen
// through UserTx so delivery shares the item-consuming transaction.
type Mail interface {
	ListInbox(ctx context.Context, userID string) ([]domain.Postcard, error)
	// GetPostcard fetches one postcard addressed to the given user.
	GetPostcard(ctx context.Context, postcardID int64, toUserID string) (*domain.Postcard, error)
	MarkSeen(ctx context.Context, postcardID int64) error
	CountUnseen(ctx context.Context, userID string) (int, error)
}
