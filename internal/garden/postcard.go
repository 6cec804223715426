package garden

import (
	"context"
	"fmt"
	"strings"

	"github.com/elizabethaxley/astrobotany/internal/domain"
	"github.com/elizabethaxley/astrobotany/internal/logger"
	"github.com/elizabethaxley/astrobotany/internal/repository"
)

// SendPostcard mails a private message to another user, consuming one
// postcard item from the sender's inventory. The subject is required
// and capped; the body may be empty.
func (s *service) SendPostcard(ctx context.Context, fromUserID, toUserID, subject, body string) (string, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgSendPostcardCalled, "fromUserID", fromUserID, "toUserID", toUserID)

	subject = strings.TrimSpace(subject)
	if subject == "" {
		return "", domain.ErrSubjectRequired
	}
	if runes := []rune(subject); len(runes) > domain.MaxSubjectLength {
		// Cut on a rune boundary so a multi-byte subject is never
		// split into invalid UTF-8.
		subject = string(runes[:domain.MaxSubjectLength])
	}

	if toUserID == fromUserID {
		return "", fmt.Errorf("%w: cannot mail a postcard to yourself", domain.ErrInvalidInput)
	}
	recipient, err := s.userRepo.GetUserByID(ctx, toUserID)
	if err != nil {
		return "", fmt.Errorf("failed to resolve recipient: %w", err)
	}

	postcardItem := s.catalog.MustByName(domain.ItemPostcard)

	tx, err := s.userRepo.BeginTx(ctx)
	if err != nil {
		return "", fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	inv, err := tx.GetInventory(ctx, fromUserID)
	if err != nil {
		return "", fmt.Errorf(ErrMsgGetInventoryFailed, err)
	}
	if err := inv.Remove(postcardItem.ID, 1); err != nil {
		return "", err
	}
	if err := tx.UpdateInventory(ctx, fromUserID, *inv); err != nil {
		return "", fmt.Errorf(ErrMsgUpdateInvFailed, err)
	}

	now := s.now()
	if err := tx.CreatePostcard(ctx, &domain.Postcard{
		FromUserID: fromUserID,
		ToUserID:   recipient.ID,
		Subject:    subject,
		Body:       body,
		CreatedAt:  now,
	}); err != nil {
		return "", fmt.Errorf("failed to create postcard: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return "", fmt.Errorf(ErrMsgCommitFailed, err)
	}

	s.publish(ctx, domain.EventTypePostcardSent, domain.PostcardSentPayload{
		FromUserID: fromUserID,
		ToUserID:   recipient.ID,
		Timestamp:  now.Unix(),
	})

	return MsgPostcardSent, nil
}

// Inbox lists the user's received postcards, newest first.
func (s *service) Inbox(ctx context.Context, userID string) ([]domain.Postcard, error) {
	cards, err := s.mailRepo.ListInbox(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list inbox: %w", err)
	}
	return cards, nil
}

// ReadPostcard fetches a single postcard addressed to the user and
// marks it seen.
func (s *service) ReadPostcard(ctx context.Context, userID string, postcardID int64) (*domain.Postcard, error) {
	card, err := s.mailRepo.GetPostcard(ctx, postcardID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get postcard: %w", err)
	}
	if !card.IsSeen {
		if err := s.mailRepo.MarkSeen(ctx, card.ID); err != nil {
			return nil, fmt.Errorf("failed to mark postcard seen: %w", err)
		}
		card.IsSeen = true
	}
	return card, nil
}

// UnseenCount reports how many postcards the user has not yet read.
func (s *service) UnseenCount(ctx context.Context, userID string) (int, error) {
	n, err := s.mailRepo.CountUnseen(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count unseen postcards: %w", err)
	}
	return n, nil
}
