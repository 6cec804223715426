// Package store implements the item shop: browsing the for-sale
// catalog and a two-phase coin purchase. A purchase is quoted first
// and only executed once the buyer answers the confirmation; the
// pending quote lives in the buyer's session and expires with it.
package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/elizabethaxley/astrobotany/internal/domain"
	"github.com/elizabethaxley/astrobotany/internal/event"
	"github.com/elizabethaxley/astrobotany/internal/item"
	"github.com/elizabethaxley/astrobotany/internal/logger"
	"github.com/elizabethaxley/astrobotany/internal/repository"
	"github.com/elizabethaxley/astrobotany/internal/session"
)

// pendingPurchaseKey is the session slot holding the quoted item name.
const pendingPurchaseKey = "store.pending_purchase"

// User-facing messages
const (
	MsgQuoteFmt          = "%s costs %d coins. You have %d. Buy it? [y/n]"
	MsgPurchasedFmt      = "You bought 1 %s for %d coins. %d coins remain."
	MsgPurchaseCancelled = "Purchase cancelled."
	MsgNothingPending    = "There is nothing awaiting confirmation."
)

// Log message constants
const (
	LogMsgStartPurchaseCalled   = "StartPurchase called"
	LogMsgConfirmPurchaseCalled = "ConfirmPurchase called"
)

// Error message format strings
const (
	ErrMsgBeginTxFailed      = "failed to begin transaction: %w"
	ErrMsgCommitFailed       = "failed to commit transaction: %w"
	ErrMsgGetInventoryFailed = "failed to get inventory: %w"
	ErrMsgUpdateInvFailed    = "failed to update inventory: %w"
)

// Service defines the interface for store operations
type Service interface {
	Browse(ctx context.Context) []domain.Item
	StartPurchase(ctx context.Context, userID string, itemID int) (*Quote, error)
	ConfirmPurchase(ctx context.Context, userID, answer string) (string, error)
}

// Quote is a pending purchase awaiting confirmation.
type Quote struct {
	Item    domain.Item `json:"item"`
	Balance int         `json:"balance"`
	Message string      `json:"message"`
}

type service struct {
	repo     repository.User
	catalog  *item.Catalog
	sessions *session.Store
	eventBus event.Bus
	now      func() time.Time
}

// NewService creates a new store service
func NewService(repo repository.User, catalog *item.Catalog, sessions *session.Store, eventBus event.Bus) Service {
	return &service{
		repo:     repo,
		catalog:  catalog,
		sessions: sessions,
		eventBus: eventBus,
		now:      time.Now,
	}
}

// Browse lists the items currently for sale, in catalog order.
func (s *service) Browse(_ context.Context) []domain.Item {
	return s.catalog.ForSale()
}

// StartPurchase quotes an item and parks the purchase in the buyer's
// session until they confirm. Funds are checked up front so the buyer
// is not asked to confirm a purchase that cannot succeed.
func (s *service) StartPurchase(ctx context.Context, userID string, itemID int) (*Quote, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgStartPurchaseCalled, "userID", userID, "itemID", itemID)

	it, err := s.catalog.ByID(itemID)
	if err != nil {
		return nil, err
	}
	if !it.ForSale {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotForSale, it.Name)
	}

	inv, err := s.repo.GetInventory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetInventoryFailed, err)
	}
	coin := s.catalog.MustByName(domain.ItemCoin)
	balance := inv.Quantity(coin.ID)
	if balance < it.Price {
		return nil, fmt.Errorf("%w: %s costs %d coins, you have %d", domain.ErrInsufficientFunds, it.Name, it.Price, balance)
	}

	s.sessions.Load(userID).Set(pendingPurchaseKey, it.Name)

	return &Quote{
		Item:    it,
		Balance: balance,
		Message: fmt.Sprintf(MsgQuoteFmt, it.Name, it.Price, balance),
	}, nil
}

// ConfirmPurchase settles the pending quote. Any answer other than
// "y" or "yes" cancels it. The quote is consumed either way; funds
// are re-checked inside the transaction because the balance may have
// changed since the quote.
func (s *service) ConfirmPurchase(ctx context.Context, userID, answer string) (string, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgConfirmPurchaseCalled, "userID", userID)

	itemName, ok := s.sessions.Load(userID).Pop(pendingPurchaseKey)
	if !ok {
		return MsgNothingPending, nil
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
	default:
		return MsgPurchaseCancelled, nil
	}

	it, err := s.catalog.ByName(itemName)
	if err != nil {
		return "", err
	}
	coin := s.catalog.MustByName(domain.ItemCoin)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return "", fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	inv, err := tx.GetInventory(ctx, userID)
	if err != nil {
		return "", fmt.Errorf(ErrMsgGetInventoryFailed, err)
	}
	if inv.Quantity(coin.ID) < it.Price {
		return "", fmt.Errorf("%w: %s costs %d coins", domain.ErrInsufficientFunds, it.Name, it.Price)
	}
	if err := inv.Remove(coin.ID, it.Price); err != nil {
		return "", err
	}
	inv.Add(it.ID, 1)
	if err := tx.UpdateInventory(ctx, userID, *inv); err != nil {
		return "", fmt.Errorf(ErrMsgUpdateInvFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return "", fmt.Errorf(ErrMsgCommitFailed, err)
	}

	if s.eventBus != nil {
		_ = s.eventBus.Publish(ctx, event.Event{
			Version: event.EventSchemaVersion,
			Type:    event.Type(domain.EventTypeItemBought),
			Payload: domain.ItemBoughtPayload{
				UserID:    userID,
				ItemName:  it.Name,
				Cost:      it.Price,
				Timestamp: s.now().Unix(),
			},
		})
	}

	return fmt.Sprintf(MsgPurchasedFmt, it.Name, it.Price, inv.Quantity(coin.ID)), nil
}
