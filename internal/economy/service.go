package economy

import (
	"context"
	"fmt"

	"github.com/osse101/SkinTrade_Go/internal/domain"
	"github.com/osse101/SkinTrade_Go/internal/event"
	"github.com/osse101/SkinTrade_Go/internal/logger"
	"github.com/osse101/SkinTrade_Go/internal/session"
)

// SessionStore is the part of the session store the economy needs
type SessionStore interface {
	Get(ctx context.Context, id string) (session.Session, error)
	Update(ctx context.Context, id string, fn func(*session.Session) error) (session.Session, error)
}

// Balance is the balance view
type Balance struct {
	Balance   int    `json:"balance"`
	Formatted string `json:"formatted"`
	Currency  string `json:"currency"`
}

// Inventory is the inventory view
type Inventory struct {
	Items      []domain.InventoryItem `json:"items"`
	Count      int                    `json:"count"`
	TotalValue int                    `json:"total_value"`
}

// Quote is what a selection would sell for
type Quote struct {
	Count int `json:"count"`
	Total int `json:"total"`
}

// Sale is the outcome of a completed sale
type Sale struct {
	Sold    []domain.InventoryItem `json:"sold"`
	Total   int                    `json:"total"`
	Balance int                    `json:"balance"`
}

// Service handles balance reads and inventory sales
type Service interface {
	Balance(ctx context.Context, sessionID string) (Balance, error)
	Inventory(ctx context.Context, sessionID string) (Inventory, error)
	Quote(ctx context.Context, sessionID string, instanceIDs []string) (Quote, error)
	Sell(ctx context.Context, sessionID string, instanceIDs []string) (Sale, error)
	SellAll(ctx context.Context, sessionID string) (Sale, error)
}

type service struct {
	store SessionStore
	bus   event.Bus
}

// NewService creates the economy service
func NewService(store SessionStore, bus event.Bus) Service {
	return &service{store: store, bus: bus}
}

// CanAfford is the purchase guard: a price is payable only when the balance covers it.
func CanAfford(balance, price int) bool {
	return price >= 0 && balance >= price
}

// Charge takes price from the session or fails with ErrInsufficientFunds leaving the
// balance untouched. The caller holds the session lock.
func Charge(sess *session.Session, price int) error {
	if !CanAfford(sess.Balance, price) {
		return fmt.Errorf("%w: balance %d, price %d", domain.ErrInsufficientFunds, sess.Balance, price)
	}
	return sess.Debit(price)
}

// NewBalance builds the balance view for an amount
func NewBalance(amount int) Balance {
	return Balance{Balance: amount, Formatted: FormatAmount(amount), Currency: domain.CurrencyCode}
}

func (s *service) Balance(ctx context.Context, sessionID string) (Balance, error) {
	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return Balance{}, err
	}
	return NewBalance(sess.Balance), nil
}

func (s *service) Inventory(ctx context.Context, sessionID string) (Inventory, error) {
	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return Inventory{}, err
	}
	return Inventory{
		Items:      sess.Inventory,
		Count:      len(sess.Inventory),
		TotalValue: domain.InventoryValue(sess.Inventory),
	}, nil
}

func (s *service) Quote(ctx context.Context, sessionID string, instanceIDs []string) (Quote, error) {
	if len(instanceIDs) == 0 {
		return Quote{}, domain.ErrEmptySelection
	}
	var items []domain.InventoryItem
	_, err := s.store.Update(ctx, sessionID, func(sess *session.Session) error {
		found, err := sess.FindItems(instanceIDs)
		items = found
		return err
	})
	if err != nil {
		return Quote{}, err
	}
	return Quote{Count: len(items), Total: domain.InventoryValue(items)}, nil
}

func (s *service) Sell(ctx context.Context, sessionID string, instanceIDs []string) (Sale, error) {
	if len(instanceIDs) == 0 {
		return Sale{}, domain.ErrEmptySelection
	}
	return s.sell(ctx, sessionID, func(*session.Session) []string { return instanceIDs })
}

func (s *service) SellAll(ctx context.Context, sessionID string) (Sale, error) {
	return s.sell(ctx, sessionID, func(sess *session.Session) []string { return sess.InstanceIDs() })
}

// sell removes the selection and credits its value in one locked step.
func (s *service) sell(ctx context.Context, sessionID string, selection func(*session.Session) []string) (Sale, error) {
	var sale Sale
	snap, err := s.store.Update(ctx, sessionID, func(sess *session.Session) error {
		ids := selection(sess)
		if len(ids) == 0 {
			return domain.ErrEmptySelection
		}
		removed, err := sess.RemoveItems(ids)
		if err != nil {
			return err
		}
		sale.Sold = removed
		sale.Total = domain.InventoryValue(removed)
		return sess.Credit(sale.Total)
	})
	if err != nil {
		return Sale{}, err
	}
	sale.Balance = snap.Balance

	ids := make([]string, 0, len(sale.Sold))
	for _, item := range sale.Sold {
		ids = append(ids, item.InstanceID)
	}

	log := logger.FromContext(ctx)
	log.Info(LogMsgItemsSold, "count", len(ids), "total", sale.Total, "balance", sale.Balance)

	s.publish(ctx, event.NewItemSoldEvent(sessionID, ids, sale.Total))
	s.publish(ctx, event.NewBalanceChangedEvent(sessionID, sale.Balance, sale.Total, domain.BalanceReasonItemSale))
	return sale, nil
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn("Failed to publish event", "type", evt.Type, "error", err)
	}
}
