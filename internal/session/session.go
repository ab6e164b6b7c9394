package session

import (
	"fmt"
	"time"

	"github.com/osse101/SkinTrade_Go/internal/domain"
)

// Session is one visitor's in-memory state. Mutating methods expect the caller to hold
// the session lock, which Store.Update does.
type Session struct {
	ID        string                 `json:"id"`
	User      domain.User            `json:"user"`
	Balance   int                    `json:"balance"`
	Inventory []domain.InventoryItem `json:"inventory"`
	Stats     domain.Stats           `json:"stats"`
	CreatedAt time.Time              `json:"created_at"`
	LastSeen  time.Time              `json:"last_seen"`
}

// Clone returns a deep copy safe to hand out after the lock is released.
func (s *Session) Clone() Session {
	c := *s
	c.Inventory = make([]domain.InventoryItem, len(s.Inventory))
	copy(c.Inventory, s.Inventory)
	return c
}

// Debit spends amount if the balance covers it. The balance never goes below zero.
func (s *Session) Debit(amount int) error {
	if amount < 0 {
		return fmt.Errorf("%w: negative debit %d", domain.ErrInvalidAmount, amount)
	}
	if s.Balance < amount {
		return fmt.Errorf("%w: balance %d, price %d", domain.ErrInsufficientFunds, s.Balance, amount)
	}
	s.Balance -= amount
	s.Stats.TotalSpent += amount
	return nil
}

// Credit adds sale proceeds to the balance and the earned counter.
func (s *Session) Credit(amount int) error {
	if amount < 0 {
		return fmt.Errorf("%w: negative credit %d", domain.ErrInvalidAmount, amount)
	}
	s.Balance += amount
	s.Stats.TotalEarned += amount
	return nil
}

// AddItem appends a won item and bumps the win counters.
func (s *Session) AddItem(item domain.InventoryItem) {
	s.Inventory = append(s.Inventory, item)
	s.Stats.ItemsWon++
	if item.Rarity == domain.RarityLegendary {
		s.Stats.LegendariesWon++
	}
}

// HasItem reports whether instanceID is in the inventory.
func (s *Session) HasItem(instanceID string) bool {
	for _, item := range s.Inventory {
		if item.InstanceID == instanceID {
			return true
		}
	}
	return false
}

// FindItems resolves instance IDs to inventory items. Duplicates count once and the
// result keeps the request order. Any unknown ID fails the whole lookup.
func (s *Session) FindItems(instanceIDs []string) ([]domain.InventoryItem, error) {
	index := make(map[string]int, len(s.Inventory))
	for i, item := range s.Inventory {
		index[item.InstanceID] = i
	}

	seen := make(map[string]bool, len(instanceIDs))
	found := make([]domain.InventoryItem, 0, len(instanceIDs))
	for _, id := range instanceIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		i, ok := index[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrItemNotInInventory, id)
		}
		found = append(found, s.Inventory[i])
	}
	return found, nil
}

// RemoveItems drops exactly the given instance IDs and returns the removed items.
// Nothing is removed when any ID is missing.
func (s *Session) RemoveItems(instanceIDs []string) ([]domain.InventoryItem, error) {
	removed, err := s.FindItems(instanceIDs)
	if err != nil {
		return nil, err
	}

	drop := make(map[string]bool, len(removed))
	for _, item := range removed {
		drop[item.InstanceID] = true
	}
	kept := s.Inventory[:0]
	for _, item := range s.Inventory {
		if !drop[item.InstanceID] {
			kept = append(kept, item)
		}
	}
	// clear the tail so removed items are not retained by the backing array
	for i := len(kept); i < len(s.Inventory); i++ {
		s.Inventory[i] = domain.InventoryItem{}
	}
	s.Inventory = kept
	return removed, nil
}

// InstanceIDs lists every inventory instance ID in order.
func (s *Session) InstanceIDs() []string {
	ids := make([]string, 0, len(s.Inventory))
	for _, item := range s.Inventory {
		ids = append(ids, item.InstanceID)
	}
	return ids
}
