package cart

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/example/floraison/internal/domain/catalog"
	"github.com/example/floraison/internal/infrastructure/journal"
)

const AggregateType = "Cart"

// CartID returns the journal aggregate id for a session's cart.
func CartID(sessionID string) string {
	return "cart-" + sessionID
}

// Store holds the active cart of every browsing session. A cart is an ordered
// sequence of product snapshots; a repeated entry represents a repeated unit,
// not a quantity field.
type Store struct {
	mu      sync.RWMutex
	carts   map[string][]catalog.Product // sessionID -> item sequence
	journal journal.Journal
}

// NewStore creates an empty cart store. journal may be nil.
func NewStore(j journal.Journal) *Store {
	return &Store{
		carts:   make(map[string][]catalog.Product),
		journal: j,
	}
}

// Add appends one unit of the product to the session's cart.
func (s *Store) Add(ctx context.Context, sessionID string, p catalog.Product) {
	s.mu.Lock()
	s.carts[sessionID] = append(s.carts[sessionID], p.Clone())
	s.mu.Unlock()

	s.record(ctx, sessionID, EventItemAdded, ItemAddedToCart{
		CartID:    CartID(sessionID),
		ProductID: p.ID,
		Price:     p.Price,
		AddedAt:   time.Now(),
	})
}

// RemoveOne removes a single unit of the product from the session's cart.
// It reports whether a unit was removed.
func (s *Store) RemoveOne(ctx context.Context, sessionID, productID string) bool {
	s.mu.Lock()
	items := s.carts[sessionID]
	removed := false
	for i, item := range items {
		if item.ID == productID {
			s.carts[sessionID] = append(items[:i:i], items[i+1:]...)
			removed = true
			break
		}
	}
	s.mu.Unlock()

	if removed {
		s.record(ctx, sessionID, EventItemRemoved, ItemRemovedFromCart{
			CartID:    CartID(sessionID),
			ProductID: productID,
			RemovedAt: time.Now(),
		})
	}
	return removed
}

// Items returns a deep copy of the session's cart in selection order.
func (s *Store) Items(sessionID string) []catalog.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]catalog.Product, 0, len(s.carts[sessionID]))
	for _, item := range s.carts[sessionID] {
		items = append(items, item.Clone())
	}
	return items
}

// Total returns the exact sum of the cart's item prices in cents.
func (s *Store) Total(sessionID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0
	for _, item := range s.carts[sessionID] {
		total += item.Price
	}
	return total
}

// Clear empties the session's cart.
func (s *Store) Clear(ctx context.Context, sessionID string) {
	s.mu.Lock()
	delete(s.carts, sessionID)
	s.mu.Unlock()

	s.record(ctx, sessionID, EventCartCleared, CartCleared{
		CartID:    CartID(sessionID),
		ClearedAt: time.Now(),
	})
}

func (s *Store) record(ctx context.Context, sessionID, eventType string, data any) {
	if s.journal == nil {
		return
	}
	if _, err := s.journal.Append(ctx, CartID(sessionID), AggregateType, eventType, data); err != nil {
		log.Printf("[Cart] Failed to journal %s: %v", eventType, err)
	}
}
