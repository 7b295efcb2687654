package order

import (
	"context"
	"log"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/example/floraison/internal/domain/cart"
	"github.com/example/floraison/internal/domain/stock"
	"github.com/example/floraison/internal/infrastructure/journal"
)

// Customer carries the checkout form fields. Payment details are accepted but
// never charged; there is no payment integration.
type Customer struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	PaymentMethod string `json:"payment_method"`
}

// Service is the order processor: it turns a session's cart into a placed
// order, deducting stock and registering the order in one synchronous pass.
type Service struct {
	ledger   *stock.Ledger
	registry *Registry
	carts    *cart.Store
	journal  journal.Journal
	nextID   atomic.Int64
}

// NewService creates the processor. Order identifiers come from a dedicated
// monotonic counter seeded from the wall clock, so they stay unique at any
// submission rate while keeping the familiar timestamp magnitude.
func NewService(ledger *stock.Ledger, registry *Registry, carts *cart.Store, j journal.Journal) *Service {
	s := &Service{
		ledger:   ledger,
		registry: registry,
		carts:    carts,
		journal:  j,
	}
	s.nextID.Store(time.Now().UnixMilli())
	return s
}

// Submit places an order for everything in the session's cart.
//
// An empty cart is rejected with ErrEmptyCart and nothing changes. Once the
// cart is non-empty no step can fail: the deduction clamps instead of
// erroring, so the ledger deduction, the registry append and the cart clear
// always happen together, computed from the same cart snapshot.
func (s *Service) Submit(ctx context.Context, sessionID string, customer Customer) (Order, error) {
	items := s.carts.Items(sessionID)
	if len(items) == 0 {
		return Order{}, ErrEmptyCart
	}

	// Aggregate the cart into one ingredient demand: units per product times
	// the product's recipe.
	counts := make(map[string]int, len(items))
	recipes := make(map[string]map[string]int, len(items))
	for _, item := range items {
		counts[item.ID]++
		recipes[item.ID] = item.Recipe
	}
	demand := make(map[string]int)
	for productID, n := range counts {
		for ingredient, perUnit := range recipes[productID] {
			demand[ingredient] += perUnit * n
		}
	}

	s.ledger.Deduct(ctx, demand)

	total := 0
	for _, item := range items {
		total += item.Price
	}

	o := Order{
		ID:              s.nextID.Add(1),
		CustomerName:    customer.Name,
		CustomerAddress: customer.Address,
		PaymentMethod:   customer.PaymentMethod,
		Items:           items, // already a deep copy of the cart
		Total:           total,
		Status:          StatusPending,
		PlacedAt:        time.Now(),
	}
	s.registry.Append(o)
	s.carts.Clear(ctx, sessionID)

	log.Printf("[Order] Placed order %d for %q: %d item(s), total %d", o.ID, o.CustomerName, len(o.Items), o.Total)
	s.record(ctx, o.ID, EventOrderPlaced, OrderPlaced{
		OrderID:      o.ID,
		CustomerName: o.CustomerName,
		Items:        o.Items,
		Total:        o.Total,
		PlacedAt:     o.PlacedAt,
	})

	return o, nil
}

// Complete marks the order as completed. Completing an already completed
// order is a no-op.
func (s *Service) Complete(ctx context.Context, id int64) error {
	if err := s.registry.MarkCompleted(id); err != nil {
		return err
	}
	s.record(ctx, id, EventOrderCompleted, OrderCompleted{
		OrderID:     id,
		CompletedAt: time.Now(),
	})
	return nil
}

// Track is the public point query by order identifier.
func (s *Service) Track(id int64) (Order, error) {
	return s.registry.FindByID(id)
}

func (s *Service) record(ctx context.Context, orderID int64, eventType string, data any) {
	if s.journal == nil {
		return
	}
	aggregateID := strconv.FormatInt(orderID, 10)
	if _, err := s.journal.Append(ctx, aggregateID, AggregateType, eventType, data); err != nil {
		log.Printf("[Order] Failed to journal %s for order %d: %v", eventType, orderID, err)
	}
}
