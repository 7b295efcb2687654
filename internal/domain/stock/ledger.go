package stock

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/example/floraison/internal/domain/catalog"
	"github.com/example/floraison/internal/infrastructure/journal"
)

const AggregateType = "Stock"

// LedgerID is the journal aggregate id for the single process-wide ledger.
const LedgerID = "stock-ledger"

var (
	ErrNegativeQuantity  = errors.New("stock quantity cannot be negative")
	ErrUnknownIngredient = errors.New("unknown ingredient")
)

// Ledger tracks the quantity on hand for every ingredient. Quantities never go
// below zero: deductions clamp instead of failing, so an order can oversell
// and the ledger reports zero.
type Ledger struct {
	mu         sync.RWMutex
	quantities map[string]int
	journal    journal.Journal
}

// NewLedger seeds the ledger once at startup. journal may be nil.
func NewLedger(seed map[string]int, j journal.Journal) *Ledger {
	quantities := make(map[string]int, len(seed))
	for ingredient, qty := range seed {
		quantities[ingredient] = qty
	}
	return &Ledger{quantities: quantities, journal: j}
}

// DefaultSeed returns the opening stock levels of the shop.
func DefaultSeed() map[string]int {
	return map[string]int{
		"wrapping paper":    100,
		"ribbon":            100,
		"sunflower":         50,
		"rose":              60,
		"decorative flower": 200,
	}
}

// Get returns the current quantity of an ingredient. The second return value
// is false for an ingredient the ledger does not track, which is distinct
// from a tracked ingredient at zero.
func (l *Ledger) Get(ingredient string) (int, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	qty, ok := l.quantities[ingredient]
	return qty, ok
}

// Snapshot returns a copy of all current quantities.
func (l *Ledger) Snapshot() map[string]int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make(map[string]int, len(l.quantities))
	for ingredient, qty := range l.quantities {
		out[ingredient] = qty
	}
	return out
}

// Deduct subtracts the demanded quantity of every tracked ingredient, clamping
// at zero. Ingredients in demand that the ledger does not track are ignored.
// Deduct never fails; insufficient stock is not a blocking condition here.
func (l *Ledger) Deduct(ctx context.Context, demand map[string]int) {
	l.mu.Lock()
	applied := make(map[string]int, len(demand))
	for ingredient, wanted := range demand {
		have, ok := l.quantities[ingredient]
		if !ok {
			continue
		}
		removed := wanted
		if removed > have {
			removed = have
		}
		l.quantities[ingredient] = have - removed
		applied[ingredient] = removed
	}
	l.mu.Unlock()

	if l.journal != nil {
		event := StockDeducted{Demand: demand, Applied: applied, DeductedAt: time.Now()}
		if _, err := l.journal.Append(ctx, LedgerID, AggregateType, EventStockDeducted, event); err != nil {
			log.Printf("[Stock] Failed to journal deduction: %v", err)
		}
	}
}

// SetQuantity overwrites the quantity of a tracked ingredient. The new value
// replaces the old one; there is no accumulation.
func (l *Ledger) SetQuantity(ctx context.Context, ingredient string, quantity int) error {
	if quantity < 0 {
		return ErrNegativeQuantity
	}

	l.mu.Lock()
	if _, ok := l.quantities[ingredient]; !ok {
		l.mu.Unlock()
		return ErrUnknownIngredient
	}
	l.quantities[ingredient] = quantity
	l.mu.Unlock()

	if l.journal != nil {
		event := StockOverridden{Ingredient: ingredient, Quantity: quantity, OverriddenAt: time.Now()}
		if _, err := l.journal.Append(ctx, LedgerID, AggregateType, EventStockOverridden, event); err != nil {
			log.Printf("[Stock] Failed to journal override: %v", err)
		}
	}
	return nil
}

// IsReserveSatisfied reports whether stock can cover reserveCount units of the
// product. An ingredient the ledger does not track fails the check.
func (l *Ledger) IsReserveSatisfied(p catalog.Product, reserveCount int) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for ingredient, perUnit := range p.Recipe {
		have, ok := l.quantities[ingredient]
		if !ok || have < perUnit*reserveCount {
			return false
		}
	}
	return true
}
