package order

import "sync"

// Registry holds every placed order for the process lifetime. Orders are kept
// in insertion order and are never deleted; the only allowed mutation is the
// Pending to Completed transition.
type Registry struct {
	mu     sync.RWMutex
	orders []Order
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Append inserts the order as the last entry.
func (r *Registry) Append(o Order) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append(r.orders, o.Clone())
}

// FindByID returns the order with the exact matching identifier.
func (r *Registry) FindByID(id int64) (Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.orders {
		if o.ID == id {
			return o.Clone(), nil
		}
	}
	return Order{}, ErrOrderNotFound
}

// MarkCompleted transitions the matching order from Pending to Completed.
// Calling it on an already Completed order is a no-op, not an error.
func (r *Registry) MarkCompleted(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders[i].Status = StatusCompleted
			return nil
		}
	}
	return ErrOrderNotFound
}

// List returns a snapshot of all orders in insertion order.
func (r *Registry) List() []Order {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, o.Clone())
	}
	return out
}
