package order

import (
	"errors"
	"time"

	"github.com/example/floraison/internal/domain/catalog"
)

const AggregateType = "Order"

type Status string

const (
	StatusPending   Status = "Pending"
	StatusCompleted Status = "Completed"
)

var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrOrderNotFound = errors.New("order not found")
)

// Order is a placed order. Items is a snapshot taken at submission time; later
// cart or catalog changes never alter it.
type Order struct {
	ID              int64             `json:"id"`
	CustomerName    string            `json:"customer_name"`
	CustomerAddress string            `json:"customer_address"`
	PaymentMethod   string            `json:"payment_method"`
	Items           []catalog.Product `json:"items"`
	Total           int               `json:"total"`
	Status          Status            `json:"status"`
	PlacedAt        time.Time         `json:"placed_at"`
}

// Clone returns a deep copy of the order.
func (o Order) Clone() Order {
	items := make([]catalog.Product, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, item.Clone())
	}
	o.Items = items
	return o
}
