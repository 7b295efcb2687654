package order

import (
	"time"

	"github.com/example/floraison/internal/domain/catalog"
)

const (
	EventOrderPlaced    = "OrderPlaced"
	EventOrderCompleted = "OrderCompleted"
)

type OrderPlaced struct {
	OrderID      int64             `json:"order_id"`
	CustomerName string            `json:"customer_name"`
	Items        []catalog.Product `json:"items"`
	Total        int               `json:"total"`
	PlacedAt     time.Time         `json:"placed_at"`
}

type OrderCompleted struct {
	OrderID     int64     `json:"order_id"`
	CompletedAt time.Time `json:"completed_at"`
}
