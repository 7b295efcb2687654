package query

import (
	"time"

	"github.com/example/floraison/internal/domain/catalog"
	"github.com/example/floraison/internal/domain/order"
)

// ProductView is the catalog entry as shown to shoppers.
type ProductView struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Price  int            `json:"price"`
	Recipe catalog.Recipe `json:"recipe"`
}

// CartItemView groups repeated cart units of the same product for display.
type CartItemView struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Quantity  int    `json:"quantity"`
}

// CartView is the session cart with its running total.
type CartView struct {
	Items []CartItemView `json:"items"`
	Total int            `json:"total"`
}

// OrderItemView groups repeated order units of the same product for display.
type OrderItemView struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Quantity  int    `json:"quantity"`
}

// OrderView is an order as shown on the dashboard and tracking screens.
type OrderView struct {
	ID              int64           `json:"id"`
	CustomerName    string          `json:"customer_name"`
	CustomerAddress string          `json:"customer_address"`
	Items           []OrderItemView `json:"items"`
	Total           int             `json:"total"`
	Status          order.Status    `json:"status"`
	PlacedAt        time.Time       `json:"placed_at"`
}

// IngredientView is one ledger row.
type IngredientView struct {
	Ingredient string `json:"ingredient"`
	Quantity   int    `json:"quantity"`
}

// LowStockWarning flags a product whose reserve check failed.
type LowStockWarning struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Reserve     int    `json:"reserve"`
}
