package query

import (
	"sort"

	"github.com/example/floraison/internal/domain/cart"
	"github.com/example/floraison/internal/domain/catalog"
	"github.com/example/floraison/internal/domain/order"
	"github.com/example/floraison/internal/domain/stock"
)

// Handler answers every read the storefront and the admin dashboard need. All
// views are derived from current state on each call; at this scale
// recomputation beats caching.
type Handler struct {
	catalog  *catalog.Catalog
	ledger   *stock.Ledger
	registry *order.Registry
	carts    *cart.Store
	reserve  int
}

// NewHandler creates the read side. reserve is the number of units of every
// product that stock must be able to cover before a low-stock warning fires.
func NewHandler(c *catalog.Catalog, l *stock.Ledger, r *order.Registry, carts *cart.Store, reserve int) *Handler {
	return &Handler{
		catalog:  c,
		ledger:   l,
		registry: r,
		carts:    carts,
		reserve:  reserve,
	}
}

func (h *Handler) ListProducts() []ProductView {
	products := h.catalog.List()
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, ProductView{ID: p.ID, Name: p.Name, Price: p.Price, Recipe: p.Recipe})
	}
	return views
}

func (h *Handler) GetCart(sessionID string) CartView {
	items := h.carts.Items(sessionID)
	view := CartView{Items: []CartItemView{}}
	index := make(map[string]int)
	for _, item := range items {
		view.Total += item.Price
		if i, ok := index[item.ID]; ok {
			view.Items[i].Quantity++
			continue
		}
		index[item.ID] = len(view.Items)
		view.Items = append(view.Items, CartItemView{
			ProductID: item.ID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  1,
		})
	}
	return view
}

func (h *Handler) GetOrder(id int64) (OrderView, error) {
	o, err := h.registry.FindByID(id)
	if err != nil {
		return OrderView{}, err
	}
	return toOrderView(o), nil
}

// ListOrders returns every order in insertion order, for the admin dashboard.
func (h *Handler) ListOrders() []OrderView {
	orders := h.registry.List()
	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, toOrderView(o))
	}
	return views
}

// StockLevels returns the ledger sorted by ingredient name.
func (h *Handler) StockLevels() []IngredientView {
	levels := h.ledger.Snapshot()
	views := make([]IngredientView, 0, len(levels))
	for ingredient, qty := range levels {
		views = append(views, IngredientView{Ingredient: ingredient, Quantity: qty})
	}
	sort.Slice(views, func(i, j int) bool { return views[i].Ingredient < views[j].Ingredient })
	return views
}

// LowStockWarnings lists every product whose recipe stock cannot cover the
// reserve threshold.
func (h *Handler) LowStockWarnings() []LowStockWarning {
	warnings := []LowStockWarning{}
	for _, p := range h.catalog.List() {
		if !h.ledger.IsReserveSatisfied(p, h.reserve) {
			warnings = append(warnings, LowStockWarning{
				ProductID:   p.ID,
				ProductName: p.Name,
				Reserve:     h.reserve,
			})
		}
	}
	return warnings
}

func toOrderView(o order.Order) OrderView {
	view := OrderView{
		ID:              o.ID,
		CustomerName:    o.CustomerName,
		CustomerAddress: o.CustomerAddress,
		Items:           []OrderItemView{},
		Total:           o.Total,
		Status:          o.Status,
		PlacedAt:        o.PlacedAt,
	}
	index := make(map[string]int)
	for _, item := range o.Items {
		if i, ok := index[item.ID]; ok {
			view.Items[i].Quantity++
			continue
		}
		index[item.ID] = len(view.Items)
		view.Items = append(view.Items, OrderItemView{
			ProductID: item.ID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  1,
		})
	}
	return view
}
