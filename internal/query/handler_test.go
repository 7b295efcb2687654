package query

import (
	"context"
	"testing"

	"github.com/example/floraison/internal/domain/cart"
	"github.com/example/floraison/internal/domain/catalog"
	"github.com/example/floraison/internal/domain/order"
	"github.com/example/floraison/internal/domain/stock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const session = "session-1"

func newTestHandler(seed map[string]int, reserve int) (*Handler, *catalog.Catalog, *stock.Ledger, *order.Registry, *cart.Store) {
	c := catalog.Default()
	ledger := stock.NewLedger(seed, nil)
	registry := order.NewRegistry()
	carts := cart.NewStore(nil)
	return NewHandler(c, ledger, registry, carts, reserve), c, ledger, registry, carts
}

func TestHandler_ListProducts(t *testing.T) {
	h, _, _, _, _ := newTestHandler(stock.DefaultSeed(), 5)

	products := h.ListProducts()

	require.Len(t, products, 2)
	assert.Equal(t, "Sunflower Bouquet", products[0].Name)
	assert.Equal(t, 1699, products[0].Price)
	assert.Equal(t, "Rose Bouquet", products[1].Name)
	assert.Equal(t, 1899, products[1].Price)
}

func TestHandler_GetCart_GroupsUnits(t *testing.T) {
	h, c, _, _, carts := newTestHandler(stock.DefaultSeed(), 5)
	ctx := context.Background()

	roseB, _ := c.Find("rose-bouquet")
	sunflowerB, _ := c.Find("sunflower-bouquet")
	carts.Add(ctx, session, roseB)
	carts.Add(ctx, session, sunflowerB)
	carts.Add(ctx, session, roseB)

	view := h.GetCart(session)

	require.Len(t, view.Items, 2)
	assert.Equal(t, "rose-bouquet", view.Items[0].ProductID)
	assert.Equal(t, 2, view.Items[0].Quantity)
	assert.Equal(t, "sunflower-bouquet", view.Items[1].ProductID)
	assert.Equal(t, 1, view.Items[1].Quantity)
	assert.Equal(t, 2*1899+1699, view.Total)
}

func TestHandler_GetCart_EmptySession(t *testing.T) {
	h, _, _, _, _ := newTestHandler(stock.DefaultSeed(), 5)

	view := h.GetCart("nobody")

	assert.Empty(t, view.Items)
	assert.Equal(t, 0, view.Total)
}

func TestHandler_GetOrder_NotFound(t *testing.T) {
	h, _, _, _, _ := newTestHandler(stock.DefaultSeed(), 5)

	_, err := h.GetOrder(404)

	assert.ErrorIs(t, err, order.ErrOrderNotFound)
}

func TestHandler_ListOrders_InsertionOrder(t *testing.T) {
	h, c, _, registry, _ := newTestHandler(stock.DefaultSeed(), 5)

	roseB, _ := c.Find("rose-bouquet")
	registry.Append(order.Order{ID: 2, Items: []catalog.Product{roseB}, Total: 1899, Status: order.StatusPending})
	registry.Append(order.Order{ID: 1, Items: []catalog.Product{roseB, roseB}, Total: 3798, Status: order.StatusPending})

	views := h.ListOrders()

	require.Len(t, views, 2)
	assert.Equal(t, int64(2), views[0].ID)
	assert.Equal(t, int64(1), views[1].ID)
	require.Len(t, views[1].Items, 1)
	assert.Equal(t, 2, views[1].Items[0].Quantity)
}

func TestHandler_StockLevels_Sorted(t *testing.T) {
	h, _, _, _, _ := newTestHandler(map[string]int{"rose": 3, "ribbon": 1, "sunflower": 0}, 5)

	levels := h.StockLevels()

	require.Len(t, levels, 3)
	assert.Equal(t, "ribbon", levels[0].Ingredient)
	assert.Equal(t, "rose", levels[1].Ingredient)
	assert.Equal(t, "sunflower", levels[2].Ingredient)
}

func TestHandler_LowStockWarnings_AllSufficient(t *testing.T) {
	h, _, _, _, _ := newTestHandler(stock.DefaultSeed(), 5)

	assert.Empty(t, h.LowStockWarnings())
}

func TestHandler_LowStockWarnings_FlagsShortProduct(t *testing.T) {
	seed := stock.DefaultSeed()
	seed["rose"] = 9 // reserve of 5 rose bouquets needs 10
	h, _, _, _, _ := newTestHandler(seed, 5)

	warnings := h.LowStockWarnings()

	require.Len(t, warnings, 1)
	assert.Equal(t, "rose-bouquet", warnings[0].ProductID)
	assert.Equal(t, 5, warnings[0].Reserve)
}

func TestHandler_LowStockWarnings_RecomputedAfterOrder(t *testing.T) {
	seed := stock.DefaultSeed()
	seed["sunflower"] = 12 // covers 6 bouquets
	h, c, ledger, _, carts := newTestHandler(seed, 5)
	ctx := context.Background()

	assert.Empty(t, h.LowStockWarnings())

	sunflowerB, _ := c.Find("sunflower-bouquet")
	registry := order.NewRegistry()
	svc := order.NewService(ledger, registry, carts, nil)
	carts.Add(ctx, session, sunflowerB)
	carts.Add(ctx, session, sunflowerB)
	_, err := svc.Submit(ctx, session, order.Customer{Name: "Ada"})
	require.NoError(t, err)

	// 8 sunflowers remain, short of the 10 the reserve requires.
	warnings := h.LowStockWarnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, "sunflower-bouquet", warnings[0].ProductID)
}
