package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/example/floraison/internal/domain/cart"
	"github.com/example/floraison/internal/domain/catalog"
	"github.com/example/floraison/internal/domain/order"
	"github.com/example/floraison/internal/domain/stock"
	"github.com/example/floraison/internal/notify"
	"github.com/example/floraison/internal/query"
)

// Handlers serves the public storefront: catalog, cart, checkout and order
// tracking.
type Handlers struct {
	catalog *catalog.Catalog
	carts   *cart.Store
	orders  *order.Service
	queries *query.Handler
	notices *notify.Center
}

func NewHandlers(c *catalog.Catalog, carts *cart.Store, orders *order.Service, queries *query.Handler, notices *notify.Center) *Handlers {
	return &Handlers{
		catalog: c,
		carts:   carts,
		orders:  orders,
		queries: queries,
		notices: notices,
	}
}

// Product handlers

func (h *Handlers) GetProducts(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.queries.ListProducts())
}

// Cart handlers

func (h *Handlers) GetCart(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.queries.GetCart(getSessionID(r)))
}

func (h *Handlers) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"product_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, ok := h.catalog.Find(req.ProductID)
	if !ok {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	h.carts.Add(r.Context(), getSessionID(r), p)
	h.notices.Publish(fmt.Sprintf("%s added to cart!", p.Name))
	respondJSON(w, http.StatusOK, h.queries.GetCart(getSessionID(r)))
}

func (h *Handlers) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	productID := extractPathParam(r.URL.Path, "/cart/items/")

	if !h.carts.RemoveOne(r.Context(), getSessionID(r), productID) {
		http.Error(w, "Item not in cart", http.StatusNotFound)
		return
	}

	name := productID
	if p, ok := h.catalog.Find(productID); ok {
		name = p.Name
	}
	h.notices.Publish(fmt.Sprintf("One %s removed from cart.", name))
	respondJSON(w, http.StatusOK, h.queries.GetCart(getSessionID(r)))
}

// Order handlers

func (h *Handlers) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name          string `json:"name"`
		Address       string `json:"address"`
		PaymentMethod string `json:"payment_method"`
		CardNumber    string `json:"card_number"`
		ExpiryDate    string `json:"expiry_date"`
		CVV           string `json:"cvv"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Payment is simulated: the method is recorded on the order, card details
	// are discarded.
	customer := order.Customer{
		Name:          req.Name,
		Address:       req.Address,
		PaymentMethod: req.PaymentMethod,
	}

	o, err := h.orders.Submit(r.Context(), getSessionID(r), customer)
	if err != nil {
		if errors.Is(err, order.ErrEmptyCart) {
			h.notices.Publish("Your cart is empty. Please add items before placing an order.")
		}
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	h.notices.Publish(fmt.Sprintf("Order placed successfully! Your Order ID is: %d", o.ID))
	respondJSON(w, http.StatusCreated, o)
}

// TrackOrder is the public tracking lookup by order id.
func (h *Handlers) TrackOrder(w http.ResponseWriter, r *http.Request) {
	idParam := extractPathParam(r.URL.Path, "/orders/")
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		http.Error(w, "Invalid order id", http.StatusBadRequest)
		return
	}

	view, err := h.queries.GetOrder(id)
	if err != nil {
		http.Error(w, "Order not found", statusFromError(err))
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// Notice handler

func (h *Handlers) GetNotice(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"message": h.notices.Current()})
}

// Helper functions

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func extractPathParam(path, prefix string) string {
	return strings.TrimPrefix(path, prefix)
}

// getSessionID identifies the browsing session. The storefront is a
// single-user simulation, so a missing header falls back to one shared
// session.
func getSessionID(r *http.Request) string {
	if id := r.Header.Get("X-Session-ID"); id != "" {
		return id
	}
	return "default-session"
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, order.ErrEmptyCart), errors.Is(err, stock.ErrNegativeQuantity):
		return http.StatusBadRequest
	case errors.Is(err, order.ErrOrderNotFound), errors.Is(err, stock.ErrUnknownIngredient):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
