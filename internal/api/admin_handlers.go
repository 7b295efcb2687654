package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/example/floraison/internal/auth"
	"github.com/example/floraison/internal/domain/order"
	"github.com/example/floraison/internal/domain/stock"
	"github.com/example/floraison/internal/notify"
	"github.com/example/floraison/internal/query"
)

// AdminHandlers serves the dashboard: login, stock overrides, low-stock
// warnings, the order list and order fulfilment.
type AdminHandlers struct {
	gate    *auth.Gate
	jwt     *auth.JWTService
	ledger  *stock.Ledger
	orders  *order.Service
	queries *query.Handler
	notices *notify.Center
}

func NewAdminHandlers(gate *auth.Gate, jwt *auth.JWTService, ledger *stock.Ledger, orders *order.Service, queries *query.Handler, notices *notify.Center) *AdminHandlers {
	return &AdminHandlers{
		gate:    gate,
		jwt:     jwt,
		ledger:  ledger,
		orders:  orders,
		queries: queries,
		notices: notices,
	}
}

// LoginRequest is the admin login body.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AdminHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if !h.gate.Authenticate(req.Username, req.Password) {
		h.notices.Publish("Admin login failed.")
		respondJSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid username or password."})
		return
	}

	token, expiresAt, err := h.jwt.GenerateAccessToken(req.Username, "admin")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "admin_token",
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	h.notices.Publish("Admin login successful!")
	respondJSON(w, http.StatusOK, map[string]string{"message": "Logged in"})
}

func (h *AdminHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     "admin_token",
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	h.notices.Publish("Admin logged out.")
	respondJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

// Stock handlers

func (h *AdminHandlers) GetStock(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.queries.StockLevels())
}

func (h *AdminHandlers) GetLowStockWarnings(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.queries.LowStockWarnings())
}

// UpdateStock overwrites one ingredient's quantity from the dashboard input.
func (h *AdminHandlers) UpdateStock(w http.ResponseWriter, r *http.Request) {
	ingredient := extractPathParam(r.URL.Path, "/admin/stock/")

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.ledger.SetQuantity(r.Context(), ingredient, req.Quantity); err != nil {
		if errors.Is(err, stock.ErrNegativeQuantity) {
			h.notices.Publish("Stock amount cannot be negative.")
		}
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	h.notices.Publish(fmt.Sprintf("%s stock updated to %d.", ingredient, req.Quantity))
	respondJSON(w, http.StatusOK, h.queries.StockLevels())
}

// Order handlers

func (h *AdminHandlers) GetOrders(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.queries.ListOrders())
}

func (h *AdminHandlers) CompleteOrder(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/admin/orders/")
	idParam := strings.TrimSuffix(path, "/complete")
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		http.Error(w, "Invalid order id", http.StatusBadRequest)
		return
	}

	if err := h.orders.Complete(r.Context(), id); err != nil {
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	h.notices.Publish(fmt.Sprintf("Order #%d marked as completed.", id))
	respondJSON(w, http.StatusOK, map[string]string{"message": "Order completed"})
}
