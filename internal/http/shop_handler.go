package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/tracykish1/T-T-Botanica-Shop/internal/catalog"
	"github.com/tracykish1/T-T-Botanica-Shop/internal/checkout"
	"github.com/tracykish1/T-T-Botanica-Shop/internal/domain"
	"github.com/tracykish1/T-T-Botanica-Shop/internal/shop"
)

type ShopHandler struct {
	svc *shop.Service
	log *zap.Logger
}

func NewShopHandler(svc *shop.Service, log *zap.Logger) *ShopHandler {
	return &ShopHandler{svc: svc, log: log}
}

// GET /api/v1/products?q=&category=&type=
func (h *ShopHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	products := h.svc.Products(catalog.Filter{
		Query:    q.Get("q"),
		Category: q.Get("category"),
		Type:     q.Get("type"),
	})

	out := make([]ProductResponse, len(products))
	for i, p := range products {
		out[i] = toProductResponse(p)
	}
	h.respondJSON(w, http.StatusOK, ProductsResponse{Products: out})
}

// GET /api/v1/products/facets
func (h *ShopHandler) Facets(w http.ResponseWriter, r *http.Request) {
	categories, types := h.svc.Facets()
	h.respondJSON(w, http.StatusOK, FacetsResponse{Categories: categories, Types: types})
}

// GET /api/v1/cart
func (h *ShopHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	sessionID := getSessionID(r.Context())
	if sessionID == "" {
		h.respondError(w, http.StatusBadRequest, "missing_session", "no session id")
		return
	}

	c := h.svc.Cart(r.Context(), sessionID)
	h.respondJSON(w, http.StatusOK, h.toCartResponse(c))
}

// POST /api/v1/cart/items
func (h *ShopHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	sessionID := getSessionID(r.Context())
	if sessionID == "" {
		h.respondError(w, http.StatusBadRequest, "missing_session", "no session id")
		return
	}

	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ProductID == "" {
		h.respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id is required")
		return
	}

	result, err := h.svc.AddItem(r.Context(), sessionID, req.ProductID, req.Quantity)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			h.respondError(w, http.StatusNotFound, "not_found", "product not found")
			return
		}
		h.respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	h.respondJSON(w, http.StatusCreated, AddItemResponse{
		Status:   string(result.Status),
		OpenCart: result.OpenCart,
		Cart:     h.toCartResponse(result.Cart),
	})
}

// PATCH /api/v1/cart/items/{product_id}
func (h *ShopHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	sessionID := getSessionID(r.Context())
	if sessionID == "" {
		h.respondError(w, http.StatusBadRequest, "missing_session", "no session id")
		return
	}

	productID := chi.URLParam(r, "product_id")

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	c := h.svc.UpdateQuantity(r.Context(), sessionID, productID, req.Delta)
	h.respondJSON(w, http.StatusOK, h.toCartResponse(c))
}

// DELETE /api/v1/cart/items/{product_id}
func (h *ShopHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sessionID := getSessionID(r.Context())
	if sessionID == "" {
		h.respondError(w, http.StatusBadRequest, "missing_session", "no session id")
		return
	}

	c := h.svc.RemoveItem(r.Context(), sessionID, chi.URLParam(r, "product_id"))
	h.respondJSON(w, http.StatusOK, h.toCartResponse(c))
}

// DELETE /api/v1/cart
func (h *ShopHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	sessionID := getSessionID(r.Context())
	if sessionID == "" {
		h.respondError(w, http.StatusBadRequest, "missing_session", "no session id")
		return
	}

	c := h.svc.ClearCart(r.Context(), sessionID)
	h.respondJSON(w, http.StatusOK, h.toCartResponse(c))
}

// POST /api/v1/cart/quote
func (h *ShopHandler) Quote(w http.ResponseWriter, r *http.Request) {
	sessionID := getSessionID(r.Context())
	if sessionID == "" {
		h.respondError(w, http.StatusBadRequest, "missing_session", "no session id")
		return
	}

	var req QuoteRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	breakdown, _ := h.svc.Quote(r.Context(), sessionID, req.Destination.toDomain())
	h.respondJSON(w, http.StatusOK, toQuoteResponse(breakdown))
}

// POST /api/v1/checkout
func (h *ShopHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	sessionID := getSessionID(r.Context())
	if sessionID == "" {
		h.respondError(w, http.StatusBadRequest, "missing_session", "no session id")
		return
	}

	var req CheckoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	outcome, err := h.svc.Checkout(r.Context(), sessionID, req.Destination.toDomain(), req.Notes)
	if err != nil {
		if errors.Is(err, checkout.ErrEmptyCart) {
			h.respondError(w, http.StatusConflict, "empty_cart", "cart is empty")
			return
		}
		h.respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	h.respondJSON(w, http.StatusOK, toCheckoutResponse(outcome))
}

func (h *ShopHandler) toCartResponse(c domain.Cart) CartResponse {
	lines := make([]CartLineResponse, len(c.Lines))
	for i, l := range c.Lines {
		stock := 0
		if p, err := h.svc.Product(l.ProductID); err == nil {
			stock = p.Stock
		}
		lines[i] = CartLineResponse{
			ProductID: l.ProductID,
			Name:      l.Name,
			Price:     l.Price.StringFixed(2),
			Qty:       l.Qty,
			LineTotal: l.LineTotal().StringFixed(2),
			Stock:     stock,
		}
	}
	return CartResponse{Lines: lines, Units: c.Units()}
}

func (h *ShopHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Warn("failed to encode response", zap.Error(err))
	}
}

func (h *ShopHandler) respondError(w http.ResponseWriter, status int, code, message string) {
	h.respondJSON(w, status, ErrorResponse{Error: message, Code: code})
}
