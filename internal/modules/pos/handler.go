package pos

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/warungkita/warung-pos/internal/modules/catalog"
	"github.com/warungkita/warung-pos/internal/receipt"
)

// Handler exposes cart, checkout and order-history HTTP endpoints.
type Handler struct {
	service  Service
	validate *validator.Validate
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service, validate: validator.New()}
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/cart", func(r chi.Router) {
		r.Get("/", h.getCart)          // GET    /api/v1/cart
		r.Post("/items", h.addToCart)  // POST   /api/v1/cart/items
		r.Delete("/", h.clearCart)     // DELETE /api/v1/cart
	})
	r.Post("/api/v1/checkout", h.checkout) // POST /api/v1/checkout
	r.Route("/api/v1/orders", func(r chi.Router) {
		r.Get("/", h.listOrders)                 // GET /api/v1/orders
		r.Get("/{id}/receipt", h.orderReceipt)   // GET /api/v1/orders/{id}/receipt
	})
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.service.Cart())
}

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	var req AddToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	cart, err := h.service.AddToCart(r.Context(), req.ProductID)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, catalog.ErrNotFound) {
			code = http.StatusNotFound
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, cart)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	h.service.ClearCart()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	order, err := h.service.Checkout(r.Context(), req)
	if err != nil {
		code := http.StatusInternalServerError
		switch {
		case errors.Is(err, ErrEmptyCustomerName), errors.Is(err, ErrEmptyCart):
			code = http.StatusBadRequest
		case errors.Is(err, ErrInsufficientStock):
			code = http.StatusUnprocessableEntity
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusCreated, order)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.ListOrders(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, orders)
}

// orderReceipt serves the printable markup for an order. The front-end
// opens it in a new window and triggers the print dialog itself.
func (h *Handler) orderReceipt(w http.ResponseWriter, r *http.Request) {
	order, err := h.service.GetOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, ErrNotFound) {
			code = http.StatusNotFound
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := receipt.Render(w, receipt.Data{
		CustomerName: order.CustomerName,
		Items:        toReceiptItems(order.Items),
		Total:        order.Total,
		Date:         order.Date,
	}); err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

func toReceiptItems(items []CartItem) []receipt.Item {
	out := make([]receipt.Item, len(items))
	for i, item := range items {
		out[i] = receipt.Item{Name: item.Name, Price: item.Price, Quantity: item.Quantity}
	}
	return out
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
