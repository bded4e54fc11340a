package report

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/warungkita/warung-pos/internal/modules/pos"
)

// OrderSource supplies the order history the report is derived from.
// The POS service satisfies it.
type OrderSource interface {
	ListOrders(ctx context.Context) ([]pos.Order, error)
}

// Handler exposes sales-report HTTP endpoints.
type Handler struct{ orders OrderSource }

func NewHandler(orders OrderSource) *Handler { return &Handler{orders: orders} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/report", func(r chi.Router) {
		r.Get("/", h.getReport)           // GET /api/v1/report
		r.Get("/export", h.exportReport)  // GET /api/v1/report/export
	})
}

func (h *Handler) getReport(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.ListOrders(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, BuildSalesReport(orders))
}

// exportReport serves the plain-text report as a download.
func (h *Handler) exportReport(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.ListOrders(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	now := time.Now()
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", Filename(now)))
	if err := WriteText(w, BuildSalesReport(orders), now); err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
