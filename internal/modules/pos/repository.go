package pos

import (
	"context"
	"errors"
)

var (
	// ErrNotFound indicates the referenced order id is absent from the
	// history.
	ErrNotFound = errors.New("order not found")
	// ErrEmptyCustomerName indicates checkout with a blank customer name.
	ErrEmptyCustomerName = errors.New("customer name is required")
	// ErrEmptyCart indicates checkout with nothing in the cart.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrInsufficientStock indicates a carted quantity exceeds catalog
	// stock. Only returned when the terminal runs in strict-stock mode.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Repository defines order-history persistence. The history is always
// loaded and saved whole, like the catalog blob.
type Repository interface {
	Load(ctx context.Context) ([]Order, error)
	Save(ctx context.Context, orders []Order) error
}
