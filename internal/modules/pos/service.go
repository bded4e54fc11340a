package pos

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/warungkita/warung-pos/internal/modules/catalog"
	"github.com/warungkita/warung-pos/internal/storage"
)

// Service defines the terminal's cart and checkout logic. The cart is
// ephemeral state owned by the running service: it is never persisted
// and an application restart clears it.
type Service interface {
	// AddToCart puts one unit of the product in the cart, bumping the
	// quantity if the product is already carted.
	AddToCart(ctx context.Context, productID string) (CartView, error)

	// Cart returns the current cart and its running total.
	Cart() CartView

	// ClearCart abandons the in-progress sale.
	ClearCart()

	// Checkout finalises the sale: it freezes the cart into an order,
	// decrements catalog stock for every carted product, appends the
	// order to the history, and clears the cart. All of that happens or
	// none of it does; a persistence failure leaves the cart intact and
	// the catalog as it was.
	Checkout(ctx context.Context, req CheckoutRequest) (*Order, error)

	// ListOrders returns the order history, oldest first.
	ListOrders(ctx context.Context) ([]Order, error)

	// GetOrder retrieves one order from the history.
	GetOrder(ctx context.Context, id string) (*Order, error)
}

type service struct {
	orders      Repository
	products    catalog.Repository
	logger      *slog.Logger
	strictStock bool

	mu   sync.Mutex
	cart []CartItem
}

// NewService creates a new POS service. With strictStock enabled,
// checkout refuses to oversell instead of letting stock go negative.
func NewService(orders Repository, products catalog.Repository, logger *slog.Logger, strictStock bool) Service {
	return &service{orders: orders, products: products, logger: logger, strictStock: strictStock}
}

func (s *service) loadProducts(ctx context.Context) ([]catalog.Product, error) {
	products, err := s.products.Load(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrCorrupt) {
			s.logger.Warn("catalog blob corrupt, reset to seed", slog.Any("error", err))
			return products, nil
		}
		return nil, err
	}
	return products, nil
}

func (s *service) loadOrders(ctx context.Context) ([]Order, error) {
	orders, err := s.orders.Load(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrCorrupt) {
			s.logger.Warn("order history blob corrupt, reset to empty", slog.Any("error", err))
			return orders, nil
		}
		return nil, err
	}
	return orders, nil
}

func (s *service) AddToCart(ctx context.Context, productID string) (CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.loadProducts(ctx)
	if err != nil {
		return CartView{}, err
	}
	for _, p := range products {
		if p.ID == productID {
			s.cart = addItem(s.cart, p)
			return s.cartView(), nil
		}
	}
	return CartView{}, fmt.Errorf("%w: %s", catalog.ErrNotFound, productID)
}

func (s *service) Cart() CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartView()
}

func (s *service) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = nil
}

func (s *service) cartView() CartView {
	items := make([]CartItem, len(s.cart))
	copy(items, s.cart)
	return CartView{Items: items, Total: cartTotal(s.cart)}
}

func (s *service) Checkout(ctx context.Context, req CheckoutRequest) (*Order, error) {
	customerName := strings.TrimSpace(req.CustomerName)
	if customerName == "" {
		return nil, ErrEmptyCustomerName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.cart) == 0 {
		return nil, ErrEmptyCart
	}

	products, err := s.loadProducts(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.loadOrders(ctx)
	if err != nil {
		return nil, err
	}

	if s.strictStock {
		for _, item := range s.cart {
			for _, p := range products {
				if p.ID == item.ID && p.Stock < item.Quantity {
					return nil, fmt.Errorf("%w: %s has %d left, cart wants %d",
						ErrInsufficientStock, p.Name, p.Stock, item.Quantity)
				}
			}
		}
	}

	order := Order{
		ID:           uuid.NewString(),
		CustomerName: customerName,
		Items:        append([]CartItem(nil), s.cart...),
		Total:        cartTotal(s.cart),
		Date:         time.Now().UTC(),
	}

	// Decrement stock for every carted product still in the catalog.
	// A carted product deleted in the meantime is simply skipped.
	updated := make([]catalog.Product, len(products))
	copy(updated, products)
	for i := range updated {
		for _, item := range s.cart {
			if updated[i].ID == item.ID {
				updated[i].Stock -= item.Quantity
			}
		}
	}

	if err := s.products.Save(ctx, updated); err != nil {
		return nil, fmt.Errorf("pos: persist catalog: %w", err)
	}
	if err := s.orders.Save(ctx, append(orders, order)); err != nil {
		// roll the catalog back so the two blobs stay consistent
		if restoreErr := s.products.Save(ctx, products); restoreErr != nil {
			s.logger.Error("catalog rollback failed after order persist failure",
				slog.Any("error", restoreErr))
		}
		return nil, fmt.Errorf("pos: persist order: %w", err)
	}

	s.cart = nil
	return &order, nil
}

func (s *service) ListOrders(ctx context.Context) ([]Order, error) {
	return s.loadOrders(ctx)
}

func (s *service) GetOrder(ctx context.Context, id string) (*Order, error) {
	orders, err := s.loadOrders(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}
