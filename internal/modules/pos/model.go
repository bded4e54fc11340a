package pos

import "time"

// CartItem is a product selected for the in-progress sale, with the
// quantity taken. The product fields are a copy, not a live reference:
// an order keeps the price it was sold at even if the catalog changes.
type CartItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	Category string  `json:"category"`
	Quantity int     `json:"quantity"`
}

// Order is an immutable record of a completed sale. The history is
// append-only; nothing ever edits or recomputes a persisted order.
type Order struct {
	ID           string     `json:"id"`
	CustomerName string     `json:"customerName"`
	Items        []CartItem `json:"items"`
	Total        float64    `json:"total"`
	Date         time.Time  `json:"date"`
}

// AddToCartRequest is the payload for putting a catalog product in the
// cart.
type AddToCartRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

// CheckoutRequest is the payload for finalising the sale.
type CheckoutRequest struct {
	CustomerName string `json:"customerName"`
}

// CartView is the cart plus its running total, as shown on the terminal.
type CartView struct {
	Items []CartItem `json:"items"`
	Total float64    `json:"total"`
}
