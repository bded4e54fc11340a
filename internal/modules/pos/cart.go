package pos

import "github.com/warungkita/warung-pos/internal/modules/catalog"

// addItem returns the cart with one more of p. Adding a product already
// in the cart bumps its quantity instead of appending a second entry, so
// the cart stays unique by product id. Stock is not checked here; the
// terminal lets the cart grow past the shelf count.
func addItem(cart []CartItem, p catalog.Product) []CartItem {
	for i := range cart {
		if cart[i].ID == p.ID {
			out := make([]CartItem, len(cart))
			copy(out, cart)
			out[i].Quantity++
			return out
		}
	}
	out := make([]CartItem, 0, len(cart)+1)
	out = append(out, cart...)
	return append(out, CartItem{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Stock:    p.Stock,
		Category: p.Category,
		Quantity: 1,
	})
}

// cartTotal sums price*quantity over the cart.
func cartTotal(cart []CartItem) float64 {
	var total float64
	for _, item := range cart {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
