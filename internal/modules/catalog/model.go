package catalog

// Product is a sellable item in the catalog. Stock is decremented by the
// POS module at checkout; it may go negative because the terminal applies
// no floor check.
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	Category string  `json:"category"`
}

// ProductRequest holds the data for creating or replacing a product.
// Field constraints are enforced at the edge; the service trusts its
// caller.
type ProductRequest struct {
	Name     string  `json:"name" validate:"required"`
	Price    float64 `json:"price" validate:"gte=0"`
	Stock    int     `json:"stock" validate:"gte=0"`
	Category string  `json:"category" validate:"required"`
}

// SeedProducts is the catalog persisted on first run, before anything
// has been saved.
func SeedProducts() []Product {
	return []Product{
		{ID: "1", Name: "Nasi Goreng", Price: 25000, Stock: 100, Category: "Makanan"},
		{ID: "2", Name: "Es Teh", Price: 5000, Stock: 50, Category: "Minuman"},
		{ID: "3", Name: "Ayam Goreng", Price: 15000, Stock: 75, Category: "Makanan"},
	}
}
