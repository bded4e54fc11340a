package report

// ProductSales aggregates one product line across the whole history.
type ProductSales struct {
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// SalesReport is a derived view over the order history. It is rebuilt on
// every request and never persisted.
type SalesReport struct {
	TotalSales   float64                 `json:"totalSales"`
	TotalOrders  int                     `json:"totalOrders"`
	ProductsSold map[string]ProductSales `json:"productsSold"`
}
