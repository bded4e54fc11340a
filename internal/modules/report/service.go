package report

import "github.com/warungkita/warung-pos/internal/modules/pos"

// BuildSalesReport folds the order history into totals and a per-product
// breakdown. The breakdown is keyed by product name, so distinct
// products sharing a name merge into one line.
func BuildSalesReport(orders []pos.Order) SalesReport {
	r := SalesReport{
		TotalOrders:  len(orders),
		ProductsSold: make(map[string]ProductSales),
	}
	for _, order := range orders {
		r.TotalSales += order.Total
		for _, item := range order.Items {
			sold := r.ProductsSold[item.Name]
			sold.Quantity += item.Quantity
			sold.Revenue += item.Price * float64(item.Quantity)
			r.ProductsSold[item.Name] = sold
		}
	}
	return r
}
