package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warungkita/warung-pos/internal/modules/pos"
)

func nasiGorengOrder(id string) pos.Order {
	return pos.Order{
		ID:           id,
		CustomerName: "Budi",
		Items: []pos.CartItem{
			{ID: "1", Name: "Nasi Goreng", Price: 25000, Quantity: 1},
		},
		Total: 25000,
		Date:  time.Now(),
	}
}

func TestBuildSalesReportMergesByName(t *testing.T) {
	r := BuildSalesReport([]pos.Order{nasiGorengOrder("a"), nasiGorengOrder("b")})

	assert.Equal(t, 50000.0, r.TotalSales)
	assert.Equal(t, 2, r.TotalOrders)
	require.Contains(t, r.ProductsSold, "Nasi Goreng")
	assert.Equal(t, ProductSales{Quantity: 2, Revenue: 50000}, r.ProductsSold["Nasi Goreng"])
}

func TestBuildSalesReportEmptyHistory(t *testing.T) {
	r := BuildSalesReport(nil)

	assert.Zero(t, r.TotalSales)
	assert.Zero(t, r.TotalOrders)
	assert.Empty(t, r.ProductsSold)
}

func TestBuildSalesReportMultipleProducts(t *testing.T) {
	orders := []pos.Order{
		{
			ID: "a",
			Items: []pos.CartItem{
				{ID: "1", Name: "Nasi Goreng", Price: 25000, Quantity: 2},
				{ID: "2", Name: "Es Teh", Price: 5000, Quantity: 3},
			},
			Total: 65000,
		},
	}
	r := BuildSalesReport(orders)

	assert.Equal(t, 65000.0, r.TotalSales)
	assert.Equal(t, 1, r.TotalOrders)
	assert.Equal(t, ProductSales{Quantity: 2, Revenue: 50000}, r.ProductsSold["Nasi Goreng"])
	assert.Equal(t, ProductSales{Quantity: 3, Revenue: 15000}, r.ProductsSold["Es Teh"])
}

func TestWriteText(t *testing.T) {
	r := BuildSalesReport([]pos.Order{nasiGorengOrder("a"), nasiGorengOrder("b")})

	var buf strings.Builder
	now := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	require.NoError(t, WriteText(&buf, r, now))

	text := buf.String()
	assert.Contains(t, text, "LAPORAN PENJUALAN")
	assert.Contains(t, text, "14/03/2025")
	assert.Contains(t, text, "Total Penjualan: Rp 50.000")
	assert.Contains(t, text, "Total Pesanan: 2")
	assert.Contains(t, text, "Nasi Goreng:")
	assert.Contains(t, text, "Jumlah Terjual: 2")
	assert.Contains(t, text, "Pendapatan: Rp 50.000")
}

func TestFilename(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "laporan-penjualan-2025-03-14.txt", Filename(now))
}
