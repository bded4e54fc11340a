package report

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/warungkita/warung-pos/internal/currency"
)

// Filename returns the download name for a report exported at now,
// e.g. "laporan-penjualan-2025-03-14.txt".
func Filename(now time.Time) string {
	return fmt.Sprintf("laporan-penjualan-%s.txt", now.Format("2006-01-02"))
}

// WriteText writes the plain-text rendition of the report to w. Product
// lines are sorted by name so the export is stable across runs.
func WriteText(w io.Writer, r SalesReport, now time.Time) error {
	names := make([]string, 0, len(r.ProductsSold))
	for name := range r.ProductsSold {
		names = append(names, name)
	}
	sort.Strings(names)

	if _, err := fmt.Fprintf(w, "LAPORAN PENJUALAN\n%s\n\n", now.Format("02/01/2006")); err != nil {
		return fmt.Errorf("report: write export: %w", err)
	}
	if _, err := fmt.Fprintf(w, "Total Penjualan: %s\nTotal Pesanan: %d\n\nDETAIL PRODUK:\n",
		currency.FormatRupiah(r.TotalSales), r.TotalOrders); err != nil {
		return fmt.Errorf("report: write export: %w", err)
	}
	for _, name := range names {
		sold := r.ProductsSold[name]
		if _, err := fmt.Fprintf(w, "%s:\n  Jumlah Terjual: %d\n  Pendapatan: %s\n\n",
			name, sold.Quantity, currency.FormatRupiah(sold.Revenue)); err != nil {
			return fmt.Errorf("report: write export: %w", err)
		}
	}
	return nil
}
