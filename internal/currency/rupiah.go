// Package currency formats monetary amounts for display on receipts and
// reports. The terminal trades in Indonesian Rupiah only.
package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.Indonesian)

// FormatRupiah renders an amount as an id-ID Rupiah string with no
// fraction digits, e.g. 25000 -> "Rp 25.000".
func FormatRupiah(amount float64) string {
	return printer.Sprintf("Rp %v", number.Decimal(amount, number.MaxFractionDigits(0)))
}
