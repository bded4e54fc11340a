// Package receipt renders printable purchase receipts. The terminal
// front-end opens the markup in a print window; this package only
// produces the document.
package receipt

import (
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/warungkita/warung-pos/internal/currency"
)

// Item is one receipt line.
type Item struct {
	Name     string
	Price    float64
	Quantity int
}

// Data is everything a receipt shows.
type Data struct {
	CustomerName string
	Items        []Item
	Total        float64
	Date         time.Time
}

var tmpl = template.Must(template.New("receipt").Funcs(template.FuncMap{
	"rupiah": currency.FormatRupiah,
	"lineTotal": func(it Item) float64 {
		return it.Price * float64(it.Quantity)
	},
}).Parse(`<!DOCTYPE html>
<html>
<head>
  <title>Struk Pembelian</title>
  <style>
    body { font-family: 'Courier New', monospace; padding: 20px; max-width: 300px; margin: 0 auto; }
    .header { text-align: center; margin-bottom: 20px; padding-bottom: 10px; border-bottom: 1px dashed #000; }
    .item { margin: 10px 0; display: flex; justify-content: space-between; }
    .item-details { margin-left: 20px; }
    .total { margin-top: 20px; padding-top: 10px; border-top: 1px dashed #000; font-weight: bold; }
    .footer { margin-top: 20px; text-align: center; font-size: 12px; }
    @media print { body { margin: 0; padding: 10px; } }
  </style>
</head>
<body>
  <div class="header">
    <h2 style="margin: 0;">Struk Pembelian</h2>
    <p style="margin: 5px 0;">Tanggal: {{.Date.Format "02/01/2006 15:04"}}</p>
    <p style="margin: 5px 0;">Pelanggan: {{.CustomerName}}</p>
  </div>
{{range .Items}}  <div class="item">
    <div>
      <div>{{.Name}}</div>
      <div class="item-details">{{.Quantity}} x {{rupiah .Price}}</div>
    </div>
    <div>{{rupiah (lineTotal .)}}</div>
  </div>
{{end}}
  <div class="total">
    <div class="item">
      <div>Total</div>
      <div>{{rupiah .Total}}</div>
    </div>
  </div>

  <div class="footer">
    <p>Terima kasih atas kunjungan Anda!</p>
  </div>
</body>
</html>
`))

// Render writes the printable receipt markup for d to w.
func Render(w io.Writer, d Data) error {
	if err := tmpl.Execute(w, d); err != nil {
		return fmt.Errorf("receipt: render: %w", err)
	}
	return nil
}
