package printing

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/skip2/go-qrcode"

	"wempy-orders/internal/domain"
)

// ReceiptRenderer writes a 72mm receipt page for an order. The layout is
// fully determined by the order and its number; only the date line depends on
// the clock.
//
// The page keeps left-to-right flow and simulates RTL with right-aligned text
// and reversed column order, which is why the customer table puts labels on
// the right while the items table lists its columns total/price/qty/name.
type ReceiptRenderer struct {
	tmpl    *template.Template
	baseURL string
	now     func() time.Time
}

func NewReceiptRenderer(baseURL string) (*ReceiptRenderer, error) {
	tmpl, err := template.New("receipt").Funcs(template.FuncMap{
		"money":     formatMoney,
		"lineTotal": lineTotal,
	}).Parse(receiptTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse receipt template: %w", err)
	}
	return &ReceiptRenderer{
		tmpl:    tmpl,
		baseURL: strings.TrimRight(baseURL, "/"),
		now:     time.Now,
	}, nil
}

// formatMoney always renders exactly two fractional digits.
func formatMoney(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

func lineTotal(price float64, qty int) string {
	return decimal.NewFromFloat(price).Mul(decimal.NewFromInt(int64(qty))).StringFixed(2)
}

type receiptData struct {
	OrderID   int
	Date      string
	Separator string
	Order     *domain.OrderRequest
	QRCode    template.URL
}

func (r *ReceiptRenderer) Render(order *domain.OrderRequest, orderID int, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create orders directory: %w", err)
	}

	qr, err := r.reprintQR(orderID)
	if err != nil {
		// The receipt is still printable without the QR footer.
		log.Printf("Warning: failed to generate QR code for order %d: %v", orderID, err)
	}

	data := receiptData{
		OrderID:   orderID,
		Date:      r.now().Format("2006-01-02 15:04"),
		Separator: strings.Repeat("-", 30),
		Order:     order,
		QRCode:    qr,
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to render receipt for order %d: %w", orderID, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write receipt file: %w", err)
	}
	return nil
}

// reprintQR encodes the reprint URL so staff can resend the order to the
// printer by scanning the receipt.
func (r *ReceiptRenderer) reprintQR(orderID int) (template.URL, error) {
	png, err := qrcode.Encode(fmt.Sprintf("%s/print_order/%d", r.baseURL, orderID), qrcode.Medium, 128)
	if err != nil {
		return "", err
	}
	return template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png)), nil
}

const receiptTemplate = `<!DOCTYPE html>
<html lang="ar">
<head>
<meta charset="utf-8">
<title>Order #{{.OrderID}}</title>
<style>
  @page { size: 72mm auto; margin: 10mm 4mm; }
  body { width: 72mm; margin: 0 auto; font-family: Arial, sans-serif; font-size: 10pt; text-align: right; }
  h1 { font-size: 14pt; text-align: center; }
  p.center { text-align: center; }
  p.section { font-weight: bold; }
  table { width: 100%; border-collapse: collapse; margin-bottom: 8px; }
  td, th { border: 1px solid #000; padding: 2px 4px; }
  th { font-weight: bold; text-align: center; }
  td.num { text-align: center; }
  td.label { font-weight: bold; }
  td.notes { text-align: left; }
  p.qr { text-align: center; }
</style>
</head>
<body>
<h1>Order #{{.OrderID}}</h1>
<p class="center">Date: {{.Date}}</p>
<p class="center">{{.Separator}}</p>
<p class="section">بيانات العميل</p>
<table class="customer">
<tr><td>{{.Order.Customer.Name}}</td><td class="label">الاسم:</td></tr>
<tr><td>{{.Order.Customer.Phone}}</td><td class="label">الهاتف:</td></tr>
<tr><td>{{.Order.Customer.Address}}</td><td class="label">العنوان:</td></tr>
</table>
<p class="section">تفاصيل الطلب</p>
<table class="items">
<tr><th>الإجمالي</th><th>السعر</th><th>الكمية</th><th>الصنف</th></tr>
{{- range .Order.Items}}
<tr><td class="num">{{lineTotal .Price .Qty}}</td><td class="num">{{money .Price}}</td><td class="num">{{.Qty}}</td><td>{{.Name}}</td></tr>
{{- end}}
</table>
<p class="section">الحساب</p>
<table class="totals">
<tr><td>{{money .Order.Totals.Subtotal}} ج.م</td><td class="label">المجموع الفرعي:</td></tr>
<tr><td>{{money .Order.Totals.Delivery}} ج.م</td><td class="label">رسوم التوصيل:</td></tr>
<tr><td class="label">{{money .Order.Totals.Total}} ج.م</td><td class="label">الإجمالي النهائي:</td></tr>
</table>
{{- if .Order.Customer.Notes}}
<p class="section">الملاحظات</p>
<table class="notes">
<tr><td class="notes">{{.Order.Customer.Notes}}</td></tr>
</table>
{{- end}}
{{- if .QRCode}}
<p class="qr"><img src="{{.QRCode}}" alt="reprint" width="96" height="96"></p>
{{- end}}
</body>
</html>
`
