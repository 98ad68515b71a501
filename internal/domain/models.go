package domain

import "time"

type OrderItem struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Qty   int     `json:"qty"`
	Price float64 `json:"price"`
}

type Customer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

// Totals come from the client and are printed verbatim; the server never
// recomputes them from the item lines.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Delivery float64 `json:"delivery"`
	Total    float64 `json:"total"`
}

type OrderRequest struct {
	Items    []OrderItem `json:"items"`
	Customer Customer    `json:"customer"`
	Totals   Totals      `json:"totals"`
}

const (
	EventOrderSubmitted = "order_submitted"
	EventPrintFailed    = "print_failed"
)

type OrderEvent struct {
	Type      string    `json:"type"`
	OrderID   int       `json:"order_id,omitempty"`
	Total     float64   `json:"total,omitempty"`
	FilePath  string    `json:"file_path,omitempty"`
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
