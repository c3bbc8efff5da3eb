package domain

import (
	"strings"
	"time"
)

// CartLine is one entry of the active sale. Price and MaxStock are snapshots
// taken when the batch was added.
type CartLine struct {
	CartID      string `json:"cartId"`
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	BatchID     string `json:"batchId"`
	BatchNumber string `json:"batchNumber"`
	ExpiryDate  Date   `json:"expiryDate"`
	Price       int64  `json:"price"`
	Quantity    int    `json:"quantity"`
	MaxStock    int    `json:"maxStock"`
}

// LineTotal is price times quantity.
func (l CartLine) LineTotal() int64 {
	return l.Price * int64(l.Quantity)
}

// PaymentMethod is how a sale was settled.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "Cash"
	PaymentPOS      PaymentMethod = "POS"
	PaymentTransfer PaymentMethod = "Transfer"
)

// PaymentMethods lists the accepted methods in display order.
var PaymentMethods = []PaymentMethod{PaymentCash, PaymentPOS, PaymentTransfer}

// Valid reports whether m is one of PaymentMethods.
func (m PaymentMethod) Valid() bool {
	for _, known := range PaymentMethods {
		if m == known {
			return true
		}
	}
	return false
}

// ParsePaymentMethod matches s case-insensitively against PaymentMethods.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	for _, m := range PaymentMethods {
		if strings.EqualFold(strings.TrimSpace(s), string(m)) {
			return m, nil
		}
	}
	return "", NewInvalidPaymentMethodError(s)
}

// SaleRecord is the immutable receipt of a completed sale.
// ItemsCount counts cart lines, not units.
type SaleRecord struct {
	ID         string        `json:"id"`
	Time       time.Time     `json:"time"`
	Total      int64         `json:"total"`
	Method     PaymentMethod `json:"method"`
	ItemsCount int           `json:"itemsCount"`
}

// Totals is the derived money summary of a cart.
type Totals struct {
	Subtotal int64 `json:"subtotal"`
	Discount int64 `json:"discount"`
	Total    int64 `json:"total"`
}
