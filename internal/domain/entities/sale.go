package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod selects which PaymentDetails fields are required at checkout.
type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "CASH"
	PaymentMethodYape PaymentMethod = "YAPE"
	PaymentMethodCard PaymentMethod = "CARD"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodYape, PaymentMethodCard:
		return true
	}
	return false
}

// TaxRate is the IGV applied to every sale. Policy constant, not
// user-configurable.
var TaxRate = decimal.NewFromFloat(0.18)

// SaleSummary is the money breakdown of a cart about to be checked out.
type SaleSummary struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// Summarize computes subtotal, tax and total for a cart. Tax is rounded to
// two decimal places; the total is subtotal plus the rounded tax.
func Summarize(cart *Cart) SaleSummary {
	subtotal := cart.Total()
	tax := subtotal.Mul(TaxRate).Round(2)
	return SaleSummary{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}

// PaymentDetails is the immutable payment record of a finalized sale. Only
// the fields of the chosen method are populated.
type PaymentDetails struct {
	Method         PaymentMethod    `json:"method"`
	Amount         decimal.Decimal  `json:"amount"`
	ReceivedAmount *decimal.Decimal `json:"received_amount,omitempty"`
	Change         *decimal.Decimal `json:"change,omitempty"`
	PhoneNumber    string           `json:"phone_number,omitempty"`
	Reference      string           `json:"reference,omitempty"`
}

// Sale is a completed POS transaction persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// A sale is an immutable receipt: it snapshots the line items and the money
// breakdown at finalization time and is never edited afterwards.

type Sale struct {
	ID            string          `json:"id"`
	Items         []SaleItem      `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
	Payment       PaymentDetails  `json:"payment"`
	CustomerName  string          `json:"customer_name,omitempty"`
	CustomerPhone string          `json:"customer_phone,omitempty"`
	CustomerEmail string          `json:"customer_email,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}
