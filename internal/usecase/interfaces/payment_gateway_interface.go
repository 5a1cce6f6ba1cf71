package interfaces

import (
	"context"

	"github.com/shopspring/decimal"
)

// ICardPaymentGateway abstracts the external card processor (e.g. Mercado
// Pago). Cash and Yape payments are settled at the counter and never touch a
// gateway; card checkouts go through it when one is configured.
type ICardPaymentGateway interface {
	ChargeCard(ctx context.Context, amount decimal.Decimal, cardToken, description string) (providerPaymentID string, providerStatus string, err error)
}
