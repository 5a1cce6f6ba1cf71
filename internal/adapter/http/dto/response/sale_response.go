package response

import (
	"time"

	"github.com/shopspring/decimal"

	"servitec/internal/domain/entities"
)

type SaleItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

type PaymentDetailsResponse struct {
	Method         string           `json:"method"`
	Amount         decimal.Decimal  `json:"amount"`
	ReceivedAmount *decimal.Decimal `json:"received_amount,omitempty"`
	Change         *decimal.Decimal `json:"change,omitempty"`
	PhoneNumber    string           `json:"phone_number,omitempty"`
	Reference      string           `json:"reference,omitempty"`
}

type SaleResponse struct {
	ID            string                 `json:"id"`
	Items         []SaleItemResponse     `json:"items"`
	Subtotal      decimal.Decimal        `json:"subtotal"`
	Tax           decimal.Decimal        `json:"tax"`
	Total         decimal.Decimal        `json:"total"`
	Payment       PaymentDetailsResponse `json:"payment"`
	CustomerName  string                 `json:"customer_name,omitempty"`
	CustomerPhone string                 `json:"customer_phone,omitempty"`
	CustomerEmail string                 `json:"customer_email,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
}

func FromSale(s entities.Sale) SaleResponse {
	items := make([]SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, SaleItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  it.TotalPrice,
		})
	}

	return SaleResponse{
		ID:       s.ID,
		Items:    items,
		Subtotal: s.Subtotal,
		Tax:      s.Tax,
		Total:    s.Total,
		Payment: PaymentDetailsResponse{
			Method:         string(s.Payment.Method),
			Amount:         s.Payment.Amount,
			ReceivedAmount: s.Payment.ReceivedAmount,
			Change:         s.Payment.Change,
			PhoneNumber:    s.Payment.PhoneNumber,
			Reference:      s.Payment.Reference,
		},
		CustomerName:  s.CustomerName,
		CustomerPhone: s.CustomerPhone,
		CustomerEmail: s.CustomerEmail,
		CreatedAt:     s.CreatedAt,
	}
}

func FromSales(sales []entities.Sale) []SaleResponse {
	out := make([]SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, FromSale(s))
	}
	return out
}
