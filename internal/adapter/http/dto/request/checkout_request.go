package request

import (
	"servitec/internal/domain/entities"
	"servitec/internal/usecase"
)

type CheckoutItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CheckoutPaymentRequest carries the discriminated payment fields; only the
// ones for the chosen method are read. ReceivedAmount stays a raw string so
// the cash amount is parsed once, at full precision.
type CheckoutPaymentRequest struct {
	Method         string `json:"method" binding:"required"`
	ReceivedAmount string `json:"received_amount"`
	PhoneNumber    string `json:"phone_number"`
	Reference      string `json:"reference"`
	CardToken      string `json:"card_token"`
}

type CheckoutCustomerRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type CheckoutRequest struct {
	Items    []CheckoutItemRequest   `json:"items" binding:"required"`
	Payment  CheckoutPaymentRequest  `json:"payment" binding:"required"`
	Customer CheckoutCustomerRequest `json:"customer"`
}

func (r CheckoutRequest) ToLines() []usecase.CheckoutLine {
	lines := make([]usecase.CheckoutLine, 0, len(r.Items))
	for _, it := range r.Items {
		lines = append(lines, usecase.CheckoutLine{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return lines
}

func (r CheckoutRequest) ToPayment() usecase.PaymentInput {
	return usecase.PaymentInput{
		Method:         entities.PaymentMethod(r.Payment.Method),
		ReceivedAmount: r.Payment.ReceivedAmount,
		PhoneNumber:    r.Payment.PhoneNumber,
		Reference:      r.Payment.Reference,
		CardToken:      r.Payment.CardToken,
	}
}

func (r CheckoutRequest) ToCustomer() usecase.CheckoutCustomer {
	return usecase.CheckoutCustomer{
		Name:  r.Customer.Name,
		Phone: r.Customer.Phone,
		Email: r.Customer.Email,
	}
}
