package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"servitec/internal/domain/entities"
	"servitec/internal/usecase/interfaces"
	"servitec/pkg"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrSaleNotFound        = errors.New("sale not found")
	ErrInvalidSaleID       = errors.New("invalid sale id")
	ErrProductNotFound     = errors.New("product not found")
	ErrInsufficientPayment = errors.New("received amount is less than the total")
	ErrCardPaymentRejected = errors.New("card payment rejected by the provider")
)

// CheckoutLine references a catalog product and the quantity being sold.
type CheckoutLine struct {
	ProductID string
	Quantity  int
}

// PaymentInput carries the method-specific fields entered at the register.
// ReceivedAmount is kept as the raw string so the amount is parsed once, at
// full precision.
type PaymentInput struct {
	Method         entities.PaymentMethod
	ReceivedAmount string
	PhoneNumber    string
	Reference      string
	CardToken      string
}

// CheckoutCustomer is the optional customer snapshot printed on the receipt.
type CheckoutCustomer struct {
	Name  string
	Phone string
	Email string
}

// ICheckoutUseCase turns a cart into a completed, persisted sale.
//
// Flow:
//   - Checkout builds the cart from catalog snapshots (stock-gated) and
//     delegates to Finalize.
//   - Finalize validates the payment for the chosen method, decrements stock
//     with conditional writes and persists the sale. On any failure no sale
//     is recorded and completed decrements are compensated.

type ICheckoutUseCase interface {
	Checkout(ctx context.Context, lines []CheckoutLine, payment PaymentInput, customer CheckoutCustomer) (entities.Sale, error)
	Finalize(ctx context.Context, cart *entities.Cart, payment PaymentInput, customer CheckoutCustomer) (entities.Sale, error)
	GetByID(ctx context.Context, id string) (entities.Sale, error)
	List(ctx context.Context) ([]entities.Sale, error)
}

type CheckoutUseCase struct {
	saleRepo    interfaces.ISaleRepository
	productRepo interfaces.IProductRepository
	gateway     interfaces.ICardPaymentGateway
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(saleRepo interfaces.ISaleRepository, productRepo interfaces.IProductRepository, gateway interfaces.ICardPaymentGateway) *CheckoutUseCase {
	return &CheckoutUseCase{saleRepo: saleRepo, productRepo: productRepo, gateway: gateway}
}

func (u *CheckoutUseCase) Checkout(ctx context.Context, lines []CheckoutLine, payment PaymentInput, customer CheckoutCustomer) (entities.Sale, error) {
	log.Printf("[checkout][usecase] start lines=%d method=%s", len(lines), payment.Method)

	if len(lines) == 0 {
		return entities.Sale{}, entities.ErrEmptyCart
	}

	v := &pkg.ValidationError{}
	for i, l := range lines {
		if strings.TrimSpace(l.ProductID) == "" {
			v.Add(fmt.Sprintf("items[%d].product_id", i), "product id is required")
		}
		if l.Quantity < 1 {
			v.Add(fmt.Sprintf("items[%d].quantity", i), "quantity must be at least 1")
		}
	}
	if err := v.OrNil(); err != nil {
		return entities.Sale{}, err
	}

	cart := entities.NewCart()
	for _, l := range lines {
		p, err := u.productRepo.GetByID(ctx, l.ProductID)
		if err != nil {
			return entities.Sale{}, err
		}
		if p.ID == "" {
			return entities.Sale{}, ErrProductNotFound
		}

		item, err := cart.Add(p)
		if err != nil {
			log.Printf("[checkout][usecase] add rejected product_id=%s stock=%d err=%v", p.ID, p.Stock, err)
			return entities.Sale{}, err
		}
		for q := 1; q < l.Quantity; q++ {
			if _, err := cart.Increment(item.ID); err != nil {
				return entities.Sale{}, err
			}
		}
	}

	return u.Finalize(ctx, cart, payment, customer)
}

func (u *CheckoutUseCase) Finalize(ctx context.Context, cart *entities.Cart, payment PaymentInput, customer CheckoutCustomer) (entities.Sale, error) {
	if cart == nil || cart.Len() == 0 {
		return entities.Sale{}, entities.ErrEmptyCart
	}

	summary := entities.Summarize(cart)
	log.Printf("[checkout][usecase] summary subtotal=%s tax=%s total=%s", summary.Subtotal, summary.Tax, summary.Total)

	details, err := u.buildPayment(ctx, summary, payment)
	if err != nil {
		return entities.Sale{}, err
	}

	items := cart.Items()
	if err := u.decrementStock(ctx, items); err != nil {
		return entities.Sale{}, err
	}

	sale := entities.Sale{
		ID:            uuid.NewString(),
		Items:         items,
		Subtotal:      summary.Subtotal,
		Tax:           summary.Tax,
		Total:         summary.Total,
		Payment:       details,
		CustomerName:  strings.TrimSpace(customer.Name),
		CustomerPhone: strings.TrimSpace(customer.Phone),
		CustomerEmail: strings.TrimSpace(customer.Email),
		CreatedAt:     time.Now().UTC(),
	}

	created, err := u.saleRepo.Create(ctx, sale)
	if err != nil {
		log.Printf("[checkout][usecase] sale create failed sale_id=%s err=%v", sale.ID, err)
		u.restock(ctx, items)
		return entities.Sale{}, err
	}

	log.Printf("[checkout][usecase] sale created sale_id=%s total=%s method=%s", created.ID, created.Total, created.Payment.Method)
	return created, nil
}

// buildPayment runs the method-specific validation and, for gateway-backed
// card payments, charges the card. The returned details are immutable once a
// sale is built around them.
func (u *CheckoutUseCase) buildPayment(ctx context.Context, summary entities.SaleSummary, in PaymentInput) (entities.PaymentDetails, error) {
	if !in.Method.Valid() {
		v := &pkg.ValidationError{}
		v.Add("payment_method", "payment method must be CASH, YAPE or CARD")
		return entities.PaymentDetails{}, v
	}

	details := entities.PaymentDetails{Method: in.Method, Amount: summary.Total}

	switch in.Method {
	case entities.PaymentMethodCash:
		raw := strings.TrimSpace(in.ReceivedAmount)
		received, err := decimal.NewFromString(raw)
		if raw == "" || err != nil || received.IsNegative() {
			v := &pkg.ValidationError{}
			v.Add("received_amount", "must be a non-negative number")
			return entities.PaymentDetails{}, v
		}
		if received.LessThan(summary.Total) {
			return entities.PaymentDetails{}, ErrInsufficientPayment
		}
		change := received.Sub(summary.Total)
		details.ReceivedAmount = &received
		details.Change = &change

	case entities.PaymentMethodYape:
		v := &pkg.ValidationError{}
		if strings.TrimSpace(in.PhoneNumber) == "" {
			v.Add("phone_number", "yape phone number is required")
		}
		if strings.TrimSpace(in.Reference) == "" {
			v.Add("reference", "yape operation code is required")
		}
		if err := v.OrNil(); err != nil {
			return entities.PaymentDetails{}, err
		}
		details.PhoneNumber = strings.TrimSpace(in.PhoneNumber)
		details.Reference = strings.TrimSpace(in.Reference)

	case entities.PaymentMethodCard:
		if u.gateway != nil && strings.TrimSpace(in.CardToken) != "" {
			providerID, status, err := u.gateway.ChargeCard(ctx, summary.Total, in.CardToken, "POS sale")
			if err != nil {
				log.Printf("[checkout][usecase] gateway charge failed err=%v", err)
				return entities.PaymentDetails{}, err
			}
			if status != "approved" {
				log.Printf("[checkout][usecase] gateway charge not approved status=%s", status)
				return entities.PaymentDetails{}, ErrCardPaymentRejected
			}
			details.Reference = providerID
			break
		}
		if strings.TrimSpace(in.Reference) == "" {
			v := &pkg.ValidationError{}
			v.Add("reference", "card reference is required")
			return entities.PaymentDetails{}, v
		}
		details.Reference = strings.TrimSpace(in.Reference)
	}

	return details, nil
}

// decrementStock applies all line decrements; a failed conditional write
// means the shelf ran dry between cart and checkout. Already-applied
// decrements are compensated so no partial sale leaks into inventory.
func (u *CheckoutUseCase) decrementStock(ctx context.Context, items []entities.SaleItem) error {
	done := make([]entities.SaleItem, 0, len(items))
	for _, it := range items {
		p, err := u.productRepo.AdjustStock(ctx, it.ProductID, -it.Quantity)
		if err != nil {
			u.restock(ctx, done)
			return err
		}
		if p.ID == "" {
			log.Printf("[checkout][usecase] stock decrement rejected product_id=%s qty=%d", it.ProductID, it.Quantity)
			u.restock(ctx, done)
			return entities.ErrOutOfStock
		}
		done = append(done, it)
	}
	return nil
}

func (u *CheckoutUseCase) restock(ctx context.Context, items []entities.SaleItem) {
	for _, it := range items {
		if _, err := u.productRepo.AdjustStock(ctx, it.ProductID, it.Quantity); err != nil {
			log.Printf("[checkout][usecase] restock compensation failed product_id=%s qty=%d err=%v", it.ProductID, it.Quantity, err)
		}
	}
}

func (u *CheckoutUseCase) GetByID(ctx context.Context, id string) (entities.Sale, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Sale{}, ErrInvalidSaleID
	}

	s, err := u.saleRepo.GetByID(ctx, id)
	if err != nil {
		return entities.Sale{}, err
	}
	if s.ID == "" {
		return entities.Sale{}, ErrSaleNotFound
	}
	return s, nil
}

func (u *CheckoutUseCase) List(ctx context.Context) ([]entities.Sale, error) {
	return u.saleRepo.List(ctx)
}
