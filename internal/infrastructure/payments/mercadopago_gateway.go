package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/shopspring/decimal"

	"servitec/internal/usecase/interfaces"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway charges card payments through Mercado Pago. The POS only
// routes CARD checkouts here; cash and Yape are settled at the counter.
//
// Mock mode (CARD_GATEWAY_MOCK/MERCADOPAGO_MOCK) approves everything locally,
// which keeps the checkout flow usable without provider credentials.

type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

var _ interfaces.ICardPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isCardGatewayMockEnabled() {
		log.Printf("[card][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[card][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[card][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[card][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) ChargeCard(ctx context.Context, amount decimal.Decimal, cardToken, description string) (string, string, error) {
	if g != nil && g.mockMode {
		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[card][gateway] mock charge amount=%s provider_payment_id=%s", amount, id)
		return id, "approved", nil
	}

	if g == nil || g.client == nil {
		log.Printf("[card][gateway] gateway not configured")
		return "", "", ErrMercadoPagoGatewayNotConfigured
	}

	value, _ := amount.Round(2).Float64()
	req := payment.Request{
		TransactionAmount: value,
		Token:             cardToken,
		Description:       description,
		Installments:      1,
	}

	log.Printf("[card][gateway] charge start amount=%s", amount)
	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[card][gateway] sdk create failed err=%v", err)
		return "", "", err
	}

	log.Printf("[card][gateway] charge done provider_payment_id=%d provider_status=%s", resp.ID, resp.Status)
	return fmt.Sprintf("%d", resp.ID), resp.Status, nil
}

func isCardGatewayMockEnabled() bool {
	for _, key := range []string{"CARD_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
