package entities

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestSummarize(t *testing.T) {
	t.Run("empty cart", func(t *testing.T) {
		s := Summarize(NewCart())
		if !s.Subtotal.IsZero() || !s.Tax.IsZero() || !s.Total.IsZero() {
			t.Fatalf("expected all zero, got %+v", s)
		}
	})

	t.Run("tax is rounded to cents", func(t *testing.T) {
		cart := NewCart()
		cart.Add(prod("p1", "Funda", "120.00", 10))
		mica, _ := cart.Add(prod("p2", "Mica", "85.00", 10))
		cart.Increment(mica.ID)

		s := Summarize(cart)
		if !s.Subtotal.Equal(decimal.RequireFromString("290.00")) {
			t.Fatalf("unexpected subtotal: %s", s.Subtotal)
		}
		if !s.Tax.Equal(decimal.RequireFromString("52.20")) {
			t.Fatalf("unexpected tax: %s", s.Tax)
		}
		if !s.Total.Equal(decimal.RequireFromString("342.20")) {
			t.Fatalf("unexpected total: %s", s.Total)
		}
	})

	t.Run("odd subtotal still lands on cents", func(t *testing.T) {
		cart := NewCart()
		cart.Add(prod("p1", "Tornillo", "0.33", 10))

		s := Summarize(cart)
		// 0.33 * 0.18 = 0.0594 -> 0.06
		if !s.Tax.Equal(decimal.RequireFromString("0.06")) {
			t.Fatalf("unexpected tax: %s", s.Tax)
		}
		if !s.Total.Equal(decimal.RequireFromString("0.39")) {
			t.Fatalf("unexpected total: %s", s.Total)
		}
	})
}

func TestPaymentMethod_Valid(t *testing.T) {
	for _, m := range []PaymentMethod{PaymentMethodCash, PaymentMethodYape, PaymentMethodCard} {
		if !m.Valid() {
			t.Fatalf("expected %s to be valid", m)
		}
	}
	if PaymentMethod("PAYPAL").Valid() {
		t.Fatalf("expected PAYPAL to be invalid")
	}
	if PaymentMethod("").Valid() {
		t.Fatalf("expected empty method to be invalid")
	}
}
