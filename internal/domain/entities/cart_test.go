package entities

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func prod(id, name, price string, stock int) Product {
	return Product{
		ID:    id,
		Name:  name,
		SKU:   "SKU-" + id,
		Price: decimal.RequireFromString(price),
		Stock: stock,
	}
}

func TestCart_Add(t *testing.T) {
	t.Run("sold out product is rejected", func(t *testing.T) {
		cart := NewCart()
		_, err := cart.Add(prod("p1", "Cable USB-C", "15.00", 0))
		if !errors.Is(err, ErrOutOfStock) {
			t.Fatalf("expected ErrOutOfStock, got %v", err)
		}
		if cart.Len() != 0 {
			t.Fatalf("expected empty cart, got %d items", cart.Len())
		}
	})

	t.Run("new line snapshots name and price", func(t *testing.T) {
		cart := NewCart()
		p := prod("p1", "Cable USB-C", "15.00", 10)
		item, err := cart.Add(p)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.ID == "" {
			t.Fatalf("expected a generated item id")
		}
		if item.ProductID != "p1" || item.ProductName != "Cable USB-C" || item.Quantity != 1 {
			t.Fatalf("unexpected item: %+v", item)
		}
		if !item.UnitPrice.Equal(decimal.RequireFromString("15.00")) {
			t.Fatalf("unexpected unit price: %s", item.UnitPrice)
		}
	})

	t.Run("same product bumps the existing line", func(t *testing.T) {
		cart := NewCart()
		p := prod("p1", "Cable USB-C", "15.00", 10)
		first, _ := cart.Add(p)
		second, err := cart.Add(p)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cart.Len() != 1 {
			t.Fatalf("expected a single line, got %d", cart.Len())
		}
		if second.ID != first.ID || second.Quantity != 2 {
			t.Fatalf("unexpected line after second add: %+v", second)
		}
		if !second.TotalPrice.Equal(decimal.RequireFromString("30.00")) {
			t.Fatalf("unexpected total price: %s", second.TotalPrice)
		}
	})

	t.Run("catalog price change does not touch an existing line", func(t *testing.T) {
		cart := NewCart()
		p := prod("p1", "Cable USB-C", "15.00", 10)
		item, _ := cart.Add(p)

		p.Price = decimal.RequireFromString("99.00")
		bumped, _ := cart.Add(p)

		if bumped.ID != item.ID {
			t.Fatalf("expected the same line")
		}
		if !bumped.UnitPrice.Equal(decimal.RequireFromString("15.00")) {
			t.Fatalf("unit price drifted: %s", bumped.UnitPrice)
		}
	})
}

func TestCart_Quantities(t *testing.T) {
	t.Run("increment and decrement keep total price consistent", func(t *testing.T) {
		cart := NewCart()
		item, _ := cart.Add(prod("p1", "Mica templada", "25.50", 10))

		for i := 0; i < 3; i++ {
			if _, err := cart.Increment(item.ID); err != nil {
				t.Fatalf("increment %d: %v", i, err)
			}
		}
		got, err := cart.Decrement(item.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Quantity != 3 {
			t.Fatalf("expected quantity 3, got %d", got.Quantity)
		}
		if !got.TotalPrice.Equal(decimal.RequireFromString("76.50")) {
			t.Fatalf("unexpected total price: %s", got.TotalPrice)
		}
	})

	t.Run("decrement floors at one", func(t *testing.T) {
		cart := NewCart()
		item, _ := cart.Add(prod("p1", "Mica templada", "25.50", 10))

		for i := 0; i < 5; i++ {
			if _, err := cart.Decrement(item.ID); err != nil {
				t.Fatalf("decrement %d: %v", i, err)
			}
		}
		items := cart.Items()
		if len(items) != 1 || items[0].Quantity != 1 {
			t.Fatalf("expected the line to survive with quantity 1, got %+v", items)
		}
	})

	t.Run("unknown item id", func(t *testing.T) {
		cart := NewCart()
		if _, err := cart.Increment("nope"); !errors.Is(err, ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})
}

func TestCart_RemoveAndTotal(t *testing.T) {
	cart := NewCart()
	a, _ := cart.Add(prod("p1", "Cargador", "35.00", 10))
	b, _ := cart.Add(prod("p2", "Audifonos", "60.00", 10))
	cart.Increment(b.ID)

	if !cart.Total().Equal(decimal.RequireFromString("155.00")) {
		t.Fatalf("unexpected total: %s", cart.Total())
	}

	if err := cart.Remove(a.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cart.Len() != 1 {
		t.Fatalf("expected one line after remove, got %d", cart.Len())
	}
	if !cart.Total().Equal(decimal.RequireFromString("120.00")) {
		t.Fatalf("unexpected total after remove: %s", cart.Total())
	}

	if err := cart.Remove(a.ID); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}

	cart.Clear()
	if cart.Len() != 0 || !cart.Total().IsZero() {
		t.Fatalf("expected an empty cart after clear")
	}
}
