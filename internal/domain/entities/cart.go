package entities

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleItem is one line of an in-progress sale. Name and unit price are
// snapshotted when the product enters the cart; later catalog price changes
// never affect a line already in the cart.
type SaleItem struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// Cart holds the working sale before checkout.
//
// Invariants:
//   - product ids are unique across line items
//   - quantity is always >= 1 (decrement floors at 1, removal is explicit)
//   - TotalPrice is always recomputed as quantity * unit price
//
// A cart belongs to a single POS session; it is not safe for concurrent use.
type Cart struct {
	items []SaleItem
}

func NewCart() *Cart {
	return &Cart{}
}

// Add puts the product in the cart, or bumps the quantity of the existing
// line for the same product. Sold-out products are rejected.
func (c *Cart) Add(p Product) (SaleItem, error) {
	if p.StockStatus() == StockStatusSoldOut {
		return SaleItem{}, ErrOutOfStock
	}
	for i := range c.items {
		if c.items[i].ProductID == p.ID {
			c.items[i].Quantity++
			c.items[i].TotalPrice = lineTotal(c.items[i])
			return c.items[i], nil
		}
	}
	item := SaleItem{
		ID:          uuid.NewString(),
		ProductID:   p.ID,
		ProductName: p.Name,
		Quantity:    1,
		UnitPrice:   p.Price,
	}
	item.TotalPrice = lineTotal(item)
	c.items = append(c.items, item)
	return item, nil
}

// Increment raises the line quantity by one.
func (c *Cart) Increment(itemID string) (SaleItem, error) {
	return c.adjust(itemID, +1)
}

// Decrement lowers the line quantity by one, flooring at 1. Dropping the line
// entirely is Remove's job.
func (c *Cart) Decrement(itemID string) (SaleItem, error) {
	return c.adjust(itemID, -1)
}

func (c *Cart) adjust(itemID string, delta int) (SaleItem, error) {
	for i := range c.items {
		if c.items[i].ID == itemID {
			q := c.items[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			c.items[i].Quantity = q
			c.items[i].TotalPrice = lineTotal(c.items[i])
			return c.items[i], nil
		}
	}
	return SaleItem{}, ErrItemNotFound
}

// Remove deletes the line item regardless of its quantity.
func (c *Cart) Remove(itemID string) error {
	for i := range c.items {
		if c.items[i].ID == itemID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
	}
	return ErrItemNotFound
}

// Total sums the line totals. Recomputed on every call rather than cached, so
// it can never drift from the lines.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.items {
		total = total.Add(it.TotalPrice)
	}
	return total
}

// Items returns a copy of the current line items in insertion order.
func (c *Cart) Items() []SaleItem {
	out := make([]SaleItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Len() int {
	return len(c.items)
}

// Clear empties the cart after a finalized sale.
func (c *Cart) Clear() {
	c.items = nil
}

func lineTotal(it SaleItem) decimal.Decimal {
	return it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
}
