package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockStatus classifies a quantity on hand into the tiers the POS and the
// inventory alerts work with.
type StockStatus string

const (
	StockStatusSoldOut StockStatus = "SOLD_OUT"
	StockStatusLow     StockStatus = "LOW"
	StockStatusInStock StockStatus = "IN_STOCK"
)

// LowStockThreshold is the policy cut-off: a positive stock at or below it is
// reported as low.
const LowStockThreshold = 5

// ClassifyStock maps a quantity to its stock status. Pure; negative input is
// treated as sold out.
func ClassifyStock(stock int) StockStatus {
	switch {
	case stock <= 0:
		return StockStatusSoldOut
	case stock <= LowStockThreshold:
		return StockStatusLow
	default:
		return StockStatusInStock
	}
}

// Product is a catalog/inventory item persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (sku-index): sku (uniqueness enforced at write time)

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	SKU         string          `json:"sku"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Category    string          `json:"category"`
	Brand       string          `json:"brand,omitempty"`
	Model       string          `json:"model,omitempty"`
	ImageURL    string          `json:"image_url,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// StockStatus classifies the product's current stock level.
func (p Product) StockStatus() StockStatus {
	return ClassifyStock(p.Stock)
}
