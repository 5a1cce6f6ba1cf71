package request

import (
	"servitec/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type CreateProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	SKU         string          `json:"sku"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Category    string          `json:"category"`
	Brand       string          `json:"brand"`
	Model       string          `json:"model"`
	ImageURL    string          `json:"image_url"`
}

func (r CreateProductRequest) ToEntity() entities.Product {
	return entities.Product{
		Name:        r.Name,
		Description: r.Description,
		SKU:         r.SKU,
		Price:       r.Price,
		Stock:       r.Stock,
		Category:    r.Category,
		Brand:       r.Brand,
		Model:       r.Model,
		ImageURL:    r.ImageURL,
	}
}

type RestockRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}
