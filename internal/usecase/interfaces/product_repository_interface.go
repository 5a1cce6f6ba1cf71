package interfaces

import (
	"context"
	"servitec/internal/domain/entities"
)

// IProductRepository abstracts DynamoDB persistence for Product.
//
// AdjustStock applies a signed delta with a conditional write so stock can
// never go negative: a decrement larger than the quantity on hand fails the
// condition and the repository returns a zero-value product.

type IProductRepository interface {
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	GetBySKU(ctx context.Context, sku string) (entities.Product, error)
	List(ctx context.Context) ([]entities.Product, error)
	AdjustStock(ctx context.Context, id string, delta int) (entities.Product, error)
}
