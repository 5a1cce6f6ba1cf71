package interfaces

import (
	"context"
	"servitec/internal/domain/entities"
)

// ISaleRepository abstracts DynamoDB persistence for Sale. Sales are
// immutable receipts: there is no update operation.

type ISaleRepository interface {
	Create(ctx context.Context, s entities.Sale) (entities.Sale, error)
	GetByID(ctx context.Context, id string) (entities.Sale, error)
	List(ctx context.Context) ([]entities.Sale, error)
}
