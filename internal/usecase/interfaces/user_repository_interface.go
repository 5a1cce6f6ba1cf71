package interfaces

import (
	"context"
	"servitec/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for User. Email lookups go
// through a GSI; email uniqueness is enforced at create time.

type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
	List(ctx context.Context) ([]entities.User, error)
}
