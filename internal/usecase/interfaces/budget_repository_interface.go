package interfaces

import (
	"context"
	"servitec/internal/domain/entities"
)

// IBudgetRepository abstracts DynamoDB persistence for Budget.
//
// The service must be able to:
//   - create a budget once the diagnosis is known (one per repair order)
//   - resolve a budget by id or by its repair order (GSI)
//   - flip the approved flag without touching the cost breakdown

type IBudgetRepository interface {
	Create(ctx context.Context, b entities.Budget) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	GetByRepairOrderID(ctx context.Context, repairOrderID string) (entities.Budget, error)
	UpdateApprovalByID(ctx context.Context, id string, approved bool) (entities.Budget, error)
}
