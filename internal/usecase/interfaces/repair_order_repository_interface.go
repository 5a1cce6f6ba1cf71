package interfaces

import (
	"context"
	"servitec/internal/domain/entities"
)

// IRepairOrderRepository abstracts DynamoDB persistence for RepairOrder.
//
// The service must be able to:
//   - create an order at intake
//   - load an order by id for transitions and the detail view
//   - list all orders (admin) or one technician's assignments (GSI)
//   - persist the full updated snapshot after a transition or diagnosis edit

type IRepairOrderRepository interface {
	Create(ctx context.Context, o entities.RepairOrder) (entities.RepairOrder, error)
	GetByID(ctx context.Context, id string) (entities.RepairOrder, error)
	List(ctx context.Context) ([]entities.RepairOrder, error)
	ListByTechnicianID(ctx context.Context, technicianID string) ([]entities.RepairOrder, error)
	Update(ctx context.Context, o entities.RepairOrder) (entities.RepairOrder, error)
}
