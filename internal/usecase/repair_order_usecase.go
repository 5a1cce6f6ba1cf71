package usecase

import (
	"context"
	"errors"
	"servitec/internal/domain/entities"
	"servitec/internal/usecase/interfaces"
	"servitec/pkg"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrRepairOrderNotFound  = errors.New("repair order not found")
	ErrInvalidRepairOrderID = errors.New("invalid repair order id")
	ErrDeviceNotFound       = errors.New("device not found")

	// ErrForbidden is returned whenever the acting user lacks the role or
	// ownership an operation requires. It is never downgraded to a no-op.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidTransition is returned when the requested status change is
	// not reachable from the order's current status.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// IRepairOrderUseCase exposes the repair order lifecycle.
//
// Authorization model:
//   - advancing an order requires the assigned technician or an admin
//   - cancelling is an admin-only escape hatch
//   - technicians only see their own assignments; admins see everything
//
// Every operation takes the acting user explicitly; the usecase never reads
// identity from ambient state.

type IRepairOrderUseCase interface {
	Create(ctx context.Context, actor entities.Actor, draft entities.RepairOrder) (entities.RepairOrder, error)
	AdvanceStatus(ctx context.Context, actor entities.Actor, id string) (entities.RepairOrder, error)
	Cancel(ctx context.Context, actor entities.Actor, id string) (entities.RepairOrder, error)
	UpdateDiagnosis(ctx context.Context, actor entities.Actor, id, deviceID, diagnosis string) (entities.RepairOrder, error)
	GetByID(ctx context.Context, actor entities.Actor, id string) (entities.RepairOrder, error)
	List(ctx context.Context, actor entities.Actor) ([]entities.RepairOrder, error)
}

type RepairOrderUseCase struct {
	repo interfaces.IRepairOrderRepository
}

var _ IRepairOrderUseCase = (*RepairOrderUseCase)(nil)

func NewRepairOrderUseCase(repo interfaces.IRepairOrderRepository) *RepairOrderUseCase {
	return &RepairOrderUseCase{repo: repo}
}

func (u *RepairOrderUseCase) Create(ctx context.Context, actor entities.Actor, draft entities.RepairOrder) (entities.RepairOrder, error) {
	if err := validateIntake(draft); err != nil {
		return entities.RepairOrder{}, err
	}

	now := time.Now().UTC()
	o := draft
	o.ID = uuid.NewString()
	o.CustomerName = strings.TrimSpace(draft.CustomerName)
	o.CustomerPhone = strings.TrimSpace(draft.CustomerPhone)
	o.Status = entities.RepairStatusPending
	o.CreatedAt = now
	o.UpdatedAt = now
	o.CompletedAt = nil
	o.DeliveredAt = nil

	// Intake without an explicit assignment lands on the technician who
	// filed it.
	if strings.TrimSpace(o.TechnicianID) == "" {
		o.TechnicianID = actor.ID
	}

	for i := range o.Devices {
		if o.Devices[i].ID == "" {
			o.Devices[i].ID = uuid.NewString()
		}
		for j := range o.Devices[i].Accessories {
			if o.Devices[i].Accessories[j].ID == "" {
				o.Devices[i].Accessories[j].ID = uuid.NewString()
			}
		}
	}

	return u.repo.Create(ctx, o)
}

func validateIntake(draft entities.RepairOrder) error {
	v := &pkg.ValidationError{}
	if strings.TrimSpace(draft.CustomerName) == "" {
		v.Add("customer_name", "customer name is required")
	}
	if strings.TrimSpace(draft.CustomerPhone) == "" {
		v.Add("customer_phone", "customer phone is required")
	}
	if len(draft.Devices) == 0 {
		v.Add("devices", "at least one device is required")
	}
	for i, d := range draft.Devices {
		prefix := "devices[" + strconv.Itoa(i) + "]."
		if strings.TrimSpace(d.Brand) == "" {
			v.Add(prefix+"brand", "brand is required")
		}
		if strings.TrimSpace(d.Model) == "" {
			v.Add(prefix+"model", "model is required")
		}
		if strings.TrimSpace(d.ReportedIssue) == "" {
			v.Add(prefix+"reported_issue", "reported issue is required")
		}
		if d.ReviewCost.IsNegative() {
			v.Add(prefix+"review_cost", "review cost must be non-negative")
		}
	}
	return v.OrNil()
}

// AdvanceStatus moves the order one step along the forward chain and stamps
// the matching timestamp. Devices, customer data and any budget stay
// untouched.
func (u *RepairOrderUseCase) AdvanceStatus(ctx context.Context, actor entities.Actor, id string) (entities.RepairOrder, error) {
	o, err := u.load(ctx, id)
	if err != nil {
		return entities.RepairOrder{}, err
	}
	if !actor.CanManageOrder(o) {
		return entities.RepairOrder{}, ErrForbidden
	}

	next, ok := o.Status.Next()
	if !ok {
		return entities.RepairOrder{}, ErrInvalidTransition
	}

	now := time.Now().UTC()
	o.Status = next
	o.UpdatedAt = now
	switch next {
	case entities.RepairStatusCompleted:
		o.CompletedAt = &now
	case entities.RepairStatusDelivered:
		o.DeliveredAt = &now
	}

	return u.repo.Update(ctx, o)
}

// Cancel marks the order cancelled. Admin-only; cancelled orders are kept,
// never deleted.
func (u *RepairOrderUseCase) Cancel(ctx context.Context, actor entities.Actor, id string) (entities.RepairOrder, error) {
	if !actor.IsAdmin() {
		return entities.RepairOrder{}, ErrForbidden
	}

	o, err := u.load(ctx, id)
	if err != nil {
		return entities.RepairOrder{}, err
	}
	if o.Status.Terminal() {
		return entities.RepairOrder{}, ErrInvalidTransition
	}

	o.Status = entities.RepairStatusCancelled
	o.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, o)
}

func (u *RepairOrderUseCase) UpdateDiagnosis(ctx context.Context, actor entities.Actor, id, deviceID, diagnosis string) (entities.RepairOrder, error) {
	diagnosis = strings.TrimSpace(diagnosis)
	if diagnosis == "" {
		v := &pkg.ValidationError{}
		v.Add("diagnosis", "diagnosis is required")
		return entities.RepairOrder{}, v
	}

	o, err := u.load(ctx, id)
	if err != nil {
		return entities.RepairOrder{}, err
	}
	if !actor.CanManageOrder(o) {
		return entities.RepairOrder{}, ErrForbidden
	}

	found := false
	for i := range o.Devices {
		if o.Devices[i].ID == deviceID {
			o.Devices[i].Diagnosis = diagnosis
			found = true
			break
		}
	}
	if !found {
		return entities.RepairOrder{}, ErrDeviceNotFound
	}

	o.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, o)
}

func (u *RepairOrderUseCase) GetByID(ctx context.Context, actor entities.Actor, id string) (entities.RepairOrder, error) {
	o, err := u.load(ctx, id)
	if err != nil {
		return entities.RepairOrder{}, err
	}
	if !actor.CanManageOrder(o) {
		return entities.RepairOrder{}, ErrForbidden
	}
	return o, nil
}

func (u *RepairOrderUseCase) List(ctx context.Context, actor entities.Actor) ([]entities.RepairOrder, error) {
	if actor.IsAdmin() {
		return u.repo.List(ctx)
	}
	return u.repo.ListByTechnicianID(ctx, actor.ID)
}

func (u *RepairOrderUseCase) load(ctx context.Context, id string) (entities.RepairOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.RepairOrder{}, ErrInvalidRepairOrderID
	}
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.RepairOrder{}, err
	}
	if o.ID == "" {
		return entities.RepairOrder{}, ErrRepairOrderNotFound
	}
	return o, nil
}
