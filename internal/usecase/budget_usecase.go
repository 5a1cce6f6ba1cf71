package usecase

import (
	"context"
	"errors"
	"servitec/internal/domain/entities"
	"servitec/internal/usecase/interfaces"
	"servitec/pkg"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrBudgetNotFound      = errors.New("budget not found")
	ErrBudgetAlreadyExists = errors.New("budget already exists for this repair order")
	ErrInvalidBudgetID     = errors.New("invalid budget id")
)

// CreateBudgetInput carries the raw cost fields as entered on the budget
// form. Costs arrive as strings and are parsed at full precision; the total
// is computed from the parsed values, never from rounded display strings.
type CreateBudgetInput struct {
	RepairOrderID              string
	LaborCost                  string
	PartsCost                  string
	AdditionalCosts            string
	AdditionalCostsDescription string
}

// IBudgetUseCase exposes budget creation and the admin approval workflow.
//
// Approval model:
//   - a budget starts unapproved
//   - Approve and Reject are the only mutators of the flag, both admin-only
//   - both are idempotent: repeating the same action succeeds with no change
//   - neither ever alters the cost breakdown

type IBudgetUseCase interface {
	Create(ctx context.Context, actor entities.Actor, in CreateBudgetInput) (entities.Budget, error)
	Approve(ctx context.Context, actor entities.Actor, id string) (entities.Budget, error)
	Reject(ctx context.Context, actor entities.Actor, id string) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	GetByRepairOrderID(ctx context.Context, repairOrderID string) (entities.Budget, error)
}

type BudgetUseCase struct {
	repo interfaces.IBudgetRepository
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

func NewBudgetUseCase(repo interfaces.IBudgetRepository) *BudgetUseCase {
	return &BudgetUseCase{repo: repo}
}

func (u *BudgetUseCase) Create(ctx context.Context, actor entities.Actor, in CreateBudgetInput) (entities.Budget, error) {
	orderID := strings.TrimSpace(in.RepairOrderID)
	if orderID == "" {
		return entities.Budget{}, ErrInvalidRepairOrderID
	}

	labor, parts, additional, err := parseBudgetCosts(in)
	if err != nil {
		return entities.Budget{}, err
	}

	// Enforce: 1 budget per repair order.
	if existing, err := u.repo.GetByRepairOrderID(ctx, orderID); err != nil {
		return entities.Budget{}, err
	} else if existing.ID != "" {
		return entities.Budget{}, ErrBudgetAlreadyExists
	}

	now := time.Now().UTC()
	b := entities.Budget{
		ID:                         uuid.NewString(),
		RepairOrderID:              orderID,
		LaborCost:                  labor,
		PartsCost:                  parts,
		AdditionalCosts:            additional,
		AdditionalCostsDescription: strings.TrimSpace(in.AdditionalCostsDescription),
		TotalCost:                  entities.BudgetTotal(labor, parts, additional),
		Approved:                   false,
		CreatedAt:                  now,
		UpdatedAt:                  now,
	}
	return u.repo.Create(ctx, b)
}

func parseBudgetCosts(in CreateBudgetInput) (labor, parts, additional decimal.Decimal, err error) {
	v := &pkg.ValidationError{}

	labor = parseCostField(v, "labor_cost", in.LaborCost, true)
	parts = parseCostField(v, "parts_cost", in.PartsCost, true)
	additional = parseCostField(v, "additional_costs", in.AdditionalCosts, false)

	if additional.IsPositive() && strings.TrimSpace(in.AdditionalCostsDescription) == "" {
		v.Add("additional_costs_description", "description is required when additional costs are present")
	}

	return labor, parts, additional, v.OrNil()
}

func parseCostField(v *pkg.ValidationError, field, raw string, required bool) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		if required {
			v.Add(field, "must be a non-negative number")
		}
		return decimal.Zero
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		v.Add(field, "must be a non-negative number")
		return decimal.Zero
	}
	if d.IsNegative() {
		v.Add(field, "must be a non-negative number")
		return decimal.Zero
	}
	return d
}

func (u *BudgetUseCase) Approve(ctx context.Context, actor entities.Actor, id string) (entities.Budget, error) {
	return u.updateApproval(ctx, actor, id, true)
}

func (u *BudgetUseCase) Reject(ctx context.Context, actor entities.Actor, id string) (entities.Budget, error) {
	return u.updateApproval(ctx, actor, id, false)
}

func (u *BudgetUseCase) updateApproval(ctx context.Context, actor entities.Actor, id string, approved bool) (entities.Budget, error) {
	if !actor.IsAdmin() {
		return entities.Budget{}, ErrForbidden
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Budget{}, ErrInvalidBudgetID
	}

	updated, err := u.repo.UpdateApprovalByID(ctx, id, approved)
	if err != nil {
		return entities.Budget{}, err
	}
	if updated.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return updated, nil
}

func (u *BudgetUseCase) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Budget{}, ErrInvalidBudgetID
	}

	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return b, nil
}

func (u *BudgetUseCase) GetByRepairOrderID(ctx context.Context, repairOrderID string) (entities.Budget, error) {
	repairOrderID = strings.TrimSpace(repairOrderID)
	if repairOrderID == "" {
		return entities.Budget{}, ErrInvalidRepairOrderID
	}

	b, err := u.repo.GetByRepairOrderID(ctx, repairOrderID)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return b, nil
}
