package response

import (
	"time"

	"github.com/shopspring/decimal"

	"servitec/internal/domain/entities"
)

type BudgetResponse struct {
	ID                         string          `json:"id"`
	RepairOrderID              string          `json:"repair_order_id"`
	LaborCost                  decimal.Decimal `json:"labor_cost"`
	PartsCost                  decimal.Decimal `json:"parts_cost"`
	AdditionalCosts            decimal.Decimal `json:"additional_costs"`
	AdditionalCostsDescription string          `json:"additional_costs_description,omitempty"`
	TotalCost                  decimal.Decimal `json:"total_cost"`
	Approved                   bool            `json:"approved"`
	CreatedAt                  time.Time       `json:"created_at"`
	UpdatedAt                  time.Time       `json:"updated_at"`
}

func FromBudget(b entities.Budget) BudgetResponse {
	return BudgetResponse{
		ID:                         b.ID,
		RepairOrderID:              b.RepairOrderID,
		LaborCost:                  b.LaborCost,
		PartsCost:                  b.PartsCost,
		AdditionalCosts:            b.AdditionalCosts,
		AdditionalCostsDescription: b.AdditionalCostsDescription,
		TotalCost:                  b.TotalCost,
		Approved:                   b.Approved,
		CreatedAt:                  b.CreatedAt,
		UpdatedAt:                  b.UpdatedAt,
	}
}
