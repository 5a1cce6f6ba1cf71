package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget is the repair cost estimate attached to exactly one repair order.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (repair_order_id-index): repair_order_id
//
// Monetary representation:
//   - TotalCost is always labor + parts + additional. It is recomputed from
//     the breakdown and never settable on its own.

type Budget struct {
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

// BudgetTotal is the arithmetic sum of the three cost components at full
// precision. Rounding happens only at display time, never before summing.
func BudgetTotal(labor, parts, additional decimal.Decimal) decimal.Decimal {
	return labor.Add(parts).Add(additional)
}
