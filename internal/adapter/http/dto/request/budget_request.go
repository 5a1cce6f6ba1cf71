package request

import "servitec/internal/usecase"

// CreateBudgetRequest carries cost fields as strings, exactly as typed on
// the budget form. Parsing happens once in the usecase at full precision;
// totals are never computed from rounded display values.
type CreateBudgetRequest struct {
	RepairOrderID              string `json:"repair_order_id" binding:"required"`
	LaborCost                  string `json:"labor_cost"`
	PartsCost                  string `json:"parts_cost"`
	AdditionalCosts            string `json:"additional_costs"`
	AdditionalCostsDescription string `json:"additional_costs_description"`
}

func (r CreateBudgetRequest) ToInput() usecase.CreateBudgetInput {
	return usecase.CreateBudgetInput{
		RepairOrderID:              r.RepairOrderID,
		LaborCost:                  r.LaborCost,
		PartsCost:                  r.PartsCost,
		AdditionalCosts:            r.AdditionalCosts,
		AdditionalCostsDescription: r.AdditionalCostsDescription,
	}
}
