package routes

import (
	"servitec/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders  = "/orders"
	PathBudgets = "/budgets"
)

func addWorkshopRoutes(rg *gin.RouterGroup, orderHandler *handlers.RepairOrderHandler, budgetHandler *handlers.BudgetHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.Create)
		orders.GET("", orderHandler.List)
		orders.GET("/:id", orderHandler.GetByID)
		orders.PATCH("/:id/advance", orderHandler.AdvanceStatus)
		orders.PATCH("/:id/cancel", orderHandler.Cancel)
		orders.PATCH("/:id/devices/:device_id/diagnosis", orderHandler.UpdateDiagnosis)
	}

	budgets := rg.Group(PathBudgets)
	{
		budgets.POST("", budgetHandler.Create)
		budgets.GET("", budgetHandler.GetByRepairOrder)
		budgets.GET("/:id", budgetHandler.GetByID)
		budgets.PATCH("/:id/approve", budgetHandler.Approve)
		budgets.PATCH("/:id/reject", budgetHandler.Reject)
	}
}
