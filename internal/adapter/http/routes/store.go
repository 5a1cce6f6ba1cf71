package routes

import (
	"servitec/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProducts = "/products"
	PathSales    = "/sales"
)

func addStoreRoutes(rg *gin.RouterGroup, inventoryHandler *handlers.InventoryHandler, checkoutHandler *handlers.CheckoutHandler) {
	products := rg.Group(PathProducts)
	{
		products.POST("", inventoryHandler.Create)
		products.GET("", inventoryHandler.List)
		products.GET("/:id", inventoryHandler.GetByID)
		products.PATCH("/:id/restock", inventoryHandler.Restock)
	}

	sales := rg.Group(PathSales)
	{
		sales.POST("/checkout", checkoutHandler.Checkout)
		sales.GET("", checkoutHandler.List)
		sales.GET("/:id", checkoutHandler.GetByID)
	}
}
