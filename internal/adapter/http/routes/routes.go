package routes

import (
	"log"
	"os"
	"strconv"

	_ "servitec/docs" // This will be auto-generated
	"servitec/internal/adapter/http/handlers"
	"servitec/internal/adapter/http/middleware"
	repository2 "servitec/internal/adapter/persistence/repository"
	"servitec/internal/infrastructure/database"
	"servitec/internal/infrastructure/payments"
	"servitec/internal/usecase"
	"servitec/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	orderRepo := repository2.NewRepairOrderDynamoRepository(ddb)
	budgetRepo := repository2.NewBudgetDynamoRepository(ddb)
	productRepo := repository2.NewProductDynamoRepository(ddb)
	saleRepo := repository2.NewSaleDynamoRepository(ddb)
	userRepo := repository2.NewUserDynamoRepository(ddb)

	var cardGateway interfaces.ICardPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured, card payments fall back to local references: %v", err)
	} else {
		cardGateway = mpGateway
	}

	orderUseCase := usecase.NewRepairOrderUseCase(orderRepo)
	budgetUseCase := usecase.NewBudgetUseCase(budgetRepo)
	inventoryUseCase := usecase.NewInventoryUseCase(productRepo)
	checkoutUseCase := usecase.NewCheckoutUseCase(saleRepo, productRepo, cardGateway)
	userUseCase := usecase.NewUserUseCase(userRepo)

	orderHandler := handlers.NewRepairOrderHandler(orderUseCase)
	budgetHandler := handlers.NewBudgetHandler(budgetUseCase)
	inventoryHandler := handlers.NewInventoryHandler(inventoryUseCase)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase)
	userHandler := handlers.NewUserHandler(userUseCase)

	// Rutas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	v1.POST("/login", userHandler.Login)

	// Rutas protegidas
	authed := v1.Group("", middleware.RequireAuth())
	addWorkshopRoutes(authed, orderHandler, budgetHandler)
	addStoreRoutes(authed, inventoryHandler, checkoutHandler)
	addUserRoutes(authed, userHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
