package routes

import (
	"log"
	"os"
	"strconv"

	_ "github.com/Fusion-Data-Company/appredding-sub009/docs" // This will be auto-generated
	"github.com/Fusion-Data-Company/appredding-sub009/internal/adapter/http/handlers"
	"github.com/Fusion-Data-Company/appredding-sub009/internal/adapter/persistence/cartstore"
	repository2 "github.com/Fusion-Data-Company/appredding-sub009/internal/adapter/persistence/repository"
	"github.com/Fusion-Data-Company/appredding-sub009/internal/infrastructure/cache"
	"github.com/Fusion-Data-Company/appredding-sub009/internal/infrastructure/database"
	"github.com/Fusion-Data-Company/appredding-sub009/internal/infrastructure/intake"
	"github.com/Fusion-Data-Company/appredding-sub009/internal/infrastructure/payments"
	"github.com/Fusion-Data-Company/appredding-sub009/internal/usecase"
	"github.com/Fusion-Data-Company/appredding-sub009/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
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

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()
	rdb := cache.ConnectRedis()

	leadRepo := repository2.NewLeadDynamoRepository(ddb)
	productRepo := repository2.NewProductDynamoRepository(ddb)
	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	paymentRepo := repository2.NewOrderPaymentDynamoRepository(ddb)
	cartStore := cartstore.NewRedisCartStore(rdb)

	var intakeGateway interfaces.ILeadIntakeGateway
	webhook, err := intake.NewWebhookGateway(os.Getenv("LEAD_INTAKE_URL"))
	if err != nil {
		log.Printf("Lead intake webhook not configured: %v", err)
	} else {
		intakeGateway = webhook
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	leadUseCase := usecase.NewLeadUseCase(leadRepo, intakeGateway)
	productUseCase := usecase.NewProductUseCase(productRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, productRepo)
	cartUseCase := usecase.NewCartUseCase(cartStore, productRepo, orderRepo)
	paymentUseCase := usecase.NewOrderPaymentUseCase(paymentRepo, orderRepo, paymentGateway)

	leadHandler := handlers.NewLeadHandler(leadUseCase)
	productHandler := handlers.NewProductHandler(productUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase)
	cartHandler := handlers.NewCartHandler(cartUseCase)
	orderPaymentHandler := handlers.NewOrderPaymentHandler(paymentUseCase)
	calculatorHandler := handlers.NewCalculatorHandler()

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCRMRoutes(v1, leadHandler, calculatorHandler)
	addStoreRoutes(v1, productHandler, cartHandler, orderHandler, orderPaymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
