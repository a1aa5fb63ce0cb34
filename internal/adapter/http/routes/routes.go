package routes

import (
	"log"
	"net/http"
	"os"
	"strconv"

	_ "fibra_vendas/docs" // This will be auto-generated
	"fibra_vendas/internal/adapter/http/handlers"
	repository2 "fibra_vendas/internal/adapter/persistence/repository"
	"fibra_vendas/internal/infrastructure/credit"
	"fibra_vendas/internal/infrastructure/database"
	"fibra_vendas/internal/infrastructure/geo"
	"fibra_vendas/internal/infrastructure/payments"
	"fibra_vendas/internal/infrastructure/postal"
	"fibra_vendas/internal/infrastructure/submission"
	"fibra_vendas/internal/usecase"
	"fibra_vendas/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
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

	// The wizard frontend runs on its own origin, so the engine is wrapped
	// with a permissive-by-config CORS layer.
	handler := newCORS().Handler(router)
	if err := http.ListenAndServe(":"+strconv.Itoa(PORT), handler); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	sessionRepo := newSessionRepository()
	catalogRepo := newCatalogRepository()

	sessionUseCase := usecase.NewOrderSessionUseCase(sessionRepo)
	viabilityUseCase := usecase.NewViabilityUseCase(sessionUseCase, geo.NewMapboxGateway(), postal.NewViaCEPGateway())
	plansUseCase := usecase.NewPlansUseCase(sessionUseCase, catalogRepo)
	analysisUseCase := usecase.NewAnalysisUseCase(sessionUseCase, credit.NewAnalysisGateway())
	contractUseCase := usecase.NewContractUseCase(sessionUseCase, catalogRepo)
	reviewUseCase := usecase.NewReviewUseCase(sessionUseCase, submission.NewHTTPGateway(), newActivationChargeGateway())
	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo)

	orderHandler := handlers.NewOrderHandler(sessionUseCase)
	viabilityHandler := handlers.NewViabilityHandler(viabilityUseCase)
	plansHandler := handlers.NewPlansHandler(plansUseCase)
	analysisHandler := handlers.NewAnalysisHandler(analysisUseCase)
	contractHandler := handlers.NewContractHandler(contractUseCase)
	reviewHandler := handlers.NewReviewHandler(reviewUseCase)
	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, catalogHandler, viabilityHandler)
	addOrderRoutes(v1, orderHandler, viabilityHandler, plansHandler, analysisHandler, contractHandler, reviewHandler)
}

// newSessionRepository picks the draft store. The in-memory map is the
// default; ORDER_SESSION_STORE=dynamodb switches to the durable table.
func newSessionRepository() interfaces.ISessionRepository {
	if os.Getenv("ORDER_SESSION_STORE") == "dynamodb" {
		log.Printf("[routes][sessions] using dynamodb store")
		return repository2.NewSessionDynamoRepository(database.ConnectDynamoDB())
	}
	log.Printf("[routes][sessions] using in-memory store")
	return repository2.NewSessionMemoryRepository()
}

// newCatalogRepository picks the catalog source. A non-empty
// CATALOG_DATABASE_DSN switches from the built-in defaults to Postgres;
// a failed connection falls back to the defaults so the wizard stays up.
func newCatalogRepository() interfaces.ICatalogRepository {
	dsn := os.Getenv("CATALOG_DATABASE_DSN")
	if dsn == "" {
		return repository2.NewCatalogStaticRepository()
	}
	db, err := database.ConnectCatalogDB(dsn)
	if err != nil {
		log.Printf("[routes][catalog] postgres unavailable, using built-in catalog err=%v", err)
		return repository2.NewCatalogStaticRepository()
	}
	repo, err := repository2.NewCatalogGormRepository(db)
	if err != nil {
		log.Printf("[routes][catalog] migration failed, using built-in catalog err=%v", err)
		return repository2.NewCatalogStaticRepository()
	}
	return repo
}

func newActivationChargeGateway() interfaces.IActivationChargeGateway {
	gateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
		return nil
	}
	return gateway
}

func newCORS() *cors.Cors {
	origins := []string{"*"}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		origins = []string{v}
	}
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type", "Authorization", "x-internal-key"},
	})
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
