package routes

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"

	_ "apolices_xpto/docs"
	"apolices_xpto/internal/adapter/http/handlers"
	"apolices_xpto/internal/adapter/persistence/repository"
	"apolices_xpto/internal/domain/policynumber"
	"apolices_xpto/internal/infrastructure/database"
	"apolices_xpto/internal/usecase"
	"apolices_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	defaultPort = "8080"

	StorageDynamoDB = "dynamodb"
	StoragePostgres = "postgres"
)

// Run will start the server
func Run() {
	policyRepo, endorsementRepo := connectStorage(context.Background())

	numbers := policynumber.NewSystemGenerator(policyRepo)
	policyHandler := handlers.NewPolicyHandler(usecase.NewPolicyUseCase(policyRepo, numbers))
	endorsementHandler := handlers.NewEndorsementHandler(usecase.NewEndorsementUseCase(endorsementRepo, policyRepo))

	router := NewRouter(policyHandler, endorsementHandler)

	addr := ":" + getenvDefault("PORT", defaultPort)
	log.Printf("[routes] listening addr=%s", addr)
	if err := http.ListenAndServe(addr, withCORS(router)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter builds the gin engine with middlewares, swagger and the /v1 routes.
func NewRouter(policyHandler *handlers.PolicyHandler, endorsementHandler *handlers.EndorsementHandler) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPolicyRoutes(v1, policyHandler, endorsementHandler)
	return router
}

// connectStorage picks the repositories from STORAGE_DRIVER (dynamodb by default).
func connectStorage(ctx context.Context) (interfaces.IPolicyRepository, interfaces.IEndorsementRepository) {
	driver := getenvDefault("STORAGE_DRIVER", StorageDynamoDB)
	log.Printf("[routes] storage driver=%s", driver)

	switch driver {
	case StoragePostgres:
		db, err := database.ConnectPostgres(ctx)
		if err != nil {
			log.Fatalf("failed to connect to postgres: %v", err)
		}
		if os.Getenv("DB_AUTO_MIGRATE") == "true" {
			if err := db.AutoMigrate(repository.GormModels()...); err != nil {
				log.Fatalf("auto migrate failed: %v", err)
			}
		}
		return repository.NewPolicyGormRepository(db), repository.NewEndorsementGormRepository(db)
	case StorageDynamoDB:
		ddb := database.ConnectDynamoDB()
		policyRepo := repository.NewPolicyDynamoRepository(ddb)
		endorsementRepo := repository.NewEndorsementDynamoRepository(ddb, policyRepo)
		if os.Getenv("DYNAMODB_CREATE_TABLES") == "true" {
			tables := append([]*dynamodb.CreateTableInput{policyRepo.CreateTableInput()}, endorsementRepo.CreateTableInputs()...)
			if err := database.EnsureDynamoTables(ctx, ddb, tables...); err != nil {
				log.Fatalf("failed to create dynamodb tables: %v", err)
			}
		}
		return policyRepo, endorsementRepo
	default:
		log.Fatalf("unknown STORAGE_DRIVER %q", driver)
		return nil, nil
	}
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

// withCORS wraps the engine with the CORS policy from CORS_ALLOWED_ORIGINS.
// The insertion and pagination headers are exposed to browsers.
func withCORS(h http.Handler) http.Handler {
	return cors.New(corsOptions()).Handler(h)
}

func corsOptions() cors.Options {
	origins := strings.Split(getenvDefault("CORS_ALLOWED_ORIGINS", "*"), ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	return cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		ExposedHeaders: []string{handlers.HeaderInsertedNumber, handlers.HeaderInsertedID, handlers.HeaderTotalCount},
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
