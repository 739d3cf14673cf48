package routes

import (
	"log"
	"os"
	"strings"

	_ "auditqc/docs" // swagger definitions
	"auditqc/internal/adapter/http/handlers"
	"auditqc/internal/adapter/http/middleware"
	"auditqc/internal/adapter/persistence/repository"
	"auditqc/internal/cache"
	"auditqc/internal/infrastructure/database"
	"auditqc/internal/infrastructure/upstream"
	"auditqc/internal/platform/logging"
	"auditqc/internal/usecase"
	"auditqc/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const defaultPort = "8080"

// Run wires the full service and starts the HTTP listener.
func Run() {
	router := NewRouter()

	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = defaultPort
	}

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter builds the engine with every dependency wired explicitly, so
// tests can stand up the same graph against fakes.
func NewRouter() *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	logger := logging.New()

	var gateway interfaces.IQCGateway
	if upstream.IsMockEnabled() {
		logger.Warn("upstream mock enabled, not talking to the QC backend")
		gateway = upstream.NewMockGateway()
	} else {
		gateway = upstream.NewClient(logger)
	}

	rdb, locker := database.ConnectRedis()
	cacheStore := cache.NewWithRedis(logger, rdb, locker)

	ddb := database.ConnectDynamoDB()
	jobRepo := repository.NewReviewJobDynamoRepository(ddb)

	reviewUseCase := usecase.NewReviewJobUseCase(gateway, jobRepo, cacheStore, logger)
	commentUseCase := usecase.NewCommentUseCase(gateway, cacheStore, logger)
	findingUseCase := usecase.NewFindingUseCase(gateway, cacheStore, logger)
	queryUseCase := usecase.NewQueryUseCase(gateway, cacheStore, logger)

	reviewHandler := handlers.NewReviewHandler(reviewUseCase)
	commentHandler := handlers.NewCommentHandler(commentUseCase)
	findingHandler := handlers.NewFindingHandler(findingUseCase)
	queryHandler := handlers.NewQueryHandler(queryUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	authed := router.Group("/v1")
	authed.Use(middleware.Auth())
	addAuditRoutes(authed, reviewHandler, commentHandler, findingHandler, queryHandler)

	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
