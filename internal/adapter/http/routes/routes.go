package routes

import (
	"log"
	"os"
	"strconv"

	_ "cleanmatch/docs" // This will be auto-generated
	"cleanmatch/internal/adapter/http/handlers"
	repository2 "cleanmatch/internal/adapter/persistence/repository"
	"cleanmatch/internal/infrastructure/database"
	infraevents "cleanmatch/internal/infrastructure/events"
	"cleanmatch/internal/usecase"

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

	requestRepo := repository2.NewRequestDynamoRepository(ddb)
	cleanerRepo := repository2.NewCleanerDynamoRepository(ddb)
	clientRepo := repository2.NewClientDynamoRepository(ddb)

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Printf("[routes] JWT_SECRET not set, using development secret")
		secret = "cleanmatch-dev-secret"
	}
	tokens := usecase.NewTokenService(secret)

	cleanerUseCase := usecase.NewCleanerUseCase(cleanerRepo, requestRepo, tokens)
	clientUseCase := usecase.NewClientUseCase(clientRepo, tokens)

	// Ratings flow one way: request lifecycle -> event -> cleaner aggregate.
	ratingPublisher := infraevents.NewSyncRatingPublisher(cleanerUseCase)
	requestUseCase := usecase.NewRequestUseCase(requestRepo, cleanerRepo, ratingPublisher)

	requestHandler := handlers.NewRequestHandler(requestUseCase)
	cleanerHandler := handlers.NewCleanerHandler(cleanerUseCase)
	clientHandler := handlers.NewClientHandler(clientUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addMarketplaceRoutes(v1, tokens, requestHandler, cleanerHandler, clientHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
