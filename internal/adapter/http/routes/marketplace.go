package routes

import (
	"cleanmatch/internal/adapter/http/handlers"
	"cleanmatch/internal/adapter/http/middleware"
	"cleanmatch/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	PathRequests = "/requests"
	PathCleaners = "/cleaners"
	PathClients  = "/clients"
)

func addMarketplaceRoutes(
	rg *gin.RouterGroup,
	tokens *usecase.TokenService,
	requestHandler *handlers.RequestHandler,
	cleanerHandler *handlers.CleanerHandler,
	clientHandler *handlers.ClientHandler,
) {
	auth := middleware.RequireAuth(tokens)
	cleanerOnly := middleware.RequireRole(usecase.RoleCleaner)
	clientOnly := middleware.RequireRole(usecase.RoleClient)

	cleaners := rg.Group(PathCleaners)
	{
		cleaners.POST("/signup", cleanerHandler.Signup)
		cleaners.POST("/login", cleanerHandler.Login)
		cleaners.GET("/dashboard", auth, clientOnly, cleanerHandler.Dashboard)
		cleaners.GET("/filter", auth, clientOnly, cleanerHandler.Filter)
		cleaners.GET("/:id", auth, cleanerHandler.GetByID)
		cleaners.PUT("/:id", auth, cleanerOnly, cleanerHandler.Update)
		cleaners.DELETE("/:id", auth, cleanerOnly, cleanerHandler.Delete)
	}

	clients := rg.Group(PathClients)
	{
		clients.POST("/signup", clientHandler.Signup)
		clients.POST("/login", clientHandler.Login)
		clients.GET("/:id", auth, clientHandler.GetByID)
		clients.PUT("/:id", auth, clientOnly, clientHandler.Update)
		clients.DELETE("/:id", auth, clientOnly, clientHandler.Delete)
	}

	requests := rg.Group(PathRequests, auth)
	{
		requests.POST("", clientOnly, requestHandler.Create)
		requests.GET("/general", cleanerOnly, requestHandler.ListGeneral)
		requests.GET("/cleaner/:cleanerId", cleanerOnly, requestHandler.ListForCleaner)
		requests.GET("/cleaner/:cleanerId/completed", cleanerOnly, requestHandler.CompletedForCleaner)
		requests.GET("/client/:clientId", clientOnly, requestHandler.ListForClient)
		requests.GET("/client/:clientId/completed", clientOnly, requestHandler.CompletedForClient)
		requests.GET("/:id", requestHandler.GetByID)
		requests.PATCH("/:id/status", cleanerOnly, requestHandler.UpdateStatus)
		requests.PATCH("/:id/accept", cleanerOnly, requestHandler.AcceptGeneral)
		requests.POST("/:id/applications", cleanerOnly, requestHandler.Apply)
		requests.POST("/:id/select", clientOnly, requestHandler.SelectApplication)
		requests.PATCH("/:id/cancel", clientOnly, requestHandler.CancelByClient)
		requests.POST("/:id/rating", clientOnly, requestHandler.Rate)
	}
}
