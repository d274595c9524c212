package routes

import (
	coreport "github.com/amirhossein-jamali/account-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/account-service/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/account-service/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers groups the HTTP handlers mounted by SetupRoutes
type Handlers struct {
	Health  *handler.HealthHandler
	User    *handler.UserHandler
	Account *handler.AccountHandler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers) {
	router.GET("/health", h.Health.Check)

	userRoutes := router.Group("/users")
	{
		userRoutes.POST("", h.User.CreateUser)
		userRoutes.GET("/:userId", h.User.GetUser)
		userRoutes.GET("/:userId/accounts", h.Account.ListAccounts)
		userRoutes.POST("/:userId/accounts", h.Account.CreateAccount)
	}

	accountRoutes := router.Group("/accounts")
	{
		accountRoutes.GET("/:accountId", h.Account.GetAccount)
		accountRoutes.PATCH("/:accountId", h.Account.UpdateAccount)
		accountRoutes.DELETE("/:accountId", h.Account.DeleteAccount)
		accountRoutes.GET("/:accountId/records", h.Account.ListRecords)
		accountRoutes.POST("/:accountId/records", h.Account.RecordTransaction)
	}
}

// SetupMiddlewares configures global middlewares for the API.
// Request ids are assigned first so every later middleware can log them.
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, timeProvider coreport.TimeProvider, allowedOrigins []string) error {
	corsMiddleware, err := middleware.CORS(allowedOrigins)
	if err != nil {
		return err
	}

	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(corsMiddleware)
	return nil
}

// NewRouter builds a gin engine with middlewares and routes installed
func NewRouter(logger coreport.Logger, timeProvider coreport.TimeProvider, allowedOrigins []string, h Handlers) (*gin.Engine, error) {
	router := gin.New()
	if err := SetupMiddlewares(router, logger, timeProvider, allowedOrigins); err != nil {
		return nil, err
	}
	SetupRoutes(router, h)
	return router, nil
}
