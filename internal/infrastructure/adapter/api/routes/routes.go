package routes

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/voting-escrow/internal/domain/port/core"
	"github.com/amirhossein-jamali/voting-escrow/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/voting-escrow/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers groups the HTTP handlers served by the API
type Handlers struct {
	Escrow  *handler.EscrowHandler
	Token   *handler.TokenHandler
	Health  *handler.HealthHandler
	Debug   *handler.DebugHandler // nil disables the /debug routes
	Metrics http.Handler          // nil disables the metrics endpoint
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers, metricsPath string) {
	escrowRoutes := router.Group("/escrow")
	{
		escrowRoutes.POST("/:account/deposit", h.Escrow.Deposit)
		escrowRoutes.POST("/:account/withdraw", h.Escrow.Withdraw)
		escrowRoutes.GET("/:account/lock", h.Escrow.GetLock)
		escrowRoutes.GET("/:account/operations", h.Escrow.ListOperations)
	}

	router.GET("/operations/:operationId", h.Escrow.GetOperation)

	tokenRoutes := router.Group("/token")
	{
		tokenRoutes.GET("/:account/balance", h.Token.GetBalance)
		tokenRoutes.POST("/:account/approve", h.Token.Approve)
	}

	if h.Debug != nil {
		debugRoutes := router.Group("/debug")
		{
			debugRoutes.GET("/clock", h.Debug.GetClock)
			debugRoutes.POST("/clock/advance", h.Debug.AdvanceClock)
			debugRoutes.POST("/token/:account/mint", h.Token.Mint)
		}
	}

	if h.Health != nil {
		router.GET("/health", h.Health.Health)
	}

	if h.Metrics != nil {
		if metricsPath == "" {
			metricsPath = "/metrics"
		}
		router.GET(metricsPath, gin.WrapH(h.Metrics))
	}

	router.NoRoute(middleware.NotFound())
}

// SetupMiddlewares configures global middlewares for the API.
// observer may be nil when metrics are disabled.
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, allowedOrigins []string, observer middleware.RequestObserver) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS(allowedOrigins))
	if observer != nil {
		router.Use(middleware.Metrics(observer))
	}
}
