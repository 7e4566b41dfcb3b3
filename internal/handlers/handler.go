package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/puchie21/curren/internal/logger"
	"github.com/puchie21/curren/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestLogger)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Accounts
	router.POST("/register", h.register)
	router.POST("/login", h.login)

	// Exchange rates
	router.GET("/exchange-rates", h.getRates)

	// Conversions
	router.POST("/conversions", h.createConversion)
	router.GET("/conversions", h.listConversions)

	// Live rate snapshots over WebSocket — same port
	router.GET("/ws/rates", h.wsRates)

	return router
}
