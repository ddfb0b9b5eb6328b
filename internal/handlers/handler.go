package handlers

import (
	_ "smart_hub/docs"
	"smart_hub/internal/logger"
	"smart_hub/internal/metrics"
	"smart_hub/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	metrics  *metrics.Metrics
	origins  []string
}

// NewHandler constructs a new HTTP handler with dependencies.
// allowedOrigins empty means any origin.
func NewHandler(services *service.Service, log *logger.Logger, m *metrics.Metrics, allowedOrigins []string) *Handler {
	return &Handler{services: services, log: log, metrics: m, origins: allowedOrigins}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestLogger, h.corsMiddleware)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(h.metrics.Handler()))

	router.GET("/", h.root)
	router.GET("/health", h.health)
	router.GET("/debug_info", h.debugInfo)

	h.registerSettingsRoutes(router)
	h.registerTelemetryRoutes(router)

	router.GET("/logs", h.getLogs)

	// debug snapshots over websocket, same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerSettingsRoutes(r *gin.Engine) {
	r.GET("/settings", h.getSettings)
	// Body example: {"user_temp":25,"user_light":"sunset","light_duration":"4h"}
	r.PUT("/settings", h.updateSettings)
}

func (h *Handler) registerTelemetryRoutes(r *gin.Engine) {
	r.POST("/device_state_update", h.deviceStateUpdate)
	r.GET("/graph", h.graph)
}
