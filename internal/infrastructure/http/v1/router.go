// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"bizreport/internal/infrastructure/http/v1/handlers"
	"bizreport/internal/infrastructure/http/v1/middleware"
	"bizreport/internal/infrastructure/metrics"
	"bizreport/pkg/logger"
)

// RouterConfig holds router dependencies.
type RouterConfig struct {
	// Logger for request logging
	Logger *logger.Logger

	// JWTValidator for bearer token validation
	JWTValidator middleware.JWTValidator

	// Reports builds owner reports
	Reports handlers.ReportBuilder

	// DB is pinged by the readiness probe
	DB handlers.Pinger

	// Metrics is optional; nil disables request metrics and the scrape endpoint
	Metrics     *metrics.Metrics
	MetricsPath string
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	if cfg.Metrics != nil {
		router.Use(middleware.Metrics(cfg.Metrics))
	}
	router.Use(middleware.ErrorHandler())

	healthHandler := handlers.NewHealthHandler(cfg.DB)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
	}

	if cfg.Metrics != nil {
		path := cfg.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		router.GET(path, gin.WrapH(cfg.Metrics.Handler()))
	}

	v1 := router.Group("/api/v1")
	{
		protected := v1.Group("")
		protected.Use(middleware.Auth(cfg.JWTValidator))

		registerReportRoutes(protected, cfg)
	}

	return router
}

// registerReportRoutes registers report endpoints.
func registerReportRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	reportsHandler := handlers.NewReportsHandler(handlers.NewBaseHandler(), cfg.Reports)
	reportsHandler.RegisterRoutes(rg.Group("/reports"))
}
