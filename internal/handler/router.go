package handler

import (
	"io"
	"net/http"

	"cargofunds/internal/middleware"
	"cargofunds/internal/service"

	"github.com/gin-contrib/cors"
	ginlogger "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Services bundles what the routes dispatch to.
type Services struct {
	Users    service.UserService
	Requests service.RequestService
	Teams    service.TeamService
	Funds    service.FundsService
}

// RouterConfig configures the HTTP surface.
type RouterConfig struct {
	CORSOrigins []string
	AccessLog   io.Writer // nil disables access logging
	Gatherer    prometheus.Gatherer
}

// NewRouter wires middleware, docs, health, metrics and every API route.
func NewRouter(cfg RouterConfig, auth *middleware.Authenticator, svc Services) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	if cfg.AccessLog != nil {
		router.Use(ginlogger.SetLogger(
			ginlogger.WithUTC(true),
			ginlogger.WithWriter(cfg.AccessLog),
			ginlogger.WithSkipPath([]string{"/health", "/metrics"}),
		))
	}

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.CORSOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowCredentials = !corsConfig.AllowAllOrigins
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	gatherer := cfg.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	root := router.Group("")
	NewAuthHandler(svc.Users, auth).RegisterRoutes(root)
	NewRequestHandler(svc.Requests, auth).RegisterRoutes(root)
	NewTeamHandler(svc.Teams, auth).RegisterRoutes(root)
	NewFundsHandler(svc.Funds, auth).RegisterRoutes(root)

	return router
}
