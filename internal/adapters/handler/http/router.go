package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/comitanigiacomo/adaptfitness-engine/internal/adapters/cache"
	"github.com/comitanigiacomo/adaptfitness-engine/internal/adapters/handler/http/middleware"
	"github.com/comitanigiacomo/adaptfitness-engine/internal/telemetry/metrics"

	_ "github.com/comitanigiacomo/adaptfitness-engine/docs"
)

type Pinger interface {
	PingContext(ctx context.Context) error
}

type RouterDependencies struct {
	AuthHandler          *AuthHandler
	ProfileHandler       *ProfileHandler
	HealthMetricsHandler *HealthMetricsHandler
	WorkoutHandler       *WorkoutHandler
	MealHandler          *MealHandler
	Tokens               middleware.TokenValidator

	DB    Pinger
	Redis *redis.Client

	Metrics         *metrics.Manager
	MetricsGatherer prometheus.Gatherer

	RateLimit       int
	RateLimitWindow time.Duration
	StartTime       time.Time
}

func NewRouter(deps RouterDependencies) *gin.Engine {
	router := gin.New()

	router.Use(middleware.PanicRecovery(deps.Metrics))
	router.Use(middleware.LogRequest())
	router.Use(middleware.RequestMetrics(deps.Metrics))
	router.Use(middleware.Cors())

	router.GET("/health", healthHandler(deps))
	if deps.MetricsGatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.MetricsGatherer, promhttp.HandlerOpts{})))
	}
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	apiV1 := router.Group("/api/v1")
	if deps.Redis != nil && deps.RateLimit > 0 {
		apiV1.Use(middleware.RateLimiterMiddleware(deps.Redis, deps.RateLimit, deps.RateLimitWindow, deps.Metrics))
	}

	deps.AuthHandler.RegisterRoutes(apiV1)

	protected := apiV1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens))
	{
		deps.ProfileHandler.RegisterRoutes(protected)
		deps.HealthMetricsHandler.RegisterRoutes(protected)
		deps.WorkoutHandler.RegisterRoutes(protected)
		deps.MealHandler.RegisterRoutes(protected)
	}

	return router
}

func healthHandler(deps RouterDependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		dbStatus := "connected"
		if deps.DB == nil || deps.DB.PingContext(ctx) != nil {
			dbStatus = "unreachable"
		}

		redisStatus := "connected"
		if deps.Redis == nil || cache.Ping(ctx, deps.Redis) != nil {
			redisStatus = "unreachable"
		}

		status, code := "ok", http.StatusOK
		if dbStatus != "connected" || redisStatus != "connected" {
			status, code = "degraded", http.StatusServiceUnavailable
		}

		c.JSON(code, gin.H{
			"status":   status,
			"database": dbStatus,
			"redis":    redisStatus,
			"uptime":   time.Since(deps.StartTime).String(),
		})
	}
}
