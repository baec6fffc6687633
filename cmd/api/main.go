package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"github.com/comitanigiacomo/adaptfitness-engine/internal/adapters/cache"
	adapterHTTP "github.com/comitanigiacomo/adaptfitness-engine/internal/adapters/handler/http"
	"github.com/comitanigiacomo/adaptfitness-engine/internal/adapters/repository"
	"github.com/comitanigiacomo/adaptfitness-engine/internal/config"
	"github.com/comitanigiacomo/adaptfitness-engine/internal/core/domain"
	"github.com/comitanigiacomo/adaptfitness-engine/internal/core/services"
	"github.com/comitanigiacomo/adaptfitness-engine/internal/core/streak"
	"github.com/comitanigiacomo/adaptfitness-engine/internal/core/workers"
	"github.com/comitanigiacomo/adaptfitness-engine/internal/logging"
	"github.com/comitanigiacomo/adaptfitness-engine/internal/telemetry/metrics"
	"github.com/comitanigiacomo/adaptfitness-engine/internal/telemetry/tracing"
)

// @title        AdaptFitness Engine API
// @version      1.0
// @description  Body-composition metrics, workout and meal logging, and daily streaks.
// @BasePath     /api/v1
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"), env)
	if err != nil {
		log.Fatalf("Critical: failed to load config: %v", err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:   cfg.LogsPath,
		LogToStdout:   cfg.LogToStdout,
		LogLevel:      cfg.LogLevel,
		LogFormatJSON: cfg.LogFormatJSON,
	})

	if env == "production" || env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := run(cfg); err != nil {
		log.Fatalf("Critical: %v", err)
	}
}

func run(cfg *config.Config) (err error) {
	startTime := time.Now()
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Println("Connecting to database...")
	db, err := openDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, db.Close()) }()
	log.Println("Database connected successfully.")

	if err := repository.RunMigrations(ctx, db); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	rdb, redisErr := cache.NewRedisClient(ctx, cache.Options{
		Host:     cfg.RedisHost,
		Port:     cfg.RedisPort,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if redisErr != nil {
		log.Warnf("[CACHE] redis unavailable, running without cache and rate limiting: %v", redisErr)
		rdb = nil
	} else {
		defer func() { err = multierr.Append(err, rdb.Close()) }()
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metricsManager := metrics.NewManager("adaptfitness", "api", reg)

	userRepo := newUserRepository(db, rdb)
	healthRepo := repository.NewPostgresHealthMetricsRepository(db)
	workoutRepo := repository.NewPostgresWorkoutRepository(db)
	mealRepo := repository.NewPostgresMealRepository(db)

	tokenService := services.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenDuration, userRepo)
	authService := services.NewAuthService(userRepo, tokenService)
	healthService := services.NewHealthMetricsService(healthRepo, userRepo, metricsManager)

	workerCtx, cancelWorker := context.WithCancel(context.Background())
	recalcWorker := workers.NewMetricsRecalcWorker(healthService, metricsManager)
	recalcWorker.Start(workerCtx)

	profileService := services.NewProfileService(userRepo, recalcWorker)
	tracker := streak.NewTracker()
	workoutService := services.NewWorkoutService(workoutRepo, tracker, metricsManager)
	mealService := services.NewMealService(mealRepo, tracker, metricsManager)

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		AuthHandler:          adapterHTTP.NewAuthHandler(authService),
		ProfileHandler:       adapterHTTP.NewProfileHandler(profileService),
		HealthMetricsHandler: adapterHTTP.NewHealthMetricsHandler(healthService),
		WorkoutHandler:       adapterHTTP.NewWorkoutHandler(workoutService),
		MealHandler:          adapterHTTP.NewMealHandler(mealService),
		Tokens:               tokenService,
		DB:                   db,
		Redis:                rdb,
		Metrics:              metricsManager,
		MetricsGatherer:      reg,
		RateLimit:            cfg.RateLimit,
		RateLimitWindow:      cfg.RateLimitWindow,
		StartTime:            startTime,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("AdaptFitness Engine running on http://localhost:%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
		log.Println("Stop signal received. Shutting down...")
	case err := <-serverErr:
		cancelWorker()
		<-recalcWorker.Done()
		return fmt.Errorf("server error: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	shutdownErr := srv.Shutdown(shutdownCtx)

	cancelWorker()
	<-recalcWorker.Done()

	if shutdownErr != nil {
		return fmt.Errorf("forced shutdown: %w", shutdownErr)
	}
	log.Println("Server stopped gracefully.")
	return nil
}

func openDB(ctx context.Context, cfg *config.Config) (*sqlx.DB, error) {
	connConfig, err := pgx.ParseConfig(cfg.PostgresDSN())
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	connConfig.Tracer = tracing.NewPgxOtelTracer(cfg.DBTracing, tracing.GlobalTracer)

	db := sqlx.NewDb(stdlib.OpenDB(*connConfig), "pgx")
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		return nil, multierr.Append(fmt.Errorf("failed to connect to database: %w", err), db.Close())
	}
	return db, nil
}

func newUserRepository(db *sqlx.DB, rdb *redis.Client) domain.UserRepository {
	pg := repository.NewPostgresUserRepository(db)
	if rdb == nil {
		return pg
	}
	return repository.NewCachedUserRepository(pg, rdb)
}
