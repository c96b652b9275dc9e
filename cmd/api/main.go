package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"atm-withdrawal/config"
	httpHandler "atm-withdrawal/internal/adapter/http/handler"
	"atm-withdrawal/internal/adapter/http/middleware"
	pgStorage "atm-withdrawal/internal/adapter/storage/postgres"
	redisStorage "atm-withdrawal/internal/adapter/storage/redis"
	"atm-withdrawal/internal/core/domain"
	"atm-withdrawal/internal/core/ports"
	"atm-withdrawal/internal/service"
	"atm-withdrawal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func main() {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	gin.SetMode(cfg.Server.Mode)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting ATM Withdrawal API")

	ctx := context.Background()

	// Currency and note set
	currency, err := domain.NewCurrency(cfg.Currency.Code, cfg.Currency.Symbol, cfg.Currency.Name)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid currency")
	}
	denominations, err := domain.ParseDenominations(cfg.Currency.Denominations)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid denominations")
	}
	calculator, err := service.NewNoteCalculator(denominations)
	if err != nil {
		log.Fatal().Err(err).Str("denominations", denominations.String()).Msg("Unusable denomination set")
	}
	log.Info().
		Str("currency", currency.Code()).
		Str("denominations", denominations.Format(currency.Format)).
		Msg("Note calculator ready")

	maxAmount, capped, err := cfg.Withdrawal.MaxAmountDecimal()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid withdrawal limit")
	}
	var maxAmountCap decimal.NullDecimal
	if capped {
		maxAmountCap = decimal.NewNullDecimal(maxAmount)
	}

	var healthCheckers []ports.HealthChecker

	// Initialize Redis client (rate limiting)
	var rateLimitStore ports.RateLimitStore
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		log.Info().Msg("Redis connected")

		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
		if cfg.RateLimit.Enabled {
			rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		}
	} else if cfg.RateLimit.Enabled {
		log.Warn().Msg("Rate limiting needs Redis, running without it")
	}

	// Initialize PostgreSQL pool (audit log)
	var auditRepo ports.AuditRepository
	if cfg.Database.Enabled {
		if cfg.Database.AutoMigrate {
			if err := pgStorage.RunMigrations(cfg.Database.DSN(), log); err != nil {
				log.Fatal().Err(err).Msg("Failed to run migrations")
			}
		}

		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()
		log.Info().Msg("PostgreSQL connected")

		auditRepo = pgStorage.NewAuditRepository(pool)
		healthCheckers = append(healthCheckers, pgStorage.NewHealthCheck(pool))
	}

	hasher, err := service.NewClientHasher(cfg.Audit.IPHashKey)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize client hasher")
	}
	auditSvc := service.NewAuditService(auditRepo, hasher, log)

	// Load OpenAPI spec for Swagger UI
	var specBytes []byte
	if b, err := os.ReadFile(cfg.Server.OpenAPIPath); err == nil {
		specBytes = b
		log.Info().Msg("OpenAPI spec loaded for Swagger UI at /swagger")
	} else {
		log.Warn().Err(err).Msg("OpenAPI spec not found, Swagger UI will be unavailable")
	}

	// Setup Gin router with all routes
	router, err := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Calculator:     calculator,
		Currency:       currency,
		MaxAmount:      maxAmountCap,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		RateLimitStore: rateLimitStore,
		RateLimitRules: middleware.RateLimitRules(cfg.RateLimit.Limit, cfg.RateLimit.Window),
		AuditSvc:       auditSvc,
		HealthCheckers: healthCheckers,
		OpenAPISpec:    specBytes,
		Logger:         log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set up router")
	}

	// HTTP Server with graceful shutdown
	addr := cfg.Server.Addr()
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
