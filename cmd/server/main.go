package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	httpAdapter "github.com/finlight/pocketledger/internal/adapter/http"
	"github.com/finlight/pocketledger/internal/adapter/http/handler"
	postgresRepo "github.com/finlight/pocketledger/internal/adapter/repository/postgres"
	redisRepo "github.com/finlight/pocketledger/internal/adapter/repository/redis"
	"github.com/finlight/pocketledger/internal/infrastructure/config"
	"github.com/finlight/pocketledger/internal/infrastructure/logger"
	"github.com/finlight/pocketledger/internal/infrastructure/postgres"
	"github.com/finlight/pocketledger/internal/infrastructure/redis"
	"github.com/finlight/pocketledger/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	appLogger := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	log.Logger = appLogger

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Run migrations
	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	sourceRepo := postgresRepo.NewSourceRepository(pool)
	transactionRepo := postgresRepo.NewTransactionRepository(pool)
	receivableRepo := postgresRepo.NewReceivableRepository(pool)
	ledgerRepo := postgresRepo.NewLedgerRepository(pool)
	cache := redisRepo.NewCache(redisClient)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	idGen := postgresRepo.NewULIDGenerator()
	retrier := postgresRepo.NewRetrier(appLogger)

	// Initialize use cases
	sourceUC := usecase.NewSourceUseCase(sourceRepo, idGen)
	ledgerUC := usecase.NewLedgerUseCase(txManager, sourceRepo, transactionRepo, receivableRepo, idGen, cache, retrier)
	queryUC := usecase.NewQueryUseCase(sourceRepo, transactionRepo, receivableRepo, cache)
	reconciliationUC := usecase.NewReconciliationUseCase(ledgerRepo)

	// Seed default sources on first run
	if cfg.SeedDefaults {
		seeded, err := sourceUC.SeedDefaults(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to seed default sources")
		}
		if seeded {
			log.Info().Msg("seeded default sources")
		}
	}

	// Initialize handlers
	sourceHandler := handler.NewSourceHandler(sourceUC, queryUC)
	transactionHandler := handler.NewTransactionHandler(ledgerUC, queryUC)
	receivableHandler := handler.NewReceivableHandler(ledgerUC, queryUC)
	ledgerHandler := handler.NewLedgerHandler(reconciliationUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		SourceHandler:      sourceHandler,
		TransactionHandler: transactionHandler,
		ReceivableHandler:  receivableHandler,
		LedgerHandler:      ledgerHandler,
		HealthHandler:      healthHandler,
		IdempotencyStore:   idempotencyStore,
		Logger:             appLogger,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
