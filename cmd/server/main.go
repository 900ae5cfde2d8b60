package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"betpool/internal/config"
	"betpool/internal/database"
	"betpool/internal/handler"
	"betpool/internal/logger"
	"betpool/internal/repository/postgres"
	"betpool/internal/service"
	"betpool/internal/worker"

	"github.com/joho/godotenv"

	_ "betpool/docs"
)

// @title Betpool API
// @version 1.0
// @description Peer-to-peer pool-match betting engine: series lifecycle, bet matching and settlement
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Setup logger
	log := logger.New(true)

	// Optional .env for local development
	_ = godotenv.Load()

	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	// Initialize database connection
	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbPool, err := database.NewPool(dbCtx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer dbPool.Close()

	// Repositories
	walletRepo := postgres.NewWalletRepository(dbPool)
	betRepo := postgres.NewBetRepository(dbPool)
	matchRepo := postgres.NewMatchRepository(dbPool)
	seriesRepo := postgres.NewSeriesRepository(dbPool)
	transactionRepo := postgres.NewTransactionRepository(dbPool)
	influencerRepo := postgres.NewInfluencerRepository(dbPool)
	sessionRepo := postgres.NewSessionRepository(dbPool)

	// Transaction manager used by services
	txManager := postgres.NewTransactionManager(dbPool)

	// Services
	bettingService := service.NewBettingService(walletRepo, betRepo, seriesRepo, matchRepo,
		transactionRepo, txManager, cfg.Betting.MinBetAmount, log)
	seriesService := service.NewSeriesService(walletRepo, betRepo, seriesRepo, matchRepo,
		transactionRepo, influencerRepo, txManager, log)
	depositService := service.NewDepositService(walletRepo, transactionRepo, txManager,
		cfg.Betting.DepositExpiry, cfg.Worker.ExpiryBatchSize, log)
	walletService := service.NewWalletService(walletRepo, transactionRepo, txManager, log)
	authService := service.NewAuthService(sessionRepo)

	// Root context to be canceled on SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Worker failing pending deposits whose confirmation window passed
	expiryWorker := worker.NewDepositExpiryWorker(depositService, cfg.Worker.ExpiryInterval, log)
	expiryWorker.Start(ctx)
	defer expiryWorker.Stop()

	// http handler
	h := handler.NewHandler(bettingService, seriesService, depositService, walletService,
		authService, cfg.Auth.WebhookSecret, cfg.RateLimit, log)
	router := h.SetupRoutes()

	// http server configuration
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Str("port", cfg.Server.Port).Msg("Server started")

	// Wait for shutdown signal
	<-ctx.Done()
	log.Info().Msg("Shutdown signal received, starting graceful shutdown...")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
	} else {
		log.Info().Msg("HTTP server stopped gracefully")
	}

	log.Info().Msg("Shutdown complete")
}
