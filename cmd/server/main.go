package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	httpAdapter "github.com/fletero/backoffice/internal/adapter/http"
	"github.com/fletero/backoffice/internal/adapter/http/handler"
	postgresRepo "github.com/fletero/backoffice/internal/adapter/repository/postgres"
	redisRepo "github.com/fletero/backoffice/internal/adapter/repository/redis"
	"github.com/fletero/backoffice/internal/adapter/ws"
	"github.com/fletero/backoffice/internal/infrastructure/auth"
	"github.com/fletero/backoffice/internal/infrastructure/config"
	"github.com/fletero/backoffice/internal/infrastructure/eventpublisher"
	"github.com/fletero/backoffice/internal/infrastructure/logger"
	"github.com/fletero/backoffice/internal/infrastructure/postgres"
	"github.com/fletero/backoffice/internal/infrastructure/redis"
	"github.com/fletero/backoffice/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	log.Logger = logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

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
	cajaRepo := postgresRepo.NewCajaRepository(pool)
	ingresoRepo := postgresRepo.NewIngresoRepository(pool)
	gastoRepo := postgresRepo.NewGastoRepository(pool)
	remuneracionRepo := postgresRepo.NewRemuneracionRepository(pool)
	legalRepo := postgresRepo.NewLegalRepository(pool)
	rendicionRepo := postgresRepo.NewRendicionRepository(pool)
	salidaRepo := postgresRepo.NewSalidaRepository(pool)
	ordenRepo := postgresRepo.NewOrdenRepository(pool)
	choferRepo := postgresRepo.NewChoferRepository(pool)
	userRepo := postgresRepo.NewUserRepository(pool)
	outboxRepo := postgresRepo.NewOutboxRepository(pool)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	idGen := postgresRepo.NewULIDGenerator()

	// Initialize use cases
	runner := usecase.NewTxRunner(txManager, postgresRepo.NewRetrier(), cfg.OperationTimeout)
	ledgerDeps := usecase.LedgerDeps{
		Runner:           runner,
		CajaRepo:         cajaRepo,
		OutboxRepo:       outboxRepo,
		IDGen:            idGen,
		MonthlyGraceDays: cfg.MonthlyGraceDays,
	}
	cajaUC := usecase.NewCajaUseCase(cajaRepo, idGen)
	ingresoUC := usecase.NewIngresoUseCase(ledgerDeps, ingresoRepo)
	gastoUC := usecase.NewGastoUseCase(ledgerDeps, gastoRepo)
	remuneracionUC := usecase.NewRemuneracionUseCase(ledgerDeps, remuneracionRepo)
	legalUC := usecase.NewLegalUseCase(ledgerDeps, legalRepo)
	rendicionUC := usecase.NewRendicionUseCase(ledgerDeps, rendicionRepo)
	salidaUC := usecase.NewSalidaUseCase(salidaRepo, outboxRepo, idGen, cfg.MonthlyGraceDays)
	ordenUC := usecase.NewOrdenUseCase(ordenRepo, idGen, cfg.MonthlyGraceDays)
	choferUC := usecase.NewChoferUseCase(choferRepo, idGen)
	userUC := usecase.NewUserUseCase(userRepo, idGen)

	// Initialize session manager
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiration)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(userUC, jwtManager, cfg.CookieName, cfg.CookieSecure)
	cajaHandler := handler.NewCajaHandler(cajaUC)
	ingresoHandler := handler.NewIngresoHandler(ingresoUC)
	gastoHandler := handler.NewGastoHandler(gastoUC)
	remuneracionHandler := handler.NewRemuneracionHandler(remuneracionUC)
	legalHandler := handler.NewLegalHandler(legalUC)
	rendicionHandler := handler.NewRendicionHandler(rendicionUC)
	salidaHandler := handler.NewSalidaHandler(salidaUC)
	ordenHandler := handler.NewOrdenHandler(ordenUC)
	choferHandler := handler.NewChoferHandler(choferUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Start the websocket hub and the outbox relay feeding it
	hub := ws.NewHub(log.Logger)
	go hub.Run(ctx)

	publisher := eventpublisher.NewEventPublisher(eventpublisher.Config{
		OutboxRepo: outboxRepo,
		Publisher:  hub,
		BatchSize:  cfg.PublishBatchSize,
		Interval:   cfg.PublishInterval,
	})
	go func() {
		if err := publisher.Start(ctx); err != nil && err != context.Canceled {
			log.Error().Err(err).Msg("event publisher stopped")
		}
	}()

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		AuthHandler:         authHandler,
		CajaHandler:         cajaHandler,
		IngresoHandler:      ingresoHandler,
		GastoHandler:        gastoHandler,
		RemuneracionHandler: remuneracionHandler,
		LegalHandler:        legalHandler,
		RendicionHandler:    rendicionHandler,
		SalidaHandler:       salidaHandler,
		OrdenHandler:        ordenHandler,
		ChoferHandler:       choferHandler,
		HealthHandler:       healthHandler,
		EventStream:         hub,
		JWTManager:          jwtManager,
		CookieName:          cfg.CookieName,
		IdempotencyStore:    idempotencyStore,
		Logger:              log.Logger,
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

	// Stop background workers before draining requests
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
