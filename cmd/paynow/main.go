package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DanielPopoola/ficmart-paynow/internal/api"
	"github.com/DanielPopoola/ficmart-paynow/internal/application"
	"github.com/DanielPopoola/ficmart-paynow/internal/application/services"
	"github.com/DanielPopoola/ficmart-paynow/internal/config"
	"github.com/DanielPopoola/ficmart-paynow/internal/infrastructure/paynow"
	"github.com/DanielPopoola/ficmart-paynow/internal/infrastructure/persistence/memory"
	"github.com/DanielPopoola/ficmart-paynow/internal/infrastructure/persistence/postgres"
	"github.com/DanielPopoola/ficmart-paynow/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/ficmart-paynow/internal/interfaces/rest/middleware"
	"github.com/DanielPopoola/ficmart-paynow/internal/worker"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting paynow service",
		"port", cfg.Server.Port,
		"env", cfg.Primary.Env,
		"storage", cfg.Storage.Driver,
		"sandbox", cfg.Gateway.UseSandbox,
		"log_level", cfg.Logger.Level,
	)

	ctx := context.Background()

	var (
		store  application.OrderStore
		mailer application.OrderMailer
	)

	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		logger.Warn("memory storage selected; orders are not persisted and none exist until created in process")
		store = memory.NewStore()
		mailer = memory.NewMailer()
	default:
		db, err := postgres.Connect(ctx, &cfg.Database, logger)
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		store = postgres.NewOrderStore(db)
		mailer = postgres.NewOutboxMailer(db)
	}

	gatewayClient := paynow.NewClient(cfg.Gateway)
	retryGatewayClient := paynow.NewRetryClient(gatewayClient, cfg.Retry)

	orchestrator := services.NewPaymentOrchestrator(
		store,
		mailer,
		retryGatewayClient,
		&cfg.Gateway,
		services.Options{
			ContinueURL:     cfg.Shop.ContinueURL(),
			NotificationURL: cfg.Shop.NotificationURL(),
			RetryURL:        cfg.Shop.RetryURL(),
			CancelURL:       cfg.Shop.CancelURL(),
			ValiditySeconds: cfg.Gateway.ValiditySeconds(),
			SendCart:        cfg.Gateway.SendCart,
			Level0:          cfg.Gateway.Level0,
		},
		logger,
	)

	if cfg.Gateway.ConfigureShopURLs {
		// Best effort: a failure only means the URLs must be set in the merchant panel.
		_ = orchestrator.ConfigureShopURLs(ctx)
	}

	h := handlers.NewHandlers(
		orchestrator,
		handlers.Pages{
			CartURL:    cfg.Shop.CartPage(),
			SuccessURL: cfg.Shop.SuccessPage(),
			FailureURL: cfg.Shop.FailurePage(),
		},
		logger,
	)

	doc, err := api.LoadSpec(ctx)
	if err != nil {
		logger.Error("failed to load api document", "error", err)
		os.Exit(1)
	}

	validation, err := middleware.Validation(doc, logger)
	if err != nil {
		logger.Error("failed to build request validator", "error", err)
		os.Exit(1)
	}

	mux := http.NewServeMux()
	api.RegisterDocsRoutes(mux)
	h.Register(mux)

	router := validation(mux)

	handler := middleware.Recovery(logger)(router)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Timeout(cfg.Server.ReadTimeout)(handler)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	reconciler := worker.NewStatusReconciler(
		store,
		orchestrator,
		cfg.Worker.Interval,
		cfg.Worker.BatchSize,
		cfg.Worker.StaleAfter,
		logger,
	)

	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()

	go reconciler.Start(workerCtx)

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	cancelWorkers()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
