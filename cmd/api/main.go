package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/internal/auth"
	"storefront/internal/client"
	"storefront/internal/config"
	"storefront/internal/logger"
	"storefront/internal/messaging"
	"storefront/internal/messaging/kafka"
	"storefront/internal/repository"
	"storefront/internal/repository/memory"
	"storefront/internal/server"
	"storefront/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	slog.SetDefault(log)

	ctx := context.Background()

	store, err := openStore(ctx, cfg.Store)
	if err != nil {
		log.Error("failed to open store", slog.String("driver", cfg.Store.Driver), slog.Any("error", err))
		os.Exit(1)
	}
	if err := store.Products().Seed(ctx, repository.DefaultProducts()); err != nil {
		log.Error("failed to seed products", slog.Any("error", err))
		os.Exit(1)
	}

	var publisher messaging.Publisher = messaging.Nop{}
	if len(cfg.Kafka.Brokers) > 0 {
		publisher = kafka.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		log.Info("publishing order events", slog.Any("brokers", cfg.Kafka.Brokers), slog.String("topic", cfg.Kafka.Topic))
	}
	defer publisher.Close()

	tokens := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	srv, err := server.NewServer(cfg.HTTP, server.Deps{
		Logger:  log,
		Tokens:  tokens,
		Catalog: service.NewCatalogService(store.Products()),
		Orders: service.NewOrderService(store,
			service.WithPublisher(publisher),
			service.WithPricingVerification(cfg.Checkout.VerifyPricing),
			service.WithLogger(log),
		),
		Invoices: service.NewInvoiceService(store.Invoices()),
		Users:    service.NewUserService(store.Users(), tokens),
	})
	if err != nil {
		log.Error("failed to build server", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("starting HTTP server",
		slog.String("addr", cfg.HTTP.Addr()),
		slog.String("environment", cfg.Environment.Name),
		slog.String("store", cfg.Store.Driver),
	)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP server error", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Info("signal received, starting graceful shutdown")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", slog.Any("error", err))
	}
}

func openStore(ctx context.Context, cfg config.Store) (repository.Store, error) {
	if cfg.Driver == "memory" {
		return memory.New(), nil
	}

	db, err := client.InitDB(cfg)
	if err != nil {
		return nil, err
	}
	return repository.NewStore(ctx, db)
}
