package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mobilipiu/catalog-api/internal/config"
	"github.com/mobilipiu/catalog-api/internal/delivery/events"
	httpDelivery "github.com/mobilipiu/catalog-api/internal/delivery/http"
	"github.com/mobilipiu/catalog-api/internal/delivery/http/handler"
	"github.com/mobilipiu/catalog-api/internal/domain"
	"github.com/mobilipiu/catalog-api/internal/fallback"
	"github.com/mobilipiu/catalog-api/internal/mailer"
	"github.com/mobilipiu/catalog-api/internal/pkg/database"
	"github.com/mobilipiu/catalog-api/internal/pkg/logger"
	"github.com/mobilipiu/catalog-api/internal/repository/postgres"
	"github.com/mobilipiu/catalog-api/internal/usecase/catalog"
	"github.com/mobilipiu/catalog-api/internal/usecase/contact"
	"github.com/mobilipiu/catalog-api/internal/usecase/product"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger := logger.New(cfg.Env)
	appLogger.Info("Starting Catalog API...")

	policy := fallback.NewPolicy(cfg.StoreConfigured())

	var productRepo domain.ProductRepository
	var referenceRepo domain.ReferenceRepository
	var contactRepo domain.ContactRepository

	if cfg.StoreConfigured() {
		appLogger.Info("Connecting to PostgreSQL...")
		db, err := database.WaitForDB(cfg, 10, 2*time.Second)
		if err != nil {
			appLogger.Fatal("Failed to connect to database", err)
		}
		defer db.Close()
		appLogger.Info("Connected to PostgreSQL successfully")

		if err := database.RunMigrations(db); err != nil {
			appLogger.Fatal("Failed to run migrations", err)
		}

		productRepo = postgres.NewProductRepository(db)
		referenceRepo = postgres.NewReferenceRepository(db)
		contactRepo = postgres.NewContactRepository(db)
	} else {
		appLogger.Warn("DATABASE_URL not set, serving the embedded static dataset")
	}

	var productPublisher product.EventPublisher
	var contactPublisher contact.EventPublisher
	if cfg.EventsConfigured() {
		appLogger.Info("Connecting to NATS...")
		publisher, err := events.NewPublisher(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to create NATS publisher", err)
		}
		defer publisher.Close()

		productPublisher = publisher
		contactPublisher = publisher
	} else {
		appLogger.Warn("NATS_URL not set, event publishing disabled")
	}

	smtpMailer := mailer.NewSMTPMailer(cfg.SMTP, appLogger)

	productService := product.NewService(
		productRepo, policy, productPublisher,
		cfg.Catalog.DefaultPageSize, cfg.Catalog.MaxPageSize, appLogger,
	)
	catalogService := catalog.NewService(referenceRepo, productRepo, policy, appLogger)
	contactService := contact.NewService(
		contactRepo, smtpMailer, policy, contactPublisher,
		cfg.SMTP.Recipient, appLogger,
	)

	productHandler := handler.NewProductHandler(productService, appLogger)
	catalogHandler := handler.NewCatalogHandler(catalogService, appLogger)
	contactHandler := handler.NewContactHandler(contactService, appLogger)

	router := httpDelivery.NewRouter(productHandler, catalogHandler, contactHandler, cfg, appLogger)
	httpHandler := router.Setup()

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      httpHandler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		appLogger.Infof("HTTP server listening on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("HTTP server failed", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", err)
	}

	appLogger.Info("Server stopped gracefully")
}
