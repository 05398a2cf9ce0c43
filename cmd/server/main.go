package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	billingapp "github.com/facturation/backend/internal/application/billing"
	companyapp "github.com/facturation/backend/internal/application/company"
	partnerapp "github.com/facturation/backend/internal/application/partner"
	"github.com/facturation/backend/internal/infrastructure/auth"
	"github.com/facturation/backend/internal/infrastructure/config"
	"github.com/facturation/backend/internal/infrastructure/logger"
	"github.com/facturation/backend/internal/infrastructure/persistence"
	"github.com/facturation/backend/internal/interfaces/http/handler"
	"github.com/facturation/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting facturation backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("driver", cfg.Database.Driver),
	)

	// GORM logging goes through zap like everything else
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))

	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Repositories
	clientRepo := persistence.NewGormClientRepository(db.DB)
	quoteRepo := persistence.NewGormQuoteRepository(db.DB)
	invoiceRepo := persistence.NewGormInvoiceRepository(db.DB)
	paymentRepo := persistence.NewGormPaymentRepository(db.DB)
	settingsRepo := persistence.NewGormSettingsRepository(db.DB)
	allocator := persistence.NewGormNumberAllocator(db.DB)
	txManager := persistence.NewGormTxManager(db.DB)

	// Application services
	clientService := partnerapp.NewClientService(clientRepo, quoteRepo, invoiceRepo, paymentRepo)
	quoteService := billingapp.NewQuoteService(quoteRepo, clientRepo, settingsRepo, allocator, txManager)
	invoiceService := billingapp.NewInvoiceService(invoiceRepo, clientRepo)
	conversionService := billingapp.NewConversionService(quoteRepo, invoiceRepo, settingsRepo, allocator, txManager)
	depositService := billingapp.NewDepositService(quoteRepo, invoiceRepo, settingsRepo, allocator, txManager)
	paymentService := billingapp.NewPaymentService(paymentRepo, invoiceRepo, clientRepo, txManager)
	settingsService := companyapp.NewSettingsService(settingsRepo)

	// Authentication is only enforced when a secret is configured; desktop
	// installs run the API on localhost without it.
	var jwtService *auth.JWTService
	if cfg.JWT.Secret != "" {
		jwtService = auth.NewJWTService(cfg.JWT)
		log.Info("JWT authentication enabled", zap.String("issuer", cfg.JWT.Issuer))
	} else {
		log.Warn("JWT authentication disabled: no secret configured")
	}

	engine := router.New(router.Options{
		Config:     cfg,
		Logger:     log,
		JWTService: jwtService,
		Handlers: router.Handlers{
			System:   handler.NewSystemHandler(db, cfg.App.Name, version),
			Client:   handler.NewClientHandler(clientService),
			Quote:    handler.NewQuoteHandler(quoteService, conversionService, depositService),
			Invoice:  handler.NewInvoiceHandler(invoiceService),
			Payment:  handler.NewPaymentHandler(paymentService),
			Settings: handler.NewSettingsHandler(settingsService),
		},
	})

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
