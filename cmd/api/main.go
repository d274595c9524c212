package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	coreport "github.com/amirhossein-jamali/account-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/account-service/internal/domain/usecase/account"
	"github.com/amirhossein-jamali/account-service/internal/domain/usecase/user"
	"github.com/amirhossein-jamali/account-service/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/account-service/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/account-service/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/account-service/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/account-service/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/account-service/internal/infrastructure/adapter/logger"
	timeProvider "github.com/amirhossein-jamali/account-service/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/account-service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	warnings, err := cfg.Validate()
	if err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.UseJSONLogs(), cfg.Logger.Level)
	defer func() { _ = appLogger.Flush() }()

	for _, w := range warnings {
		appLogger.Warn("Configuration warning", map[string]any{"warning": w})
	}

	if err := run(cfg, appLogger); err != nil {
		appLogger.Error("Service stopped with error", map[string]any{"error": err.Error()})
		_ = appLogger.Flush()
		os.Exit(1)
	}
}

func run(cfg *config.Config, appLogger coreport.Logger) error {
	tp := timeProvider.NewRealTimeProvider()

	dbConfig := database.CreateConfigFromAppConfig(cfg)
	if err := dbConfig.Validate(); err != nil {
		return fmt.Errorf("invalid database configuration: %w", err)
	}

	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(context.Background()); err != nil {
		return err
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			appLogger.Error("Failed to close database", map[string]any{"error": err.Error()})
		}
	}()

	if err := dbManager.Migrate(context.Background()); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	userRepo := dbManager.TransactionUserRepository()
	accountRepo := dbManager.AccountRepository()
	recordRepo := dbManager.TransactionRecordRepository()

	userUseCase := user.NewUserUseCase(userRepo, accountRepo, tp, appLogger)
	accountService := account.NewAccountService(
		dbManager.CreateUnitOfWork(),
		accountRepo,
		userRepo,
		recordRepo,
		tp,
		appLogger,
	)
	defer accountService.Shutdown()

	if cfg.Seed.DemoData {
		if err := migration.SeedDemoData(context.Background(), cfg.Seed.DemoUsername, userUseCase, accountService, appLogger); err != nil {
			appLogger.Error("Failed to seed demo data", map[string]any{"error": err.Error()})
		}
	}

	if err := dto.RegisterValidators(); err != nil {
		return err
	}

	router, err := routes.NewRouter(appLogger, tp, cfg.Server.AllowedOrigins, routes.Handlers{
		Health:  handler.NewHealthHandler(dbManager, appLogger),
		User:    handler.NewUserHandler(userUseCase, appLogger),
		Account: handler.NewAccountHandler(accountService, appLogger),
	})
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":   server.Addr,
			"env":    cfg.Environment,
			"driver": dbConfig.Driver,
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err, ok := <-serverErr:
		if ok {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	appLogger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{"error": err.Error()})
	}

	appLogger.Info("Server exited gracefully", nil)
	return nil
}
