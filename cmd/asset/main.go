package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/veritasbank/veritas/internal/pkg/config"
	"github.com/veritasbank/veritas/internal/pkg/database"
	"github.com/veritasbank/veritas/internal/pkg/health"
	"github.com/veritasbank/veritas/internal/pkg/logger"
	"github.com/veritasbank/veritas/internal/pkg/middleware"
	"github.com/veritasbank/veritas/internal/pkg/server"
	"github.com/veritasbank/veritas/services/asset/handler"
	"github.com/veritasbank/veritas/services/asset/repository"
	"github.com/veritasbank/veritas/services/asset/usecase"
	"go.uber.org/zap"
)

func main() {
	appName := "asset-service"
	configPath := config.GetEnv("CONFIG_PATH", "config/asset.env")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	// Initialize repository
	assetRepo := repository.NewAssetRepository(configs, postgresClient.GetDB())

	// Initialize use case
	assetUC := usecase.NewAssetUC(configs, assetRepo)

	// Initialize handlers
	assetHandler := handler.NewHandler(assetUC, configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	healthSvc := health.NewService()
	healthSvc.AddChecker("postgres", func(ctx context.Context) error {
		return postgresClient.Ping()
	})
	health.RegisterEndpoints(e, appName, configs.App.Version, healthSvc)

	// Register service routes
	assetHandler.RegisterRoutes(e)

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error", zap.Error(err))
	}
}
