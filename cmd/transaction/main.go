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
	natspkg "github.com/veritasbank/veritas/internal/pkg/nats"
	"github.com/veritasbank/veritas/internal/pkg/server"
	gatewayHTTP "github.com/veritasbank/veritas/services/transaction/gateway/http"
	gatewayNATS "github.com/veritasbank/veritas/services/transaction/gateway/nats"
	"github.com/veritasbank/veritas/services/transaction/handler"
	"github.com/veritasbank/veritas/services/transaction/repository"
	"github.com/veritasbank/veritas/services/transaction/usecase"
	"go.uber.org/zap"
)

func main() {
	appName := "transaction-service"
	configPath := config.GetEnv("CONFIG_PATH", "config/transaction.env")
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

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	// Initialize repository
	transactionRepo := repository.NewTransactionRepository(configs, postgresClient.GetDB())

	// Initialize gateways
	accountGW := gatewayHTTP.NewAccountClient(configs.Services.AccountServiceURL, configs.Client)
	assetGW := gatewayHTTP.NewAssetClient(configs.Services.AssetServiceURL, configs.Client)
	eventGW := gatewayNATS.NewEventGW(natsClient)

	// Initialize use case
	transactionUC := usecase.NewTransactionUC(configs, transactionRepo, accountGW, assetGW, eventGW)

	// Initialize handlers
	transactionHandler := handler.NewHandler(transactionUC, configs)

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
	transactionHandler.RegisterRoutes(e)

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error", zap.Error(err))
	}
}
