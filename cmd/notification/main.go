package main

import (
	"context"
	"errors"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/veritasbank/veritas/internal/pkg/config"
	"github.com/veritasbank/veritas/internal/pkg/health"
	"github.com/veritasbank/veritas/internal/pkg/logger"
	"github.com/veritasbank/veritas/internal/pkg/middleware"
	natspkg "github.com/veritasbank/veritas/internal/pkg/nats"
	"github.com/veritasbank/veritas/internal/pkg/server"
	wspkg "github.com/veritasbank/veritas/internal/pkg/websocket"
	gatewayHTTP "github.com/veritasbank/veritas/services/notification/gateway/http"
	"github.com/veritasbank/veritas/services/notification/handler"
	"github.com/veritasbank/veritas/services/notification/usecase"
	"go.uber.org/zap"
)

func main() {
	appName := "notification-service"
	configPath := config.GetEnv("CONFIG_PATH", "config/notification.env")
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

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	// Initialize websocket manager
	wsManager := wspkg.NewManager(configs.JWT)

	// Initialize gateway
	accountGW := gatewayHTTP.NewAccountClient(configs.Services.AccountServiceURL, configs.Client)

	// Initialize use case
	notificationUC := usecase.NewNotificationUC(configs, accountGW, wsManager)

	// Initialize handlers
	notificationHandler := handler.NewHandler(notificationUC, natsClient, wsManager, configs)

	// Initialize NATS consumers
	if err := notificationHandler.InitNATSConsumers(); err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", zap.Error(err))
	}
	defer notificationHandler.Shutdown()

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	healthSvc := health.NewService()
	healthSvc.AddChecker("nats", func(ctx context.Context) error {
		if !natsClient.IsConnected() {
			return errors.New("nats connection lost")
		}
		return nil
	})
	health.RegisterEndpoints(e, appName, configs.App.Version, healthSvc)

	// Register service routes
	notificationHandler.RegisterRoutes(e)

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error", zap.Error(err))
	}
}
