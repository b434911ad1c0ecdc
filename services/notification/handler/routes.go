package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/veritasbank/veritas/internal/pkg/models"
	natspkg "github.com/veritasbank/veritas/internal/pkg/nats"
	pkgws "github.com/veritasbank/veritas/internal/pkg/websocket"
	"github.com/veritasbank/veritas/services/notification"
	natsHandler "github.com/veritasbank/veritas/services/notification/handler/nats"
	wsHandler "github.com/veritasbank/veritas/services/notification/handler/websocket"
)

// Handler combines all handlers for the notification service
type Handler struct {
	notificationNATS *natsHandler.NotificationHandler
	notificationWS   *wsHandler.WebSocketHandler
	cfg              *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(
	notificationUC notification.NotificationUC,
	natsClient *natspkg.Client,
	wsManager *pkgws.Manager,
	cfg *models.Config,
) *Handler {
	return &Handler{
		notificationNATS: natsHandler.NewNotificationHandler(notificationUC, natsClient, cfg),
		notificationWS:   wsHandler.NewWebSocketHandler(wsManager),
		cfg:              cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/ws/notifications", h.notificationWS.HandleWebSocket)
}

// InitNATSConsumers initializes all NATS consumers
func (h *Handler) InitNATSConsumers() error {
	return h.notificationNATS.InitNATSConsumers()
}

// Shutdown drains the NATS subscriptions
func (h *Handler) Shutdown() {
	h.notificationNATS.Drain()
}
