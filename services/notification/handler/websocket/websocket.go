package websocket

import (
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/veritasbank/veritas/internal/pkg/logger"
	"github.com/veritasbank/veritas/internal/pkg/models"
	pkgws "github.com/veritasbank/veritas/internal/pkg/websocket"
)

// WebSocketHandler accepts client connections for notification delivery.
// Clients only listen; the read loop exists to detect disconnects.
type WebSocketHandler struct {
	manager *pkgws.Manager
}

// NewWebSocketHandler creates a new websocket handler
func NewWebSocketHandler(manager *pkgws.Manager) *WebSocketHandler {
	return &WebSocketHandler{
		manager: manager,
	}
}

// HandleWebSocket handles new WebSocket connections
func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	return h.manager.HandleConnection(c, h.handleClientConnection)
}

func (h *WebSocketHandler) handleClientConnection(client *models.WebSocketClient, ws *websocket.Conn) error {
	client.Conn = ws
	h.manager.AddClient(client)
	defer h.manager.RemoveClient(client.UserID)

	logger.Info("Notification client connected", logger.String("user_id", client.UserID))

	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("Websocket read failed",
					logger.String("user_id", client.UserID),
					logger.Err(err))
			}
			return nil
		}
	}
}
