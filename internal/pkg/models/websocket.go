package models

import (
	"github.com/golang-jwt/jwt/v4"
	"github.com/gorilla/websocket"
)

// WebSocketClient holds the identity of an authenticated websocket connection
type WebSocketClient struct {
	UserID string
	Conn   *websocket.Conn
}

// WebSocketClaims are the JWT claims required to open a websocket connection
type WebSocketClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// WebSocketMessage is the envelope pushed to connected clients
type WebSocketMessage struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}
