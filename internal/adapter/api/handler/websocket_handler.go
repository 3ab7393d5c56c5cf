package handler

import (
	"log"
	"net/http"

	gws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"playvault/internal/infrastructure/firebase"
	"playvault/internal/infrastructure/websocket"
	"playvault/pkg/errors"
	"playvault/pkg/response"
)

type WebSocketHandler struct {
	manager    *websocket.Manager
	authClient *firebase.FirebaseAuthClient
	upgrader   gws.Upgrader
}

func NewWebSocketHandler(manager *websocket.Manager, authClient *firebase.FirebaseAuthClient) *WebSocketHandler {
	return &WebSocketHandler{
		manager:    manager,
		authClient: authClient,
		upgrader: gws.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// HandleConnection upgrades the request and registers the connection for
// event pushes. Browsers cannot set headers on the WebSocket handshake, so
// the ID token arrives as a query parameter.
func (h *WebSocketHandler) HandleConnection(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return response.Error(c, errors.Unauthorized("Missing token", nil))
	}

	uid, err := h.authClient.VerifyToken(c.Request().Context(), token)
	if err != nil {
		return response.Error(c, errors.Unauthorized("Invalid or expired token", err))
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		log.Printf("websocket upgrade failed for user %s: %v", uid, err)
		return err
	}

	client := &websocket.Client{
		UserID: uid,
		Conn:   conn,
		Send:   make(chan []byte, 64),
	}

	h.manager.Register <- client

	go client.WritePump()
	go client.ReadPump(h.manager)

	return nil
}
