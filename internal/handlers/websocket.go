package handlers

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/logger"
	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/middleware"
	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/realtime"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // tighten to known origins in production
	},
}

// WebSocketHandler upgrades authenticated connections and registers them with
// the realtime hub.
type WebSocketHandler struct {
	hub *realtime.Hub
	log *logger.Logger
}

func NewWebSocketHandler(hub *realtime.Hub) *WebSocketHandler {
	return &WebSocketHandler{
		hub: hub,
		log: logger.NewLogger("websocket-handler"),
	}
}

// HandleWebSocket handles incoming WebSocket connections.
func (h *WebSocketHandler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Error("Failed to upgrade connection", "error", err)
		return
	}

	h.hub.Register(realtime.NewClient(h.hub, conn, claims.UserID, claims.OrganizationID))
}
