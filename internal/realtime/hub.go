package realtime

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/logger"
	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/models"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period.
	pingPeriod = (pongWait * 9) / 10
)

// Event is one realtime notification pushed to connected clients.
type Event struct {
	Type       string             `json:"type"`
	TaskID     string             `json:"task_id,omitempty"`
	Assignment *models.Assignment `json:"assignment,omitempty"`
}

// Hub maintains active websocket clients grouped by organization and pushes
// assignment-change events to them. Open task views use these events to
// refresh after another session commits a change.
type Hub struct {
	register   chan *Client
	unregister chan *Client

	mu      sync.RWMutex
	clients map[string]map[*Client]bool // organization id -> clients

	log *logger.Logger
}

// Client is one websocket connection.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte

	UserID         string
	OrganizationID string
}

func NewHub() *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[string]map[*Client]bool),
		log:        logger.NewLogger("realtime-hub"),
	}
}

// NewClient wraps an upgraded connection for registration with the hub.
func NewClient(hub *Hub, conn *websocket.Conn, userID, organizationID string) *Client {
	return &Client{
		hub:            hub,
		conn:           conn,
		send:           make(chan []byte, 256),
		UserID:         userID,
		OrganizationID: organizationID,
	}
}

// Run processes client registration until the process exits.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if _, ok := h.clients[client.OrganizationID]; !ok {
				h.clients[client.OrganizationID] = make(map[*Client]bool)
			}
			h.clients[client.OrganizationID][client] = true
			h.mu.Unlock()
			h.log.Debug("Client connected", "user_id", client.UserID, "organization_id", client.OrganizationID)

		case client := <-h.unregister:
			h.mu.Lock()
			if orgClients, ok := h.clients[client.OrganizationID]; ok {
				if _, ok := orgClients[client]; ok {
					delete(orgClients, client)
					close(client.send)
					if len(orgClients) == 0 {
						delete(h.clients, client.OrganizationID)
					}
				}
			}
			h.mu.Unlock()
		}
	}
}

// Register adds a client and starts its read/write pumps.
func (h *Hub) Register(client *Client) {
	h.register <- client
	go client.writePump()
	go client.readPump()
}

// AssignmentChanged implements the assignment service's Notifier: it fans the
// committed state out to every client in the task's organization.
func (h *Hub) AssignmentChanged(organizationID, taskID string, a models.Assignment) {
	h.broadcast(organizationID, Event{
		Type:       "task_assignment_changed",
		TaskID:     taskID,
		Assignment: &a,
	})
}

func (h *Hub) broadcast(organizationID string, event Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		h.log.Error("Failed to encode event", "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients[organizationID] {
		select {
		case client.send <- payload:
		default:
			// Slow consumer; drop the event rather than block the writer.
		}
	}
}

// readPump drains inbound frames and detects disconnects. Clients only
// listen; inbound payloads are discarded.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
