// interfaces/websocket/hub.go
package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

// Hub จัดการ WebSocket connection ทั้งหมด
// ทุก event ของ note/category/tag ถูก broadcast ให้ทุก client
// เพื่อให้อุปกรณ์อื่นของผู้ใช้เห็นการเปลี่ยนแปลงทันที
type Hub struct {
	clients    map[uuid.UUID]*Client
	clientsMux sync.RWMutex

	register   chan *Client
	unregister chan *Client
	broadcast  chan *BroadcastMessage

	// Statistics
	startTime       time.Time
	totalMessages   int64
	messagesSentMux sync.RWMutex
}

// Client represents a WebSocket connection
type Client struct {
	ID           uuid.UUID
	Conn         *websocket.Conn
	Send         chan []byte
	Hub          *Hub
	IsAlive      bool
	LastPingTime time.Time
}

// Message types
type MessageType string

const (
	// Connection management
	TypeConnect    MessageType = "connect"
	TypeDisconnect MessageType = "disconnect"
	TypePing       MessageType = "ping"
	TypePong       MessageType = "pong"

	// Note events
	TypeNoteCreated MessageType = "note.created"
	TypeNoteUpdated MessageType = "note.updated"
	TypeNoteDeleted MessageType = "note.deleted"

	// Category events
	TypeCategoryCreated MessageType = "category.created"
	TypeCategoryUpdated MessageType = "category.updated"
	TypeCategoryDeleted MessageType = "category.deleted"

	// Tag events
	TypeTagCreated MessageType = "tag.created"
	TypeTagDeleted MessageType = "tag.deleted"

	// Reminder events
	TypeReminderDue MessageType = "reminder.due"
)

// WebSocket message structure
type WSMessage struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
	RequestID string          `json:"request_id,omitempty"`
}

// Response message structure
type WSResponse struct {
	Type      MessageType `json:"type"`
	Data      interface{} `json:"data"`
	Timestamp time.Time   `json:"timestamp"`
	RequestID string      `json:"request_id,omitempty"`
	Success   bool        `json:"success"`
	Error     string      `json:"error,omitempty"`
}

// BroadcastMessage for sending messages to all clients
type BroadcastMessage struct {
	Type      MessageType
	Data      interface{}
	ExcludeID *uuid.UUID // Exclude specific client
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[uuid.UUID]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *BroadcastMessage, 1000), // Buffer size
		startTime:  time.Now(),
	}
}

// Run starts the hub
func (h *Hub) Run(ctx context.Context) {
	log.Println("=== WebSocket Hub Run Started ===")
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("WebSocket Hub: Context cancelled, shutting down")
			return

		case client := <-h.register:
			log.Printf("WebSocket Hub: Registering new client %s", client.ID)
			h.registerClient(client)

		case client := <-h.unregister:
			log.Printf("WebSocket Hub: Unregistering client %s", client.ID)
			h.unregisterClient(client)

		case message := <-h.broadcast:
			h.broadcastMessage(message)

		case <-ticker.C:
			h.checkAliveClients()
		}
	}
}

// BroadcastToAll ส่ง event ให้ทุก client ที่เชื่อมต่ออยู่
func (h *Hub) BroadcastToAll(msgType MessageType, data interface{}) {
	h.broadcast <- &BroadcastMessage{
		Type: msgType,
		Data: data,
	}
}

// GetStats returns WebSocket statistics
func (h *Hub) GetStats() map[string]interface{} {
	h.clientsMux.RLock()
	totalClients := len(h.clients)
	h.clientsMux.RUnlock()

	h.messagesSentMux.RLock()
	messages := h.totalMessages
	h.messagesSentMux.RUnlock()

	return map[string]interface{}{
		"total_connections": totalClients,
		"total_messages":    messages,
		"uptime":            time.Since(h.startTime).String(),
		"started_at":        h.startTime,
	}
}

// IncrementMessageCount increments total message count (thread-safe)
func (h *Hub) IncrementMessageCount() {
	h.messagesSentMux.Lock()
	h.totalMessages++
	h.messagesSentMux.Unlock()
}

// registerClient registers a new client
func (h *Hub) registerClient(client *Client) {
	h.clientsMux.Lock()
	h.clients[client.ID] = client
	h.clientsMux.Unlock()

	// Send welcome message
	h.sendToClient(client, WSResponse{
		Type: TypeConnect,
		Data: map[string]interface{}{
			"message":   "Connected successfully",
			"client_id": client.ID.String(),
		},
		Timestamp: time.Now(),
		Success:   true,
	})
}

// unregisterClient removes a client from the hub
func (h *Hub) unregisterClient(client *Client) {
	h.clientsMux.Lock()
	if _, ok := h.clients[client.ID]; ok {
		delete(h.clients, client.ID)
		close(client.Send)
	}
	h.clientsMux.Unlock()
}

// broadcastMessage ส่งข้อความให้ทุก client ยกเว้น ExcludeID
func (h *Hub) broadcastMessage(msg *BroadcastMessage) {
	response := WSResponse{
		Type:      msg.Type,
		Data:      msg.Data,
		Timestamp: time.Now(),
		Success:   true,
	}

	h.clientsMux.RLock()
	targets := make([]*Client, 0, len(h.clients))
	for _, client := range h.clients {
		if msg.ExcludeID != nil && client.ID == *msg.ExcludeID {
			continue
		}
		targets = append(targets, client)
	}
	h.clientsMux.RUnlock()

	for _, client := range targets {
		h.sendToClient(client, response)
	}
	h.IncrementMessageCount()
}

// sendToClient sends a message to a specific client
func (h *Hub) sendToClient(client *Client, response WSResponse) {
	// Recover from panic if channel is closed
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from panic in sendToClient for client %s: %v", client.ID, r)
		}
	}()

	data, err := json.Marshal(response)
	if err != nil {
		return
	}

	h.clientsMux.RLock()
	_, exists := h.clients[client.ID]
	h.clientsMux.RUnlock()

	if !exists {
		return
	}

	select {
	case client.Send <- data:
		// Successfully sent
	default:
		// Client's send channel is full or closed
		log.Printf("Failed to send to client %s (channel full or closed)", client.ID)
		go func() {
			h.unregister <- client
		}()
	}
}

// checkAliveClients ตัด client ที่ไม่ตอบ ping เกิน 2 นาที
func (h *Hub) checkAliveClients() {
	h.clientsMux.RLock()
	stale := make([]*Client, 0)
	for _, client := range h.clients {
		if !client.IsAlive || time.Since(client.LastPingTime) > 2*time.Minute {
			stale = append(stale, client)
		}
	}
	h.clientsMux.RUnlock()

	for _, client := range stale {
		log.Printf("WebSocket Hub: Removing stale client %s", client.ID)
		h.unregisterClient(client)
	}
}
