// interfaces/websocket/handlers.go
package websocket

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RegisterWebSocketRoutes ผูก endpoint /ws เข้ากับ hub
func RegisterWebSocketRoutes(app *fiber.App, hub *Hub) {
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	app.Get("/ws", websocket.New(func(conn *websocket.Conn) {
		client := &Client{
			ID:           uuid.New(),
			Conn:         conn,
			Send:         make(chan []byte, 256),
			Hub:          hub,
			IsAlive:      true,
			LastPingTime: time.Now(),
		}

		hub.register <- client

		go client.writePump()
		client.readPump()
	}))
}

// readPump อ่านข้อความจาก client จนกว่า connection จะปิด
func (c *Client) readPump() {
	defer func() {
		c.Hub.unregister <- c
		c.Conn.Close()
	}()

	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("WebSocket read error for client %s: %v", c.ID, err)
			}
			return
		}

		var msg WSMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			c.Hub.sendToClient(c, WSResponse{
				Type:      msg.Type,
				Timestamp: time.Now(),
				Success:   false,
				Error:     "invalid message format",
			})
			continue
		}

		switch msg.Type {
		case TypePing:
			c.IsAlive = true
			c.LastPingTime = time.Now()
			c.Hub.sendToClient(c, WSResponse{
				Type:      TypePong,
				Timestamp: time.Now(),
				RequestID: msg.RequestID,
				Success:   true,
			})

		default:
			// endpoint นี้เป็น push-only: client ส่งได้แค่ ping
			c.Hub.sendToClient(c, WSResponse{
				Type:      msg.Type,
				Timestamp: time.Now(),
				RequestID: msg.RequestID,
				Success:   false,
				Error:     "unsupported message type",
			})
		}
	}
}

// writePump ส่งข้อความจาก Send channel ไปยัง client
func (c *Client) writePump() {
	defer c.Conn.Close()

	for data := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("WebSocket write error for client %s: %v", c.ID, err)
			return
		}
	}

	// channel ถูกปิด = client ถูก unregister แล้ว
	c.Conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
