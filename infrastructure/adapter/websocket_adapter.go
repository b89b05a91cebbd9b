// infrastructure/adapter/websocket_adapter.go
package adapter

import (
	"github.com/google/uuid"
	"github.com/notavel/gofiber-notes-api/domain/port"
	"github.com/notavel/gofiber-notes-api/interfaces/websocket"
)

// WebSocketAdapter ใช้งานร่วมกับ WebSocketHub และ implements interface SyncPort
type WebSocketAdapter struct {
	hub *websocket.Hub
}

// NewWebSocketAdapter สร้าง WebSocketAdapter ตัวใหม่
func NewWebSocketAdapter(hub *websocket.Hub) port.SyncPort {
	return &WebSocketAdapter{
		hub: hub,
	}
}

// BroadcastNoteCreated แจ้งว่ามีบันทึกใหม่
func (a *WebSocketAdapter) BroadcastNoteCreated(note interface{}) {
	a.hub.BroadcastToAll(websocket.TypeNoteCreated, note)
}

// BroadcastNoteUpdated แจ้งว่าบันทึกถูกแก้ไข
func (a *WebSocketAdapter) BroadcastNoteUpdated(note interface{}) {
	a.hub.BroadcastToAll(websocket.TypeNoteUpdated, note)
}

// BroadcastNoteDeleted แจ้งว่าบันทึกถูกลบ
func (a *WebSocketAdapter) BroadcastNoteDeleted(noteID uuid.UUID) {
	a.hub.BroadcastToAll(websocket.TypeNoteDeleted, map[string]interface{}{
		"id": noteID.String(),
	})
}

// BroadcastCategoryCreated แจ้งว่ามีหมวดหมู่ใหม่
func (a *WebSocketAdapter) BroadcastCategoryCreated(category interface{}) {
	a.hub.BroadcastToAll(websocket.TypeCategoryCreated, category)
}

// BroadcastCategoryUpdated แจ้งว่าหมวดหมู่ถูกแก้ไข
func (a *WebSocketAdapter) BroadcastCategoryUpdated(category interface{}) {
	a.hub.BroadcastToAll(websocket.TypeCategoryUpdated, category)
}

// BroadcastCategoryDeleted แจ้งว่าหมวดหมู่ถูกลบ
func (a *WebSocketAdapter) BroadcastCategoryDeleted(categoryID uuid.UUID) {
	a.hub.BroadcastToAll(websocket.TypeCategoryDeleted, map[string]interface{}{
		"id": categoryID.String(),
	})
}

// BroadcastTagCreated แจ้งว่ามี tag ใหม่
func (a *WebSocketAdapter) BroadcastTagCreated(tag interface{}) {
	a.hub.BroadcastToAll(websocket.TypeTagCreated, tag)
}

// BroadcastTagDeleted แจ้งว่า tag ถูกลบ
func (a *WebSocketAdapter) BroadcastTagDeleted(tagID uuid.UUID) {
	a.hub.BroadcastToAll(websocket.TypeTagDeleted, map[string]interface{}{
		"id": tagID.String(),
	})
}

// BroadcastReminderDue แจ้งว่าถึงเวลาแจ้งเตือนของบันทึก
func (a *WebSocketAdapter) BroadcastReminderDue(note interface{}) {
	a.hub.BroadcastToAll(websocket.TypeReminderDue, note)
}
