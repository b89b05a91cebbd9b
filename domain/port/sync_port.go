// domain/port/sync_port.go

package port

import "github.com/google/uuid"

// SyncPort เป็น interface สำหรับกระจาย change event ไปยัง client ที่เชื่อมต่ออยู่
// (web app, browser extension) เพื่อให้ข้อมูลตรงกันทุกหน้าจอ
type SyncPort interface {
	// Note events
	BroadcastNoteCreated(note interface{})
	BroadcastNoteUpdated(note interface{})
	BroadcastNoteDeleted(noteID uuid.UUID)

	// Category events
	BroadcastCategoryCreated(category interface{})
	BroadcastCategoryUpdated(category interface{})
	BroadcastCategoryDeleted(categoryID uuid.UUID)

	// Tag events
	BroadcastTagCreated(tag interface{})
	BroadcastTagDeleted(tagID uuid.UUID)

	// Reminder events (ส่งโดย reminder processor เมื่อถึงเวลาแจ้งเตือน)
	BroadcastReminderDue(note interface{})
}
