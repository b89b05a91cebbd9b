// domain/port/reminder_scheduler.go

package port

import (
	"time"

	"github.com/google/uuid"
)

// ReminderScheduler เป็น interface สำหรับแจ้ง background processor
// เมื่อ reminder ของ note ถูกตั้ง เปลี่ยนเวลา หรือถูกยกเลิก
type ReminderScheduler interface {
	ScheduleReminder(noteID uuid.UUID, at time.Time)
	CancelReminder(noteID uuid.UUID)
}
