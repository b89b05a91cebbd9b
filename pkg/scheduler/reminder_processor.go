// pkg/scheduler/reminder_processor.go
package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/notavel/gofiber-notes-api/domain/port"
	"github.com/notavel/gofiber-notes-api/domain/service"
)

// ReminderProcessor แจ้งเตือนเมื่อถึงเวลา reminder ของบันทึก
// ใช้ Hybrid Approach: In-Memory Timer + Fallback Poll
type ReminderProcessor struct {
	noteService      service.NoteService
	syncPort         port.SyncPort
	timerManager     *TimerManager
	fallbackInterval time.Duration // ตรวจสอบ fallback ทุก 5 นาที
}

// NewReminderProcessor สร้าง processor ใหม่
func NewReminderProcessor(noteService service.NoteService, syncPort port.SyncPort) *ReminderProcessor {
	processor := &ReminderProcessor{
		noteService:      noteService,
		syncPort:         syncPort,
		fallbackInterval: 5 * time.Minute,
	}

	// สร้าง TimerManager พร้อม callback
	processor.timerManager = NewTimerManager(processor.fireReminder)

	return processor
}

// Start เริ่มการทำงานของ processor
func (p *ReminderProcessor) Start(ctx context.Context) {
	log.Println("[ReminderProcessor] Starting with precise timing mode...")

	// 1. โหลด reminder ที่ค้างอยู่จาก storage และสร้าง timers
	p.loadPendingReminders()

	// 2. เริ่ม fallback processor (ทุก 5 นาที เป็น safety net)
	ticker := time.NewTicker(p.fallbackInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("[ReminderProcessor] Stopping...")
			p.timerManager.StopAll()
			log.Println("[ReminderProcessor] Stopped")
			return
		case <-ticker.C:
			p.processFallback()
		}
	}
}

// loadPendingReminders โหลด reminder ที่ตั้งไว้ตอน startup
func (p *ReminderProcessor) loadPendingReminders() {
	log.Println("[ReminderProcessor] Loading pending reminders from storage...")

	notes, err := p.noteService.GetNotesWithReminders()
	if err != nil {
		log.Printf("[ReminderProcessor] Error loading pending reminders: %v", err)
		return
	}

	// สร้าง timers เฉพาะ reminder ใน 24 ชม. ข้างหน้า (รวมที่เลยเวลาแล้ว)
	horizon := time.Now().Add(24 * time.Hour)
	count := 0
	for _, note := range notes {
		if note.ReminderDate == nil || note.ReminderDate.After(horizon) {
			continue
		}
		p.timerManager.Schedule(note.ID, *note.ReminderDate)
		count++
	}

	log.Printf("[ReminderProcessor] Loaded %d pending reminders", count)
}

// processFallback ตรวจสอบ reminder ที่ตกค้าง (safety net)
func (p *ReminderProcessor) processFallback() {
	// หา reminder ที่ถึงเวลาแล้วแต่ยังไม่มี timer (อาจเกิดจาก server restart)
	notes, err := p.noteService.GetNotesWithReminders()
	if err != nil {
		log.Printf("[ReminderProcessor] Fallback error: %v", err)
		return
	}

	horizon := time.Now().Add(24 * time.Hour)
	overdue := 0
	for _, note := range notes {
		if note.ReminderDate == nil || note.ReminderDate.After(horizon) {
			continue
		}
		if !p.timerManager.Has(note.ID) {
			p.timerManager.Schedule(note.ID, *note.ReminderDate)
			overdue++
		}
	}

	if overdue > 0 {
		log.Printf("[ReminderProcessor] Fallback scheduled %d missing reminders", overdue)
	}
}

// fireReminder แจ้งเตือน (callback จาก timer)
// broadcast reminder.due แล้วเลื่อน reminder ไปรอบถัดไปตาม repeat rule
func (p *ReminderProcessor) fireReminder(noteID uuid.UUID) {
	log.Printf("[ReminderProcessor] Firing reminder for note: %s", noteID)

	note, err := p.noteService.GetNote(noteID)
	if err != nil {
		log.Printf("[ReminderProcessor] Note %s no longer available: %v", noteID, err)
		return
	}

	if p.syncPort != nil {
		p.syncPort.BroadcastReminderDue(note)
	}

	// เลื่อนไปรอบถัดไป (repeat none = ล้าง reminder)
	if _, err := p.noteService.AdvanceReminder(noteID); err != nil {
		log.Printf("[ReminderProcessor] Failed to advance reminder for note %s: %v", noteID, err)
	}
}

// ScheduleReminder เรียกจาก service เมื่อตั้งหรือเปลี่ยนเวลา reminder
func (p *ReminderProcessor) ScheduleReminder(noteID uuid.UUID, at time.Time) {
	p.timerManager.Schedule(noteID, at)
}

// CancelReminder เรียกเมื่อ reminder ถูกล้างหรือ note ถูกลบ
func (p *ReminderProcessor) CancelReminder(noteID uuid.UUID) {
	p.timerManager.Cancel(noteID)
}

// GetActiveTimerCount ดึงจำนวน active timers
func (p *ReminderProcessor) GetActiveTimerCount() int {
	return p.timerManager.Count()
}
