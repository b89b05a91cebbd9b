// pkg/scheduler/timer_manager.go
package scheduler

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// TimerCallback เป็น function ที่จะถูกเรียกเมื่อ timer ถึงเวลา
type TimerCallback func(noteID uuid.UUID)

// ScheduledTimer เก็บข้อมูล timer แต่ละตัว
type ScheduledTimer struct {
	NoteID      uuid.UUID
	ScheduledAt time.Time
	Timer       *time.Timer
}

// TimerManager จัดการ in-memory timers สำหรับ reminder ของบันทึก
type TimerManager struct {
	mu       sync.RWMutex
	timers   map[uuid.UUID]*ScheduledTimer
	callback TimerCallback
}

// NewTimerManager สร้าง TimerManager ใหม่
func NewTimerManager(callback TimerCallback) *TimerManager {
	return &TimerManager{
		timers:   make(map[uuid.UUID]*ScheduledTimer),
		callback: callback,
	}
}

// Schedule สร้าง timer สำหรับ reminder
func (tm *TimerManager) Schedule(noteID uuid.UUID, scheduledAt time.Time) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	// ยกเลิก timer เดิมถ้ามี
	if existing, ok := tm.timers[noteID]; ok {
		existing.Timer.Stop()
		delete(tm.timers, noteID)
	}

	duration := time.Until(scheduledAt)

	// ถ้าเวลาผ่านไปแล้ว แจ้งทันที
	if duration <= 0 {
		log.Printf("[TimerManager] Reminder for note %s is past due, firing immediately", noteID)
		go tm.callback(noteID)
		return
	}

	// สร้าง timer ใหม่
	timer := time.AfterFunc(duration, func() {
		log.Printf("[TimerManager] Timer fired for note %s", noteID)
		tm.callback(noteID)
		tm.remove(noteID)
	})

	tm.timers[noteID] = &ScheduledTimer{
		NoteID:      noteID,
		ScheduledAt: scheduledAt,
		Timer:       timer,
	}

	log.Printf("[TimerManager] Scheduled reminder for note %s at %s (in %v)", noteID, scheduledAt.Format(time.RFC3339), duration)
}

// Cancel ยกเลิก reminder timer
func (tm *TimerManager) Cancel(noteID uuid.UUID) bool {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if timer, ok := tm.timers[noteID]; ok {
		timer.Timer.Stop()
		delete(tm.timers, noteID)
		log.Printf("[TimerManager] Cancelled timer for note %s", noteID)
		return true
	}
	return false
}

// remove ลบ timer ออกจาก map (internal use)
func (tm *TimerManager) remove(noteID uuid.UUID) {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	delete(tm.timers, noteID)
}

// Count จำนวน active timers
func (tm *TimerManager) Count() int {
	tm.mu.RLock()
	defer tm.mu.RUnlock()
	return len(tm.timers)
}

// Has ตรวจสอบว่ามี timer สำหรับ noteID หรือไม่
func (tm *TimerManager) Has(noteID uuid.UUID) bool {
	tm.mu.RLock()
	defer tm.mu.RUnlock()
	_, ok := tm.timers[noteID]
	return ok
}

// GetScheduledTime ดึงเวลาที่ schedule ไว้
func (tm *TimerManager) GetScheduledTime(noteID uuid.UUID) (time.Time, bool) {
	tm.mu.RLock()
	defer tm.mu.RUnlock()
	if timer, ok := tm.timers[noteID]; ok {
		return timer.ScheduledAt, true
	}
	return time.Time{}, false
}

// StopAll หยุด timers ทั้งหมด (เรียกตอน shutdown)
func (tm *TimerManager) StopAll() {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	for id, timer := range tm.timers {
		timer.Timer.Stop()
		delete(tm.timers, id)
	}
	log.Println("[TimerManager] All timers stopped")
}
