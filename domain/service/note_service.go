// domain/service/note_service.go

package service

import (
	"github.com/google/uuid"
	"github.com/notavel/gofiber-notes-api/domain/dto"
	"github.com/notavel/gofiber-notes-api/domain/models"
	"github.com/notavel/gofiber-notes-api/domain/port"
)

// NoteService เป็น interface ที่กำหนดฟังก์ชันของ Note Service
type NoteService interface {
	// CRUD operations
	CreateNote(input *dto.CreateNoteInput) (*models.Note, error)
	GetNote(id uuid.UUID) (*models.Note, error)
	UpdateNote(id uuid.UUID, input *dto.UpdateNoteInput) (*models.Note, error)
	DeleteNote(id uuid.UUID) error

	// Query operations
	ListNotes(filter *dto.NoteFilter) ([]*models.Note, error) // รวมเงื่อนไขแบบ AND
	SearchNotes(query string) ([]*models.Note, error)
	GetNotesByCategory(categoryID uuid.UUID) ([]*models.Note, error)
	GetNotesByTag(tag string) ([]*models.Note, error)
	GetFavoriteNotes() ([]*models.Note, error)
	GetArchivedNotes() ([]*models.Note, error)
	GetNotesWithReminders() ([]*models.Note, error)

	// Reminder operations
	// AdvanceReminder ถูกเรียกโดย processor หลัง reminder ถึงเวลา:
	// เลื่อน reminder_date ตาม repeat rule หรือล้างทิ้งถ้าเป็น none
	AdvanceReminder(id uuid.UUID) (*models.Note, error)

	// SetReminderScheduler เชื่อม processor เข้ากับ service
	// (ต้องเรียกหลังสร้างทั้งสองฝั่งแล้ว เพื่อเลี่ยง dependency วน)
	SetReminderScheduler(sched port.ReminderScheduler)
}
