// application/serviceimpl/note_service.go

package serviceimpl

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/notavel/gofiber-notes-api/domain/dto"
	"github.com/notavel/gofiber-notes-api/domain/models"
	"github.com/notavel/gofiber-notes-api/domain/port"
	"github.com/notavel/gofiber-notes-api/domain/repository"
	"github.com/notavel/gofiber-notes-api/domain/service"
	"github.com/notavel/gofiber-notes-api/domain/types"
)

type noteService struct {
	noteRepo repository.NoteRepository
	sched    port.ReminderScheduler // nil ได้ (เช่น ใน test)
}

// NewNoteService สร้าง instance ใหม่ของ NoteService
func NewNoteService(noteRepo repository.NoteRepository) service.NoteService {
	return &noteService{
		noteRepo: noteRepo,
	}
}

// SetReminderScheduler เชื่อม reminder processor เข้ากับ service
func (s *noteService) SetReminderScheduler(sched port.ReminderScheduler) {
	s.sched = sched
}

// CreateNote สร้างบันทึกใหม่
func (s *noteService) CreateNote(input *dto.CreateNoteInput) (*models.Note, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// กำหนดค่า default
	color := input.Color
	if color == "" {
		color = models.DefaultNoteColor
	}
	repeat := input.ReminderRepeat
	if repeat == "" {
		repeat = models.RepeatNone
	}
	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}
	checklist := input.Checklist
	if checklist == nil {
		checklist = types.ChecklistItems{}
	}

	now := time.Now()
	note := &models.Note{
		ID:             uuid.New(),
		Title:          input.Title,
		Content:        input.Content,
		CategoryID:     input.CategoryID,
		Tags:           types.StringArray(tags),
		Checklist:      checklist,
		ReminderDate:   input.ReminderDate,
		ReminderRepeat: repeat,
		Color:          color,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		IsFavorite:     input.IsFavorite,
		IsArchived:     input.IsArchived,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.noteRepo.Create(note); err != nil {
		return nil, err
	}

	if s.sched != nil && note.ReminderDate != nil {
		s.sched.ScheduleReminder(note.ID, *note.ReminderDate)
	}

	return note, nil
}

// GetNote ดึงข้อมูลบันทึก
func (s *noteService) GetNote(id uuid.UUID) (*models.Note, error) {
	note, err := s.noteRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, errors.New("note not found")
	}

	return note, nil
}

// UpdateNote อัปเดตบันทึกแบบ partial: merge เฉพาะ field ที่ส่งมา
func (s *noteService) UpdateNote(id uuid.UUID, input *dto.UpdateNoteInput) (*models.Note, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// ดึงบันทึกเดิม
	note, err := s.noteRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, errors.New("note not found")
	}

	// merge field ที่ส่งมา
	if input.Title != nil {
		note.Title = *input.Title
	}
	if input.Content != nil {
		note.Content = *input.Content
	}
	if input.CategoryID.Set {
		note.CategoryID = input.CategoryID.Value
	}
	if input.Tags != nil {
		note.Tags = types.StringArray(*input.Tags)
	}
	if input.Checklist != nil {
		note.Checklist = *input.Checklist
	}
	if input.ReminderDate.Set {
		note.ReminderDate = input.ReminderDate.Value
	}
	if input.ReminderRepeat != nil {
		note.ReminderRepeat = *input.ReminderRepeat
	}
	if input.Color != nil {
		note.Color = *input.Color
	}
	if input.StartDate.Set {
		note.StartDate = input.StartDate.Value
	}
	if input.EndDate.Set {
		note.EndDate = input.EndDate.Value
	}
	if input.IsFavorite != nil {
		note.IsFavorite = *input.IsFavorite
	}
	if input.IsArchived != nil {
		note.IsArchived = *input.IsArchived
	}

	// ตรวจช่วงวันที่หลัง merge (ค่าเดิม + ค่าใหม่)
	if err := dto.ValidatePeriod(note.StartDate, note.EndDate); err != nil {
		return nil, err
	}

	if err := s.noteRepo.Update(note); err != nil {
		return nil, err
	}

	if s.sched != nil {
		if note.ReminderDate != nil {
			s.sched.ScheduleReminder(note.ID, *note.ReminderDate)
		} else {
			s.sched.CancelReminder(note.ID)
		}
	}

	return note, nil
}

// DeleteNote ลบบันทึก
func (s *noteService) DeleteNote(id uuid.UUID) error {
	removed, err := s.noteRepo.Delete(id)
	if err != nil {
		return err
	}
	if !removed {
		return errors.New("note not found")
	}

	if s.sched != nil {
		s.sched.CancelReminder(id)
	}

	return nil
}

// ListNotes กรองรายการบันทึกตามเงื่อนไขที่ส่งมา (รวมกันแบบ AND)
// มุมมองปกติซ่อน note ที่ archive ไว้ เว้นแต่ขอ archived ตรงๆ
func (s *noteService) ListNotes(filter *dto.NoteFilter) ([]*models.Note, error) {
	if filter == nil {
		filter = &dto.NoteFilter{}
	}

	// เริ่มจากผลค้นหา (ถ้ามี query) หรือทั้งหมด
	var notes []*models.Note
	var err error
	if q := strings.TrimSpace(filter.Search); q != "" {
		notes, err = s.noteRepo.Search(q)
	} else {
		notes, err = s.noteRepo.GetAll()
	}
	if err != nil {
		return nil, err
	}

	result := make([]*models.Note, 0, len(notes))
	for _, note := range notes {
		if filter.CategoryID != nil {
			if note.CategoryID == nil || *note.CategoryID != *filter.CategoryID {
				continue
			}
		}
		if filter.Tag != "" && !note.HasTag(filter.Tag) {
			continue
		}
		if filter.Favorite && !note.IsFavorite {
			continue
		}
		if filter.Archived {
			if !note.IsArchived {
				continue
			}
		} else if note.IsArchived && !filter.IncludeArchived {
			continue
		}
		if filter.Reminders && !note.HasReminder() {
			continue
		}
		result = append(result, note)
	}

	return result, nil
}

// SearchNotes ค้นหาบันทึกด้วย free text
// query ว่างหรือมีแต่ช่องว่างคืนรายการทั้งหมด (ไม่ใช่ error)
func (s *noteService) SearchNotes(query string) ([]*models.Note, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return s.noteRepo.GetAll()
	}
	return s.noteRepo.Search(q)
}

// GetNotesByCategory ดึงบันทึกในหมวดหมู่
// หมวดที่ไม่มีอยู่คืนรายการว่าง ไม่ใช่ error
func (s *noteService) GetNotesByCategory(categoryID uuid.UUID) ([]*models.Note, error) {
	return s.noteRepo.FindByCategory(categoryID)
}

// GetNotesByTag ดึงบันทึกตาม tag (exact, case-sensitive)
func (s *noteService) GetNotesByTag(tag string) ([]*models.Note, error) {
	if tag == "" {
		return nil, dto.NewValidationError("tag", "tag cannot be empty")
	}
	return s.noteRepo.FindByTag(tag)
}

// GetFavoriteNotes ดึงบันทึกที่ติดดาวไว้
func (s *noteService) GetFavoriteNotes() ([]*models.Note, error) {
	return s.noteRepo.FindFavorites()
}

// GetArchivedNotes ดึงบันทึกที่ archive ไว้
func (s *noteService) GetArchivedNotes() ([]*models.Note, error) {
	return s.noteRepo.FindArchived()
}

// GetNotesWithReminders ดึงบันทึกที่ตั้ง reminder ไว้
func (s *noteService) GetNotesWithReminders() ([]*models.Note, error) {
	return s.noteRepo.FindWithReminders()
}

// AdvanceReminder เลื่อน reminder ไปรอบถัดไปหลังแจ้งเตือนแล้ว
// repeat none: ล้าง reminder_date / repeat อื่น: เลื่อนตามกฎจนพ้นเวลาปัจจุบัน
func (s *noteService) AdvanceReminder(id uuid.UUID) (*models.Note, error) {
	note, err := s.noteRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, errors.New("note not found")
	}
	if note.ReminderDate == nil {
		return note, nil
	}

	next := NextReminderTime(*note.ReminderDate, note.ReminderRepeat, time.Now())
	note.ReminderDate = next

	if err := s.noteRepo.Update(note); err != nil {
		return nil, err
	}

	if s.sched != nil {
		if next != nil {
			s.sched.ScheduleReminder(note.ID, *next)
		} else {
			s.sched.CancelReminder(note.ID)
		}
	}

	return note, nil
}

// NextReminderTime คำนวณเวลาแจ้งเตือนรอบถัดไป
// คืน nil เมื่อไม่มีรอบถัดไป (repeat = none)
func NextReminderTime(current time.Time, rule models.RepeatRule, now time.Time) *time.Time {
	next := current
	for !next.After(now) {
		switch rule {
		case models.RepeatDaily:
			next = next.AddDate(0, 0, 1)
		case models.RepeatWeekly:
			next = next.AddDate(0, 0, 7)
		case models.RepeatMonthly:
			next = next.AddDate(0, 1, 0)
		case models.RepeatYearly:
			next = next.AddDate(1, 0, 0)
		default:
			return nil
		}
	}
	return &next
}
