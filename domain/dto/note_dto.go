// domain/dto/note_dto.go

package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/notavel/gofiber-notes-api/domain/models"
	"github.com/notavel/gofiber-notes-api/domain/types"
)

// CreateNoteInput - ข้อมูลสำหรับสร้างบันทึกใหม่
type CreateNoteInput struct {
	Title          string              `json:"title"`
	Content        string              `json:"content"`
	CategoryID     *uuid.UUID          `json:"category_id"`
	Tags           []string            `json:"tags"`
	Checklist      types.ChecklistItems `json:"checklist"`
	ReminderDate   *time.Time          `json:"reminder_date"`
	ReminderRepeat models.RepeatRule   `json:"reminder_repeat"`
	Color          string              `json:"color"`
	StartDate      *time.Time          `json:"start_date"`
	EndDate        *time.Time          `json:"end_date"`
	IsFavorite     bool                `json:"is_favorite"`
	IsArchived     bool                `json:"is_archived"`
}

// Validate ตรวจสอบข้อมูลก่อนสร้างบันทึก
func (in *CreateNoteInput) Validate() error {
	if in.Title == "" {
		return NewValidationError("title", "title is required")
	}
	if in.ReminderRepeat != "" && !models.ValidRepeatRule(in.ReminderRepeat) {
		return NewValidationError("reminder_repeat", "reminder_repeat must be one of: none, daily, weekly, monthly, yearly")
	}
	return validatePeriod(in.StartDate, in.EndDate)
}

// UpdateNoteInput - patch สำหรับอัปเดตบันทึก
// field ที่ไม่ได้ส่งมาจะไม่ถูกแตะ ส่วน field แบบ Nullable
// รองรับการส่ง null เพื่อล้างค่า (เช่น ล้าง reminder)
type UpdateNoteInput struct {
	Title          *string               `json:"title"`
	Content        *string               `json:"content"`
	CategoryID     types.NullableUUID    `json:"category_id"`
	Tags           *[]string             `json:"tags"`
	Checklist      *types.ChecklistItems `json:"checklist"`
	ReminderDate   types.NullableTime    `json:"reminder_date"`
	ReminderRepeat *models.RepeatRule    `json:"reminder_repeat"`
	Color          *string               `json:"color"`
	StartDate      types.NullableTime    `json:"start_date"`
	EndDate        types.NullableTime    `json:"end_date"`
	IsFavorite     *bool                 `json:"is_favorite"`
	IsArchived     *bool                 `json:"is_archived"`
}

// Validate ตรวจสอบเฉพาะ field ที่ส่งมา
// การตรวจช่วงวันที่หลัง merge ทำที่ service (ต้องเห็นค่าเดิมก่อน)
func (in *UpdateNoteInput) Validate() error {
	if in.Title != nil && *in.Title == "" {
		return NewValidationError("title", "title cannot be empty")
	}
	if in.ReminderRepeat != nil && !models.ValidRepeatRule(*in.ReminderRepeat) {
		return NewValidationError("reminder_repeat", "reminder_repeat must be one of: none, daily, weekly, monthly, yearly")
	}
	return nil
}

// ValidatePeriod ตรวจสอบว่า start_date < end_date เมื่อกำหนดทั้งคู่
func ValidatePeriod(start, end *time.Time) error {
	return validatePeriod(start, end)
}

func validatePeriod(start, end *time.Time) error {
	if start != nil && end != nil && !start.Before(*end) {
		return NewValidationError("end_date", "end_date must be after start_date")
	}
	return nil
}

// NoteFilter - เงื่อนไขการกรองรายการบันทึก (รวมกันแบบ AND)
type NoteFilter struct {
	Search    string     // free-text ค้นหา title/content/tags (case-insensitive)
	CategoryID *uuid.UUID // ตรงกับ category_id
	Tag       string     // note.tags มี tag นี้ (exact)
	Favorite  bool       // เฉพาะ favorite
	Archived  bool       // เฉพาะ archived (ปกติ archived ถูกซ่อน)
	Reminders bool       // เฉพาะที่ตั้ง reminder

	// IncludeArchived ปิดการซ่อน archived (ใช้กับ scope=all)
	IncludeArchived bool
}
