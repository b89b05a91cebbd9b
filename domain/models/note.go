// domain/models/note.go

package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/notavel/gofiber-notes-api/domain/types"
)

// RepeatRule - กฎการแจ้งเตือนซ้ำของ reminder
type RepeatRule string

const (
	RepeatNone    RepeatRule = "none"    // แจ้งเตือนครั้งเดียว
	RepeatDaily   RepeatRule = "daily"   // ทุกวัน
	RepeatWeekly  RepeatRule = "weekly"  // ทุกสัปดาห์
	RepeatMonthly RepeatRule = "monthly" // ทุกเดือน
	RepeatYearly  RepeatRule = "yearly"  // ทุกปี
)

// ValidRepeatRule ตรวจสอบว่าเป็นกฎที่รองรับหรือไม่
func ValidRepeatRule(r RepeatRule) bool {
	switch r {
	case RepeatNone, RepeatDaily, RepeatWeekly, RepeatMonthly, RepeatYearly:
		return true
	}
	return false
}

// DefaultNoteColor - สีเริ่มต้นของบันทึก
const DefaultNoteColor = "#ffffff"

// Note - บันทึกของผู้ใช้
// category_id เป็น soft reference: ลบ category แล้ว note จะถูกล้างเป็น NULL
type Note struct {
	ID             uuid.UUID            `json:"id" gorm:"type:uuid;primary_key"`
	Title          string               `json:"title" gorm:"type:varchar(255);not null"`
	Content        string               `json:"content" gorm:"type:text"`
	CategoryID     *uuid.UUID           `json:"category_id" gorm:"type:uuid;index"`
	Tags           types.StringArray    `json:"tags" gorm:"type:jsonb;default:'[]'::jsonb"` // Format: ["tag1", "tag2"]
	Checklist      types.ChecklistItems `json:"checklist" gorm:"type:jsonb;default:'[]'::jsonb"`
	ReminderDate   *time.Time           `json:"reminder_date" gorm:"type:timestamp with time zone;index"`
	ReminderRepeat RepeatRule           `json:"reminder_repeat" gorm:"type:varchar(20);default:'none'"`
	Color          string               `json:"color" gorm:"type:varchar(20);default:'#ffffff'"`
	StartDate      *time.Time           `json:"start_date" gorm:"type:timestamp with time zone"` // ช่วงเวลาของบันทึก (period)
	EndDate        *time.Time           `json:"end_date" gorm:"type:timestamp with time zone"`
	IsFavorite     bool                 `json:"is_favorite" gorm:"default:false"`
	IsArchived     bool                 `json:"is_archived" gorm:"default:false"`

	CreatedAt time.Time `json:"created_at" gorm:"type:timestamp with time zone;default:now()"`
	UpdatedAt time.Time `json:"updated_at" gorm:"type:timestamp with time zone;default:now();index"`

	// Associations
	Category *Category `json:"category,omitempty" gorm:"foreignkey:CategoryID"`
}

// TableName - ระบุชื่อตารางใน database
func (Note) TableName() string {
	return "notes"
}

// HasTag ตรวจสอบว่า note มี tag นี้หรือไม่ (exact, case-sensitive)
func (n *Note) HasTag(tag string) bool {
	return n.Tags.Contains(tag)
}

// HasReminder ตรวจสอบว่า note ตั้ง reminder ไว้หรือไม่
func (n *Note) HasReminder() bool {
	return n.ReminderDate != nil
}

// Clone คืนสำเนาของ note (pointer และ slice fields ถูก copy แยก)
// ใช้โดย in-memory backend เพื่อไม่ให้ caller แก้ record ใน store โดยตรง
func (n *Note) Clone() *Note {
	c := *n

	if n.CategoryID != nil {
		id := *n.CategoryID
		c.CategoryID = &id
	}
	if n.ReminderDate != nil {
		t := *n.ReminderDate
		c.ReminderDate = &t
	}
	if n.StartDate != nil {
		t := *n.StartDate
		c.StartDate = &t
	}
	if n.EndDate != nil {
		t := *n.EndDate
		c.EndDate = &t
	}

	c.Tags = append(types.StringArray{}, n.Tags...)
	c.Checklist = append(types.ChecklistItems{}, n.Checklist...)

	return &c
}
