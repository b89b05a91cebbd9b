// domain/models/tag.go

package models

import (
	"time"

	"github.com/google/uuid"
)

// Tag - ป้ายกำกับแบบ free text
// ชื่อต้องไม่ซ้ำกัน แต่ไม่มี referential integrity กับ Note.tags
// (Note.tags เก็บชื่อ tag แบบ denormalized)
type Tag struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	Name      string    `json:"name" gorm:"type:varchar(100);not null;uniqueIndex"`
	CreatedAt time.Time `json:"created_at" gorm:"type:timestamp with time zone;default:now()"`
}

// TableName - ระบุชื่อตารางใน database
func (Tag) TableName() string {
	return "tags"
}
