// domain/models/category.go

package models

import (
	"time"

	"github.com/google/uuid"
)

// Category - หมวดหมู่ของบันทึก (มีสีประจำหมวด)
type Category struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	Name      string    `json:"name" gorm:"type:varchar(100);not null"`
	Color     string    `json:"color" gorm:"type:varchar(20);not null"` // hex code เช่น #3b82f6
	CreatedAt time.Time `json:"created_at" gorm:"type:timestamp with time zone;default:now()"`
}

// TableName - ระบุชื่อตารางใน database
func (Category) TableName() string {
	return "categories"
}
