// domain/repository/tag_repository.go

package repository

import (
	"github.com/google/uuid"
	"github.com/notavel/gofiber-notes-api/domain/models"
)

// TagRepository - สัญญาของ storage backend สำหรับ tag
type TagRepository interface {
	Create(tag *models.Tag) error
	GetByID(id uuid.UUID) (*models.Tag, error)
	GetByName(name string) (*models.Tag, error) // ใช้ตรวจชื่อซ้ำ
	GetAll() ([]*models.Tag, error)             // เรียงตามชื่อ A-Z
	Delete(id uuid.UUID) (bool, error)
}
