// domain/repository/category_repository.go

package repository

import (
	"github.com/google/uuid"
	"github.com/notavel/gofiber-notes-api/domain/models"
)

// CategoryRepository - สัญญาของ storage backend สำหรับหมวดหมู่
type CategoryRepository interface {
	Create(category *models.Category) error
	GetByID(id uuid.UUID) (*models.Category, error)
	GetAll() ([]*models.Category, error) // เรียงตามชื่อ A-Z
	Update(category *models.Category) error
	Delete(id uuid.UUID) (bool, error)
}
