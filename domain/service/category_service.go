// domain/service/category_service.go

package service

import (
	"github.com/google/uuid"
	"github.com/notavel/gofiber-notes-api/domain/dto"
	"github.com/notavel/gofiber-notes-api/domain/models"
)

// CategoryService เป็น interface ที่กำหนดฟังก์ชันของ Category Service
type CategoryService interface {
	CreateCategory(input *dto.CreateCategoryInput) (*models.Category, error)
	GetCategory(id uuid.UUID) (*models.Category, error)
	GetCategories() ([]*models.Category, error)
	UpdateCategory(id uuid.UUID, input *dto.UpdateCategoryInput) (*models.Category, error)

	// DeleteCategory ลบหมวดหมู่ และล้าง category_id ของ note ที่อ้างถึง (soft-null)
	DeleteCategory(id uuid.UUID) error
}
