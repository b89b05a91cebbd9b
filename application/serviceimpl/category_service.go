// application/serviceimpl/category_service.go

package serviceimpl

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/notavel/gofiber-notes-api/domain/dto"
	"github.com/notavel/gofiber-notes-api/domain/models"
	"github.com/notavel/gofiber-notes-api/domain/repository"
	"github.com/notavel/gofiber-notes-api/domain/service"
)

type categoryService struct {
	categoryRepo repository.CategoryRepository
	noteRepo     repository.NoteRepository
}

// NewCategoryService สร้าง instance ใหม่ของ CategoryService
func NewCategoryService(categoryRepo repository.CategoryRepository, noteRepo repository.NoteRepository) service.CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		noteRepo:     noteRepo,
	}
}

// CreateCategory สร้างหมวดหมู่ใหม่
func (s *categoryService) CreateCategory(input *dto.CreateCategoryInput) (*models.Category, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	category := &models.Category{
		ID:        uuid.New(),
		Name:      input.Name,
		Color:     input.Color,
		CreatedAt: time.Now(),
	}

	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}

	return category, nil
}

// GetCategory ดึงข้อมูลหมวดหมู่
func (s *categoryService) GetCategory(id uuid.UUID) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, errors.New("category not found")
	}

	return category, nil
}

// GetCategories ดึงรายการหมวดหมู่ทั้งหมด (เรียงตามชื่อ)
func (s *categoryService) GetCategories() ([]*models.Category, error) {
	return s.categoryRepo.GetAll()
}

// UpdateCategory อัปเดตหมวดหมู่
func (s *categoryService) UpdateCategory(id uuid.UUID, input *dto.UpdateCategoryInput) (*models.Category, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, errors.New("category not found")
	}

	if input.Name != nil {
		category.Name = *input.Name
	}
	if input.Color != nil {
		category.Color = *input.Color
	}

	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}

	return category, nil
}

// DeleteCategory ลบหมวดหมู่ แล้วล้าง category_id ของ note ที่อ้างถึง
// เพื่อไม่ให้เหลือ reference ค้าง (soft-null policy)
func (s *categoryService) DeleteCategory(id uuid.UUID) error {
	removed, err := s.categoryRepo.Delete(id)
	if err != nil {
		return err
	}
	if !removed {
		return errors.New("category not found")
	}

	return s.noteRepo.ClearCategory(id)
}
