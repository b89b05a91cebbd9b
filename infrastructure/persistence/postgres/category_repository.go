// infrastructure/persistence/postgres/category_repository.go

package postgres

import (
	"github.com/google/uuid"
	"github.com/notavel/gofiber-notes-api/domain/models"
	"github.com/notavel/gofiber-notes-api/domain/repository"
	"gorm.io/gorm"
)

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository สร้าง instance ใหม่ของ CategoryRepository
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

// Create สร้างหมวดหมู่ใหม่
func (r *categoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

// GetByID ดึงข้อมูลหมวดหมู่ตาม ID
func (r *categoryRepository) GetByID(id uuid.UUID) (*models.Category, error) {
	var category models.Category
	err := r.db.Where("id = ?", id).First(&category).Error

	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &category, nil
}

// GetAll ดึงหมวดหมู่ทั้งหมด เรียงตามชื่อ A-Z
func (r *categoryRepository) GetAll() ([]*models.Category, error) {
	var categories []*models.Category
	err := r.db.Order("name ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// Update อัปเดตข้อมูลหมวดหมู่
func (r *categoryRepository) Update(category *models.Category) error {
	return r.db.Save(category).Error
}

// Delete ลบหมวดหมู่ คืน false เมื่อไม่มี record ให้ลบ
func (r *categoryRepository) Delete(id uuid.UUID) (bool, error) {
	result := r.db.Where("id = ?", id).Delete(&models.Category{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
