// infrastructure/remote/category_repository.go

package remote

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/notavel/gofiber-notes-api/domain/models"
	"github.com/notavel/gofiber-notes-api/domain/repository"
)

type remoteCategoryRepository struct {
	client *Client
}

// NewCategoryRepository สร้าง repository หมวดหมู่ฝั่ง remote
func NewCategoryRepository(client *Client) repository.CategoryRepository {
	return &remoteCategoryRepository{client: client}
}

// Create สร้างหมวดหมู่บนปลายทาง
func (r *remoteCategoryRepository) Create(category *models.Category) error {
	payload := &wireCategory{
		ID:        category.ID.String(),
		Name:      category.Name,
		Color:     category.Color,
		CreatedAt: category.CreatedAt.Format(time.RFC3339Nano),
	}

	var out wireCategory
	if err := r.client.do("POST", "/categories", nil, payload, &out); err != nil {
		return err
	}

	stored, err := fromWireCategory(&out)
	if err != nil {
		return err
	}
	*category = *stored
	return nil
}

// GetByID ดึงหมวดหมู่ตาม id (ไม่พบคืน nil, nil)
func (r *remoteCategoryRepository) GetByID(id uuid.UUID) (*models.Category, error) {
	var out wireCategory
	err := r.client.do("GET", "/categories/"+id.String(), nil, nil, &out)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return fromWireCategory(&out)
}

// GetAll ดึงหมวดหมู่ทั้งหมด
func (r *remoteCategoryRepository) GetAll() ([]*models.Category, error) {
	var out struct {
		Categories []*wireCategory `json:"categories"`
	}
	if err := r.client.do("GET", "/categories", nil, nil, &out); err != nil {
		return nil, err
	}

	categories := make([]*models.Category, 0, len(out.Categories))
	for _, w := range out.Categories {
		category, err := fromWireCategory(w)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, nil
}

// Update อัปเดตหมวดหมู่
func (r *remoteCategoryRepository) Update(category *models.Category) error {
	payload := &wireCategory{
		ID:    category.ID.String(),
		Name:  category.Name,
		Color: category.Color,
	}

	var out wireCategory
	err := r.client.do("PATCH", "/categories/"+category.ID.String(), nil, payload, &out)
	if err != nil {
		return err
	}

	stored, err := fromWireCategory(&out)
	if err != nil {
		return err
	}
	*category = *stored
	return nil
}

// Delete ลบหมวดหมู่ (ไม่พบคืน false, nil)
func (r *remoteCategoryRepository) Delete(id uuid.UUID) (bool, error) {
	err := r.client.do("DELETE", "/categories/"+id.String(), nil, nil, nil)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
