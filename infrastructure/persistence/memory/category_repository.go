// infrastructure/persistence/memory/category_repository.go

package memory

import (
	"sort"

	"github.com/google/uuid"
	"github.com/notavel/gofiber-notes-api/domain/models"
	"github.com/notavel/gofiber-notes-api/domain/repository"
)

type categoryRepository struct {
	store *Store
}

// NewCategoryRepository สร้าง CategoryRepository บน in-memory store
func NewCategoryRepository(store *Store) repository.CategoryRepository {
	return &categoryRepository{store: store}
}

// Create เก็บหมวดหมู่ใหม่ลง store
func (r *categoryRepository) Create(category *models.Category) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	c := *category
	r.store.categories[c.ID] = &c
	return nil
}

// GetByID ดึงหมวดหมู่ตาม ID คืน (nil, nil) เมื่อไม่พบ
func (r *categoryRepository) GetByID(id uuid.UUID) (*models.Category, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	category, ok := r.store.categories[id]
	if !ok {
		return nil, nil
	}
	c := *category
	return &c, nil
}

// GetAll ดึงหมวดหมู่ทั้งหมด เรียงตามชื่อ A-Z
func (r *categoryRepository) GetAll() ([]*models.Category, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]*models.Category, 0, len(r.store.categories))
	for _, category := range r.store.categories {
		c := *category
		result = append(result, &c)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result, nil
}

// Update บันทึกทับหมวดหมู่เดิม ไม่สร้างใหม่เมื่อ ID ไม่มีอยู่
func (r *categoryRepository) Update(category *models.Category) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.categories[category.ID]; !ok {
		return nil
	}
	c := *category
	r.store.categories[c.ID] = &c
	return nil
}

// Delete ลบหมวดหมู่ คืน false เมื่อไม่มี record ให้ลบ
func (r *categoryRepository) Delete(id uuid.UUID) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.categories[id]; !ok {
		return false, nil
	}
	delete(r.store.categories, id)
	return true, nil
}
