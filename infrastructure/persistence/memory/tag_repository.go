// infrastructure/persistence/memory/tag_repository.go

package memory

import (
	"sort"

	"github.com/google/uuid"
	"github.com/notavel/gofiber-notes-api/domain/models"
	"github.com/notavel/gofiber-notes-api/domain/repository"
)

type tagRepository struct {
	store *Store
}

// NewTagRepository สร้าง TagRepository บน in-memory store
func NewTagRepository(store *Store) repository.TagRepository {
	return &tagRepository{store: store}
}

// Create เก็บ tag ใหม่ลง store
func (r *tagRepository) Create(tag *models.Tag) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	t := *tag
	r.store.tags[t.ID] = &t
	return nil
}

// GetByID ดึง tag ตาม ID คืน (nil, nil) เมื่อไม่พบ
func (r *tagRepository) GetByID(id uuid.UUID) (*models.Tag, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	tag, ok := r.store.tags[id]
	if !ok {
		return nil, nil
	}
	t := *tag
	return &t, nil
}

// GetByName ดึง tag ตามชื่อ (exact) คืน (nil, nil) เมื่อไม่พบ
func (r *tagRepository) GetByName(name string) (*models.Tag, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, tag := range r.store.tags {
		if tag.Name == name {
			t := *tag
			return &t, nil
		}
	}
	return nil, nil
}

// GetAll ดึง tag ทั้งหมด เรียงตามชื่อ A-Z
func (r *tagRepository) GetAll() ([]*models.Tag, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]*models.Tag, 0, len(r.store.tags))
	for _, tag := range r.store.tags {
		t := *tag
		result = append(result, &t)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result, nil
}

// Delete ลบ tag คืน false เมื่อไม่มี record ให้ลบ
func (r *tagRepository) Delete(id uuid.UUID) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.tags[id]; !ok {
		return false, nil
	}
	delete(r.store.tags, id)
	return true, nil
}
