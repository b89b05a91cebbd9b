// infrastructure/persistence/memory/note_repository.go

package memory

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/notavel/gofiber-notes-api/domain/models"
	"github.com/notavel/gofiber-notes-api/domain/repository"
)

type noteRepository struct {
	store *Store
}

// NewNoteRepository สร้าง NoteRepository บน in-memory store
func NewNoteRepository(store *Store) repository.NoteRepository {
	return &noteRepository{store: store}
}

// Create เก็บบันทึกใหม่ลง store
func (r *noteRepository) Create(note *models.Note) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	// เก็บสำเนา ไม่ใช่ pointer ของ caller
	r.store.notes[note.ID] = note.Clone()
	return nil
}

// GetByID ดึงบันทึกตาม ID คืน (nil, nil) เมื่อไม่พบ
func (r *noteRepository) GetByID(id uuid.UUID) (*models.Note, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	note, ok := r.store.notes[id]
	if !ok {
		return nil, nil
	}
	return note.Clone(), nil
}

// GetAll ดึงบันทึกทั้งหมด เรียงตาม updated_at ล่าสุดก่อน
func (r *noteRepository) GetAll() ([]*models.Note, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.collect(func(*models.Note) bool { return true }), nil
}

// Update บันทึกทับ record เดิมและ refresh updated_at
// ไม่สร้าง record ใหม่เมื่อ ID ไม่มีอยู่
func (r *noteRepository) Update(note *models.Note) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.notes[note.ID]; !ok {
		return nil
	}

	note.UpdatedAt = time.Now()
	r.store.notes[note.ID] = note.Clone()
	return nil
}

// Delete ลบบันทึก คืน false เมื่อไม่มี record ให้ลบ (เรียกซ้ำได้)
func (r *noteRepository) Delete(id uuid.UUID) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.notes[id]; !ok {
		return false, nil
	}
	delete(r.store.notes, id)
	return true, nil
}

// Search ค้นหาแบบ substring (case-insensitive) ใน title, content หรือ tag ใดก็ได้
func (r *noteRepository) Search(query string) ([]*models.Note, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	q := strings.ToLower(query)
	return r.collect(func(n *models.Note) bool {
		if strings.Contains(strings.ToLower(n.Title), q) {
			return true
		}
		if strings.Contains(strings.ToLower(n.Content), q) {
			return true
		}
		for _, tag := range n.Tags {
			if strings.Contains(strings.ToLower(tag), q) {
				return true
			}
		}
		return false
	}), nil
}

// FindByCategory ดึงบันทึกในหมวดหมู่ (หมวดที่ไม่มีอยู่ได้รายการว่าง)
func (r *noteRepository) FindByCategory(categoryID uuid.UUID) ([]*models.Note, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.collect(func(n *models.Note) bool {
		return n.CategoryID != nil && *n.CategoryID == categoryID
	}), nil
}

// FindByTag ดึงบันทึกที่มี tag นี้ (exact, case-sensitive)
func (r *noteRepository) FindByTag(tag string) ([]*models.Note, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.collect(func(n *models.Note) bool {
		return n.HasTag(tag)
	}), nil
}

// FindFavorites ดึงบันทึกที่ติดดาว
func (r *noteRepository) FindFavorites() ([]*models.Note, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.collect(func(n *models.Note) bool { return n.IsFavorite }), nil
}

// FindArchived ดึงบันทึกที่ archive ไว้
func (r *noteRepository) FindArchived() ([]*models.Note, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.collect(func(n *models.Note) bool { return n.IsArchived }), nil
}

// FindWithReminders ดึงบันทึกที่ตั้ง reminder ไว้
func (r *noteRepository) FindWithReminders() ([]*models.Note, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.collect(func(n *models.Note) bool { return n.HasReminder() }), nil
}

// ClearCategory ล้าง category_id ของทุกบันทึกในหมวดที่ถูกลบ
// ไม่ refresh updated_at เพราะเนื้อหาบันทึกไม่ได้เปลี่ยน
func (r *noteRepository) ClearCategory(categoryID uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, note := range r.store.notes {
		if note.CategoryID != nil && *note.CategoryID == categoryID {
			note.CategoryID = nil
		}
	}
	return nil
}

// collect กรองและเรียงผลลัพธ์ (caller ต้องถือ lock อยู่แล้ว)
func (r *noteRepository) collect(match func(*models.Note) bool) []*models.Note {
	result := make([]*models.Note, 0)
	for _, note := range r.store.notes {
		if match(note) {
			result = append(result, note.Clone())
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].UpdatedAt.After(result[j].UpdatedAt)
	})

	return result
}
