// domain/repository/note_repository.go

package repository

import (
	"github.com/google/uuid"
	"github.com/notavel/gofiber-notes-api/domain/models"
)

// NoteRepository - สัญญาของ storage backend สำหรับบันทึก
// ทุก backend (memory, postgres, remote) ต้อง implement ครบชุดนี้
// GetByID คืน (nil, nil) เมื่อไม่พบ record
type NoteRepository interface {
	// CRUD operations
	Create(note *models.Note) error
	GetByID(id uuid.UUID) (*models.Note, error)
	GetAll() ([]*models.Note, error) // เรียงตาม updated_at DESC
	Update(note *models.Note) error
	Delete(id uuid.UUID) (bool, error) // idempotent: ลบซ้ำคืน false

	// Query operations
	Search(query string) ([]*models.Note, error) // substring ของ title/content/tags (case-insensitive)
	FindByCategory(categoryID uuid.UUID) ([]*models.Note, error)
	FindByTag(tag string) ([]*models.Note, error)
	FindFavorites() ([]*models.Note, error)
	FindArchived() ([]*models.Note, error)
	FindWithReminders() ([]*models.Note, error)

	// ClearCategory ล้าง category_id ของทุก note ในหมวดที่ถูกลบ (soft-null)
	ClearCategory(categoryID uuid.UUID) error
}
