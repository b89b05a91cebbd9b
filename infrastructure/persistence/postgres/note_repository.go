// infrastructure/persistence/postgres/note_repository.go

package postgres

import (
	"time"

	"github.com/google/uuid"
	"github.com/notavel/gofiber-notes-api/domain/models"
	"github.com/notavel/gofiber-notes-api/domain/repository"
	"gorm.io/gorm"
)

type noteRepository struct {
	db *gorm.DB
}

// NewNoteRepository สร้าง instance ใหม่ของ NoteRepository
func NewNoteRepository(db *gorm.DB) repository.NoteRepository {
	return &noteRepository{db: db}
}

// Create สร้างบันทึกใหม่
func (r *noteRepository) Create(note *models.Note) error {
	return r.db.Create(note).Error
}

// GetByID ดึงข้อมูลบันทึกตาม ID
func (r *noteRepository) GetByID(id uuid.UUID) (*models.Note, error) {
	var note models.Note
	err := r.db.Where("id = ?", id).First(&note).Error

	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &note, nil
}

// GetAll ดึงบันทึกทั้งหมด เรียงตาม updated_at ล่าสุดก่อน
func (r *noteRepository) GetAll() ([]*models.Note, error) {
	var notes []*models.Note
	err := r.db.Order("updated_at DESC").Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// Update อัปเดตข้อมูลบันทึก
func (r *noteRepository) Update(note *models.Note) error {
	note.UpdatedAt = time.Now()
	return r.db.Save(note).Error
}

// Delete ลบบันทึก คืน false เมื่อไม่มี record ให้ลบ
func (r *noteRepository) Delete(id uuid.UUID) (bool, error) {
	result := r.db.Where("id = ?", id).Delete(&models.Note{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Search ค้นหาแบบ substring (case-insensitive) ใน title, content หรือ tags
// tags เป็น JSONB จึง cast เป็น text ก่อน ILIKE
func (r *noteRepository) Search(query string) ([]*models.Note, error) {
	var notes []*models.Note
	pattern := "%" + query + "%"

	err := r.db.
		Where("title ILIKE ? OR content ILIKE ? OR tags::text ILIKE ?", pattern, pattern, pattern).
		Order("updated_at DESC").
		Find(&notes).Error

	if err != nil {
		return nil, err
	}
	return notes, nil
}

// FindByCategory ดึงบันทึกในหมวดหมู่
func (r *noteRepository) FindByCategory(categoryID uuid.UUID) ([]*models.Note, error) {
	var notes []*models.Note
	err := r.db.
		Where("category_id = ?", categoryID).
		Order("updated_at DESC").
		Find(&notes).Error

	if err != nil {
		return nil, err
	}
	return notes, nil
}

// FindByTag ค้นหาบันทึกตาม tag
// ใช้ JSONB containment operator เพื่อหา tag แบบ exact
func (r *noteRepository) FindByTag(tag string) ([]*models.Note, error) {
	var notes []*models.Note
	err := r.db.
		Where("tags @> ?", `["`+tag+`"]`).
		Order("updated_at DESC").
		Find(&notes).Error

	if err != nil {
		return nil, err
	}
	return notes, nil
}

// FindFavorites ดึงบันทึกที่ติดดาว
func (r *noteRepository) FindFavorites() ([]*models.Note, error) {
	return r.findByFlag("is_favorite = ?")
}

// FindArchived ดึงบันทึกที่ archive ไว้
func (r *noteRepository) FindArchived() ([]*models.Note, error) {
	return r.findByFlag("is_archived = ?")
}

func (r *noteRepository) findByFlag(cond string) ([]*models.Note, error) {
	var notes []*models.Note
	err := r.db.
		Where(cond, true).
		Order("updated_at DESC").
		Find(&notes).Error

	if err != nil {
		return nil, err
	}
	return notes, nil
}

// FindWithReminders ดึงบันทึกที่ตั้ง reminder ไว้
func (r *noteRepository) FindWithReminders() ([]*models.Note, error) {
	var notes []*models.Note
	err := r.db.
		Where("reminder_date IS NOT NULL").
		Order("updated_at DESC").
		Find(&notes).Error

	if err != nil {
		return nil, err
	}
	return notes, nil
}

// ClearCategory ล้าง category_id ของทุกบันทึกในหมวดที่ถูกลบ
func (r *noteRepository) ClearCategory(categoryID uuid.UUID) error {
	return r.db.Model(&models.Note{}).
		Where("category_id = ?", categoryID).
		Update("category_id", nil).Error
}
