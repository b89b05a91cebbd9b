// infrastructure/remote/note_repository.go

package remote

import (
	"errors"
	"net/url"

	"github.com/google/uuid"
	"github.com/notavel/gofiber-notes-api/domain/models"
	"github.com/notavel/gofiber-notes-api/domain/repository"
)

type remoteNoteRepository struct {
	client *Client
}

// NewNoteRepository สร้าง repository ที่คุยกับ API ปลายทางผ่าน HTTP
func NewNoteRepository(client *Client) repository.NoteRepository {
	return &remoteNoteRepository{client: client}
}

// Create สร้างบันทึกบนปลายทาง แล้ว sync field ที่ server กำหนดกลับเข้า note
func (r *remoteNoteRepository) Create(note *models.Note) error {
	var out wireNote
	if err := r.client.do("POST", "/notes", nil, toWireNote(note), &out); err != nil {
		return err
	}

	stored, err := fromWireNote(&out)
	if err != nil {
		return err
	}
	*note = *stored
	return nil
}

// GetByID ดึงบันทึกตาม id (ไม่พบคืน nil, nil)
func (r *remoteNoteRepository) GetByID(id uuid.UUID) (*models.Note, error) {
	var out wireNote
	err := r.client.do("GET", "/notes/"+id.String(), nil, nil, &out)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return fromWireNote(&out)
}

// GetAll ดึงบันทึกทั้งหมดรวมที่ archive ไว้ เรียง updated_at ล่าสุดก่อน
func (r *remoteNoteRepository) GetAll() ([]*models.Note, error) {
	return r.list("/notes", url.Values{"scope": {"all"}})
}

// Update อัปเดตบันทึกทั้ง record แล้ว sync timestamp ที่ server ตั้งกลับเข้า note
func (r *remoteNoteRepository) Update(note *models.Note) error {
	var out wireNote
	err := r.client.do("PATCH", "/notes/"+note.ID.String(), nil, toWireNote(note), &out)
	if err != nil {
		return err
	}

	stored, err := fromWireNote(&out)
	if err != nil {
		return err
	}
	*note = *stored
	return nil
}

// Delete ลบบันทึก (ไม่พบคืน false, nil)
func (r *remoteNoteRepository) Delete(id uuid.UUID) (bool, error) {
	err := r.client.do("DELETE", "/notes/"+id.String(), nil, nil, nil)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Search ค้นหา free text บน title/content/tags
func (r *remoteNoteRepository) Search(query string) ([]*models.Note, error) {
	return r.list("/notes/search", url.Values{"q": {query}})
}

// FindByCategory ดึงบันทึกในหมวดหมู่
func (r *remoteNoteRepository) FindByCategory(categoryID uuid.UUID) ([]*models.Note, error) {
	return r.list("/notes", url.Values{
		"category": {categoryID.String()},
		"scope":    {"all"},
	})
}

// FindByTag ดึงบันทึกที่มี tag นี้
func (r *remoteNoteRepository) FindByTag(tag string) ([]*models.Note, error) {
	return r.list("/notes/by-tag", url.Values{"tag": {tag}})
}

// FindFavorites ดึงบันทึกที่ติดดาว
func (r *remoteNoteRepository) FindFavorites() ([]*models.Note, error) {
	return r.list("/notes/favorites", nil)
}

// FindArchived ดึงบันทึกที่ archive ไว้
func (r *remoteNoteRepository) FindArchived() ([]*models.Note, error) {
	return r.list("/notes/archived", nil)
}

// FindWithReminders ดึงบันทึกที่ตั้ง reminder
func (r *remoteNoteRepository) FindWithReminders() ([]*models.Note, error) {
	return r.list("/notes/reminders", nil)
}

// ClearCategory ไม่ต้องทำอะไรฝั่งนี้
// ปลายทางเคลียร์ category_id ของบันทึกเองตอนลบหมวดหมู่
func (r *remoteNoteRepository) ClearCategory(categoryID uuid.UUID) error {
	return nil
}

// list endpoints ห่อรายการไว้ใน data.notes
func (r *remoteNoteRepository) list(path string, query url.Values) ([]*models.Note, error) {
	var out struct {
		Notes []*wireNote `json:"notes"`
	}
	if err := r.client.do("GET", path, query, nil, &out); err != nil {
		return nil, err
	}
	return fromWireNotes(out.Notes)
}
