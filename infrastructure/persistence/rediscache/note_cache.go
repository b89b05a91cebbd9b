// infrastructure/persistence/rediscache/note_cache.go

package rediscache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/notavel/gofiber-notes-api/domain/models"
	"github.com/notavel/gofiber-notes-api/domain/repository"
)

const (
	keyAllNotes   = "notes:all"
	keyNotePrefix = "notes:id:"
	cacheTTL      = 5 * time.Minute
)

// noteCacheRepository - decorator ครอบ NoteRepository
// cache เฉพาะเส้นทางอ่านที่ร้อน (GetAll, GetByID) ส่วน query อื่นส่งผ่านตรง
// ทุก write ล้าง cache ทิ้งทั้งชุด เพราะรายการมีผลต่อกัน
type noteCacheRepository struct {
	inner repository.NoteRepository
	rdb   *redis.Client
	ctx   context.Context
}

// NewNoteCacheRepository ครอบ NoteRepository ด้วย Redis read cache
func NewNoteCacheRepository(inner repository.NoteRepository, rdb *redis.Client) repository.NoteRepository {
	return &noteCacheRepository{
		inner: inner,
		rdb:   rdb,
		ctx:   context.Background(),
	}
}

// Create สร้างบันทึกใหม่และล้าง cache
func (r *noteCacheRepository) Create(note *models.Note) error {
	if err := r.inner.Create(note); err != nil {
		return err
	}
	r.invalidate(note.ID)
	return nil
}

// GetByID อ่านจาก cache ก่อน ถ้า miss ค่อยไปที่ backend จริง
func (r *noteCacheRepository) GetByID(id uuid.UUID) (*models.Note, error) {
	key := keyNotePrefix + id.String()

	if data, err := r.rdb.Get(r.ctx, key).Bytes(); err == nil {
		var note models.Note
		if err := json.Unmarshal(data, &note); err == nil {
			return &note, nil
		}
	}

	note, err := r.inner.GetByID(id)
	if err != nil || note == nil {
		return note, err
	}

	r.set(key, note)
	return note, nil
}

// GetAll อ่านรายการทั้งหมดผ่าน cache
func (r *noteCacheRepository) GetAll() ([]*models.Note, error) {
	if data, err := r.rdb.Get(r.ctx, keyAllNotes).Bytes(); err == nil {
		var notes []*models.Note
		if err := json.Unmarshal(data, &notes); err == nil {
			return notes, nil
		}
	}

	notes, err := r.inner.GetAll()
	if err != nil {
		return nil, err
	}

	r.set(keyAllNotes, notes)
	return notes, nil
}

// Update อัปเดตบันทึกและล้าง cache
func (r *noteCacheRepository) Update(note *models.Note) error {
	if err := r.inner.Update(note); err != nil {
		return err
	}
	r.invalidate(note.ID)
	return nil
}

// Delete ลบบันทึกและล้าง cache
func (r *noteCacheRepository) Delete(id uuid.UUID) (bool, error) {
	removed, err := r.inner.Delete(id)
	if err != nil {
		return false, err
	}
	if removed {
		r.invalidate(id)
	}
	return removed, nil
}

// Query operations ส่งผ่านตรงไปยัง backend จริง

func (r *noteCacheRepository) Search(query string) ([]*models.Note, error) {
	return r.inner.Search(query)
}

func (r *noteCacheRepository) FindByCategory(categoryID uuid.UUID) ([]*models.Note, error) {
	return r.inner.FindByCategory(categoryID)
}

func (r *noteCacheRepository) FindByTag(tag string) ([]*models.Note, error) {
	return r.inner.FindByTag(tag)
}

func (r *noteCacheRepository) FindFavorites() ([]*models.Note, error) {
	return r.inner.FindFavorites()
}

func (r *noteCacheRepository) FindArchived() ([]*models.Note, error) {
	return r.inner.FindArchived()
}

func (r *noteCacheRepository) FindWithReminders() ([]*models.Note, error) {
	return r.inner.FindWithReminders()
}

// ClearCategory ล้าง category_id แล้วล้าง cache ทั้งหมด
// (ไม่รู้ว่า note ไหนโดนบ้าง)
func (r *noteCacheRepository) ClearCategory(categoryID uuid.UUID) error {
	if err := r.inner.ClearCategory(categoryID); err != nil {
		return err
	}
	r.invalidateAll()
	return nil
}

// set เก็บค่าลง cache (cache พังไม่ทำให้ request พัง แค่ log)
func (r *noteCacheRepository) set(key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := r.rdb.Set(r.ctx, key, data, cacheTTL).Err(); err != nil {
		log.Printf("[NoteCache] Error caching %s: %v", key, err)
	}
}

func (r *noteCacheRepository) invalidate(id uuid.UUID) {
	if err := r.rdb.Del(r.ctx, keyAllNotes, keyNotePrefix+id.String()).Err(); err != nil {
		log.Printf("[NoteCache] Error invalidating cache: %v", err)
	}
}

func (r *noteCacheRepository) invalidateAll() {
	keys, err := r.rdb.Keys(r.ctx, keyNotePrefix+"*").Result()
	if err == nil && len(keys) > 0 {
		r.rdb.Del(r.ctx, keys...)
	}
	r.rdb.Del(r.ctx, keyAllNotes)
}
