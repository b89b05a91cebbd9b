// infrastructure/persistence/memory/store.go

package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/notavel/gofiber-notes-api/domain/models"
)

// SeedCategory - หมวดหมู่เริ่มต้นที่ seed ตอนสร้าง store
type SeedCategory struct {
	Name  string
	Color string
}

// DefaultSeedCategories - ชุดหมวดหมู่เริ่มต้น 6 หมวด
// store ใหม่จะไม่มีทางไม่มีหมวดหมู่เลย
var DefaultSeedCategories = []SeedCategory{
	{Name: "Trabalho", Color: "#3b82f6"},
	{Name: "Pessoal", Color: "#10b981"},
	{Name: "Estudos", Color: "#8b5cf6"},
	{Name: "Urgente", Color: "#ef4444"},
	{Name: "Saúde", Color: "#14b8a6"},
	{Name: "Receitas", Color: "#ec4899"},
}

// Store - in-memory storage ของทุก collection
// ใช้ mutex เดียวคุมทั้งสาม map เพราะมี operation ข้าม collection
// (เช่น ลบ category แล้วล้าง category_id ใน notes)
type Store struct {
	mu         sync.RWMutex
	notes      map[uuid.UUID]*models.Note
	categories map[uuid.UUID]*models.Category
	tags       map[uuid.UUID]*models.Tag
}

// NewStore สร้าง store ใหม่พร้อม seed หมวดหมู่เริ่มต้น
// seeding เกิดครั้งเดียวตอนสร้างเท่านั้น
func NewStore(seeds []SeedCategory) *Store {
	s := &Store{
		notes:      make(map[uuid.UUID]*models.Note),
		categories: make(map[uuid.UUID]*models.Category),
		tags:       make(map[uuid.UUID]*models.Tag),
	}

	if seeds == nil {
		seeds = DefaultSeedCategories
	}
	now := time.Now()
	for _, seed := range seeds {
		c := &models.Category{
			ID:        uuid.New(),
			Name:      seed.Name,
			Color:     seed.Color,
			CreatedAt: now,
		}
		s.categories[c.ID] = c
	}

	return s
}

// NewEmptyStore สร้าง store เปล่าไม่มี seed (ใช้ใน test)
func NewEmptyStore() *Store {
	return NewStore([]SeedCategory{})
}
