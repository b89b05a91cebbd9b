// application/serviceimpl/tag_service.go

package serviceimpl

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/notavel/gofiber-notes-api/domain/dto"
	"github.com/notavel/gofiber-notes-api/domain/models"
	"github.com/notavel/gofiber-notes-api/domain/repository"
	"github.com/notavel/gofiber-notes-api/domain/service"
)

type tagService struct {
	tagRepo repository.TagRepository
}

// NewTagService สร้าง instance ใหม่ของ TagService
func NewTagService(tagRepo repository.TagRepository) service.TagService {
	return &tagService{
		tagRepo: tagRepo,
	}
}

// CreateTag สร้าง tag ใหม่ (ชื่อต้องไม่ซ้ำ)
func (s *tagService) CreateTag(input *dto.CreateTagInput) (*models.Tag, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// ตรวจชื่อซ้ำก่อนสร้าง
	existing, err := s.tagRepo.GetByName(input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("tag already exists")
	}

	tag := &models.Tag{
		ID:        uuid.New(),
		Name:      input.Name,
		CreatedAt: time.Now(),
	}

	if err := s.tagRepo.Create(tag); err != nil {
		return nil, err
	}

	return tag, nil
}

// GetTags ดึงรายการ tag ทั้งหมด (เรียงตามชื่อ)
func (s *tagService) GetTags() ([]*models.Tag, error) {
	return s.tagRepo.GetAll()
}

// DeleteTag ลบ tag ออกจาก collection
// ไม่แตะ Note.tags เพราะเก็บแบบ denormalized (นโยบายเดียวกับการ lookup แบบ soft)
func (s *tagService) DeleteTag(id uuid.UUID) error {
	removed, err := s.tagRepo.Delete(id)
	if err != nil {
		return err
	}
	if !removed {
		return errors.New("tag not found")
	}

	return nil
}
