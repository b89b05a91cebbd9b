// domain/service/tag_service.go

package service

import (
	"github.com/google/uuid"
	"github.com/notavel/gofiber-notes-api/domain/dto"
	"github.com/notavel/gofiber-notes-api/domain/models"
)

// TagService เป็น interface ที่กำหนดฟังก์ชันของ Tag Service
type TagService interface {
	CreateTag(input *dto.CreateTagInput) (*models.Tag, error)
	GetTags() ([]*models.Tag, error)
	DeleteTag(id uuid.UUID) error
}
