// infrastructure/remote/tag_repository.go

package remote

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/notavel/gofiber-notes-api/domain/models"
	"github.com/notavel/gofiber-notes-api/domain/repository"
)

type remoteTagRepository struct {
	client *Client
}

// NewTagRepository สร้าง repository ของ tag ฝั่ง remote
func NewTagRepository(client *Client) repository.TagRepository {
	return &remoteTagRepository{client: client}
}

// Create สร้าง tag บนปลายทาง
func (r *remoteTagRepository) Create(tag *models.Tag) error {
	payload := &wireTag{
		ID:        tag.ID.String(),
		Name:      tag.Name,
		CreatedAt: tag.CreatedAt.Format(time.RFC3339Nano),
	}

	var out wireTag
	if err := r.client.do("POST", "/tags", nil, payload, &out); err != nil {
		return err
	}

	stored, err := fromWireTag(&out)
	if err != nil {
		return err
	}
	*tag = *stored
	return nil
}

// GetByID ดึง tag ตาม id (ไม่พบคืน nil, nil)
func (r *remoteTagRepository) GetByID(id uuid.UUID) (*models.Tag, error) {
	var out wireTag
	err := r.client.do("GET", "/tags/"+id.String(), nil, nil, &out)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return fromWireTag(&out)
}

// GetByName หา tag ตามชื่อแบบ exact (ไม่พบคืน nil, nil)
// ฝั่ง remote ไม่มี endpoint แยก ใช้กรองจากรายการทั้งหมด
func (r *remoteTagRepository) GetByName(name string) (*models.Tag, error) {
	tags, err := r.GetAll()
	if err != nil {
		return nil, err
	}

	for _, tag := range tags {
		if tag.Name == name {
			return tag, nil
		}
	}
	return nil, nil
}

// GetAll ดึง tag ทั้งหมด (รายการห่อใน data.tags)
func (r *remoteTagRepository) GetAll() ([]*models.Tag, error) {
	var out struct {
		Tags []*wireTag `json:"tags"`
	}
	if err := r.client.do("GET", "/tags", nil, nil, &out); err != nil {
		return nil, err
	}

	tags := make([]*models.Tag, 0, len(out.Tags))
	for _, w := range out.Tags {
		tag, err := fromWireTag(w)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// Delete ลบ tag (ไม่พบคืน false, nil)
func (r *remoteTagRepository) Delete(id uuid.UUID) (bool, error) {
	err := r.client.do("DELETE", "/tags/"+id.String(), nil, nil, nil)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
