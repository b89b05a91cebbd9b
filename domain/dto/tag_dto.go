// domain/dto/tag_dto.go

package dto

// CreateTagInput - ข้อมูลสำหรับสร้าง tag ใหม่
type CreateTagInput struct {
	Name string `json:"name"`
}

// Validate ตรวจสอบข้อมูลก่อนสร้าง tag
func (in *CreateTagInput) Validate() error {
	if in.Name == "" {
		return NewValidationError("name", "name is required")
	}
	return nil
}
