// domain/dto/category_dto.go

package dto

// CreateCategoryInput - ข้อมูลสำหรับสร้างหมวดหมู่ใหม่
type CreateCategoryInput struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Validate ตรวจสอบข้อมูลก่อนสร้างหมวดหมู่
func (in *CreateCategoryInput) Validate() error {
	if in.Name == "" {
		return NewValidationError("name", "name is required")
	}
	if in.Color == "" {
		return NewValidationError("color", "color is required")
	}
	return nil
}

// UpdateCategoryInput - patch สำหรับอัปเดตหมวดหมู่
type UpdateCategoryInput struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}

// Validate ตรวจสอบเฉพาะ field ที่ส่งมา
func (in *UpdateCategoryInput) Validate() error {
	if in.Name != nil && *in.Name == "" {
		return NewValidationError("name", "name cannot be empty")
	}
	if in.Color != nil && *in.Color == "" {
		return NewValidationError("color", "color cannot be empty")
	}
	return nil
}
