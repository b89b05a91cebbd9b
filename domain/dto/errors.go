// domain/dto/errors.go

package dto

import "errors"

// ValidationError - ข้อมูลจาก caller ผิดเงื่อนไขของ field ใด field หนึ่ง
// handler จะ map เป็น 400 Bad Request
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError สร้าง ValidationError ใหม่
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError ตรวจสอบว่า error เป็น validation error หรือไม่
func IsValidationError(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
