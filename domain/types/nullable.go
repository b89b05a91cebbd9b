// domain/types/nullable.go

package types

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// NullableTime แยกความต่างระหว่าง field ที่ไม่ได้ส่งมา กับส่ง null มาตรงๆ
// ใช้ใน patch DTO: ไม่ส่ง = ไม่แตะ / ส่ง null = ล้างค่า / ส่งค่า = ตั้งค่าใหม่
type NullableTime struct {
	Set   bool
	Value *time.Time
}

// UnmarshalJSON implements json.Unmarshaler
// ถูกเรียกเฉพาะเมื่อ field มีอยู่ใน JSON ดังนั้น Set = true เสมอ
func (n *NullableTime) UnmarshalJSON(b []byte) error {
	n.Set = true
	if string(b) == "null" {
		n.Value = nil
		return nil
	}
	return json.Unmarshal(b, &n.Value)
}

// MarshalJSON implements json.Marshaler
func (n NullableTime) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// NullableUUID - เหมือน NullableTime แต่สำหรับ UUID (เช่น category_id)
type NullableUUID struct {
	Set   bool
	Value *uuid.UUID
}

// UnmarshalJSON implements json.Unmarshaler
func (n *NullableUUID) UnmarshalJSON(b []byte) error {
	n.Set = true
	if string(b) == "null" {
		n.Value = nil
		return nil
	}
	return json.Unmarshal(b, &n.Value)
}

// MarshalJSON implements json.Marshaler
func (n NullableUUID) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}
