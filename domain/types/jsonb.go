// domain/types/jsonb.go

package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// StringArray - รายการ string ที่เก็บเป็น jsonb column
// Format: ["tag1", "tag2"]
type StringArray []string

// Value implements driver.Valuer
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(a)
}

// Scan implements sql.Scanner
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = StringArray{}
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("unsupported type for StringArray")
	}

	return json.Unmarshal(raw, a)
}

// Contains ตรวจสอบว่ามีค่านี้ใน array หรือไม่ (exact, case-sensitive)
func (a StringArray) Contains(s string) bool {
	for _, item := range a {
		if item == s {
			return true
		}
	}
	return false
}

// ChecklistItem - รายการย่อยใน checklist ของบันทึก
type ChecklistItem struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// ChecklistItems - checklist ที่เก็บเป็น jsonb column
// Format: [{"id": "...", "text": "...", "completed": false}]
type ChecklistItems []ChecklistItem

// Value implements driver.Valuer
func (c ChecklistItems) Value() (driver.Value, error) {
	if c == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c)
}

// Scan implements sql.Scanner
func (c *ChecklistItems) Scan(value interface{}) error {
	if value == nil {
		*c = ChecklistItems{}
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("unsupported type for ChecklistItems")
	}

	return json.Unmarshal(raw, c)
}
