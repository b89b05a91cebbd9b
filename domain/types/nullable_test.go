package types

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNullableTimeUnmarshal(t *testing.T) {
	type payload struct {
		ReminderDate NullableTime `json:"reminder_date"`
	}

	// field ไม่ได้ส่งมา: Set ต้องเป็น false
	var absent payload
	if err := json.Unmarshal([]byte(`{}`), &absent); err != nil {
		t.Fatal(err)
	}
	if absent.ReminderDate.Set {
		t.Error("absent field must have Set=false")
	}

	// ส่ง null: Set=true, Value=nil
	var null payload
	if err := json.Unmarshal([]byte(`{"reminder_date": null}`), &null); err != nil {
		t.Fatal(err)
	}
	if !null.ReminderDate.Set || null.ReminderDate.Value != nil {
		t.Errorf("explicit null must set Set=true with nil value: %+v", null.ReminderDate)
	}

	// ส่งค่า: Set=true, Value ตามที่ส่ง
	var set payload
	if err := json.Unmarshal([]byte(`{"reminder_date": "2026-08-28T10:00:00Z"}`), &set); err != nil {
		t.Fatal(err)
	}
	if !set.ReminderDate.Set || set.ReminderDate.Value == nil {
		t.Fatalf("value must be parsed: %+v", set.ReminderDate)
	}
	want := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	if !set.ReminderDate.Value.Equal(want) {
		t.Errorf("expected %v, got %v", want, set.ReminderDate.Value)
	}
}

func TestNullableUUIDUnmarshal(t *testing.T) {
	type payload struct {
		CategoryID NullableUUID `json:"category_id"`
	}

	var null payload
	if err := json.Unmarshal([]byte(`{"category_id": null}`), &null); err != nil {
		t.Fatal(err)
	}
	if !null.CategoryID.Set || null.CategoryID.Value != nil {
		t.Errorf("explicit null must set Set=true with nil value: %+v", null.CategoryID)
	}

	var set payload
	if err := json.Unmarshal([]byte(`{"category_id": "6ba7b810-9dad-11d1-80b4-00c04fd430c8"}`), &set); err != nil {
		t.Fatal(err)
	}
	if !set.CategoryID.Set || set.CategoryID.Value == nil {
		t.Fatalf("value must be parsed: %+v", set.CategoryID)
	}

	var bad payload
	if err := json.Unmarshal([]byte(`{"category_id": "not-a-uuid"}`), &bad); err == nil {
		t.Error("invalid uuid must fail to unmarshal")
	}
}

func TestStringArrayScanValue(t *testing.T) {
	arr := StringArray{"work", "urgent"}

	v, err := arr.Value()
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}

	var back StringArray
	if err := back.Scan(v); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(back) != 2 || back[0] != "work" || back[1] != "urgent" {
		t.Errorf("roundtrip mismatch: %v", back)
	}

	var empty StringArray
	if err := empty.Scan(nil); err != nil {
		t.Fatalf("Scan(nil) failed: %v", err)
	}
	if empty == nil {
		t.Error("Scan(nil) should produce an empty array, not nil")
	}
}
