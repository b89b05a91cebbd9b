package serviceimpl

import (
	"testing"

	"github.com/google/uuid"
	"github.com/notavel/gofiber-notes-api/domain/dto"
	"github.com/notavel/gofiber-notes-api/infrastructure/persistence/memory"
)

func TestCreateTagRejectsDuplicates(t *testing.T) {
	svc := NewTagService(memory.NewTagRepository(memory.NewEmptyStore()))

	if _, err := svc.CreateTag(&dto.CreateTagInput{Name: "work"}); err != nil {
		t.Fatalf("CreateTag failed: %v", err)
	}

	_, err := svc.CreateTag(&dto.CreateTagInput{Name: "work"})
	if err == nil || err.Error() != "tag already exists" {
		t.Errorf("expected duplicate error, got %v", err)
	}

	tags, _ := svc.GetTags()
	if len(tags) != 1 {
		t.Errorf("duplicate create must not add a record, got %d tags", len(tags))
	}
}

func TestCreateTagValidation(t *testing.T) {
	svc := NewTagService(memory.NewTagRepository(memory.NewEmptyStore()))

	_, err := svc.CreateTag(&dto.CreateTagInput{})
	if err == nil || !dto.IsValidationError(err) {
		t.Errorf("expected validation error for empty name, got %v", err)
	}
}

func TestDeleteTag(t *testing.T) {
	svc := NewTagService(memory.NewTagRepository(memory.NewEmptyStore()))

	tag, err := svc.CreateTag(&dto.CreateTagInput{Name: "temp"})
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.DeleteTag(tag.ID); err != nil {
		t.Fatalf("DeleteTag failed: %v", err)
	}
	if err := svc.DeleteTag(tag.ID); err == nil || err.Error() != "tag not found" {
		t.Errorf("expected tag not found on second delete, got %v", err)
	}
	if err := svc.DeleteTag(uuid.New()); err == nil {
		t.Error("expected error for unknown tag")
	}
}
