package memory

import (
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/notavel/gofiber-notes-api/domain/models"
)

func TestNewStoreSeedsDefaultCategories(t *testing.T) {
	repo := NewCategoryRepository(NewStore(nil))

	categories, err := repo.GetAll()
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(categories) != len(DefaultSeedCategories) {
		t.Fatalf("expected %d seeded categories, got %d", len(DefaultSeedCategories), len(categories))
	}

	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.Name] = c.Color
	}
	for _, seed := range DefaultSeedCategories {
		if color, ok := names[seed.Name]; !ok {
			t.Errorf("missing seeded category %q", seed.Name)
		} else if color != seed.Color {
			t.Errorf("category %q: expected color %s, got %s", seed.Name, seed.Color, color)
		}
	}
}

func TestNewStoreCustomSeeds(t *testing.T) {
	seeds := []SeedCategory{{Name: "Inbox", Color: "#111111"}}
	repo := NewCategoryRepository(NewStore(seeds))

	categories, _ := repo.GetAll()
	if len(categories) != 1 || categories[0].Name != "Inbox" {
		t.Errorf("custom seeds not applied: %+v", categories)
	}
}

func TestCategoryGetAllSortedByName(t *testing.T) {
	repo := NewCategoryRepository(NewEmptyStore())

	for _, name := range []string{"Zeta", "Alpha", "Mid"} {
		if err := repo.Create(&models.Category{ID: uuid.New(), Name: name, Color: "#000000"}); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	categories, _ := repo.GetAll()
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.Name
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("categories not sorted by name: %v", names)
	}
}

func TestCategoryDeleteIdempotent(t *testing.T) {
	repo := NewCategoryRepository(NewEmptyStore())

	category := &models.Category{ID: uuid.New(), Name: "Temp", Color: "#000000"}
	if err := repo.Create(category); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if removed, _ := repo.Delete(category.ID); !removed {
		t.Error("first delete should report removed=true")
	}
	if removed, _ := repo.Delete(category.ID); removed {
		t.Error("second delete should report removed=false")
	}
}

func TestTagGetByName(t *testing.T) {
	repo := NewTagRepository(NewEmptyStore())

	tag := &models.Tag{ID: uuid.New(), Name: "work"}
	if err := repo.Create(tag); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := repo.GetByName("work")
	if err != nil {
		t.Fatalf("GetByName failed: %v", err)
	}
	if got == nil || got.ID != tag.ID {
		t.Errorf("expected tag %s, got %+v", tag.ID, got)
	}

	missing, err := repo.GetByName("play")
	if err != nil {
		t.Fatalf("GetByName failed: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown name, got %+v", missing)
	}
}
