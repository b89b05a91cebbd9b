// pkg/configs/storage_config.go
package configs

import (
	"fmt"
	"log"
	"os"

	"github.com/notavel/gofiber-notes-api/domain/repository"
	"github.com/notavel/gofiber-notes-api/infrastructure/persistence/database"
	"github.com/notavel/gofiber-notes-api/infrastructure/persistence/memory"
	"github.com/notavel/gofiber-notes-api/infrastructure/persistence/postgres"
	"github.com/notavel/gofiber-notes-api/infrastructure/persistence/rediscache"
	"github.com/notavel/gofiber-notes-api/infrastructure/remote"
)

// Repositories รวม repository ทุกตัวของ storage backend ที่เลือก
type Repositories struct {
	NoteRepo     repository.NoteRepository
	CategoryRepo repository.CategoryRepository
	TagRepo      repository.TagRepository
}

// SetupRepositories สร้าง repositories ตาม environment
// STORAGE_TYPE: memory (default), postgres, remote
// CACHE_ENABLED=true ครอบ note repository ด้วย Redis cache
func SetupRepositories() (*Repositories, error) {
	storageType := os.Getenv("STORAGE_TYPE")

	// Default to memory if not specified
	if storageType == "" {
		storageType = "memory"
	}

	log.Printf("Setting up storage backend with type: %s", storageType)

	var repos *Repositories

	switch storageType {
	case "memory":
		seeds, err := LoadSeedCategories()
		if err != nil {
			return nil, err
		}
		store := memory.NewStore(seeds)
		repos = &Repositories{
			NoteRepo:     memory.NewNoteRepository(store),
			CategoryRepo: memory.NewCategoryRepository(store),
			TagRepo:      memory.NewTagRepository(store),
		}

	case "postgres":
		db, err := NewDatabase()
		if err != nil {
			return nil, err
		}
		seeds, err := LoadSeedCategories()
		if err != nil {
			return nil, err
		}
		if err := database.SetupDatabase(db, seeds); err != nil {
			return nil, err
		}
		repos = &Repositories{
			NoteRepo:     postgres.NewNoteRepository(db),
			CategoryRepo: postgres.NewCategoryRepository(db),
			TagRepo:      postgres.NewTagRepository(db),
		}

	case "remote":
		baseURL := os.Getenv("REMOTE_API_URL")
		if baseURL == "" {
			return nil, fmt.Errorf("REMOTE_API_URL is required for remote storage")
		}
		client := remote.NewClient(baseURL)
		repos = &Repositories{
			NoteRepo:     remote.NewNoteRepository(client),
			CategoryRepo: remote.NewCategoryRepository(client),
			TagRepo:      remote.NewTagRepository(client),
		}

	default:
		return nil, fmt.Errorf("unsupported storage type: %s (supported: memory, postgres, remote)", storageType)
	}

	// Cache layer (optional)
	if os.Getenv("CACHE_ENABLED") == "true" {
		rdb, err := NewRedisClient()
		if err != nil {
			return nil, err
		}
		repos.NoteRepo = rediscache.NewNoteCacheRepository(repos.NoteRepo, rdb)
		log.Println("[Storage] Redis cache enabled for note repository")
	}

	return repos, nil
}
