// pkg/configs/seed_config.go
package configs

import (
	"fmt"
	"log"
	"os"

	"github.com/notavel/gofiber-notes-api/infrastructure/persistence/memory"
	"gopkg.in/yaml.v3"
)

type seedFile struct {
	Categories []struct {
		Name  string `yaml:"name"`
		Color string `yaml:"color"`
	} `yaml:"categories"`
}

// LoadSeedCategories คืนชุดหมวดหมู่เริ่มต้น
// กำหนดเองได้ผ่านไฟล์ YAML (SEED_FILE) ไม่กำหนดใช้ชุด default 6 หมวด
func LoadSeedCategories() ([]memory.SeedCategory, error) {
	path := os.Getenv("SEED_FILE")
	if path == "" {
		return memory.DefaultSeedCategories, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}

	var file seedFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}

	seeds := make([]memory.SeedCategory, 0, len(file.Categories))
	for _, c := range file.Categories {
		if c.Name == "" {
			return nil, fmt.Errorf("seed file %s: category name cannot be empty", path)
		}
		seeds = append(seeds, memory.SeedCategory{Name: c.Name, Color: c.Color})
	}

	log.Printf("[Seed] Loaded %d categories from %s", len(seeds), path)
	return seeds, nil
}
