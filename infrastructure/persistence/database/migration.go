// database/migration.go
package database

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/notavel/gofiber-notes-api/domain/models"
	"github.com/notavel/gofiber-notes-api/infrastructure/persistence/memory"
	"gorm.io/gorm"
)

// RunMigration ทำการ migrate โมเดลทั้งหมดไปยังฐานข้อมูล
func RunMigration(db *gorm.DB) error {
	log.Println("กำลังทำ Auto Migration...")

	// การเรียงลำดับมีความสำคัญ - ตารางหลักก่อน แล้วค่อยตารางที่มี foreign key
	err := db.AutoMigrate(
		&models.Category{},
		&models.Tag{},
		&models.Note{},
	)

	if err != nil {
		log.Printf("Auto Migration ล้มเหลว: %v", err)
		return err
	}

	log.Println("Auto Migration สำเร็จ")
	return nil
}

// CreateIndices สร้าง indices เพื่อเพิ่มประสิทธิภาพในการค้นหา
func CreateIndices(db *gorm.DB) error {
	log.Println("กำลังสร้าง indices...")

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_notes_updated_at ON notes(updated_at)").Error; err != nil {
		return err
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_notes_category_id ON notes(category_id)").Error; err != nil {
		return err
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_notes_reminder_date ON notes(reminder_date) WHERE reminder_date IS NOT NULL").Error; err != nil {
		return err
	}

	// GIN index สำหรับ tag containment query (tags @> '["..."]')
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_notes_tags ON notes USING gin(tags)").Error; err != nil {
		return err
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_categories_name ON categories(name)").Error; err != nil {
		return err
	}

	log.Println("สร้าง indices สำเร็จ")
	return nil
}

// SeedDefaultCategories seed หมวดหมู่เริ่มต้นเมื่อตารางยังว่าง
// รันซ้ำได้ ไม่ seed ทับของเดิม
func SeedDefaultCategories(db *gorm.DB, seeds []memory.SeedCategory) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if seeds == nil {
		seeds = memory.DefaultSeedCategories
	}

	log.Printf("กำลัง seed หมวดหมู่เริ่มต้น %d หมวด...", len(seeds))
	now := time.Now()
	for _, seed := range seeds {
		category := &models.Category{
			ID:        uuid.New(),
			Name:      seed.Name,
			Color:     seed.Color,
			CreatedAt: now,
		}
		if err := db.Create(category).Error; err != nil {
			return err
		}
	}

	return nil
}

// SetupDatabase ทำ migration, indices และ seed ตามลำดับ
func SetupDatabase(db *gorm.DB, seeds []memory.SeedCategory) error {
	if err := RunMigration(db); err != nil {
		return err
	}
	if err := CreateIndices(db); err != nil {
		return err
	}
	return SeedDefaultCategories(db, seeds)
}
