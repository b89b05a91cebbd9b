// interfaces/api/routes/category_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/notavel/gofiber-notes-api/interfaces/api/handler"
)

// SetupCategoryRoutes กำหนดเส้นทาง API สำหรับหมวดหมู่
func SetupCategoryRoutes(router fiber.Router, categoryHandler *handler.CategoryHandler) {
	categories := router.Group("/categories")

	categories.Post("/", categoryHandler.CreateCategory) // สร้างหมวดหมู่ใหม่
	categories.Get("/", categoryHandler.GetCategories)   // ดึงรายการหมวดหมู่

	categories.Get("/:id", categoryHandler.GetCategory)       // ดึงหมวดหมู่เฉพาะ
	categories.Patch("/:id", categoryHandler.UpdateCategory)  // อัปเดตแบบ partial
	categories.Put("/:id", categoryHandler.UpdateCategory)    // อัปเดต (รองรับทั้ง 2 method)
	categories.Delete("/:id", categoryHandler.DeleteCategory) // ลบหมวดหมู่
}
