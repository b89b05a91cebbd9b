// interfaces/api/routes/tag_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/notavel/gofiber-notes-api/interfaces/api/handler"
)

// SetupTagRoutes กำหนดเส้นทาง API สำหรับ tag
func SetupTagRoutes(router fiber.Router, tagHandler *handler.TagHandler) {
	tags := router.Group("/tags")

	tags.Post("/", tagHandler.CreateTag)      // สร้าง tag ใหม่ (ชื่อซ้ำคืน 409)
	tags.Get("/", tagHandler.GetTags)         // ดึงรายการ tag
	tags.Delete("/:id", tagHandler.DeleteTag) // ลบ tag
}
