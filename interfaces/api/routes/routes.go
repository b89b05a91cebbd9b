// interfaces/api/routes/routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/notavel/gofiber-notes-api/interfaces/api/handler"
)

// SetupRoutes กำหนดเส้นทาง API ทั้งหมดของแอปพลิเคชัน
func SetupRoutes(
	app *fiber.App,
	noteHandler *handler.NoteHandler,
	categoryHandler *handler.CategoryHandler,
	tagHandler *handler.TagHandler,
) {
	// สร้าง API group
	api := app.Group("/api/v1")

	// Health check route
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"message": "API is running",
		})
	})

	// กำหนดเส้นทางต่างๆ
	SetupNoteRoutes(api, noteHandler)
	SetupCategoryRoutes(api, categoryHandler)
	SetupTagRoutes(api, tagHandler)
}
