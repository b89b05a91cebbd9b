// pkg/app/app.go
package app

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/notavel/gofiber-notes-api/interfaces/api/routes"
	"github.com/notavel/gofiber-notes-api/interfaces/websocket"
	"github.com/notavel/gofiber-notes-api/pkg/di"
)

// SetupApp สร้างและตั้งค่า Fiber app
func SetupApp(container *di.Container) *fiber.App {
	// สร้าง Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError

			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			return c.Status(code).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		},
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	})

	// ใช้ middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} ${latency}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization,X-Requested-With",
		ExposeHeaders:    "Content-Length,Content-Type",
		AllowCredentials: false,
		MaxAge:           86400, // 24 ชั่วโมง
	}))
	app.Use(compress.New())

	// ตั้งค่าเส้นทาง API
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "ยินดีต้อนรับสู่ Notavel Notes API",
			"status":  "online",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	// กำหนดเส้นทางทั้งหมด
	routes.SetupRoutes(
		app,
		container.NoteHandler,
		container.CategoryHandler,
		container.TagHandler,
	)

	// เพิ่ม WebSocket routes แยกต่างหาก (หลังจาก SetupRoutes)
	websocket.RegisterWebSocketRoutes(app, container.WebSocketHub)

	return app
}
