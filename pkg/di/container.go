// pkg/di/container.go
package di

import (
	"github.com/notavel/gofiber-notes-api/application/serviceimpl"
	"github.com/notavel/gofiber-notes-api/domain/port"
	"github.com/notavel/gofiber-notes-api/domain/repository"
	"github.com/notavel/gofiber-notes-api/domain/service"
	"github.com/notavel/gofiber-notes-api/infrastructure/adapter"
	"github.com/notavel/gofiber-notes-api/interfaces/api/handler"
	"github.com/notavel/gofiber-notes-api/interfaces/websocket"
	"github.com/notavel/gofiber-notes-api/pkg/configs"
	"github.com/notavel/gofiber-notes-api/pkg/scheduler"
)

// Container เก็บ dependencies ทั้งหมดของแอปพลิเคชัน
type Container struct {
	// Repositories
	NoteRepo     repository.NoteRepository
	CategoryRepo repository.CategoryRepository
	TagRepo      repository.TagRepository

	// WebSocket Components
	WebSocketHub *websocket.Hub
	SyncPort     port.SyncPort

	// Services
	NoteService     service.NoteService
	CategoryService service.CategoryService
	TagService      service.TagService

	// Handlers
	NoteHandler     *handler.NoteHandler
	CategoryHandler *handler.CategoryHandler
	TagHandler      *handler.TagHandler

	// Scheduler & Background Jobs
	ReminderProcessor *scheduler.ReminderProcessor
}

// NewContainer สร้าง container ใหม่พร้อมกับ dependencies ทั้งหมด
func NewContainer(repos *configs.Repositories) (*Container, error) {
	container := &Container{
		NoteRepo:     repos.NoteRepo,
		CategoryRepo: repos.CategoryRepo,
		TagRepo:      repos.TagRepo,
	}

	// สร้าง services
	container.NoteService = serviceimpl.NewNoteService(container.NoteRepo)
	container.CategoryService = serviceimpl.NewCategoryService(container.CategoryRepo, container.NoteRepo)
	container.TagService = serviceimpl.NewTagService(container.TagRepo)

	// สร้าง WebSocket Hub และ adapter
	container.WebSocketHub = websocket.NewHub()
	container.SyncPort = adapter.NewWebSocketAdapter(container.WebSocketHub)

	// สร้าง handlers
	container.NoteHandler = handler.NewNoteHandler(container.NoteService, container.SyncPort)
	container.CategoryHandler = handler.NewCategoryHandler(container.CategoryService, container.SyncPort)
	container.TagHandler = handler.NewTagHandler(container.TagService, container.SyncPort)

	// สร้าง background jobs
	container.ReminderProcessor = scheduler.NewReminderProcessor(container.NoteService, container.SyncPort)

	// เชื่อมต่อ processor กับ service สำหรับ precise timing
	// (ต้องทำหลังจากสร้างทั้งสองแล้ว)
	container.NoteService.SetReminderScheduler(container.ReminderProcessor)

	return container, nil
}
