// interfaces/api/routes/note_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/notavel/gofiber-notes-api/interfaces/api/handler"
)

// SetupNoteRoutes กำหนดเส้นทาง API สำหรับบันทึก
func SetupNoteRoutes(router fiber.Router, noteHandler *handler.NoteHandler) {
	notes := router.Group("/notes")

	// CRUD operations
	notes.Post("/", noteHandler.CreateNote) // สร้างบันทึกใหม่
	notes.Get("/", noteHandler.GetNotes)    // ดึงรายการบันทึก (รองรับ filter ผ่าน query)

	// Special routes (ต้องมาก่อน /:id เพื่อไม่ให้ conflict)
	notes.Get("/favorites", noteHandler.GetFavoriteNotes)      // ดึงบันทึกที่ติดดาว
	notes.Get("/archived", noteHandler.GetArchivedNotes)       // ดึงบันทึกที่ archive ไว้
	notes.Get("/reminders", noteHandler.GetNotesWithReminders) // ดึงบันทึกที่ตั้ง reminder
	notes.Get("/search", noteHandler.SearchNotes)              // ค้นหาบันทึก
	notes.Get("/by-tag", noteHandler.GetNotesByTag)            // ดึงบันทึกตาม tag

	// Flag operations (ต้องมาก่อน /:id เพราะมี sub-path)
	notes.Put("/:id/favorite", noteHandler.FavoriteNote)      // ติดดาว
	notes.Delete("/:id/favorite", noteHandler.UnfavoriteNote) // เอาดาวออก
	notes.Put("/:id/archive", noteHandler.ArchiveNote)        // ย้ายเข้า archive
	notes.Delete("/:id/archive", noteHandler.UnarchiveNote)   // เอาออกจาก archive

	// Dynamic routes (ต้องมาหลังสุด)
	notes.Get("/:id", noteHandler.GetNote)       // ดึงบันทึกเฉพาะ
	notes.Patch("/:id", noteHandler.UpdateNote)  // อัปเดตแบบ partial
	notes.Put("/:id", noteHandler.UpdateNote)    // อัปเดต (รองรับทั้ง 2 method)
	notes.Delete("/:id", noteHandler.DeleteNote) // ลบบันทึก
}
