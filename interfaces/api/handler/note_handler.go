// interfaces/api/handler/note_handler.go
package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/notavel/gofiber-notes-api/domain/dto"
	"github.com/notavel/gofiber-notes-api/domain/port"
	"github.com/notavel/gofiber-notes-api/domain/service"
	"github.com/notavel/gofiber-notes-api/pkg/utils"
)

type NoteHandler struct {
	noteService service.NoteService
	syncPort    port.SyncPort
}

func NewNoteHandler(noteService service.NoteService, syncPort port.SyncPort) *NoteHandler {
	return &NoteHandler{
		noteService: noteService,
		syncPort:    syncPort,
	}
}

// noteErrorStatus แปลง error จาก service เป็น HTTP status
func noteErrorStatus(err error) int {
	if dto.IsValidationError(err) {
		return fiber.StatusBadRequest
	}
	if err.Error() == "note not found" {
		return fiber.StatusNotFound
	}
	return fiber.StatusInternalServerError
}

// CreateNote สร้างบันทึกใหม่
func (h *NoteHandler) CreateNote(c *fiber.Ctx) error {
	var input dto.CreateNoteInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body: " + err.Error(),
		})
	}

	note, err := h.noteService.CreateNote(&input)
	if err != nil {
		return c.Status(noteErrorStatus(err)).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	if h.syncPort != nil {
		h.syncPort.BroadcastNoteCreated(note)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Note created successfully",
		"data":    note,
	})
}

// GetNote ดึงข้อมูลบันทึก
func (h *NoteHandler) GetNote(c *fiber.Ctx) error {
	noteID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid note ID: " + err.Error(),
		})
	}

	note, err := h.noteService.GetNote(noteID)
	if err != nil {
		return c.Status(noteErrorStatus(err)).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    note,
	})
}

// GetNotes ดึงรายการบันทึก
// รองรับ query parameters (รวมกันแบบ AND):
// - search: ค้นหา free text บน title/content/tags
// - category: กรองตาม category id
// - tag: กรองตาม tag (exact)
// - favorite=true: เฉพาะที่ติดดาว
// - archived=true: เฉพาะที่ archive ไว้ (ปกติถูกซ่อน)
// - reminders=true: เฉพาะที่ตั้ง reminder
// - scope=all: รวม archived เข้ามาด้วย
func (h *NoteHandler) GetNotes(c *fiber.Ctx) error {
	filter := &dto.NoteFilter{
		Search:          c.Query("search"),
		Tag:             c.Query("tag"),
		Favorite:        c.QueryBool("favorite"),
		Archived:        c.QueryBool("archived"),
		Reminders:       c.QueryBool("reminders"),
		IncludeArchived: c.Query("scope") == "all",
	}

	if categoryStr := c.Query("category"); categoryStr != "" {
		categoryID, err := utils.ParseUUID(categoryStr)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Invalid category format",
			})
		}
		filter.CategoryID = &categoryID
	}

	notes, err := h.noteService.ListNotes(filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"notes": notes,
			"total": len(notes),
		},
	})
}

// UpdateNote อัปเดตบันทึกแบบ partial
func (h *NoteHandler) UpdateNote(c *fiber.Ctx) error {
	noteID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid note ID: " + err.Error(),
		})
	}

	var input dto.UpdateNoteInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body: " + err.Error(),
		})
	}

	note, err := h.noteService.UpdateNote(noteID, &input)
	if err != nil {
		return c.Status(noteErrorStatus(err)).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	if h.syncPort != nil {
		h.syncPort.BroadcastNoteUpdated(note)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Note updated successfully",
		"data":    note,
	})
}

// DeleteNote ลบบันทึก
func (h *NoteHandler) DeleteNote(c *fiber.Ctx) error {
	noteID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid note ID: " + err.Error(),
		})
	}

	if err := h.noteService.DeleteNote(noteID); err != nil {
		return c.Status(noteErrorStatus(err)).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	if h.syncPort != nil {
		h.syncPort.BroadcastNoteDeleted(noteID)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Note deleted successfully",
	})
}

// SearchNotes ค้นหาบันทึกด้วย free text
func (h *NoteHandler) SearchNotes(c *fiber.Ctx) error {
	query := c.Query("q")

	notes, err := h.noteService.SearchNotes(query)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"notes": notes,
			"query": query,
			"total": len(notes),
		},
	})
}

// GetNotesByTag ดึงบันทึกตาม tag
func (h *NoteHandler) GetNotesByTag(c *fiber.Ctx) error {
	tag := c.Query("tag")
	if tag == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Tag query parameter is required",
		})
	}

	notes, err := h.noteService.GetNotesByTag(tag)
	if err != nil {
		return c.Status(noteErrorStatus(err)).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"notes": notes,
			"tag":   tag,
			"total": len(notes),
		},
	})
}

// GetFavoriteNotes ดึงรายการบันทึกที่ติดดาว
func (h *NoteHandler) GetFavoriteNotes(c *fiber.Ctx) error {
	notes, err := h.noteService.GetFavoriteNotes()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"notes": notes,
			"total": len(notes),
		},
	})
}

// GetArchivedNotes ดึงรายการบันทึกที่ archive ไว้
func (h *NoteHandler) GetArchivedNotes(c *fiber.Ctx) error {
	notes, err := h.noteService.GetArchivedNotes()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"notes": notes,
			"total": len(notes),
		},
	})
}

// GetNotesWithReminders ดึงรายการบันทึกที่ตั้ง reminder ไว้
func (h *NoteHandler) GetNotesWithReminders(c *fiber.Ctx) error {
	notes, err := h.noteService.GetNotesWithReminders()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"notes": notes,
			"total": len(notes),
		},
	})
}

// FavoriteNote ติดดาวบันทึก
func (h *NoteHandler) FavoriteNote(c *fiber.Ctx) error {
	return h.setFlag(c, "is_favorite", true, "Note favorited successfully")
}

// UnfavoriteNote เอาดาวออกจากบันทึก
func (h *NoteHandler) UnfavoriteNote(c *fiber.Ctx) error {
	return h.setFlag(c, "is_favorite", false, "Note unfavorited successfully")
}

// ArchiveNote ย้ายบันทึกเข้า archive
func (h *NoteHandler) ArchiveNote(c *fiber.Ctx) error {
	return h.setFlag(c, "is_archived", true, "Note archived successfully")
}

// UnarchiveNote เอาบันทึกออกจาก archive
func (h *NoteHandler) UnarchiveNote(c *fiber.Ctx) error {
	return h.setFlag(c, "is_archived", false, "Note unarchived successfully")
}

func (h *NoteHandler) setFlag(c *fiber.Ctx, field string, value bool, message string) error {
	noteID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid note ID: " + err.Error(),
		})
	}

	input := &dto.UpdateNoteInput{}
	switch field {
	case "is_favorite":
		input.IsFavorite = &value
	case "is_archived":
		input.IsArchived = &value
	}

	note, err := h.noteService.UpdateNote(noteID, input)
	if err != nil {
		return c.Status(noteErrorStatus(err)).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	if h.syncPort != nil {
		h.syncPort.BroadcastNoteUpdated(note)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    note,
	})
}
