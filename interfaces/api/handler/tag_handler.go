// interfaces/api/handler/tag_handler.go
package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/notavel/gofiber-notes-api/domain/dto"
	"github.com/notavel/gofiber-notes-api/domain/port"
	"github.com/notavel/gofiber-notes-api/domain/service"
	"github.com/notavel/gofiber-notes-api/pkg/utils"
)

type TagHandler struct {
	tagService service.TagService
	syncPort   port.SyncPort
}

func NewTagHandler(tagService service.TagService, syncPort port.SyncPort) *TagHandler {
	return &TagHandler{
		tagService: tagService,
		syncPort:   syncPort,
	}
}

func tagErrorStatus(err error) int {
	if dto.IsValidationError(err) {
		return fiber.StatusBadRequest
	}
	switch err.Error() {
	case "tag not found":
		return fiber.StatusNotFound
	case "tag already exists":
		return fiber.StatusConflict
	}
	return fiber.StatusInternalServerError
}

// CreateTag สร้าง tag ใหม่ (ชื่อซ้ำไม่ได้)
func (h *TagHandler) CreateTag(c *fiber.Ctx) error {
	var input dto.CreateTagInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body: " + err.Error(),
		})
	}

	tag, err := h.tagService.CreateTag(&input)
	if err != nil {
		return c.Status(tagErrorStatus(err)).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	if h.syncPort != nil {
		h.syncPort.BroadcastTagCreated(tag)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Tag created successfully",
		"data":    tag,
	})
}

// GetTags ดึงรายการ tag ทั้งหมด
func (h *TagHandler) GetTags(c *fiber.Ctx) error {
	tags, err := h.tagService.GetTags()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"tags":  tags,
			"total": len(tags),
		},
	})
}

// DeleteTag ลบ tag
// การลบ tag ไม่แตะ tags ที่ฝังอยู่ในตัว note
func (h *TagHandler) DeleteTag(c *fiber.Ctx) error {
	tagID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid tag ID: " + err.Error(),
		})
	}

	if err := h.tagService.DeleteTag(tagID); err != nil {
		return c.Status(tagErrorStatus(err)).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	if h.syncPort != nil {
		h.syncPort.BroadcastTagDeleted(tagID)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Tag deleted successfully",
	})
}
