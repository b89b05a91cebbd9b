// interfaces/api/handler/category_handler.go
package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/notavel/gofiber-notes-api/domain/dto"
	"github.com/notavel/gofiber-notes-api/domain/port"
	"github.com/notavel/gofiber-notes-api/domain/service"
	"github.com/notavel/gofiber-notes-api/pkg/utils"
)

type CategoryHandler struct {
	categoryService service.CategoryService
	syncPort        port.SyncPort
}

func NewCategoryHandler(categoryService service.CategoryService, syncPort port.SyncPort) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		syncPort:        syncPort,
	}
}

func categoryErrorStatus(err error) int {
	if dto.IsValidationError(err) {
		return fiber.StatusBadRequest
	}
	if err.Error() == "category not found" {
		return fiber.StatusNotFound
	}
	return fiber.StatusInternalServerError
}

// CreateCategory สร้างหมวดหมู่ใหม่
func (h *CategoryHandler) CreateCategory(c *fiber.Ctx) error {
	var input dto.CreateCategoryInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body: " + err.Error(),
		})
	}

	category, err := h.categoryService.CreateCategory(&input)
	if err != nil {
		return c.Status(categoryErrorStatus(err)).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	if h.syncPort != nil {
		h.syncPort.BroadcastCategoryCreated(category)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Category created successfully",
		"data":    category,
	})
}

// GetCategory ดึงข้อมูลหมวดหมู่
func (h *CategoryHandler) GetCategory(c *fiber.Ctx) error {
	categoryID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid category ID: " + err.Error(),
		})
	}

	category, err := h.categoryService.GetCategory(categoryID)
	if err != nil {
		return c.Status(categoryErrorStatus(err)).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    category,
	})
}

// GetCategories ดึงรายการหมวดหมู่ทั้งหมด
func (h *CategoryHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.categoryService.GetCategories()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"categories": categories,
			"total":      len(categories),
		},
	})
}

// UpdateCategory อัปเดตหมวดหมู่
func (h *CategoryHandler) UpdateCategory(c *fiber.Ctx) error {
	categoryID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid category ID: " + err.Error(),
		})
	}

	var input dto.UpdateCategoryInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body: " + err.Error(),
		})
	}

	category, err := h.categoryService.UpdateCategory(categoryID, &input)
	if err != nil {
		return c.Status(categoryErrorStatus(err)).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	if h.syncPort != nil {
		h.syncPort.BroadcastCategoryUpdated(category)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Category updated successfully",
		"data":    category,
	})
}

// DeleteCategory ลบหมวดหมู่
// note ที่อ้างถึงหมวดนี้จะถูกล้าง category_id ไม่ถูกลบตาม
func (h *CategoryHandler) DeleteCategory(c *fiber.Ctx) error {
	categoryID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid category ID: " + err.Error(),
		})
	}

	if err := h.categoryService.DeleteCategory(categoryID); err != nil {
		return c.Status(categoryErrorStatus(err)).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	if h.syncPort != nil {
		h.syncPort.BroadcastCategoryDeleted(categoryID)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Category deleted successfully",
	})
}
