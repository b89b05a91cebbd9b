// pkg/utils/uuid.go
package utils

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ParseUUID แปลง string เป็น UUID
func ParseUUID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid UUID format: %s", s)
	}
	return id, nil
}

// ParseUUIDParam ดึง UUID จาก path parameter
func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return ParseUUID(c.Params(name))
}
