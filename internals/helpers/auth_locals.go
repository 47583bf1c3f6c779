// file: internals/helpers/auth_locals.go
package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Identidad del actor SIEMPRE desde locals (seteados por el middleware JWT),
// nunca desde el body del request.

func GetUserIDFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: falta user_id en el token")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: user_id inválido")
	}
	return id, nil
}

func GetUserRoleFromLocals(c *fiber.Ctx) string {
	role, _ := c.Locals("userRole").(string)
	return role
}

func GetUserNameFromLocals(c *fiber.Ctx) string {
	name, _ := c.Locals("userName").(string)
	return name
}
