// file: internals/middlewares/auth/role_middleware_test.go
package auth

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cocinasegura_backend/internals/constants"
)

func appConRol(rol string, gate fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if rol != "" {
			c.Locals("userRole", rol)
		}
		return c.Next()
	})
	app.Get("/recurso", gate, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestOnlyRoles_AdminPasa(t *testing.T) {
	gate := OnlyRoles(constants.RoleErrorAdmin("la gestión de usuarios"), constants.RolAdmin)
	app := appConRol(constants.RolAdmin, gate)

	resp, err := app.Test(httptest.NewRequest("GET", "/recurso", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestOnlyRoles_SupervisorBloqueadoEnGateAdmin(t *testing.T) {
	gate := OnlyRoles(constants.RoleErrorAdmin("la gestión de usuarios"), constants.RolAdmin)
	app := appConRol(constants.RolSupervisor, gate)

	resp, err := app.Test(httptest.NewRequest("GET", "/recurso", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, constants.RoleErrorAdmin("la gestión de usuarios"), body["message"])
}

func TestOnlyRoles_SinRol401(t *testing.T) {
	gate := OnlyRoles("", constants.RolAdmin)
	app := appConRol("", gate)

	resp, err := app.Test(httptest.NewRequest("GET", "/recurso", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
