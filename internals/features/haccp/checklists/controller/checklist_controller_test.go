// file: internals/features/haccp/checklists/controller/checklist_controller_test.go
package controller

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "cocinasegura_backend/internals/helpers"
)

// App mínima sin base: un query inválido debe cortarse en la validación,
// antes de tocar la DB.
func appListado() *fiber.App {
	ctrl := NewChecklistController(nil)
	app := fiber.New()
	app.Get("/lavado-frutas", ctrl.ListLavadoFrutas)
	app.Get("/temperaturas-camara", ctrl.ListTemperaturaCamara)
	return app
}

func TestListChecklist_MesNoNumerico_400(t *testing.T) {
	app := appListado()

	resp, err := app.Test(httptest.NewRequest("GET", "/lavado-frutas?mes=abc", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestListChecklist_MesFueraDeRango_422(t *testing.T) {
	app := appListado()

	resp, err := app.Test(httptest.NewRequest("GET", "/lavado-frutas?mes=13", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	var body helper.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Success)
	assert.Equal(t, "VALIDATION_ERROR", body.ErrorCode)
}

func TestListChecklist_AnioFueraDeRango_422(t *testing.T) {
	app := appListado()

	resp, err := app.Test(httptest.NewRequest("GET", "/temperaturas-camara?anio=1999", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}
