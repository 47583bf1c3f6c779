// file: internals/features/haccp/reportes/controller/reporte_controller_test.go
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

// App mínima sin base: el período inválido debe rechazarse antes de que
// el handler arme el reporte, nunca responder un reporte vacío en 200.
func appReportes() *fiber.App {
	ctrl := NewReporteController(nil)
	app := fiber.New()
	app.Get("/resumen", ctrl.ResumenNoConformidades)
	app.Get("/proveedores-nc", ctrl.ProveedoresNC)
	app.Get("/empleados-nc", ctrl.EmpleadosNC)
	app.Get("/temperaturas-alerta", ctrl.TemperaturasAlerta)
	app.Get("/export/excel", ctrl.ExcelNoConformidades)
	return app
}

func TestReportes_SinPeriodo_422(t *testing.T) {
	app := appReportes()

	for _, ruta := range []string{"/resumen", "/proveedores-nc", "/empleados-nc", "/temperaturas-alerta", "/export/excel"} {
		resp, err := app.Test(httptest.NewRequest("GET", ruta, nil))
		require.NoError(t, err, ruta)
		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode, ruta)

		var body helper.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body), ruta)
		assert.False(t, body.Success, ruta)
		assert.Equal(t, "VALIDATION_ERROR", body.ErrorCode, ruta)
	}
}

func TestReportes_MesFueraDeRango_422(t *testing.T) {
	app := appReportes()

	resp, err := app.Test(httptest.NewRequest("GET", "/resumen?mes=13&anio=2026", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestReportes_MesNoNumerico_400(t *testing.T) {
	app := appReportes()

	resp, err := app.Test(httptest.NewRequest("GET", "/resumen?mes=abc&anio=2026", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
