// file: internals/features/haccp/reportes/controller/reporte_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"cocinasegura_backend/internals/features/haccp/reportes/dto"
	svc "cocinasegura_backend/internals/features/haccp/reportes/service"
	helper "cocinasegura_backend/internals/helpers"
)

type ReporteController struct {
	DB *gorm.DB
}

func NewReporteController(db *gorm.DB) *ReporteController {
	return &ReporteController{DB: db}
}

// tablaChecklist describe cómo contar una categoría contra su tabla.
type tablaChecklist struct {
	Categoria string
	Tabla     string
	Prefijo   string
}

// Las cinco tablas de checklist, en el orden fijo del reporte.
var tablasChecklist = []tablaChecklist{
	{svc.CategoriaLavadoFrutas, "lavado_frutas", "lavado_frutas"},
	{svc.CategoriaLavadoManos, "lavado_manos", "lavado_manos"},
	{svc.CategoriaControlCoccion, "control_coccion", "control_coccion"},
	{svc.CategoriaTemperaturaCamara, "temperaturas_camara", "temperatura_camara"},
	{svc.CategoriaRecepcion, "recepcion_mercaderia", "recepcion"},
}

// GET /api/a/reportes/no-conformidades?mes=&anio=
func (ctrl *ReporteController) ResumenNoConformidades(c *fiber.Ctx) error {
	filter, err := parsePeriodo(c)
	if err != nil {
		return respuestaPeriodoInvalido(c, err)
	}
	conteos, err := ctrl.contarCategorias(filter)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al generar el reporte")
	}
	resumen := svc.Resumir(filter.Mes, filter.Anio, conteos)
	return helper.JsonOK(c, "", resumen)
}

// GET /api/a/reportes/proveedores-nc?mes=&anio=
// Proveedores con al menos una recepción no conforme en el período.
func (ctrl *ReporteController) ProveedoresNC(c *fiber.Ctx) error {
	filter, err := parsePeriodo(c)
	if err != nil {
		return respuestaPeriodoInvalido(c, err)
	}
	var rows []dto.ProveedorNCResponse
	err = ctrl.DB.Table("recepcion_mercaderia").
		Select(`recepcion_proveedor AS proveedor,
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE recepcion_no_conforme) AS no_conformes`).
		Where("recepcion_mes = ? AND recepcion_anio = ?", filter.Mes, filter.Anio).
		Group("recepcion_proveedor").
		Having("COUNT(*) FILTER (WHERE recepcion_no_conforme) > 0").
		Order("no_conformes DESC, proveedor ASC").
		Scan(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al generar el reporte")
	}
	return helper.JsonOK(c, "", rows)
}

// GET /api/a/reportes/empleados-nc?mes=&anio=
// Empleados con evaluaciones de lavado de manos no conformes en el período.
func (ctrl *ReporteController) EmpleadosNC(c *fiber.Ctx) error {
	filter, err := parsePeriodo(c)
	if err != nil {
		return respuestaPeriodoInvalido(c, err)
	}
	var rows []dto.EmpleadoNCResponse
	err = ctrl.DB.Table("lavado_manos lm").
		Select(`lm.lavado_manos_empleado_id AS empleado_id,
			u.usuario_nombre AS empleado_nombre,
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE lm.lavado_manos_no_conforme) AS no_conformes`).
		Joins("JOIN usuarios u ON u.usuario_id = lm.lavado_manos_empleado_id").
		Where("lm.lavado_manos_mes = ? AND lm.lavado_manos_anio = ?", filter.Mes, filter.Anio).
		Group("lm.lavado_manos_empleado_id, u.usuario_nombre").
		Having("COUNT(*) FILTER (WHERE lm.lavado_manos_no_conforme) > 0").
		Order("no_conformes DESC, empleado_nombre ASC").
		Scan(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al generar el reporte")
	}
	return helper.JsonOK(c, "", rows)
}

// GET /api/a/reportes/temperaturas-alerta?mes=&anio=
// Lecturas de cámara fuera de rango, con el nombre de la cámara.
func (ctrl *ReporteController) TemperaturasAlerta(c *fiber.Ctx) error {
	filter, err := parsePeriodo(c)
	if err != nil {
		return respuestaPeriodoInvalido(c, err)
	}
	var rows []dto.TemperaturaAlertaResponse
	err = ctrl.DB.Table("temperaturas_camara tc").
		Select(`tc.temperatura_camara_fecha AS fecha,
			tc.temperatura_camara_hora AS hora,
			tc.temperatura_camara_turno AS turno,
			cam.camara_nombre AS camara_nombre,
			tc.temperatura_camara_temperatura AS temperatura,
			tc.temperatura_camara_temp_min AS temp_min,
			tc.temperatura_camara_temp_max AS temp_max,
			COALESCE(tc.temperatura_camara_accion_correctiva, '') AS accion_correctiva`).
		Joins("JOIN camaras cam ON cam.camara_id = tc.temperatura_camara_camara_id").
		Where("tc.temperatura_camara_mes = ? AND tc.temperatura_camara_anio = ?", filter.Mes, filter.Anio).
		Where("tc.temperatura_camara_no_conforme").
		Order("tc.temperatura_camara_fecha ASC, tc.temperatura_camara_hora ASC").
		Scan(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al generar el reporte")
	}
	return helper.JsonOK(c, "", rows)
}

/* =========================================================
 * Helpers
 * ========================================================= */

// parsePeriodo devuelve el error crudo del parseo/validación; nunca escribe
// la respuesta. El handler la decide con respuestaPeriodoInvalido.
func parsePeriodo(c *fiber.Ctx) (dto.PeriodoReporteRequest, error) {
	var filter dto.PeriodoReporteRequest
	if err := c.QueryParser(&filter); err != nil {
		return filter, err
	}
	v := validator.New()
	return filter, v.Struct(filter)
}

func respuestaPeriodoInvalido(c *fiber.Ctx, err error) error {
	if _, ok := err.(validator.ValidationErrors); ok {
		return helper.JsonValidationError(c, err)
	}
	return helper.JsonError(c, fiber.StatusBadRequest, "Query inválido")
}

// contarCategorias corre el par de COUNT por cada tabla de checklist.
// Devuelve el error crudo de la base; el handler responde el 500.
func (ctrl *ReporteController) contarCategorias(filter dto.PeriodoReporteRequest) ([]svc.ConteoCategoria, error) {
	conteos := make([]svc.ConteoCategoria, 0, len(tablasChecklist))
	for _, t := range tablasChecklist {
		var row struct {
			Total       int64
			NoConformes int64
		}
		err := ctrl.DB.Table(t.Tabla).
			Select(`COUNT(*) AS total,
				COUNT(*) FILTER (WHERE ` + t.Prefijo + `_no_conforme) AS no_conformes`).
			Where(t.Prefijo+"_mes = ? AND "+t.Prefijo+"_anio = ?", filter.Mes, filter.Anio).
			Scan(&row).Error
		if err != nil {
			return nil, err
		}
		conteos = append(conteos, svc.ConteoCategoria{
			Categoria:   t.Categoria,
			Total:       row.Total,
			NoConformes: row.NoConformes,
		})
	}
	return conteos, nil
}
