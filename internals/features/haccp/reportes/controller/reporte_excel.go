// file: internals/features/haccp/reportes/controller/reporte_excel.go
package controller

import (
	"bytes"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"cocinasegura_backend/internals/features/haccp/reportes/dto"
	svc "cocinasegura_backend/internals/features/haccp/reportes/service"
	helper "cocinasegura_backend/internals/helpers"
)

var resumenHeader = []string{"Categoría", "Registros", "No conformes", "% NC"}

var alertasHeader = []string{"Fecha", "Hora", "Turno", "Cámara", "Temperatura", "Mín", "Máx", "Acción correctiva"}

// GET /api/a/reportes/no-conformidades/excel?mes=&anio=
// Descarga el resumen mensual como .xlsx (hoja de resumen + hoja de
// alertas de temperatura).
func (ctrl *ReporteController) ExcelNoConformidades(c *fiber.Ctx) error {
	filter, err := parsePeriodo(c)
	if err != nil {
		return respuestaPeriodoInvalido(c, err)
	}
	conteos, err := ctrl.contarCategorias(filter)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al generar el reporte")
	}
	resumen := svc.Resumir(filter.Mes, filter.Anio, conteos)

	var alertas []dto.TemperaturaAlertaResponse
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
		Scan(&alertas).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al generar el reporte")
	}

	raw, err := generarExcelNoConformidades(resumen, alertas)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al generar el Excel")
	}

	filename := fmt.Sprintf("no-conformidades-%04d-%02d.xlsx", filter.Anio, filter.Mes)
	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", "attachment; filename="+filename)
	return c.Send(raw)
}

func generarExcelNoConformidades(resumen svc.ResumenNoConformidades, alertas []dto.TemperaturaAlertaResponse) ([]byte, error) {
	f := excelize.NewFile()
	// Ojo: sin defer Close(), WriteTo necesita el archivo abierto.

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("crear estilo de encabezado: %w", err)
	}

	if err := escribirHojaResumen(f, headerStyle, resumen); err != nil {
		f.Close()
		return nil, err
	}
	if err := escribirHojaAlertas(f, headerStyle, alertas); err != nil {
		f.Close()
		return nil, err
	}
	f.DeleteSheet("Sheet1")

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("serializar libro: %w", err)
	}
	f.Close()
	return buf.Bytes(), nil
}

func escribirHojaResumen(f *excelize.File, headerStyle int, resumen svc.ResumenNoConformidades) error {
	const sheet = "Resumen"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("crear hoja %s: %w", sheet, err)
	}
	f.SetActiveSheet(index)

	if err := escribirEncabezado(f, sheet, headerStyle, resumenHeader); err != nil {
		return err
	}
	widths := []float64{28, 12, 14, 10}
	if err := fijarAnchos(f, sheet, widths); err != nil {
		return err
	}

	row := 2
	for _, cat := range resumen.Categorias {
		vals := []any{cat.Categoria, cat.Total, cat.NoConformes, cat.PorcentajeNC}
		if err := escribirFila(f, sheet, row, vals); err != nil {
			return err
		}
		row++
	}
	// Fila de totales
	totales := []any{"TOTAL", resumen.Total, resumen.NoConformes, resumen.PorcentajeNC}
	if err := escribirFila(f, sheet, row, totales); err != nil {
		return err
	}

	return congelarEncabezado(f, sheet)
}

func escribirHojaAlertas(f *excelize.File, headerStyle int, alertas []dto.TemperaturaAlertaResponse) error {
	const sheet = "Temperaturas"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("crear hoja %s: %w", sheet, err)
	}

	if err := escribirEncabezado(f, sheet, headerStyle, alertasHeader); err != nil {
		return err
	}
	widths := []float64{12, 10, 10, 22, 13, 8, 8, 40}
	if err := fijarAnchos(f, sheet, widths); err != nil {
		return err
	}

	for i, a := range alertas {
		vals := []any{a.Fecha, a.Hora, a.Turno, a.CamaraNombre, a.Temperatura, a.TempMin, a.TempMax, a.AccionCorrectiva}
		if err := escribirFila(f, sheet, i+2, vals); err != nil {
			return err
		}
	}

	return congelarEncabezado(f, sheet)
}

func escribirEncabezado(f *excelize.File, sheet string, style int, headers []string) error {
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("coordenadas de celda: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("escribir encabezado %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return fmt.Errorf("estilo de encabezado %s: %w", cell, err)
		}
	}
	return nil
}

func fijarAnchos(f *excelize.File, sheet string, widths []float64) error {
	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("nombre de columna: %w", err)
		}
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return fmt.Errorf("ancho de columna %s: %w", col, err)
		}
	}
	return nil
}

func escribirFila(f *excelize.File, sheet string, row int, vals []any) error {
	for i, v := range vals {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return fmt.Errorf("coordenadas de celda: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("escribir celda %s: %w", cell, err)
		}
	}
	return nil
}

func congelarEncabezado(f *excelize.File, sheet string) error {
	err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
	if err != nil {
		return fmt.Errorf("congelar encabezado: %w", err)
	}
	return nil
}
