// file: internals/features/haccp/reportes/dto/reporte_dto.go
package dto

// PeriodoReporteRequest: los reportes siempre son de un mes calendario.
type PeriodoReporteRequest struct {
	Mes  int `query:"mes" validate:"required,min=1,max=12"`
	Anio int `query:"anio" validate:"required,min=2000,max=2100"`
}

// ProveedorNCResponse: proveedores rankeados por recepciones no conformes.
type ProveedorNCResponse struct {
	Proveedor   string `json:"proveedor"`
	Total       int64  `json:"total"`
	NoConformes int64  `json:"no_conformes"`
}

// EmpleadoNCResponse: empleados con evaluaciones de lavado de manos NC.
type EmpleadoNCResponse struct {
	EmpleadoID     string `json:"empleado_id"`
	EmpleadoNombre string `json:"empleado_nombre"`
	Total          int64  `json:"total"`
	NoConformes    int64  `json:"no_conformes"`
}

// TemperaturaAlertaResponse: lecturas de cámara fuera de rango en el período.
type TemperaturaAlertaResponse struct {
	Fecha            string  `json:"fecha"`
	Hora             string  `json:"hora"`
	Turno            string  `json:"turno"`
	CamaraNombre     string  `json:"camara_nombre"`
	Temperatura      float64 `json:"temperatura"`
	TempMin          float64 `json:"temp_min"`
	TempMax          float64 `json:"temp_max"`
	AccionCorrectiva string  `json:"accion_correctiva"`
}
