// file: internals/features/haccp/checklists/dto/checklists_dto.go
package dto

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "cocinasegura_backend/internals/features/haccp/checklists/model"
	svc "cocinasegura_backend/internals/features/haccp/checklists/service"
)

// Campos comunes de los POST de checklist. El responsable NO viaja en el body:
// se estampa desde el token (evita suplantación).
type baseChecklistRequest struct {
	Turno            *string `json:"turno" validate:"omitempty,oneof=MAÑANA TARDE NOCHE"`
	AccionCorrectiva *string `json:"accion_correctiva" validate:"omitempty,max=500"`
}

/* =========================================================
 * LAVADO DE FRUTAS
 * ========================================================= */

type CreateLavadoFrutasRequest struct {
	baseChecklistRequest

	Producto           string  `json:"producto" validate:"required,min=2,max=120"`
	ConcentracionPPM   float64 `json:"concentracion_ppm" validate:"required,gt=0"`
	TiempoInmersionMin int     `json:"tiempo_inmersion_min" validate:"required,gt=0"`

	VerdictoLavado       string `json:"verdicto_lavado" validate:"required,oneof=C NC"`
	VerdictoDesinfeccion string `json:"verdicto_desinfeccion" validate:"required,oneof=C NC"`

	SupervisorID *uuid.UUID `json:"supervisor_id" validate:"omitempty"`
}

func (r CreateLavadoFrutasRequest) Verdictos() []string {
	return []string{r.VerdictoLavado, r.VerdictoDesinfeccion}
}

func (r CreateLavadoFrutasRequest) ToModel(e svc.Estampa, responsable uuid.UUID) m.LavadoFrutasModel {
	return m.LavadoFrutasModel{
		LavadoFrutasFecha:                e.Fecha,
		LavadoFrutasHora:                 e.Hora,
		LavadoFrutasDia:                  e.Dia,
		LavadoFrutasMes:                  e.Mes,
		LavadoFrutasAnio:                 e.Anio,
		LavadoFrutasTurno:                e.Turno,
		LavadoFrutasProducto:             r.Producto,
		LavadoFrutasConcentracionPPM:     r.ConcentracionPPM,
		LavadoFrutasTiempoInmersionMin:   r.TiempoInmersionMin,
		LavadoFrutasVerdictoLavado:       r.VerdictoLavado,
		LavadoFrutasVerdictoDesinfeccion: r.VerdictoDesinfeccion,
		LavadoFrutasNoConforme:           svc.AlgunaNC(r.Verdictos()...),
		LavadoFrutasAccionCorrectiva:     r.AccionCorrectiva,
		LavadoFrutasResponsableID:        responsable,
		LavadoFrutasSupervisorID:         r.SupervisorID,
	}
}

/* =========================================================
 * LAVADO DE MANOS
 * ========================================================= */

type CreateLavadoManosRequest struct {
	baseChecklistRequest

	EmpleadoID uuid.UUID `json:"empleado_id" validate:"required"`

	VerdictoMojadoJabon string `json:"verdicto_mojado_jabon" validate:"required,oneof=C NC"`
	VerdictoDuracion    string `json:"verdicto_duracion" validate:"required,oneof=C NC"`
	VerdictoSecado      string `json:"verdicto_secado" validate:"required,oneof=C NC"`
}

func (r CreateLavadoManosRequest) Verdictos() []string {
	return []string{r.VerdictoMojadoJabon, r.VerdictoDuracion, r.VerdictoSecado}
}

func (r CreateLavadoManosRequest) ToModel(e svc.Estampa, responsable uuid.UUID) m.LavadoManosModel {
	return m.LavadoManosModel{
		LavadoManosFecha:               e.Fecha,
		LavadoManosHora:                e.Hora,
		LavadoManosDia:                 e.Dia,
		LavadoManosMes:                 e.Mes,
		LavadoManosAnio:                e.Anio,
		LavadoManosTurno:               e.Turno,
		LavadoManosEmpleadoID:          r.EmpleadoID,
		LavadoManosVerdictoMojadoJabon: r.VerdictoMojadoJabon,
		LavadoManosVerdictoDuracion:    r.VerdictoDuracion,
		LavadoManosVerdictoSecado:      r.VerdictoSecado,
		LavadoManosNoConforme:          svc.AlgunaNC(r.Verdictos()...),
		LavadoManosAccionCorrectiva:    r.AccionCorrectiva,
		LavadoManosResponsableID:       responsable,
	}
}

/* =========================================================
 * CONTROL DE COCCIÓN
 * ========================================================= */

type CreateControlCoccionRequest struct {
	baseChecklistRequest

	Producto string `json:"producto" validate:"required,min=2,max=120"`
	Proceso  string `json:"proceso" validate:"required,oneof=COCCION RECALENTAMIENTO"`
	// Puntero: 0.0 °C es una medición válida, "required" sobre float64 la rechazaría
	Temperatura *float64 `json:"temperatura" validate:"required"`
	TiempoMin   int      `json:"tiempo_min" validate:"required,gt=0"`

	VerdictoTemperatura string `json:"verdicto_temperatura" validate:"required,oneof=C NC"`

	SupervisorID *uuid.UUID `json:"supervisor_id" validate:"omitempty"`
}

func (r CreateControlCoccionRequest) Verdictos() []string {
	return []string{r.VerdictoTemperatura}
}

func (r CreateControlCoccionRequest) ToModel(e svc.Estampa, responsable uuid.UUID) m.ControlCoccionModel {
	return m.ControlCoccionModel{
		ControlCoccionFecha:               e.Fecha,
		ControlCoccionHora:                e.Hora,
		ControlCoccionDia:                 e.Dia,
		ControlCoccionMes:                 e.Mes,
		ControlCoccionAnio:                e.Anio,
		ControlCoccionTurno:               e.Turno,
		ControlCoccionProducto:            r.Producto,
		ControlCoccionProceso:             r.Proceso,
		ControlCoccionTemperatura:         *r.Temperatura,
		ControlCoccionTiempoMin:           r.TiempoMin,
		ControlCoccionVerdictoTemperatura: r.VerdictoTemperatura,
		ControlCoccionNoConforme:          svc.AlgunaNC(r.Verdictos()...),
		ControlCoccionAccionCorrectiva:    r.AccionCorrectiva,
		ControlCoccionResponsableID:       responsable,
		ControlCoccionSupervisorID:        r.SupervisorID,
	}
}

/* =========================================================
 * TEMPERATURA DE CÁMARAS
 * ========================================================= */

// El verdicto NO viene del cliente: se deriva contra los límites de la cámara.
type CreateTemperaturaCamaraRequest struct {
	baseChecklistRequest

	CamaraID uuid.UUID `json:"camara_id" validate:"required"`
	// Puntero por la misma razón que en cocción: 0.0 °C es válido
	Temperatura *float64 `json:"temperatura" validate:"required"`
}

func (r CreateTemperaturaCamaraRequest) ToModel(e svc.Estampa, responsable uuid.UUID, tempMin, tempMax float64) m.TemperaturaCamaraModel {
	verdicto := svc.VerdictoPorRango(*r.Temperatura, tempMin, tempMax)
	return m.TemperaturaCamaraModel{
		TemperaturaCamaraFecha:            e.Fecha,
		TemperaturaCamaraHora:             e.Hora,
		TemperaturaCamaraDia:              e.Dia,
		TemperaturaCamaraMes:              e.Mes,
		TemperaturaCamaraAnio:             e.Anio,
		TemperaturaCamaraTurno:            e.Turno,
		TemperaturaCamaraCamaraID:         r.CamaraID,
		TemperaturaCamaraTemperatura:      *r.Temperatura,
		TemperaturaCamaraTempMin:          tempMin,
		TemperaturaCamaraTempMax:          tempMax,
		TemperaturaCamaraVerdicto:         verdicto,
		TemperaturaCamaraNoConforme:       svc.AlgunaNC(verdicto),
		TemperaturaCamaraAccionCorrectiva: r.AccionCorrectiva,
		TemperaturaCamaraResponsableID:    responsable,
	}
}

/* =========================================================
 * RECEPCIÓN DE MERCADERÍA
 * ========================================================= */

type CreateRecepcionRequest struct {
	baseChecklistRequest

	Proveedor   string   `json:"proveedor" validate:"required,min=2,max=160"`
	Producto    string   `json:"producto" validate:"required,min=2,max=160"`
	Temperatura *float64 `json:"temperatura" validate:"omitempty"`

	VerdictoEnvase      string `json:"verdicto_envase" validate:"required,oneof=C NC"`
	VerdictoEtiquetado  string `json:"verdicto_etiquetado" validate:"required,oneof=C NC"`
	VerdictoTransporte  string `json:"verdicto_transporte" validate:"required,oneof=C NC"`
	VerdictoTemperatura string `json:"verdicto_temperatura" validate:"required,oneof=C NC"`

	Defectos []string       `json:"defectos" validate:"omitempty,dive,max=120"`
	Detalle  datatypes.JSON `json:"detalle" validate:"omitempty"`

	SupervisorID *uuid.UUID `json:"supervisor_id" validate:"omitempty"`
}

func (r CreateRecepcionRequest) Verdictos() []string {
	return []string{r.VerdictoEnvase, r.VerdictoEtiquetado, r.VerdictoTransporte, r.VerdictoTemperatura}
}

func (r CreateRecepcionRequest) ToModel(e svc.Estampa, responsable uuid.UUID) m.RecepcionMercaderiaModel {
	return m.RecepcionMercaderiaModel{
		RecepcionFecha:               e.Fecha,
		RecepcionHora:                e.Hora,
		RecepcionDia:                 e.Dia,
		RecepcionMes:                 e.Mes,
		RecepcionAnio:                e.Anio,
		RecepcionTurno:               e.Turno,
		RecepcionProveedor:           r.Proveedor,
		RecepcionProducto:            r.Producto,
		RecepcionTemperatura:         r.Temperatura,
		RecepcionVerdictoEnvase:      r.VerdictoEnvase,
		RecepcionVerdictoEtiquetado:  r.VerdictoEtiquetado,
		RecepcionVerdictoTransporte:  r.VerdictoTransporte,
		RecepcionVerdictoTemperatura: r.VerdictoTemperatura,
		RecepcionDefectos:            r.Defectos,
		RecepcionDetalle:             r.Detalle,
		RecepcionNoConforme:          svc.AlgunaNC(r.Verdictos()...),
		RecepcionAccionCorrectiva:    r.AccionCorrectiva,
		RecepcionResponsableID:       responsable,
		RecepcionSupervisorID:        r.SupervisorID,
	}
}

/* =========================================================
 * LIST FILTERS
 * ========================================================= */

type PeriodoRequest struct {
	Mes  *int `query:"mes" validate:"omitempty,min=1,max=12"`
	Anio *int `query:"anio" validate:"omitempty,min=2000,max=2100"`
}
