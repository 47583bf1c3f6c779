// file: internals/features/asistencia/fichado/dto/fichado_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "cocinasegura_backend/internals/features/asistencia/fichado/model"
	svc "cocinasegura_backend/internals/features/asistencia/fichado/service"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type MarcaRequest struct {
	Metodo        string   `json:"metodo"  validate:"required,oneof=MANUAL GPS QR"`
	Latitud       *float64 `json:"latitud"  validate:"omitempty,latitude"`
	Longitud      *float64 `json:"longitud" validate:"omitempty,longitude"`
	QRCode        *string  `json:"qr_code" validate:"omitempty,max=120"`
	Observaciones *string  `json:"observaciones" validate:"omitempty,max=500"`
}

func (r MarcaRequest) Coordenadas() *svc.Coordenadas {
	if r.Latitud == nil || r.Longitud == nil {
		return nil
	}
	return &svc.Coordenadas{Lat: *r.Latitud, Lng: *r.Longitud}
}

type HistorialRequest struct {
	Desde *string `query:"desde" validate:"omitempty,datetime=2006-01-02"`
	Hasta *string `query:"hasta" validate:"omitempty,datetime=2006-01-02"`
}

type AdminAsistenciaRequest struct {
	UsuarioID *uuid.UUID `query:"usuario_id" validate:"omitempty"`
	Desde     *string    `query:"desde" validate:"omitempty,datetime=2006-01-02"`
	Hasta     *string    `query:"hasta" validate:"omitempty,datetime=2006-01-02"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

type EntradaResponse struct {
	Fecha           string   `json:"fecha"`
	HoraEntrada     string   `json:"hora_entrada"`
	UbicacionValida bool     `json:"ubicacion_valida"`
	DistanciaM      *float64 `json:"distancia_m,omitempty"`
	Estado          string   `json:"estado"`
}

type SalidaResponse struct {
	Fecha           string   `json:"fecha"`
	HoraSalida      string   `json:"hora_salida"`
	HorasTrabajadas float64  `json:"horas_trabajadas"`
	DistanciaM      *float64 `json:"distancia_m,omitempty"`
	Estado          string   `json:"estado"`
}

type RegistroAsistenciaResponse struct {
	AsistenciaID    uuid.UUID  `json:"asistencia_id"`
	UsuarioID       uuid.UUID  `json:"usuario_id"`
	Fecha           string     `json:"fecha"`
	HoraEntrada     string     `json:"hora_entrada"`
	HoraSalida      *string    `json:"hora_salida,omitempty"`
	UbicacionValida bool       `json:"ubicacion_valida"`
	DistanciaM      *float64   `json:"distancia_m,omitempty"`
	Metodo          string     `json:"metodo"`
	HorasTrabajadas *float64   `json:"horas_trabajadas,omitempty"`
	Observaciones   *string    `json:"observaciones,omitempty"`
	Estado          string     `json:"estado"`
	CreatedAt       time.Time  `json:"created_at"`
}

func FromModel(r m.RegistroAsistenciaModel) RegistroAsistenciaResponse {
	horas := r.AsistenciaHorasTrabajadas
	if horas != nil {
		v := svc.RedondearHoras(*horas)
		horas = &v
	}
	return RegistroAsistenciaResponse{
		AsistenciaID:    r.AsistenciaID,
		UsuarioID:       r.AsistenciaUsuarioID,
		Fecha:           r.AsistenciaFecha,
		HoraEntrada:     r.AsistenciaHoraEntrada,
		HoraSalida:      r.AsistenciaHoraSalida,
		UbicacionValida: r.AsistenciaUbicacionValida,
		DistanciaM:      r.AsistenciaDistanciaM,
		Metodo:          r.AsistenciaMetodo,
		HorasTrabajadas: horas,
		Observaciones:   r.AsistenciaObservaciones,
		Estado:          svc.EstadoDe(&r),
		CreatedAt:       r.AsistenciaCreatedAt,
	}
}

func FromModels(items []m.RegistroAsistenciaModel) []RegistroAsistenciaResponse {
	out := make([]RegistroAsistenciaResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FromModel(it))
	}
	return out
}
