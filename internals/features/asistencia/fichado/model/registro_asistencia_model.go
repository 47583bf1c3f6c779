package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RegistroAsistenciaModel: una fila por (usuario, día calendario en hora Lima).
// La unicidad (usuario, fecha) la garantiza la base con uq_asistencia_usuario_fecha;
// la hora de entrada es inmutable y la salida se escribe a lo sumo una vez.
type RegistroAsistenciaModel struct {
	AsistenciaID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:asistencia_id" json:"asistencia_id"`

	AsistenciaUsuarioID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_asistencia_usuario_fecha;column:asistencia_usuario_id" json:"asistencia_usuario_id"`
	AsistenciaFecha     string    `gorm:"type:date;not null;uniqueIndex:uq_asistencia_usuario_fecha;column:asistencia_fecha" json:"asistencia_fecha"`

	AsistenciaHoraEntrada string  `gorm:"type:time;not null;column:asistencia_hora_entrada" json:"asistencia_hora_entrada"`
	AsistenciaHoraSalida  *string `gorm:"type:time;column:asistencia_hora_salida" json:"asistencia_hora_salida,omitempty"`

	AsistenciaEntradaLat *float64 `gorm:"column:asistencia_entrada_lat" json:"asistencia_entrada_lat,omitempty"`
	AsistenciaEntradaLng *float64 `gorm:"column:asistencia_entrada_lng" json:"asistencia_entrada_lng,omitempty"`
	AsistenciaSalidaLat  *float64 `gorm:"column:asistencia_salida_lat" json:"asistencia_salida_lat,omitempty"`
	AsistenciaSalidaLng  *float64 `gorm:"column:asistencia_salida_lng" json:"asistencia_salida_lng,omitempty"`

	AsistenciaUbicacionValida bool     `gorm:"not null;default:false;column:asistencia_ubicacion_valida" json:"asistencia_ubicacion_valida"`
	AsistenciaDistanciaM      *float64 `gorm:"column:asistencia_distancia_m" json:"asistencia_distancia_m,omitempty"`

	AsistenciaMetodo string `gorm:"type:varchar(10);not null;column:asistencia_metodo" json:"asistencia_metodo"`

	// Horas a precisión completa; el redondeo a 2 decimales es solo de display
	AsistenciaHorasTrabajadas *float64 `gorm:"column:asistencia_horas_trabajadas" json:"asistencia_horas_trabajadas,omitempty"`

	AsistenciaObservaciones *string        `gorm:"column:asistencia_observaciones" json:"asistencia_observaciones,omitempty"`
	AsistenciaDispositivo   datatypes.JSON `gorm:"type:jsonb;column:asistencia_dispositivo" json:"asistencia_dispositivo,omitempty"`

	AsistenciaCreatedAt time.Time  `gorm:"column:asistencia_created_at;autoCreateTime" json:"asistencia_created_at"`
	AsistenciaUpdatedAt *time.Time `gorm:"column:asistencia_updated_at;autoUpdateTime" json:"asistencia_updated_at,omitempty"`
}

func (RegistroAsistenciaModel) TableName() string { return "registros_asistencia" }

// Métodos de marcado
const (
	MetodoManual = "MANUAL"
	MetodoGPS    = "GPS"
	MetodoQR     = "QR"
)
