package model

import (
	"time"

	"github.com/google/uuid"
)

// LavadoFrutasModel: registro de lavado y desinfección de frutas/verduras.
// Append-only: no existe update ni delete (bitácora de auditoría).
type LavadoFrutasModel struct {
	LavadoFrutasID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:lavado_frutas_id" json:"lavado_frutas_id"`

	LavadoFrutasFecha string `gorm:"type:date;not null;index;column:lavado_frutas_fecha" json:"lavado_frutas_fecha"`
	LavadoFrutasHora  string `gorm:"type:time;not null;column:lavado_frutas_hora" json:"lavado_frutas_hora"`
	LavadoFrutasDia   string `gorm:"size:12;not null;column:lavado_frutas_dia" json:"lavado_frutas_dia"`
	LavadoFrutasMes   int    `gorm:"not null;index:idx_lavado_frutas_periodo;column:lavado_frutas_mes" json:"lavado_frutas_mes"`
	LavadoFrutasAnio  int    `gorm:"not null;index:idx_lavado_frutas_periodo;column:lavado_frutas_anio" json:"lavado_frutas_anio"`
	LavadoFrutasTurno string `gorm:"size:10;not null;column:lavado_frutas_turno" json:"lavado_frutas_turno"`

	LavadoFrutasProducto           string  `gorm:"size:120;not null;column:lavado_frutas_producto" json:"lavado_frutas_producto"`
	LavadoFrutasConcentracionPPM   float64 `gorm:"not null;column:lavado_frutas_concentracion_ppm" json:"lavado_frutas_concentracion_ppm"`
	LavadoFrutasTiempoInmersionMin int     `gorm:"not null;column:lavado_frutas_tiempo_inmersion_min" json:"lavado_frutas_tiempo_inmersion_min"`

	LavadoFrutasVerdictoLavado       string `gorm:"type:varchar(2);not null;column:lavado_frutas_verdicto_lavado" json:"lavado_frutas_verdicto_lavado"`
	LavadoFrutasVerdictoDesinfeccion string `gorm:"type:varchar(2);not null;column:lavado_frutas_verdicto_desinfeccion" json:"lavado_frutas_verdicto_desinfeccion"`

	LavadoFrutasNoConforme       bool    `gorm:"not null;default:false;index;column:lavado_frutas_no_conforme" json:"lavado_frutas_no_conforme"`
	LavadoFrutasAccionCorrectiva *string `gorm:"column:lavado_frutas_accion_correctiva" json:"lavado_frutas_accion_correctiva,omitempty"`

	LavadoFrutasResponsableID uuid.UUID  `gorm:"type:uuid;not null;column:lavado_frutas_responsable_id" json:"lavado_frutas_responsable_id"`
	LavadoFrutasSupervisorID  *uuid.UUID `gorm:"type:uuid;column:lavado_frutas_supervisor_id" json:"lavado_frutas_supervisor_id,omitempty"`

	LavadoFrutasCreatedAt time.Time `gorm:"column:lavado_frutas_created_at;autoCreateTime" json:"lavado_frutas_created_at"`
}

func (LavadoFrutasModel) TableName() string { return "lavado_frutas" }
