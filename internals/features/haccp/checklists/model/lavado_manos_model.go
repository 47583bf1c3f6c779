package model

import (
	"time"

	"github.com/google/uuid"
)

// LavadoManosModel: evaluación de lavado de manos de un empleado,
// registrada por el supervisor de turno. Append-only.
type LavadoManosModel struct {
	LavadoManosID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:lavado_manos_id" json:"lavado_manos_id"`

	LavadoManosFecha string `gorm:"type:date;not null;index;column:lavado_manos_fecha" json:"lavado_manos_fecha"`
	LavadoManosHora  string `gorm:"type:time;not null;column:lavado_manos_hora" json:"lavado_manos_hora"`
	LavadoManosDia   string `gorm:"size:12;not null;column:lavado_manos_dia" json:"lavado_manos_dia"`
	LavadoManosMes   int    `gorm:"not null;index:idx_lavado_manos_periodo;column:lavado_manos_mes" json:"lavado_manos_mes"`
	LavadoManosAnio  int    `gorm:"not null;index:idx_lavado_manos_periodo;column:lavado_manos_anio" json:"lavado_manos_anio"`
	LavadoManosTurno string `gorm:"size:10;not null;column:lavado_manos_turno" json:"lavado_manos_turno"`

	// Empleado evaluado (≠ responsable que registra)
	LavadoManosEmpleadoID uuid.UUID `gorm:"type:uuid;not null;index;column:lavado_manos_empleado_id" json:"lavado_manos_empleado_id"`

	LavadoManosVerdictoMojadoJabon string `gorm:"type:varchar(2);not null;column:lavado_manos_verdicto_mojado_jabon" json:"lavado_manos_verdicto_mojado_jabon"`
	LavadoManosVerdictoDuracion    string `gorm:"type:varchar(2);not null;column:lavado_manos_verdicto_duracion" json:"lavado_manos_verdicto_duracion"`
	LavadoManosVerdictoSecado      string `gorm:"type:varchar(2);not null;column:lavado_manos_verdicto_secado" json:"lavado_manos_verdicto_secado"`

	LavadoManosNoConforme       bool    `gorm:"not null;default:false;index;column:lavado_manos_no_conforme" json:"lavado_manos_no_conforme"`
	LavadoManosAccionCorrectiva *string `gorm:"column:lavado_manos_accion_correctiva" json:"lavado_manos_accion_correctiva,omitempty"`

	LavadoManosResponsableID uuid.UUID `gorm:"type:uuid;not null;column:lavado_manos_responsable_id" json:"lavado_manos_responsable_id"`

	LavadoManosCreatedAt time.Time `gorm:"column:lavado_manos_created_at;autoCreateTime" json:"lavado_manos_created_at"`
}

func (LavadoManosModel) TableName() string { return "lavado_manos" }
