package model

import (
	"time"

	"github.com/google/uuid"
)

// ControlCoccionModel: control de temperatura interna de cocción /
// recalentamiento. Append-only.
type ControlCoccionModel struct {
	ControlCoccionID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:control_coccion_id" json:"control_coccion_id"`

	ControlCoccionFecha string `gorm:"type:date;not null;index;column:control_coccion_fecha" json:"control_coccion_fecha"`
	ControlCoccionHora  string `gorm:"type:time;not null;column:control_coccion_hora" json:"control_coccion_hora"`
	ControlCoccionDia   string `gorm:"size:12;not null;column:control_coccion_dia" json:"control_coccion_dia"`
	ControlCoccionMes   int    `gorm:"not null;index:idx_control_coccion_periodo;column:control_coccion_mes" json:"control_coccion_mes"`
	ControlCoccionAnio  int    `gorm:"not null;index:idx_control_coccion_periodo;column:control_coccion_anio" json:"control_coccion_anio"`
	ControlCoccionTurno string `gorm:"size:10;not null;column:control_coccion_turno" json:"control_coccion_turno"`

	ControlCoccionProducto    string  `gorm:"size:120;not null;column:control_coccion_producto" json:"control_coccion_producto"`
	ControlCoccionProceso     string  `gorm:"type:varchar(20);not null;column:control_coccion_proceso" json:"control_coccion_proceso"`
	ControlCoccionTemperatura float64 `gorm:"not null;column:control_coccion_temperatura" json:"control_coccion_temperatura"`
	ControlCoccionTiempoMin   int     `gorm:"not null;column:control_coccion_tiempo_min" json:"control_coccion_tiempo_min"`

	ControlCoccionVerdictoTemperatura string `gorm:"type:varchar(2);not null;column:control_coccion_verdicto_temperatura" json:"control_coccion_verdicto_temperatura"`

	ControlCoccionNoConforme       bool    `gorm:"not null;default:false;index;column:control_coccion_no_conforme" json:"control_coccion_no_conforme"`
	ControlCoccionAccionCorrectiva *string `gorm:"column:control_coccion_accion_correctiva" json:"control_coccion_accion_correctiva,omitempty"`

	ControlCoccionResponsableID uuid.UUID  `gorm:"type:uuid;not null;column:control_coccion_responsable_id" json:"control_coccion_responsable_id"`
	ControlCoccionSupervisorID  *uuid.UUID `gorm:"type:uuid;column:control_coccion_supervisor_id" json:"control_coccion_supervisor_id,omitempty"`

	ControlCoccionCreatedAt time.Time `gorm:"column:control_coccion_created_at;autoCreateTime" json:"control_coccion_created_at"`
}

func (ControlCoccionModel) TableName() string { return "control_coccion" }

const (
	ProcesoCoccion         = "COCCION"
	ProcesoRecalentamiento = "RECALENTAMIENTO"
)
