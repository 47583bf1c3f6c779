package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// RecepcionMercaderiaModel: inspección de recepción de mercadería de un
// proveedor. Append-only.
type RecepcionMercaderiaModel struct {
	RecepcionID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:recepcion_id" json:"recepcion_id"`

	RecepcionFecha string `gorm:"type:date;not null;index;column:recepcion_fecha" json:"recepcion_fecha"`
	RecepcionHora  string `gorm:"type:time;not null;column:recepcion_hora" json:"recepcion_hora"`
	RecepcionDia   string `gorm:"size:12;not null;column:recepcion_dia" json:"recepcion_dia"`
	RecepcionMes   int    `gorm:"not null;index:idx_recepcion_periodo;column:recepcion_mes" json:"recepcion_mes"`
	RecepcionAnio  int    `gorm:"not null;index:idx_recepcion_periodo;column:recepcion_anio" json:"recepcion_anio"`
	RecepcionTurno string `gorm:"size:10;not null;column:recepcion_turno" json:"recepcion_turno"`

	RecepcionProveedor   string   `gorm:"size:160;not null;index;column:recepcion_proveedor" json:"recepcion_proveedor"`
	RecepcionProducto    string   `gorm:"size:160;not null;column:recepcion_producto" json:"recepcion_producto"`
	RecepcionTemperatura *float64 `gorm:"column:recepcion_temperatura" json:"recepcion_temperatura,omitempty"`

	RecepcionVerdictoEnvase      string `gorm:"type:varchar(2);not null;column:recepcion_verdicto_envase" json:"recepcion_verdicto_envase"`
	RecepcionVerdictoEtiquetado  string `gorm:"type:varchar(2);not null;column:recepcion_verdicto_etiquetado" json:"recepcion_verdicto_etiquetado"`
	RecepcionVerdictoTransporte  string `gorm:"type:varchar(2);not null;column:recepcion_verdicto_transporte" json:"recepcion_verdicto_transporte"`
	RecepcionVerdictoTemperatura string `gorm:"type:varchar(2);not null;column:recepcion_verdicto_temperatura" json:"recepcion_verdicto_temperatura"`

	// Etiquetas libres de defectos observados ("caja rota", "sin rotulado"...)
	RecepcionDefectos pq.StringArray `gorm:"type:text[];column:recepcion_defectos" json:"recepcion_defectos,omitempty"`
	// Detalle extra no estructurado (lote, guía de remisión, etc.)
	RecepcionDetalle datatypes.JSON `gorm:"type:jsonb;column:recepcion_detalle" json:"recepcion_detalle,omitempty"`

	RecepcionNoConforme       bool    `gorm:"not null;default:false;index;column:recepcion_no_conforme" json:"recepcion_no_conforme"`
	RecepcionAccionCorrectiva *string `gorm:"column:recepcion_accion_correctiva" json:"recepcion_accion_correctiva,omitempty"`

	RecepcionResponsableID uuid.UUID  `gorm:"type:uuid;not null;column:recepcion_responsable_id" json:"recepcion_responsable_id"`
	RecepcionSupervisorID  *uuid.UUID `gorm:"type:uuid;column:recepcion_supervisor_id" json:"recepcion_supervisor_id,omitempty"`

	RecepcionCreatedAt time.Time `gorm:"column:recepcion_created_at;autoCreateTime" json:"recepcion_created_at"`
}

func (RecepcionMercaderiaModel) TableName() string { return "recepcion_mercaderia" }
