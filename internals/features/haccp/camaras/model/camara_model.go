package model

import (
	"time"

	"github.com/google/uuid"
)

// CamaraModel: cámaras de frío (referencia). Sus límites de temperatura
// determinan la conformidad del checklist de temperatura de cámaras.
type CamaraModel struct {
	CamaraID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:camara_id" json:"camara_id"`

	CamaraNombre string `gorm:"size:120;uniqueIndex;not null;column:camara_nombre" json:"camara_nombre"`
	CamaraTipo   string `gorm:"type:varchar(20);not null;column:camara_tipo" json:"camara_tipo"`

	CamaraTempMin float64 `gorm:"not null;column:camara_temp_min" json:"camara_temp_min"`
	CamaraTempMax float64 `gorm:"not null;column:camara_temp_max" json:"camara_temp_max"`

	CamaraUbicacion *string `gorm:"column:camara_ubicacion" json:"camara_ubicacion,omitempty"`
	CamaraActiva    bool    `gorm:"not null;default:true;column:camara_activa" json:"camara_activa"`

	CamaraCreatedAt time.Time  `gorm:"column:camara_created_at;autoCreateTime" json:"camara_created_at"`
	CamaraUpdatedAt *time.Time `gorm:"column:camara_updated_at;autoUpdateTime" json:"camara_updated_at,omitempty"`
}

func (CamaraModel) TableName() string { return "camaras" }

const (
	TipoRefrigeracion = "REFRIGERACION"
	TipoCongelacion   = "CONGELACION"
)
