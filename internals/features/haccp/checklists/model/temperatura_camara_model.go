package model

import (
	"time"

	"github.com/google/uuid"
)

// TemperaturaCamaraModel: lectura de temperatura de una cámara de frío.
// El verdicto se deriva contra los límites de la cámara y se guarda junto
// con un snapshot de esos límites (la cámara puede reconfigurarse después).
type TemperaturaCamaraModel struct {
	TemperaturaCamaraID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:temperatura_camara_id" json:"temperatura_camara_id"`

	TemperaturaCamaraFecha string `gorm:"type:date;not null;index;column:temperatura_camara_fecha" json:"temperatura_camara_fecha"`
	TemperaturaCamaraHora  string `gorm:"type:time;not null;column:temperatura_camara_hora" json:"temperatura_camara_hora"`
	TemperaturaCamaraDia   string `gorm:"size:12;not null;column:temperatura_camara_dia" json:"temperatura_camara_dia"`
	TemperaturaCamaraMes   int    `gorm:"not null;index:idx_temperatura_camara_periodo;column:temperatura_camara_mes" json:"temperatura_camara_mes"`
	TemperaturaCamaraAnio  int    `gorm:"not null;index:idx_temperatura_camara_periodo;column:temperatura_camara_anio" json:"temperatura_camara_anio"`
	TemperaturaCamaraTurno string `gorm:"size:10;not null;column:temperatura_camara_turno" json:"temperatura_camara_turno"`

	TemperaturaCamaraCamaraID    uuid.UUID `gorm:"type:uuid;not null;index;column:temperatura_camara_camara_id" json:"temperatura_camara_camara_id"`
	TemperaturaCamaraTemperatura float64   `gorm:"not null;column:temperatura_camara_temperatura" json:"temperatura_camara_temperatura"`
	TemperaturaCamaraTempMin     float64   `gorm:"not null;column:temperatura_camara_temp_min" json:"temperatura_camara_temp_min"`
	TemperaturaCamaraTempMax     float64   `gorm:"not null;column:temperatura_camara_temp_max" json:"temperatura_camara_temp_max"`

	TemperaturaCamaraVerdicto string `gorm:"type:varchar(2);not null;column:temperatura_camara_verdicto" json:"temperatura_camara_verdicto"`

	TemperaturaCamaraNoConforme       bool    `gorm:"not null;default:false;index;column:temperatura_camara_no_conforme" json:"temperatura_camara_no_conforme"`
	TemperaturaCamaraAccionCorrectiva *string `gorm:"column:temperatura_camara_accion_correctiva" json:"temperatura_camara_accion_correctiva,omitempty"`

	TemperaturaCamaraResponsableID uuid.UUID `gorm:"type:uuid;not null;column:temperatura_camara_responsable_id" json:"temperatura_camara_responsable_id"`

	TemperaturaCamaraCreatedAt time.Time `gorm:"column:temperatura_camara_created_at;autoCreateTime" json:"temperatura_camara_created_at"`
}

func (TemperaturaCamaraModel) TableName() string { return "temperaturas_camara" }
