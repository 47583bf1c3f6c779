// file: internals/features/haccp/camaras/dto/camara_dto.go
package dto

import (
	m "cocinasegura_backend/internals/features/haccp/camaras/model"
)

type CreateCamaraRequest struct {
	CamaraNombre string `json:"camara_nombre" validate:"required,min=2,max=120"`
	CamaraTipo   string `json:"camara_tipo"   validate:"required,oneof=REFRIGERACION CONGELACION"`
	// Punteros: 0 °C y negativos son límites válidos, "required" sobre
	// float64 los rechazaría. La relación min < max se chequea en el controller.
	CamaraTempMin   *float64 `json:"camara_temp_min"  validate:"required"`
	CamaraTempMax   *float64 `json:"camara_temp_max"  validate:"required"`
	CamaraUbicacion *string  `json:"camara_ubicacion" validate:"omitempty,max=200"`
}

type UpdateCamaraRequest struct {
	CamaraNombre    *string  `json:"camara_nombre"    validate:"omitempty,min=2,max=120"`
	CamaraTipo      *string  `json:"camara_tipo"      validate:"omitempty,oneof=REFRIGERACION CONGELACION"`
	CamaraTempMin   *float64 `json:"camara_temp_min"  validate:"omitempty"`
	CamaraTempMax   *float64 `json:"camara_temp_max"  validate:"omitempty"`
	CamaraUbicacion *string  `json:"camara_ubicacion" validate:"omitempty,max=200"`
}

func (r CreateCamaraRequest) ToModel() m.CamaraModel {
	return m.CamaraModel{
		CamaraNombre:    r.CamaraNombre,
		CamaraTipo:      r.CamaraTipo,
		CamaraTempMin:   *r.CamaraTempMin,
		CamaraTempMax:   *r.CamaraTempMax,
		CamaraUbicacion: r.CamaraUbicacion,
		CamaraActiva:    true,
	}
}
