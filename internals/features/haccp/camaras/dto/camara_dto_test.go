// file: internals/features/haccp/camaras/dto/camara_dto_test.go
package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"cocinasegura_backend/internals/features/haccp/camaras/model"
)

func crearCamara(tipo string, min, max float64) CreateCamaraRequest {
	return CreateCamaraRequest{
		CamaraNombre:  "Cámara pruebas",
		CamaraTipo:    tipo,
		CamaraTempMin: &min,
		CamaraTempMax: &max,
	}
}

// Los dos tipos del modelo deben seguir siendo exactamente los que el
// DTO acepta; si se agrega un tipo nuevo hay que tocar ambos lados.
func TestCreateCamara_TiposDelModelo(t *testing.T) {
	v := validator.New()

	assert.NoError(t, v.Struct(crearCamara(model.TipoRefrigeracion, 0, 5)))
	assert.NoError(t, v.Struct(crearCamara(model.TipoCongelacion, -25, -18)))
	assert.Error(t, v.Struct(crearCamara("AMBIENTE", 15, 25)))
}

func TestCreateCamara_CeroGradosEsValido(t *testing.T) {
	v := validator.New()
	assert.NoError(t, v.Struct(crearCamara(model.TipoRefrigeracion, 0, 4)))
}
