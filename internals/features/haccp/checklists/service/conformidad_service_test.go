// file: internals/features/haccp/checklists/service/conformidad_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cocinasegura_backend/internals/helpers/horalima"
)

func TestAlgunaNC(t *testing.T) {
	assert.False(t, AlgunaNC())
	assert.False(t, AlgunaNC(Conforme, Conforme))
	assert.True(t, AlgunaNC(Conforme, NoConforme))
	assert.True(t, AlgunaNC(NoConforme))
}

func TestValidarAccionCorrectiva(t *testing.T) {
	accion := "Se repitió el lavado con nueva solución"
	vacia := "   "

	// todo conforme: la acción es opcional
	assert.NoError(t, ValidarAccionCorrectiva(nil, Conforme, Conforme))

	// alguna NC sin acción → error
	err := ValidarAccionCorrectiva(nil, Conforme, NoConforme)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAccionCorrectivaRequerida)

	// acción en blanco no cuenta
	assert.ErrorIs(t, ValidarAccionCorrectiva(&vacia, NoConforme), ErrAccionCorrectivaRequerida)

	// NC con acción → ok
	assert.NoError(t, ValidarAccionCorrectiva(&accion, NoConforme))
}

func TestVerdictoPorRango(t *testing.T) {
	// concentración de cloro dentro de [2, 8] ppm
	assert.Equal(t, Conforme, VerdictoPorRango(6.0, 2, 8))
	assert.Equal(t, NoConforme, VerdictoPorRango(10.0, 2, 8))

	// bordes inclusivos
	assert.Equal(t, Conforme, VerdictoPorRango(2.0, 2, 8))
	assert.Equal(t, Conforme, VerdictoPorRango(8.0, 2, 8))

	// rangos negativos (cámara de congelación)
	assert.Equal(t, Conforme, VerdictoPorRango(-20.5, -22, -16))
	assert.Equal(t, NoConforme, VerdictoPorRango(-10.0, -22, -16))
}

func TestNuevaEstampa(t *testing.T) {
	now := time.Date(2026, 8, 28, 9, 30, 0, 0, horalima.Location())

	e := NuevaEstampa(now, nil)
	assert.Equal(t, "2026-08-28", e.Fecha)
	assert.Equal(t, "09:30:00", e.Hora)
	assert.Equal(t, 8, e.Mes)
	assert.Equal(t, 2026, e.Anio)
	assert.Equal(t, horalima.TurnoManana, e.Turno)

	// el turno explícito del cliente gana sobre el derivado
	turno := " tarde "
	e = NuevaEstampa(now, &turno)
	assert.Equal(t, horalima.TurnoTarde, e.Turno)
}
