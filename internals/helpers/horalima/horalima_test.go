// file: internals/helpers/horalima/horalima_test.go
package horalima

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFechaHoraEnLima(t *testing.T) {
	// 2026-08-28 03:30 UTC = 2026-08-27 22:30 en Lima (UTC-5)
	utc := time.Date(2026, 8, 28, 3, 30, 0, 0, time.UTC)

	assert.Equal(t, "2026-08-27", Fecha(utc))
	assert.Equal(t, "22:30:00", Hora(utc))

	mes, anio := MesAnio(utc)
	assert.Equal(t, 8, mes)
	assert.Equal(t, 2026, anio)
}

func TestMismoDia(t *testing.T) {
	// ambos caen el 27 de agosto en Lima aunque en UTC sean días distintos
	a := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	b := time.Date(2026, 8, 28, 3, 0, 0, 0, time.UTC)
	assert.True(t, MismoDia(a, b))

	c := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	assert.False(t, MismoDia(a, c))
}

func TestDiaSemanaYMes(t *testing.T) {
	// viernes 28 de agosto de 2026
	d := time.Date(2026, 8, 28, 10, 0, 0, 0, Location())
	assert.Equal(t, "VIERNES", DiaSemana(d))
	assert.Equal(t, "AGOSTO", NombreMes(d))
}

func TestTurnoFor(t *testing.T) {
	casos := []struct {
		hora  int
		turno string
	}{
		{5, TurnoNoche},
		{6, TurnoManana},
		{13, TurnoManana},
		{14, TurnoTarde},
		{21, TurnoTarde},
		{22, TurnoNoche},
		{0, TurnoNoche},
	}
	for _, c := range casos {
		d := time.Date(2026, 8, 28, c.hora, 0, 0, 0, Location())
		assert.Equal(t, c.turno, TurnoFor(d), "hora %d", c.hora)
	}
}
