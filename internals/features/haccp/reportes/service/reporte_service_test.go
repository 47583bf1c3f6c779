// file: internals/features/haccp/reportes/service/reporte_service_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPorcentajeNC(t *testing.T) {
	// período sin registros: 0%, no división por cero
	assert.Equal(t, 0.0, PorcentajeNC(0, 0))

	assert.Equal(t, 0.0, PorcentajeNC(0, 50))
	assert.Equal(t, 100.0, PorcentajeNC(10, 10))
	assert.Equal(t, 25.0, PorcentajeNC(1, 4))

	// redondeo a 2 decimales: 1/3 → 33.33
	assert.Equal(t, 33.33, PorcentajeNC(1, 3))
	assert.Equal(t, 66.67, PorcentajeNC(2, 3))
}

func TestResumir(t *testing.T) {
	conteos := []ConteoCategoria{
		{Categoria: CategoriaLavadoFrutas, Total: 20, NoConformes: 2},
		{Categoria: CategoriaLavadoManos, Total: 30, NoConformes: 0},
		{Categoria: CategoriaTemperaturaCamara, Total: 50, NoConformes: 5},
	}

	res := Resumir(8, 2026, conteos)
	assert.Equal(t, 8, res.Mes)
	assert.Equal(t, 2026, res.Anio)
	assert.Equal(t, int64(100), res.Total)
	assert.Equal(t, int64(7), res.NoConformes)
	assert.Equal(t, 7.0, res.PorcentajeNC)

	require.Len(t, res.Categorias, 3)
	assert.Equal(t, 10.0, res.Categorias[0].PorcentajeNC)
	assert.Equal(t, 0.0, res.Categorias[1].PorcentajeNC)
	assert.Equal(t, 10.0, res.Categorias[2].PorcentajeNC)
}

func TestResumirVacio(t *testing.T) {
	res := Resumir(1, 2026, nil)
	assert.Equal(t, int64(0), res.Total)
	assert.Equal(t, 0.0, res.PorcentajeNC)
	assert.Empty(t, res.Categorias)
}
