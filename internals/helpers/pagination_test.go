// file: internals/helpers/pagination_test.go
package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimitOffset(t *testing.T) {
	p := Params{Page: 3, PerPage: 25}
	assert.Equal(t, 25, p.Limit())
	assert.Equal(t, 50, p.Offset())

	p = Params{Page: 1, PerPage: 50}
	assert.Equal(t, 0, p.Offset())
}

func TestSafeOrderClause(t *testing.T) {
	allowed := map[string]string{
		"fecha":  "asistencia_fecha",
		"nombre": "usuario_nombre",
	}

	// columna permitida
	clause, err := Params{SortBy: "fecha", SortOrder: "asc"}.SafeOrderClause(allowed, "fecha")
	require.NoError(t, err)
	assert.Equal(t, "asistencia_fecha ASC", clause)

	// columna no permitida cae al default
	clause, err = Params{SortBy: "password", SortOrder: "desc"}.SafeOrderClause(allowed, "fecha")
	require.NoError(t, err)
	assert.Equal(t, "asistencia_fecha DESC", clause)

	// orden desconocido cae a DESC
	clause, err = Params{SortBy: "nombre", SortOrder: "sideways"}.SafeOrderClause(allowed, "fecha")
	require.NoError(t, err)
	assert.Equal(t, "usuario_nombre DESC", clause)

	// sin default válido: error
	_, err = Params{SortBy: "x"}.SafeOrderClause(map[string]string{}, "fecha")
	assert.Error(t, err)
}

func TestBuildMeta(t *testing.T) {
	m := BuildMeta(101, Params{Page: 2, PerPage: 25})
	assert.Equal(t, int64(101), m.Total)
	assert.Equal(t, 5, m.TotalPages)
	assert.True(t, m.HasNext)
	assert.True(t, m.HasPrev)

	m = BuildMeta(0, Params{Page: 1, PerPage: 25})
	assert.Equal(t, 0, m.TotalPages)
	assert.False(t, m.HasNext)
	assert.False(t, m.HasPrev)
}
