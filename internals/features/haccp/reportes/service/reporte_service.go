// file: internals/features/haccp/reportes/service/reporte_service.go
//
// Agregación pura de no conformidades: el controller trae los conteos de la
// base y este paquete solo calcula porcentajes y totales. Volver a correr la
// agregación sobre los mismos conteos produce el mismo resumen.
package service

import "math"

// Categorías fijas del reporte, una por checklist HACCP.
const (
	CategoriaLavadoFrutas      = "LAVADO_FRUTAS"
	CategoriaLavadoManos       = "LAVADO_MANOS"
	CategoriaControlCoccion    = "CONTROL_COCCION"
	CategoriaTemperaturaCamara = "TEMPERATURA_CAMARAS"
	CategoriaRecepcion         = "RECEPCION_MERCADERIA"
)

// ConteoCategoria es el conteo crudo de una categoría en el período.
type ConteoCategoria struct {
	Categoria    string  `json:"categoria"`
	Total        int64   `json:"total"`
	NoConformes  int64   `json:"no_conformes"`
	PorcentajeNC float64 `json:"porcentaje_nc"`
}

// ResumenNoConformidades es el agregado mensual de todas las categorías.
type ResumenNoConformidades struct {
	Mes          int               `json:"mes"`
	Anio         int               `json:"anio"`
	Total        int64             `json:"total"`
	NoConformes  int64             `json:"no_conformes"`
	PorcentajeNC float64           `json:"porcentaje_nc"`
	Categorias   []ConteoCategoria `json:"categorias"`
}

// PorcentajeNC devuelve nc/total en porcentaje, redondeado a 2 decimales.
// Un período sin registros es 0%, no un error.
func PorcentajeNC(noConformes, total int64) float64 {
	if total == 0 {
		return 0
	}
	pct := float64(noConformes) / float64(total) * 100
	return math.Round(pct*100) / 100
}

// Resumir arma el resumen del período a partir de los conteos por categoría,
// completando los porcentajes por categoría y el global.
func Resumir(mes, anio int, categorias []ConteoCategoria) ResumenNoConformidades {
	res := ResumenNoConformidades{
		Mes:        mes,
		Anio:       anio,
		Categorias: make([]ConteoCategoria, 0, len(categorias)),
	}
	for _, cat := range categorias {
		cat.PorcentajeNC = PorcentajeNC(cat.NoConformes, cat.Total)
		res.Total += cat.Total
		res.NoConformes += cat.NoConformes
		res.Categorias = append(res.Categorias, cat)
	}
	res.PorcentajeNC = PorcentajeNC(res.NoConformes, res.Total)
	return res
}
