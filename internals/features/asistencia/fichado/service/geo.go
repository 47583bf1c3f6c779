// file: internals/features/asistencia/fichado/service/geo.go
package service

import "math"

const radioTierraM = 6371000.0

// DistanciaMetros: distancia de círculo máximo (haversine) entre dos pares
// lat/lng en grados decimales, en metros.
func DistanciaMetros(lat1, lng1, lat2, lng2 float64) float64 {
	rad := math.Pi / 180
	dLat := (lat2 - lat1) * rad
	dLng := (lng2 - lng1) * rad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*rad)*math.Cos(lat2*rad)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return radioTierraM * c
}
