// file: internals/helpers/horalima/horalima.go
//
// Normalización de tiempo: TODA fecha/hora del sistema se calcula en la zona
// civil "America/Lima" (UTC-5), sin importar la zona del host. Las comparaciones
// de "mismo día" se hacen SIEMPRE después de normalizar ambos instantes, nunca
// contra medianoche UTC.
package horalima

import (
	"log"
	"sync"
	"time"
)

const (
	ZonaIANA = "America/Lima"

	LayoutFecha = "2006-01-02"
	LayoutHora  = "15:04:05"
)

var (
	locOnce sync.Once
	loc     *time.Location
)

// Location devuelve la zona canónica. Si la base IANA del host no la tiene,
// cae a un offset fijo UTC-5 (Lima no usa horario de verano).
func Location() *time.Location {
	locOnce.Do(func() {
		l, err := time.LoadLocation(ZonaIANA)
		if err != nil {
			log.Printf("[WARN] no se pudo cargar %s (%v); usando offset fijo -05", ZonaIANA, err)
			l = time.FixedZone("-05", -5*60*60)
		}
		loc = l
	})
	return loc
}

// Now es "ahora" ya normalizado.
func Now() time.Time {
	return time.Now().In(Location())
}

// En normaliza cualquier instante a la zona canónica.
func En(t time.Time) time.Time {
	return t.In(Location())
}

// Fecha produce la clave de día calendario ("2006-01-02").
func Fecha(t time.Time) string {
	return En(t).Format(LayoutFecha)
}

// Hora produce la hora civil ("15:04:05").
func Hora(t time.Time) string {
	return En(t).Format(LayoutHora)
}

// MesAnio devuelve (mes 1..12, año) del instante normalizado.
func MesAnio(t time.Time) (int, int) {
	n := En(t)
	return int(n.Month()), n.Year()
}

// MismoDia compara día calendario tras normalizar AMBOS instantes.
func MismoDia(a, b time.Time) bool {
	na, nb := En(a), En(b)
	return na.Year() == nb.Year() && na.YearDay() == nb.YearDay()
}

// =======================
// Nombres en español
// =======================

var nombresDia = [...]string{
	time.Sunday:    "DOMINGO",
	time.Monday:    "LUNES",
	time.Tuesday:   "MARTES",
	time.Wednesday: "MIÉRCOLES",
	time.Thursday:  "JUEVES",
	time.Friday:    "VIERNES",
	time.Saturday:  "SÁBADO",
}

var nombresMes = [...]string{
	time.January:   "ENERO",
	time.February:  "FEBRERO",
	time.March:     "MARZO",
	time.April:     "ABRIL",
	time.May:       "MAYO",
	time.June:      "JUNIO",
	time.July:      "JULIO",
	time.August:    "AGOSTO",
	time.September: "SEPTIEMBRE",
	time.October:   "OCTUBRE",
	time.November:  "NOVIEMBRE",
	time.December:  "DICIEMBRE",
}

func DiaSemana(t time.Time) string {
	return nombresDia[En(t).Weekday()]
}

func NombreMes(t time.Time) string {
	return nombresMes[En(t).Month()]
}

// =======================
// Turnos
// =======================

const (
	TurnoManana = "MAÑANA"
	TurnoTarde  = "TARDE"
	TurnoNoche  = "NOCHE"
)

// TurnoFor deriva el turno cuando el cliente no lo indica:
// 06:00–13:59 MAÑANA, 14:00–21:59 TARDE, resto NOCHE.
func TurnoFor(t time.Time) string {
	h := En(t).Hour()
	switch {
	case h >= 6 && h < 14:
		return TurnoManana
	case h >= 14 && h < 22:
		return TurnoTarde
	default:
		return TurnoNoche
	}
}
