// file: internals/features/haccp/checklists/service/conformidad_service.go
//
// Reglas de conformidad compartidas por los cinco checklists HACCP.
// Regla de oro (uniforme, del lado del servidor): cualquier dimensión NC
// exige texto de acción correctiva antes de escribir nada.
package service

import (
	"errors"
	"strings"
	"time"

	"cocinasegura_backend/internals/helpers/horalima"
)

const (
	Conforme   = "C"
	NoConforme = "NC"
)

var ErrAccionCorrectivaRequerida = errors.New("se requiere acción correctiva cuando hay alguna dimensión NO CONFORME")

// AlgunaNC indica si al menos una dimensión evaluada falló.
func AlgunaNC(verdictos ...string) bool {
	for _, v := range verdictos {
		if v == NoConforme {
			return true
		}
	}
	return false
}

// ValidarAccionCorrectiva aplica la regla NC ⇒ acción correctiva obligatoria.
func ValidarAccionCorrectiva(accion *string, verdictos ...string) error {
	if !AlgunaNC(verdictos...) {
		return nil
	}
	if accion == nil || strings.TrimSpace(*accion) == "" {
		return ErrAccionCorrectivaRequerida
	}
	return nil
}

// VerdictoPorRango deriva la conformidad de una medición contra [min, max].
func VerdictoPorRango(valor, min, max float64) string {
	if valor >= min && valor <= max {
		return Conforme
	}
	return NoConforme
}

/* ==========================
   Estampa temporal
========================== */

// Estampa: claves temporales canónicas que llevan todos los registros HACCP.
type Estampa struct {
	Fecha string
	Hora  string
	Dia   string
	Mes   int
	Anio  int
	Turno string
}

// NuevaEstampa arma la estampa en hora Lima. El turno explícito del cliente
// gana; ausente, se deriva de la hora del día.
func NuevaEstampa(now time.Time, turno *string) Estampa {
	mes, anio := horalima.MesAnio(now)
	t := horalima.TurnoFor(now)
	if turno != nil && strings.TrimSpace(*turno) != "" {
		t = strings.ToUpper(strings.TrimSpace(*turno))
	}
	return Estampa{
		Fecha: horalima.Fecha(now),
		Hora:  horalima.Hora(now),
		Dia:   horalima.DiaSemana(now),
		Mes:   mes,
		Anio:  anio,
		Turno: t,
	}
}
