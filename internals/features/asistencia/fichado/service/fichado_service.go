// file: internals/features/asistencia/fichado/service/fichado_service.go
//
// Máquina de estados del fichado. Por (usuario, fecha):
//
//	SIN_REGISTRO --entrada--> INGRESADO --salida--> COMPLETADO
//
// Este paquete decide; no toca la base. El controlador ejecuta la decisión
// dentro de una transacción y la constraint única (usuario, fecha) cubre la
// carrera de dos entradas concurrentes.
package service

import (
	"math"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"cocinasegura_backend/internals/configs"
	"cocinasegura_backend/internals/features/asistencia/fichado/model"
	"cocinasegura_backend/internals/helpers/horalima"
)

/* ==========================
   Estados y motivos de rechazo
========================== */

const (
	EstadoSinRegistro = "SIN_REGISTRO"
	EstadoIngresado   = "INGRESADO"
	EstadoCompletado  = "COMPLETADO"
)

const (
	MotivoYaMarcoEntrada    = "ya_marco_entrada"
	MotivoJornadaCompleta   = "jornada_completa"
	MotivoSinEntrada        = "sin_entrada"
	MotivoYaMarcoSalida     = "ya_marco_salida"
	MotivoFueraDeRadio      = "fuera_de_radio"
	MotivoGPSNoConfigurado  = "gps_no_configurado"
	MotivoFaltanCoordenadas = "faltan_coordenadas"
)

/* ==========================
   Tipos de decisión
========================== */

type Coordenadas struct {
	Lat float64
	Lng float64
}

type SolicitudMarca struct {
	UsuarioID     uuid.UUID
	Metodo        string
	Coordenadas   *Coordenadas
	Observaciones *string
}

// Rechazo: la acción no procede; nada se escribe.
type Rechazo struct {
	Motivo     string
	HTTPStatus int
	Detalle    string
	// Estado observado al momento del rechazo (lo pide el cliente para mostrar)
	EstadoActual string
}

type ResultadoGPS struct {
	UbicacionValida bool
	DistanciaM      *float64
}

/* ==========================
   Estado observado
========================== */

func EstadoDe(existente *model.RegistroAsistenciaModel) string {
	switch {
	case existente == nil:
		return EstadoSinRegistro
	case existente.AsistenciaHoraSalida == nil:
		return EstadoIngresado
	default:
		return EstadoCompletado
	}
}

/* ==========================
   Validación GPS
========================== */

// ValidarGPS aplica la puerta de distancia cuando la validación está habilitada.
// Deshabilitada: se acepta cualquier cosa y ubicacion_valida queda en false.
// Habilitada sin punto de referencia: rechazo (jamás aceptar en silencio).
func ValidarGPS(cfg configs.GPSConfig, coords *Coordenadas) (ResultadoGPS, *Rechazo) {
	if !cfg.Habilitada {
		return ResultadoGPS{UbicacionValida: false}, nil
	}
	if !cfg.Configurada() {
		return ResultadoGPS{}, &Rechazo{
			Motivo:     MotivoGPSNoConfigurado,
			HTTPStatus: fiber.StatusServiceUnavailable,
			Detalle:    "La validación GPS está habilitada pero no hay punto de referencia configurado",
		}
	}
	if coords == nil {
		return ResultadoGPS{}, &Rechazo{
			Motivo:     MotivoFaltanCoordenadas,
			HTTPStatus: fiber.StatusBadRequest,
			Detalle:    "Se requieren latitud y longitud para marcar con validación GPS",
		}
	}
	dist := DistanciaMetros(cfg.RefLat, cfg.RefLng, coords.Lat, coords.Lng)
	if dist > cfg.MaxDistanciaM {
		return ResultadoGPS{DistanciaM: &dist}, &Rechazo{
			Motivo:     MotivoFueraDeRadio,
			HTTPStatus: fiber.StatusForbidden,
			Detalle:    "Estás fuera del radio permitido del local",
		}
	}
	return ResultadoGPS{UbicacionValida: true, DistanciaM: &dist}, nil
}

/* ==========================
   Transiciones
========================== */

// EvaluarEntrada decide SIN_REGISTRO → INGRESADO. Devuelve el registro listo
// para insertar, o el rechazo.
func EvaluarEntrada(existente *model.RegistroAsistenciaModel, req SolicitudMarca, gps configs.GPSConfig, now time.Time) (*model.RegistroAsistenciaModel, *Rechazo) {
	estado := EstadoDe(existente)
	switch estado {
	case EstadoIngresado:
		return nil, &Rechazo{
			Motivo:       MotivoYaMarcoEntrada,
			HTTPStatus:   fiber.StatusConflict,
			Detalle:      "Ya registraste tu entrada de hoy",
			EstadoActual: estado,
		}
	case EstadoCompletado:
		return nil, &Rechazo{
			Motivo:       MotivoJornadaCompleta,
			HTTPStatus:   fiber.StatusConflict,
			Detalle:      "Tu jornada de hoy ya está completa",
			EstadoActual: estado,
		}
	}

	resGPS, rechazo := ValidarGPS(gps, req.Coordenadas)
	if rechazo != nil {
		rechazo.EstadoActual = estado
		return nil, rechazo
	}

	reg := &model.RegistroAsistenciaModel{
		AsistenciaUsuarioID:       req.UsuarioID,
		AsistenciaFecha:           horalima.Fecha(now),
		AsistenciaHoraEntrada:     horalima.Hora(now),
		AsistenciaUbicacionValida: resGPS.UbicacionValida,
		AsistenciaDistanciaM:      resGPS.DistanciaM,
		AsistenciaMetodo:          req.Metodo,
		AsistenciaObservaciones:   req.Observaciones,
	}
	if req.Coordenadas != nil {
		reg.AsistenciaEntradaLat = &req.Coordenadas.Lat
		reg.AsistenciaEntradaLng = &req.Coordenadas.Lng
	}
	return reg, nil
}

// CambiosSalida: mutación única que aplica INGRESADO → COMPLETADO.
type CambiosSalida struct {
	HoraSalida      string
	SalidaLat       *float64
	SalidaLng       *float64
	HorasTrabajadas float64
	DistanciaM      *float64
	// Valor final de observaciones (entrada + salida combinadas); nil = sin cambio
	Observaciones *string
}

// EvaluarSalida decide INGRESADO → COMPLETADO para el registro de HOY.
func EvaluarSalida(existente *model.RegistroAsistenciaModel, req SolicitudMarca, gps configs.GPSConfig, now time.Time) (*CambiosSalida, *Rechazo) {
	estado := EstadoDe(existente)
	switch estado {
	case EstadoSinRegistro:
		return nil, &Rechazo{
			Motivo:       MotivoSinEntrada,
			HTTPStatus:   fiber.StatusConflict,
			Detalle:      "No registraste entrada hoy",
			EstadoActual: estado,
		}
	case EstadoCompletado:
		return nil, &Rechazo{
			Motivo:       MotivoYaMarcoSalida,
			HTTPStatus:   fiber.StatusConflict,
			Detalle:      "Ya registraste tu salida de hoy",
			EstadoActual: estado,
		}
	}

	resGPS, rechazo := ValidarGPS(gps, req.Coordenadas)
	if rechazo != nil {
		rechazo.EstadoActual = estado
		return nil, rechazo
	}

	horaSalida := horalima.Hora(now)
	horas, err := HorasEntre(existente.AsistenciaFecha, existente.AsistenciaHoraEntrada, horaSalida)
	if err != nil {
		return nil, &Rechazo{
			Motivo:       "registro_corrupto",
			HTTPStatus:   fiber.StatusInternalServerError,
			Detalle:      "El registro de entrada tiene una hora ilegible",
			EstadoActual: estado,
		}
	}

	cambios := &CambiosSalida{
		HoraSalida:      horaSalida,
		HorasTrabajadas: horas,
		DistanciaM:      resGPS.DistanciaM,
		Observaciones:   combinarObservaciones(existente.AsistenciaObservaciones, req.Observaciones),
	}
	if req.Coordenadas != nil {
		cambios.SalidaLat = &req.Coordenadas.Lat
		cambios.SalidaLng = &req.Coordenadas.Lng
	}
	return cambios, nil
}

// combinarObservaciones anexa la nota de salida a la de entrada, si la hay.
// nil = nada nuevo que escribir.
func combinarObservaciones(previas, nuevas *string) *string {
	if nuevas == nil || strings.TrimSpace(*nuevas) == "" {
		return nil
	}
	nota := strings.TrimSpace(*nuevas)
	if previas != nil && strings.TrimSpace(*previas) != "" {
		nota = strings.TrimSpace(*previas) + " | " + nota
	}
	return &nota
}

// HorasEntre: (salida − entrada) en segundos / 3600, a precisión completa.
// Ambas horas viven en el mismo día calendario (hora Lima); la salida solo se
// acepta contra el registro de hoy.
func HorasEntre(fecha, horaEntrada, horaSalida string) (float64, error) {
	loc := horalima.Location()
	entrada, err := time.ParseInLocation(horalima.LayoutFecha+" "+horalima.LayoutHora, fecha+" "+horaEntrada, loc)
	if err != nil {
		return 0, err
	}
	salida, err := time.ParseInLocation(horalima.LayoutFecha+" "+horalima.LayoutHora, fecha+" "+horaSalida, loc)
	if err != nil {
		return 0, err
	}
	return salida.Sub(entrada).Seconds() / 3600, nil
}

// RedondearHoras: redondeo a 2 decimales SOLO para display.
func RedondearHoras(h float64) float64 {
	return math.Round(h*100) / 100
}
