// file: internals/features/asistencia/fichado/service/fichado_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cocinasegura_backend/internals/configs"
	"cocinasegura_backend/internals/features/asistencia/fichado/model"
	"cocinasegura_backend/internals/helpers/horalima"
)

func gpsDeshabilitado() configs.GPSConfig {
	return configs.GPSConfig{Habilitada: false}
}

func gpsLocal() configs.GPSConfig {
	// Plaza de Armas de Lima como referencia de prueba
	return configs.GPSConfig{
		Habilitada:    true,
		RefLat:        -12.0464,
		RefLng:        -77.0428,
		MaxDistanciaM: 100,
	}
}

func enLima(fecha, hora string) time.Time {
	t, err := time.ParseInLocation(horalima.LayoutFecha+" "+horalima.LayoutHora, fecha+" "+hora, horalima.Location())
	if err != nil {
		panic(err)
	}
	return t
}

func registroIngresado(hora string) *model.RegistroAsistenciaModel {
	return &model.RegistroAsistenciaModel{
		AsistenciaUsuarioID:   uuid.New(),
		AsistenciaFecha:       "2026-08-28",
		AsistenciaHoraEntrada: hora,
	}
}

func registroCompletado() *model.RegistroAsistenciaModel {
	salida := "17:00:00"
	reg := registroIngresado("08:00:00")
	reg.AsistenciaHoraSalida = &salida
	return reg
}

/* ==========================
   Estado observado
========================== */

func TestEstadoDe(t *testing.T) {
	assert.Equal(t, EstadoSinRegistro, EstadoDe(nil))
	assert.Equal(t, EstadoIngresado, EstadoDe(registroIngresado("08:00:00")))
	assert.Equal(t, EstadoCompletado, EstadoDe(registroCompletado()))
}

/* ==========================
   Entrada
========================== */

func TestEvaluarEntrada_SinRegistroCrea(t *testing.T) {
	now := enLima("2026-08-28", "07:57:57")
	req := SolicitudMarca{UsuarioID: uuid.New(), Metodo: model.MetodoManual}

	reg, rechazo := EvaluarEntrada(nil, req, gpsDeshabilitado(), now)
	require.Nil(t, rechazo)
	require.NotNil(t, reg)
	assert.Equal(t, "2026-08-28", reg.AsistenciaFecha)
	assert.Equal(t, "07:57:57", reg.AsistenciaHoraEntrada)
	assert.Equal(t, req.UsuarioID, reg.AsistenciaUsuarioID)
	assert.False(t, reg.AsistenciaUbicacionValida)
	assert.Nil(t, reg.AsistenciaDistanciaM)
}

func TestEvaluarEntrada_YaIngresadoRechaza(t *testing.T) {
	now := enLima("2026-08-28", "09:00:00")
	req := SolicitudMarca{UsuarioID: uuid.New(), Metodo: model.MetodoManual}

	reg, rechazo := EvaluarEntrada(registroIngresado("08:00:00"), req, gpsDeshabilitado(), now)
	assert.Nil(t, reg)
	require.NotNil(t, rechazo)
	assert.Equal(t, MotivoYaMarcoEntrada, rechazo.Motivo)
	assert.Equal(t, 409, rechazo.HTTPStatus)
	assert.Equal(t, EstadoIngresado, rechazo.EstadoActual)
}

func TestEvaluarEntrada_JornadaCompletaRechaza(t *testing.T) {
	now := enLima("2026-08-28", "18:00:00")
	req := SolicitudMarca{UsuarioID: uuid.New(), Metodo: model.MetodoManual}

	reg, rechazo := EvaluarEntrada(registroCompletado(), req, gpsDeshabilitado(), now)
	assert.Nil(t, reg)
	require.NotNil(t, rechazo)
	assert.Equal(t, MotivoJornadaCompleta, rechazo.Motivo)
	assert.Equal(t, EstadoCompletado, rechazo.EstadoActual)
}

func TestEvaluarEntrada_GPSDentroDelRadio(t *testing.T) {
	now := enLima("2026-08-28", "08:00:00")
	cfg := gpsLocal()
	req := SolicitudMarca{
		UsuarioID:   uuid.New(),
		Metodo:      model.MetodoGPS,
		Coordenadas: &Coordenadas{Lat: cfg.RefLat, Lng: cfg.RefLng},
	}

	reg, rechazo := EvaluarEntrada(nil, req, cfg, now)
	require.Nil(t, rechazo)
	require.NotNil(t, reg)
	assert.True(t, reg.AsistenciaUbicacionValida)
	require.NotNil(t, reg.AsistenciaDistanciaM)
	assert.InDelta(t, 0, *reg.AsistenciaDistanciaM, 0.5)
	require.NotNil(t, reg.AsistenciaEntradaLat)
	assert.Equal(t, cfg.RefLat, *reg.AsistenciaEntradaLat)
}

func TestEvaluarEntrada_GPSFueraDelRadio(t *testing.T) {
	now := enLima("2026-08-28", "08:00:00")
	cfg := gpsLocal()
	// ~1.1 km al norte de la referencia
	req := SolicitudMarca{
		UsuarioID:   uuid.New(),
		Metodo:      model.MetodoGPS,
		Coordenadas: &Coordenadas{Lat: cfg.RefLat + 0.01, Lng: cfg.RefLng},
	}

	reg, rechazo := EvaluarEntrada(nil, req, cfg, now)
	assert.Nil(t, reg)
	require.NotNil(t, rechazo)
	assert.Equal(t, MotivoFueraDeRadio, rechazo.Motivo)
	assert.Equal(t, 403, rechazo.HTTPStatus)
}

/* ==========================
   Salida
========================== */

func TestEvaluarSalida_Completa(t *testing.T) {
	existente := registroIngresado("07:57:57")
	now := enLima("2026-08-28", "16:02:10")
	req := SolicitudMarca{UsuarioID: existente.AsistenciaUsuarioID, Metodo: model.MetodoManual}

	cambios, rechazo := EvaluarSalida(existente, req, gpsDeshabilitado(), now)
	require.Nil(t, rechazo)
	require.NotNil(t, cambios)
	assert.Equal(t, "16:02:10", cambios.HoraSalida)
	// 8h 4m 13s = 8.0702777...
	assert.InDelta(t, 8.0703, cambios.HorasTrabajadas, 0.0001)
	assert.Equal(t, 8.07, RedondearHoras(cambios.HorasTrabajadas))
}

func TestEvaluarSalida_ConservaObservaciones(t *testing.T) {
	existente := registroIngresado("08:00:00")
	notaEntrada := "llegué con el uniforme mojado"
	existente.AsistenciaObservaciones = &notaEntrada
	notaSalida := "quedó la cámara 2 en descongelado"
	req := SolicitudMarca{
		UsuarioID:     existente.AsistenciaUsuarioID,
		Metodo:        model.MetodoManual,
		Observaciones: &notaSalida,
	}

	cambios, rechazo := EvaluarSalida(existente, req, gpsDeshabilitado(), enLima("2026-08-28", "16:30:00"))
	require.Nil(t, rechazo)
	require.NotNil(t, cambios.Observaciones)
	assert.Equal(t, notaEntrada+" | "+notaSalida, *cambios.Observaciones)
}

func TestCombinarObservaciones(t *testing.T) {
	previa := "nota de entrada"
	vacia := "   "
	nueva := "nota de salida"

	assert.Nil(t, combinarObservaciones(nil, nil))
	assert.Nil(t, combinarObservaciones(&previa, nil))
	assert.Nil(t, combinarObservaciones(&previa, &vacia))

	soloSalida := combinarObservaciones(nil, &nueva)
	require.NotNil(t, soloSalida)
	assert.Equal(t, "nota de salida", *soloSalida)

	ambas := combinarObservaciones(&previa, &nueva)
	require.NotNil(t, ambas)
	assert.Equal(t, "nota de entrada | nota de salida", *ambas)
}

func TestEvaluarSalida_SinEntradaRechaza(t *testing.T) {
	now := enLima("2026-08-28", "16:00:00")
	req := SolicitudMarca{UsuarioID: uuid.New(), Metodo: model.MetodoManual}

	cambios, rechazo := EvaluarSalida(nil, req, gpsDeshabilitado(), now)
	assert.Nil(t, cambios)
	require.NotNil(t, rechazo)
	assert.Equal(t, MotivoSinEntrada, rechazo.Motivo)
	assert.Equal(t, EstadoSinRegistro, rechazo.EstadoActual)
}

func TestEvaluarSalida_YaCompletadoRechaza(t *testing.T) {
	now := enLima("2026-08-28", "18:00:00")
	req := SolicitudMarca{UsuarioID: uuid.New(), Metodo: model.MetodoManual}

	cambios, rechazo := EvaluarSalida(registroCompletado(), req, gpsDeshabilitado(), now)
	assert.Nil(t, cambios)
	require.NotNil(t, rechazo)
	assert.Equal(t, MotivoYaMarcoSalida, rechazo.Motivo)
}

/* ==========================
   Validación GPS
========================== */

func TestValidarGPS_DeshabilitadaAceptaSinCoordenadas(t *testing.T) {
	res, rechazo := ValidarGPS(gpsDeshabilitado(), nil)
	assert.Nil(t, rechazo)
	assert.False(t, res.UbicacionValida)
	assert.Nil(t, res.DistanciaM)
}

func TestValidarGPS_HabilitadaSinReferenciaRechaza(t *testing.T) {
	cfg := configs.GPSConfig{Habilitada: true, MaxDistanciaM: 100}
	_, rechazo := ValidarGPS(cfg, &Coordenadas{Lat: -12.0, Lng: -77.0})
	require.NotNil(t, rechazo)
	assert.Equal(t, MotivoGPSNoConfigurado, rechazo.Motivo)
	assert.Equal(t, 503, rechazo.HTTPStatus)
}

func TestValidarGPS_HabilitadaSinCoordenadasRechaza(t *testing.T) {
	_, rechazo := ValidarGPS(gpsLocal(), nil)
	require.NotNil(t, rechazo)
	assert.Equal(t, MotivoFaltanCoordenadas, rechazo.Motivo)
	assert.Equal(t, 400, rechazo.HTTPStatus)
}

/* ==========================
   Horas y distancia
========================== */

func TestHorasEntre(t *testing.T) {
	horas, err := HorasEntre("2026-08-28", "08:00:00", "16:30:00")
	require.NoError(t, err)
	assert.Equal(t, 8.5, horas)

	horas, err = HorasEntre("2026-08-28", "07:57:57", "16:02:10")
	require.NoError(t, err)
	assert.InDelta(t, 8.0703, horas, 0.0001)

	_, err = HorasEntre("2026-08-28", "no-es-hora", "16:00:00")
	assert.Error(t, err)
}

func TestRedondearHoras(t *testing.T) {
	assert.Equal(t, 8.07, RedondearHoras(8.070277))
	assert.Equal(t, 8.5, RedondearHoras(8.5))
	assert.Equal(t, 0.0, RedondearHoras(0))
}

func TestDistanciaMetros(t *testing.T) {
	// misma coordenada
	assert.Equal(t, 0.0, DistanciaMetros(-12.0464, -77.0428, -12.0464, -77.0428))

	// simetría
	d1 := DistanciaMetros(-12.0464, -77.0428, -12.05, -77.05)
	d2 := DistanciaMetros(-12.05, -77.05, -12.0464, -77.0428)
	assert.InDelta(t, d1, d2, 1e-9)

	// 0.01° de latitud ≈ 1.11 km
	d := DistanciaMetros(-12.0464, -77.0428, -12.0364, -77.0428)
	assert.InDelta(t, 1112, d, 5)
}
