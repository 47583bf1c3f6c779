// file: internals/features/asistencia/fichado/controller/fichado_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"cocinasegura_backend/internals/configs"
	"cocinasegura_backend/internals/features/asistencia/fichado/dto"
	"cocinasegura_backend/internals/features/asistencia/fichado/model"
	svc "cocinasegura_backend/internals/features/asistencia/fichado/service"
	helper "cocinasegura_backend/internals/helpers"
	"cocinasegura_backend/internals/helpers/horalima"
)

type FichadoController struct {
	DB  *gorm.DB
	Cfg *configs.AppConfig
}

func NewFichadoController(db *gorm.DB, cfg *configs.AppConfig) *FichadoController {
	return &FichadoController{DB: db, Cfg: cfg}
}

// rechazoJSON: respuesta estructurada de acción rechazada (nunca un 500 genérico)
func rechazoJSON(c *fiber.Ctx, r *svc.Rechazo) error {
	return c.Status(r.HTTPStatus).JSON(fiber.Map{
		"success": false,
		"message": r.Detalle,
		"motivo":  r.Motivo,
		"estado":  r.EstadoActual,
	})
}

/* ===================== ENTRADA ===================== */
// POST /api/u/fichado/entrada
func (ctrl *FichadoController) Entrada(c *fiber.Ctx) error {
	usuarioID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.MarcaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	now := horalima.Now()

	// ===== TRANSACTION START =====
	tx := ctrl.DB.Begin()
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, tx.Error.Error())
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	existente, err := buscarRegistroHoy(tx, usuarioID.String(), horalima.Fecha(now), false)
	if err != nil {
		tx.Rollback()
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al leer asistencia")
	}

	reg, rechazo := svc.EvaluarEntrada(existente, svc.SolicitudMarca{
		UsuarioID:     usuarioID,
		Metodo:        req.Metodo,
		Coordenadas:   req.Coordenadas(),
		Observaciones: req.Observaciones,
	}, ctrl.Cfg.GPS, now)
	if rechazo != nil {
		tx.Rollback()
		return rechazoJSON(c, rechazo)
	}

	if err := tx.Create(reg).Error; err != nil {
		tx.Rollback()
		if helper.IsUniqueViolation(err) {
			// Carrera de dos entradas simultáneas: la constraint decide, el
			// segundo escritor recibe el mismo conflicto que reporta la FSM.
			return rechazoJSON(c, &svc.Rechazo{
				Motivo:       svc.MotivoYaMarcoEntrada,
				HTTPStatus:   fiber.StatusConflict,
				Detalle:      "Ya registraste tu entrada de hoy",
				EstadoActual: svc.EstadoIngresado,
			})
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo registrar la entrada")
	}
	if err := tx.Commit().Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	// ===== TRANSACTION END =====

	return helper.JsonCreated(c, "Entrada registrada", dto.EntradaResponse{
		Fecha:           reg.AsistenciaFecha,
		HoraEntrada:     reg.AsistenciaHoraEntrada,
		UbicacionValida: reg.AsistenciaUbicacionValida,
		DistanciaM:      reg.AsistenciaDistanciaM,
		Estado:          svc.EstadoIngresado,
	})
}

/* ===================== SALIDA ===================== */
// POST /api/u/fichado/salida
func (ctrl *FichadoController) Salida(c *fiber.Ctx) error {
	usuarioID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.MarcaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	now := horalima.Now()

	// ===== TRANSACTION START =====
	tx := ctrl.DB.Begin()
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, tx.Error.Error())
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	// FOR UPDATE: dos salidas concurrentes se serializan acá
	existente, err := buscarRegistroHoy(tx, usuarioID.String(), horalima.Fecha(now), true)
	if err != nil {
		tx.Rollback()
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al leer asistencia")
	}

	cambios, rechazo := svc.EvaluarSalida(existente, svc.SolicitudMarca{
		UsuarioID:     usuarioID,
		Metodo:        req.Metodo,
		Coordenadas:   req.Coordenadas(),
		Observaciones: req.Observaciones,
	}, ctrl.Cfg.GPS, now)
	if rechazo != nil {
		tx.Rollback()
		return rechazoJSON(c, rechazo)
	}

	updates := map[string]any{
		"asistencia_hora_salida":      cambios.HoraSalida,
		"asistencia_horas_trabajadas": cambios.HorasTrabajadas,
	}
	if cambios.SalidaLat != nil {
		updates["asistencia_salida_lat"] = *cambios.SalidaLat
		updates["asistencia_salida_lng"] = *cambios.SalidaLng
	}
	if cambios.Observaciones != nil {
		updates["asistencia_observaciones"] = *cambios.Observaciones
	}
	res := tx.Model(&model.RegistroAsistenciaModel{}).
		Where("asistencia_id = ? AND asistencia_hora_salida IS NULL", existente.AsistenciaID).
		Updates(updates)
	if res.Error != nil {
		tx.Rollback()
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo registrar la salida")
	}
	if res.RowsAffected == 0 {
		// Otro request ganó la carrera dentro del lock-gap: mismo rechazo de la FSM
		tx.Rollback()
		return rechazoJSON(c, &svc.Rechazo{
			Motivo:       svc.MotivoYaMarcoSalida,
			HTTPStatus:   fiber.StatusConflict,
			Detalle:      "Ya registraste tu salida de hoy",
			EstadoActual: svc.EstadoCompletado,
		})
	}
	if err := tx.Commit().Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	// ===== TRANSACTION END =====

	return helper.JsonOK(c, "Salida registrada", dto.SalidaResponse{
		Fecha:           existente.AsistenciaFecha,
		HoraSalida:      cambios.HoraSalida,
		HorasTrabajadas: svc.RedondearHoras(cambios.HorasTrabajadas),
		DistanciaM:      cambios.DistanciaM,
		Estado:          svc.EstadoCompletado,
	})
}

/* ===================== HOY ===================== */
// GET /api/u/fichado/hoy
func (ctrl *FichadoController) Hoy(c *fiber.Ctx) error {
	usuarioID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	hoy := horalima.Fecha(horalima.Now())
	existente, err := buscarRegistroHoy(ctrl.DB, usuarioID.String(), hoy, false)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al leer asistencia")
	}
	if existente == nil {
		return helper.JsonOK(c, "", fiber.Map{
			"fecha":  hoy,
			"estado": svc.EstadoSinRegistro,
		})
	}
	return helper.JsonOK(c, "", dto.FromModel(*existente))
}

/* ===================== HISTORIAL ===================== */
// GET /api/u/fichado/historial?desde=&hasta=&page=&per_page=
func (ctrl *FichadoController) Historial(c *fiber.Ctx) error {
	usuarioID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	var filter dto.HistorialRequest
	if err := c.QueryParser(&filter); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query inválido")
	}
	v := validator.New()
	if err := v.Struct(filter); err != nil {
		return helper.JsonValidationError(c, err)
	}

	q := ctrl.DB.Model(&model.RegistroAsistenciaModel{}).
		Where("asistencia_usuario_id = ?", usuarioID)
	q = aplicarRango(q, filter.Desde, filter.Hasta)

	return listarAsistencia(c, q)
}

/* ===================== ADMIN LIST ===================== */
// GET /api/a/asistencia?usuario_id=&desde=&hasta=
func (ctrl *FichadoController) AdminList(c *fiber.Ctx) error {
	var filter dto.AdminAsistenciaRequest
	if err := c.QueryParser(&filter); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query inválido")
	}
	v := validator.New()
	if err := v.Struct(filter); err != nil {
		return helper.JsonValidationError(c, err)
	}

	q := ctrl.DB.Model(&model.RegistroAsistenciaModel{})
	if filter.UsuarioID != nil {
		q = q.Where("asistencia_usuario_id = ?", *filter.UsuarioID)
	}
	q = aplicarRango(q, filter.Desde, filter.Hasta)

	return listarAsistencia(c, q)
}

/* ===================== Helpers ===================== */

func buscarRegistroHoy(db *gorm.DB, usuarioID, fecha string, forUpdate bool) (*model.RegistroAsistenciaModel, error) {
	q := db.Model(&model.RegistroAsistenciaModel{})
	if forUpdate {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var reg model.RegistroAsistenciaModel
	err := q.Where("asistencia_usuario_id = ? AND asistencia_fecha = ?", usuarioID, fecha).
		Take(&reg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

func aplicarRango(q *gorm.DB, desde, hasta *string) *gorm.DB {
	if desde != nil && *desde != "" {
		q = q.Where("asistencia_fecha >= ?", *desde)
	}
	if hasta != nil && *hasta != "" {
		q = q.Where("asistencia_fecha <= ?", *hasta)
	}
	return q
}

func listarAsistencia(c *fiber.Ctx, q *gorm.DB) error {
	p := helper.ParseFiber(c, "fecha", "desc", helper.DefaultOpts)
	orderBy, err := p.SafeOrderClause(map[string]string{
		"fecha":      "asistencia_fecha",
		"created_at": "asistencia_created_at",
	}, "fecha")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al contar registros")
	}
	var items []model.RegistroAsistenciaModel
	if err := q.Order(orderBy).Limit(p.Limit()).Offset(p.Offset()).Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al listar registros")
	}
	return helper.JsonList(c, "", dto.FromModels(items), helper.BuildMeta(total, p))
}
