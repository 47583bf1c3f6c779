// file: internals/features/haccp/checklists/controller/checklist_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	camaraModel "cocinasegura_backend/internals/features/haccp/camaras/model"
	"cocinasegura_backend/internals/features/haccp/checklists/dto"
	"cocinasegura_backend/internals/features/haccp/checklists/model"
	svc "cocinasegura_backend/internals/features/haccp/checklists/service"
	userModel "cocinasegura_backend/internals/features/users/user/model"
	helper "cocinasegura_backend/internals/helpers"
	"cocinasegura_backend/internals/helpers/horalima"
)

type ChecklistController struct {
	DB *gorm.DB
}

func NewChecklistController(db *gorm.DB) *ChecklistController {
	return &ChecklistController{DB: db}
}

/* =========================================================
 * LAVADO DE FRUTAS
 * ========================================================= */

// POST /api/u/haccp/lavado-frutas
func (ctrl *ChecklistController) CreateLavadoFrutas(c *fiber.Ctx) error {
	responsable, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	var req dto.CreateLavadoFrutasRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if err := svc.ValidarAccionCorrectiva(req.AccionCorrectiva, req.Verdictos()...); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel(svc.NuevaEstampa(horalima.Now(), req.Turno), responsable)
	if err := ctrl.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo guardar el registro")
	}
	return helper.JsonCreated(c, "Registro de lavado de frutas guardado", m)
}

// GET /api/u/haccp/lavado-frutas?mes=&anio=
func (ctrl *ChecklistController) ListLavadoFrutas(c *fiber.Ctx) error {
	var items []model.LavadoFrutasModel
	return ctrl.listarPeriodo(c, &model.LavadoFrutasModel{}, &items, "lavado_frutas")
}

/* =========================================================
 * LAVADO DE MANOS
 * ========================================================= */

// POST /api/u/haccp/lavado-manos
func (ctrl *ChecklistController) CreateLavadoManos(c *fiber.Ctx) error {
	responsable, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	var req dto.CreateLavadoManosRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if err := svc.ValidarAccionCorrectiva(req.AccionCorrectiva, req.Verdictos()...); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// El empleado evaluado debe existir (referencia débil, solo lookup)
	var count int64
	if err := ctrl.DB.Model(&userModel.UsuarioModel{}).
		Where("usuario_id = ?", req.EmpleadoID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al verificar empleado")
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "El empleado evaluado no existe")
	}

	m := req.ToModel(svc.NuevaEstampa(horalima.Now(), req.Turno), responsable)
	if err := ctrl.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo guardar el registro")
	}
	return helper.JsonCreated(c, "Registro de lavado de manos guardado", m)
}

// GET /api/u/haccp/lavado-manos?mes=&anio=
func (ctrl *ChecklistController) ListLavadoManos(c *fiber.Ctx) error {
	var items []model.LavadoManosModel
	return ctrl.listarPeriodo(c, &model.LavadoManosModel{}, &items, "lavado_manos")
}

/* =========================================================
 * CONTROL DE COCCIÓN
 * ========================================================= */

// POST /api/u/haccp/control-coccion
func (ctrl *ChecklistController) CreateControlCoccion(c *fiber.Ctx) error {
	responsable, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	var req dto.CreateControlCoccionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if err := svc.ValidarAccionCorrectiva(req.AccionCorrectiva, req.Verdictos()...); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel(svc.NuevaEstampa(horalima.Now(), req.Turno), responsable)
	if err := ctrl.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo guardar el registro")
	}
	return helper.JsonCreated(c, "Registro de control de cocción guardado", m)
}

// GET /api/u/haccp/control-coccion?mes=&anio=
func (ctrl *ChecklistController) ListControlCoccion(c *fiber.Ctx) error {
	var items []model.ControlCoccionModel
	return ctrl.listarPeriodo(c, &model.ControlCoccionModel{}, &items, "control_coccion")
}

/* =========================================================
 * TEMPERATURA DE CÁMARAS
 * ========================================================= */

// POST /api/u/haccp/temperatura-camara
// El verdicto se deriva contra [temp_min, temp_max] de la cámara referida.
func (ctrl *ChecklistController) CreateTemperaturaCamara(c *fiber.Ctx) error {
	responsable, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	var req dto.CreateTemperaturaCamaraRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var camara camaraModel.CamaraModel
	if err := ctrl.DB.First(&camara, "camara_id = ? AND camara_activa = TRUE", req.CamaraID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusBadRequest, "La cámara no existe o está inactiva")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al buscar cámara")
	}

	verdicto := svc.VerdictoPorRango(*req.Temperatura, camara.CamaraTempMin, camara.CamaraTempMax)
	if err := svc.ValidarAccionCorrectiva(req.AccionCorrectiva, verdicto); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel(svc.NuevaEstampa(horalima.Now(), req.Turno), responsable, camara.CamaraTempMin, camara.CamaraTempMax)
	if err := ctrl.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo guardar el registro")
	}
	return helper.JsonCreated(c, "Registro de temperatura guardado", m)
}

// GET /api/u/haccp/temperatura-camara?mes=&anio=
func (ctrl *ChecklistController) ListTemperaturaCamara(c *fiber.Ctx) error {
	var items []model.TemperaturaCamaraModel
	return ctrl.listarPeriodo(c, &model.TemperaturaCamaraModel{}, &items, "temperatura_camara")
}

/* =========================================================
 * RECEPCIÓN DE MERCADERÍA
 * ========================================================= */

// POST /api/u/haccp/recepcion
func (ctrl *ChecklistController) CreateRecepcion(c *fiber.Ctx) error {
	responsable, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	var req dto.CreateRecepcionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if err := svc.ValidarAccionCorrectiva(req.AccionCorrectiva, req.Verdictos()...); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel(svc.NuevaEstampa(horalima.Now(), req.Turno), responsable)
	if err := ctrl.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo guardar el registro")
	}
	return helper.JsonCreated(c, "Registro de recepción guardado", m)
}

// GET /api/u/haccp/recepcion?mes=&anio=
func (ctrl *ChecklistController) ListRecepcion(c *fiber.Ctx) error {
	var items []model.RecepcionMercaderiaModel
	return ctrl.listarPeriodo(c, &model.RecepcionMercaderiaModel{}, &items, "recepcion")
}

/* =========================================================
 * Helpers
 * ========================================================= */

// listarPeriodo corre el listado estándar de un checklist filtrado por
// ?mes=&anio= (prefijo de columna según la tabla) y escribe la respuesta.
// Ruta única de retorno: un query inválido responde 400/422 y corta acá,
// jamás sigue hacia la base.
func (ctrl *ChecklistController) listarPeriodo(c *fiber.Ctx, modelPtr any, items any, prefix string) error {
	var filter dto.PeriodoRequest
	if err := c.QueryParser(&filter); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query inválido")
	}
	v := validator.New()
	if err := v.Struct(filter); err != nil {
		return helper.JsonValidationError(c, err)
	}

	q := ctrl.DB.Model(modelPtr)
	if filter.Mes != nil {
		q = q.Where(prefix+"_mes = ?", *filter.Mes)
	}
	if filter.Anio != nil {
		q = q.Where(prefix+"_anio = ?", *filter.Anio)
	}
	if err := q.Order(prefix + "_fecha DESC, " + prefix + "_hora DESC").Find(items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al listar registros")
	}
	return helper.JsonOK(c, "", items)
}
