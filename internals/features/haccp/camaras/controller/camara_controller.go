// file: internals/features/haccp/camaras/controller/camara_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"cocinasegura_backend/internals/features/haccp/camaras/dto"
	"cocinasegura_backend/internals/features/haccp/camaras/model"
	helper "cocinasegura_backend/internals/helpers"
)

type CamaraController struct {
	DB *gorm.DB
}

func NewCamaraController(db *gorm.DB) *CamaraController {
	return &CamaraController{DB: db}
}

/* ===================== CREATE ===================== */
// POST /api/a/camaras
func (ctrl *CamaraController) Create(c *fiber.Ctx) error {
	var req dto.CreateCamaraRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if *req.CamaraTempMin >= *req.CamaraTempMax {
		return helper.JsonError(c, fiber.StatusBadRequest, "temp_min debe ser menor que temp_max")
	}

	m := req.ToModel()
	if err := ctrl.DB.Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Ya existe una cámara con ese nombre")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo crear la cámara")
	}
	return helper.JsonCreated(c, "Cámara creada", m)
}

/* ===================== LIST ===================== */
// GET /api/a/camaras  (también consumida por los clientes al llenar el checklist)
func (ctrl *CamaraController) List(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.CamaraModel{})
	if c.Query("activa") != "" {
		q = q.Where("camara_activa = ?", c.QueryBool("activa"))
	}
	var items []model.CamaraModel
	if err := q.Order("camara_nombre ASC").Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al listar cámaras")
	}
	return helper.JsonOK(c, "", items)
}

/* ===================== DETAIL ===================== */
// GET /api/a/camaras/:id
func (ctrl *CamaraController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	var m model.CamaraModel
	if err := ctrl.DB.First(&m, "camara_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Cámara no encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al buscar cámara")
	}
	return helper.JsonOK(c, "", m)
}

/* ===================== UPDATE ===================== */
// PATCH /api/a/camaras/:id
func (ctrl *CamaraController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	var req dto.UpdateCamaraRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	updates := map[string]any{}
	if req.CamaraNombre != nil {
		updates["camara_nombre"] = *req.CamaraNombre
	}
	if req.CamaraTipo != nil {
		updates["camara_tipo"] = *req.CamaraTipo
	}
	if req.CamaraTempMin != nil {
		updates["camara_temp_min"] = *req.CamaraTempMin
	}
	if req.CamaraTempMax != nil {
		updates["camara_temp_max"] = *req.CamaraTempMax
	}
	if req.CamaraUbicacion != nil {
		updates["camara_ubicacion"] = *req.CamaraUbicacion
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nada que actualizar")
	}

	// min < max también tras updates parciales
	var actual model.CamaraModel
	if err := ctrl.DB.First(&actual, "camara_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Cámara no encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al buscar cámara")
	}
	min, max := actual.CamaraTempMin, actual.CamaraTempMax
	if req.CamaraTempMin != nil {
		min = *req.CamaraTempMin
	}
	if req.CamaraTempMax != nil {
		max = *req.CamaraTempMax
	}
	if min >= max {
		return helper.JsonError(c, fiber.StatusBadRequest, "temp_min debe ser menor que temp_max")
	}

	if err := ctrl.DB.Model(&model.CamaraModel{}).
		Where("camara_id = ?", id).
		Updates(updates).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Ya existe una cámara con ese nombre")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al actualizar cámara")
	}

	var m model.CamaraModel
	if err := ctrl.DB.First(&m, "camara_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al recargar cámara")
	}
	return helper.JsonUpdated(c, "Cámara actualizada", m)
}

/* ===================== BAJA ===================== */
// PATCH /api/a/camaras/:id/desactivar
func (ctrl *CamaraController) Deactivate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	res := ctrl.DB.Model(&model.CamaraModel{}).
		Where("camara_id = ?", id).
		Update("camara_activa", false)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al desactivar cámara")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Cámara no encontrada")
	}
	return helper.JsonUpdated(c, "Cámara desactivada", fiber.Map{"camara_id": id})
}
