// file: internals/features/users/user/controller/usuario_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"cocinasegura_backend/internals/features/users/user/dto"
	"cocinasegura_backend/internals/features/users/user/model"
	helper "cocinasegura_backend/internals/helpers"
)

type UsuarioController struct {
	DB *gorm.DB
}

func NewUsuarioController(db *gorm.DB) *UsuarioController {
	return &UsuarioController{DB: db}
}

/* ===================== CREATE ===================== */
// POST /api/a/usuarios
func (ctrl *UsuarioController) Create(c *fiber.Ctx) error {
	var req dto.CreateUsuarioRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo procesar la contraseña")
	}

	m := req.ToModel(string(hash))
	if err := ctrl.DB.Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "El login o email ya está registrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo crear el usuario")
	}
	return helper.JsonCreated(c, "Usuario creado", dto.FromModel(m))
}

/* ===================== LIST ===================== */
// GET /api/a/usuarios?rol=&activo=&search=&page=&per_page=
func (ctrl *UsuarioController) List(c *fiber.Ctx) error {
	var filter dto.FilterUsuarioRequest
	if err := c.QueryParser(&filter); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query inválido")
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)
	orderBy, err := p.SafeOrderClause(map[string]string{
		"created_at": "usuario_created_at",
		"nombre":     "usuario_nombre",
		"rol":        "usuario_rol",
	}, "created_at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	q := ctrl.DB.Model(&model.UsuarioModel{})
	if filter.Rol != nil {
		q = q.Where("usuario_rol = ?", *filter.Rol)
	}
	if filter.Activo != nil {
		q = q.Where("usuario_activo = ?", *filter.Activo)
	}
	if filter.Search != nil && *filter.Search != "" {
		like := "%" + *filter.Search + "%"
		q = q.Where("usuario_nombre ILIKE ? OR usuario_login ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al contar usuarios")
	}

	var items []model.UsuarioModel
	if err := q.Order(orderBy).Limit(p.Limit()).Offset(p.Offset()).Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al listar usuarios")
	}

	return helper.JsonList(c, "", dto.FromModels(items), helper.BuildMeta(total, p))
}

/* ===================== DETAIL ===================== */
// GET /api/a/usuarios/:id
func (ctrl *UsuarioController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	var u model.UsuarioModel
	if err := ctrl.DB.First(&u, "usuario_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Usuario no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al buscar usuario")
	}
	return helper.JsonOK(c, "", dto.FromModel(u))
}

/* ===================== UPDATE ===================== */
// PATCH /api/a/usuarios/:id
func (ctrl *UsuarioController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.UpdateUsuarioRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	updates := map[string]any{}
	if req.UsuarioNombre != nil {
		updates["usuario_nombre"] = *req.UsuarioNombre
	}
	if req.UsuarioEmail != nil {
		updates["usuario_email"] = *req.UsuarioEmail
	}
	if req.UsuarioRol != nil {
		updates["usuario_rol"] = *req.UsuarioRol
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nada que actualizar")
	}

	res := ctrl.DB.Model(&model.UsuarioModel{}).
		Where("usuario_id = ?", id).
		Updates(updates)
	if res.Error != nil {
		if helper.IsUniqueViolation(res.Error) {
			return helper.JsonError(c, fiber.StatusConflict, "El email ya está registrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al actualizar usuario")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Usuario no encontrado")
	}

	var u model.UsuarioModel
	if err := ctrl.DB.First(&u, "usuario_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al recargar usuario")
	}
	return helper.JsonUpdated(c, "Usuario actualizado", dto.FromModel(u))
}

/* ===================== BAJA / ALTA ===================== */
// PATCH /api/a/usuarios/:id/desactivar
func (ctrl *UsuarioController) Deactivate(c *fiber.Ctx) error {
	return ctrl.setActivo(c, false, "Usuario desactivado")
}

// PATCH /api/a/usuarios/:id/reactivar
func (ctrl *UsuarioController) Reactivate(c *fiber.Ctx) error {
	return ctrl.setActivo(c, true, "Usuario reactivado")
}

func (ctrl *UsuarioController) setActivo(c *fiber.Ctx, activo bool, msg string) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	res := ctrl.DB.Model(&model.UsuarioModel{}).
		Where("usuario_id = ?", id).
		Update("usuario_activo", activo)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al actualizar estado")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Usuario no encontrado")
	}
	return helper.JsonUpdated(c, msg, fiber.Map{"usuario_id": id, "usuario_activo": activo})
}
