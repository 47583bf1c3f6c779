package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"cocinasegura_backend/internals/constants"
	userCtrl "cocinasegura_backend/internals/features/users/user/controller"
	authMiddleware "cocinasegura_backend/internals/middlewares/auth"
)

func UsuarioAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := userCtrl.NewUsuarioController(db)

	// La gestión de cuentas queda solo para ADMIN; el grupo padre ya
	// admite SUPERVISOR para el resto del panel.
	g := r.Group("/usuarios", authMiddleware.OnlyRoles(
		constants.RoleErrorAdmin("la gestión de usuarios"),
		constants.RolAdmin,
	))
	g.Post("/", ctrl.Create)
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Patch("/:id", ctrl.Update)
	g.Patch("/:id/desactivar", ctrl.Deactivate)
	g.Patch("/:id/reactivar", ctrl.Reactivate)
}
