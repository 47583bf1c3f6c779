package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	camaraCtrl "cocinasegura_backend/internals/features/haccp/camaras/controller"
)

func CamaraAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := camaraCtrl.NewCamaraController(db)

	g := r.Group("/camaras")
	g.Post("/", ctrl.Create)
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Patch("/:id", ctrl.Update)
	g.Patch("/:id/desactivar", ctrl.Deactivate)
}

// Lectura para usuarios (llenado del checklist de temperaturas)
func CamaraUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := camaraCtrl.NewCamaraController(db)
	r.Get("/camaras", ctrl.List)
}
