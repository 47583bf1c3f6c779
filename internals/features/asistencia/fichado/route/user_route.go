package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"cocinasegura_backend/internals/configs"
	fichadoCtrl "cocinasegura_backend/internals/features/asistencia/fichado/controller"
)

func FichadoUserRoutes(r fiber.Router, db *gorm.DB, cfg *configs.AppConfig) {
	ctrl := fichadoCtrl.NewFichadoController(db, cfg)

	g := r.Group("/fichado")
	g.Post("/entrada", ctrl.Entrada)
	g.Post("/salida", ctrl.Salida)
	g.Get("/hoy", ctrl.Hoy)
	g.Get("/historial", ctrl.Historial)
}

func AsistenciaAdminRoutes(r fiber.Router, db *gorm.DB, cfg *configs.AppConfig) {
	ctrl := fichadoCtrl.NewFichadoController(db, cfg)
	r.Get("/asistencia", ctrl.AdminList)
}
