// file: internals/features/haccp/checklists/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	checklistCtrl "cocinasegura_backend/internals/features/haccp/checklists/controller"
)

// ChecklistUserRoutes registra los cinco checklists HACCP bajo /haccp.
// Todos los roles autenticados pueden registrar y listar.
func ChecklistUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := checklistCtrl.NewChecklistController(db)

	haccp := r.Group("/haccp")

	haccp.Post("/lavado-frutas", ctrl.CreateLavadoFrutas)
	haccp.Get("/lavado-frutas", ctrl.ListLavadoFrutas)

	haccp.Post("/lavado-manos", ctrl.CreateLavadoManos)
	haccp.Get("/lavado-manos", ctrl.ListLavadoManos)

	haccp.Post("/control-coccion", ctrl.CreateControlCoccion)
	haccp.Get("/control-coccion", ctrl.ListControlCoccion)

	haccp.Post("/temperatura-camara", ctrl.CreateTemperaturaCamara)
	haccp.Get("/temperatura-camara", ctrl.ListTemperaturaCamara)

	haccp.Post("/recepcion", ctrl.CreateRecepcion)
	haccp.Get("/recepcion", ctrl.ListRecepcion)
}

// ChecklistAdminRoutes: solo consulta; los registros HACCP son append-only y
// se crean únicamente por el canal operativo.
func ChecklistAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := checklistCtrl.NewChecklistController(db)

	haccp := r.Group("/haccp")
	haccp.Get("/lavado-frutas", ctrl.ListLavadoFrutas)
	haccp.Get("/lavado-manos", ctrl.ListLavadoManos)
	haccp.Get("/control-coccion", ctrl.ListControlCoccion)
	haccp.Get("/temperatura-camara", ctrl.ListTemperaturaCamara)
	haccp.Get("/recepcion", ctrl.ListRecepcion)
}
