// file: internals/route/details/user_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"cocinasegura_backend/internals/configs"
	fichadoRoute "cocinasegura_backend/internals/features/asistencia/fichado/route"
	camaraRoute "cocinasegura_backend/internals/features/haccp/camaras/route"
	checklistRoute "cocinasegura_backend/internals/features/haccp/checklists/route"
)

// UserRoutes monta las rutas operativas: cualquier usuario autenticado
// (cocineros y empleados incluidos) ficha y registra checklists.
func UserRoutes(r fiber.Router, db *gorm.DB, cfg *configs.AppConfig) {
	fichadoRoute.FichadoUserRoutes(r, db, cfg)
	checklistRoute.ChecklistUserRoutes(r, db)
	camaraRoute.CamaraUserRoutes(r, db)
}
