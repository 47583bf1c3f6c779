// file: internals/route/details/admin_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"cocinasegura_backend/internals/configs"
	fichadoRoute "cocinasegura_backend/internals/features/asistencia/fichado/route"
	camaraRoute "cocinasegura_backend/internals/features/haccp/camaras/route"
	checklistRoute "cocinasegura_backend/internals/features/haccp/checklists/route"
	reporteRoute "cocinasegura_backend/internals/features/haccp/reportes/route"
	usuarioRoute "cocinasegura_backend/internals/features/users/user/route"
)

// AdminRoutes monta la gestión: usuarios, cámaras, asistencia global y
// reportes. El grupo ya viene con el check de rol ADMIN/SUPERVISOR.
func AdminRoutes(r fiber.Router, db *gorm.DB, cfg *configs.AppConfig) {
	usuarioRoute.UsuarioAdminRoutes(r, db)
	camaraRoute.CamaraAdminRoutes(r, db)
	fichadoRoute.AsistenciaAdminRoutes(r, db, cfg)
	checklistRoute.ChecklistAdminRoutes(r, db)
	reporteRoute.ReporteAdminRoutes(r, db)
}
