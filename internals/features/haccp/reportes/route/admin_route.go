// file: internals/features/haccp/reportes/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reporteCtrl "cocinasegura_backend/internals/features/haccp/reportes/controller"
)

// ReporteAdminRoutes: reportes de no conformidades, solo ADMIN/SUPERVISOR.
func ReporteAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := reporteCtrl.NewReporteController(db)

	reportes := r.Group("/reportes")
	reportes.Get("/no-conformidades", ctrl.ResumenNoConformidades)
	reportes.Get("/no-conformidades/excel", ctrl.ExcelNoConformidades)
	reportes.Get("/proveedores-nc", ctrl.ProveedoresNC)
	reportes.Get("/empleados-nc", ctrl.EmpleadosNC)
	reportes.Get("/temperaturas-alerta", ctrl.TemperaturasAlerta)
}
