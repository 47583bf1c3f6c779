// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"cocinasegura_backend/internals/configs"
	"cocinasegura_backend/internals/constants"
	authRoute "cocinasegura_backend/internals/features/users/auth/route"
	authMiddleware "cocinasegura_backend/internals/middlewares/auth"
	routeDetails "cocinasegura_backend/internals/route/details"
)

// SetupRoutes arma el árbol completo de rutas:
//
//	/              → base + health
//	/api/auth      → login / refresh / logout (público salvo logout)
//	/api/u         → operación diaria (cualquier usuario autenticado)
//	/api/a         → gestión (ADMIN / SUPERVISOR)
func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *configs.AppConfig) {
	startTime = time.Now()

	log.Println("[INFO] Montando rutas base...")
	BaseRoutes(app, db)

	log.Println("[INFO] Montando rutas de autenticación...")
	authRoute.AuthRoutes(app, db, cfg)

	log.Println("[INFO] Montando grupo USUARIO (/api/u)...")
	user := app.Group("/api/u",
		authMiddleware.AuthMiddleware(db, cfg),
	)
	routeDetails.UserRoutes(user, db, cfg)

	log.Println("[INFO] Montando grupo ADMIN (/api/a)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db, cfg),
		authMiddleware.OnlyRoles(
			constants.RoleErrorAdminSupervisor("la gestión del sistema"),
			constants.RolAdmin,
			constants.RolSupervisor,
		),
	)
	routeDetails.AdminRoutes(admin, db, cfg)
}
