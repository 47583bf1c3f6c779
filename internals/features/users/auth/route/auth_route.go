package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"cocinasegura_backend/internals/configs"
	authCtrl "cocinasegura_backend/internals/features/users/auth/controller"
	"cocinasegura_backend/internals/middlewares"
	authMw "cocinasegura_backend/internals/middlewares/auth"
)

// AuthRoutes: endpoints públicos de sesión + logout/me autenticados.
func AuthRoutes(app *fiber.App, db *gorm.DB, cfg *configs.AppConfig) {
	ctrl := authCtrl.NewAuthController(db, cfg)

	g := app.Group("/api/auth")
	g.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	g.Post("/refresh", ctrl.Refresh)
	g.Post("/logout", authMw.AuthMiddleware(db, cfg), ctrl.Logout)
	g.Get("/me", authMw.AuthMiddleware(db, cfg), ctrl.Me)
}
