// file: internals/middlewares/setup.go
package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"cocinasegura_backend/internals/configs"
)

// SetupMiddlewares registra los middlewares base de la app.
func SetupMiddlewares(app *fiber.App, cfg *configs.AppConfig) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware(cfg.CORSOrigins))
	app.Use(GlobalRateLimiter())
}
