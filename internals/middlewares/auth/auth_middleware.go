// file: internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"cocinasegura_backend/internals/configs"
	authModel "cocinasegura_backend/internals/features/users/auth/model"
)

// AuthMiddleware valida el bearer JWT (con fallback a cookie), chequea el
// blacklist, la expiración y que el usuario siga activo, y deja la identidad
// en locals: user_id, userName, userRole.
func AuthMiddleware(db *gorm.DB, cfg *configs.AppConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		// 1) Blacklist (una vez por request)
		if c.Locals("token_checked") == nil {
			var existing authModel.TokenBlacklistModel
			err := db.Where("token = ? AND expires_at > NOW()", tokenString).First(&existing).Error
			if err == nil {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: token revocado")
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Println("[ERROR] DB error al chequear blacklist:", err)
				return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
			}
			c.Locals("token_checked", true)
		}

		// 2) Parse & verificación de firma
		if cfg.JWTSecret == "" {
			log.Println("[ERROR] JWT_SECRET vacío")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}
		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(cfg.JWTSecret), nil
		}); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: token inválido")
		}

		// 3) Expiración (con leeway corto)
		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: token expirado")
		}

		// 4) user_id + usuario activo
		userID, err := extractUserID(claims)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: user_id inválido")
		}
		if err := ensureUserActive(db, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: usuario no existe")
			}
			return fiber.NewError(fiber.StatusForbidden, "Tu cuenta ha sido desactivada")
		}

		c.Locals("user_id", userID.String())
		storeBasicClaimsToLocals(c, claims)
		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		tok := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if tok != "" {
			return tok, nil
		}
	}
	// Fallback: cookie (clientes web)
	if tok := strings.TrimSpace(c.Cookies("access_token")); tok != "" {
		return tok, nil
	}
	return "", errors.New("Unauthorized: falta el token")
}

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expRaw, ok := claims["exp"]
	if !ok {
		return errors.New("token sin exp")
	}
	expFloat, ok := expRaw.(float64)
	if !ok {
		return errors.New("exp inválido")
	}
	exp := time.Unix(int64(expFloat), 0)
	if time.Now().After(exp.Add(leeway)) {
		return errors.New("token expirado")
	}
	return nil
}

func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	sub, _ := claims["sub"].(string)
	if sub == "" {
		// compat con tokens viejos que usaban "id"
		sub, _ = claims["id"].(string)
	}
	return uuid.Parse(sub)
}

func ensureUserActive(db *gorm.DB, userID uuid.UUID) error {
	var row struct {
		Activo bool `gorm:"column:usuario_activo"`
	}
	err := db.Table("usuarios").
		Select("usuario_activo").
		Where("usuario_id = ?", userID).
		Take(&row).Error
	if err != nil {
		return err
	}
	if !row.Activo {
		return errors.New("usuario inactivo")
	}
	return nil
}

func storeBasicClaimsToLocals(c *fiber.Ctx, claims jwt.MapClaims) {
	if v, ok := claims["usuario"].(string); ok {
		c.Locals("userName", v)
	}
	if v, ok := claims["rol"].(string); ok {
		c.Locals("userRole", v)
	}
}
