// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"cocinasegura_backend/internals/configs"
	"cocinasegura_backend/internals/features/users/auth/dto"
	authService "cocinasegura_backend/internals/features/users/auth/service"
	userModel "cocinasegura_backend/internals/features/users/user/model"
	helper "cocinasegura_backend/internals/helpers"
)

type AuthController struct {
	DB  *gorm.DB
	Cfg *configs.AppConfig
}

func NewAuthController(db *gorm.DB, cfg *configs.AppConfig) *AuthController {
	return &AuthController{DB: db, Cfg: cfg}
}

/* ===================== LOGIN ===================== */
// POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var u userModel.UsuarioModel
	err := ac.DB.Where("usuario_login = ?", strings.TrimSpace(req.Usuario)).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// mismo mensaje que password incorrecto, no filtramos existencia
			return helper.JsonError(c, fiber.StatusUnauthorized, "Credenciales inválidas")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al buscar usuario")
	}
	if !u.UsuarioActivo {
		return helper.JsonError(c, fiber.StatusForbidden, "Tu cuenta ha sido desactivada")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.UsuarioPassword), []byte(req.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Credenciales inválidas")
	}

	access, err := authService.IssueAccessToken(ac.Cfg, &u)
	if err != nil {
		log.Println("[ERROR] firma de access token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo iniciar sesión")
	}
	refresh, err := authService.IssueRefreshToken(ac.DB, ac.Cfg, u.UsuarioID)
	if err != nil {
		log.Println("[ERROR] emisión de refresh token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo iniciar sesión")
	}
	setRefreshCookie(c, refresh, ac.Cfg.RefreshTTL)

	return helper.JsonOK(c, "Login exitoso", dto.LoginResponse{
		AccessToken: access,
		Usuario: dto.UsuarioInfo{
			UsuarioID:     u.UsuarioID,
			UsuarioNombre: u.UsuarioNombre,
			UsuarioLogin:  u.UsuarioLogin,
			UsuarioRol:    u.UsuarioRol,
		},
	})
}

/* ===================== REFRESH ===================== */
// POST /api/auth/refresh
func (ac *AuthController) Refresh(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Cookies("refresh_token"))
	if raw == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "No hay refresh token")
	}

	userID, fresh, err := authService.RotateRefreshToken(ac.DB, ac.Cfg, raw)
	if err != nil {
		clearRefreshCookie(c)
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var u userModel.UsuarioModel
	if err := ac.DB.First(&u, "usuario_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Usuario no encontrado")
	}
	if !u.UsuarioActivo {
		return helper.JsonError(c, fiber.StatusForbidden, "Tu cuenta ha sido desactivada")
	}

	access, err := authService.IssueAccessToken(ac.Cfg, &u)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo renovar la sesión")
	}
	setRefreshCookie(c, fresh, ac.Cfg.RefreshTTL)

	return helper.JsonOK(c, "Sesión renovada", fiber.Map{"access_token": access})
}

/* ===================== LOGOUT ===================== */
// POST /api/auth/logout (requiere JWT)
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	// Revocar refresh si viene en cookie
	if raw := strings.TrimSpace(c.Cookies("refresh_token")); raw != "" {
		if err := authService.RevokeRefreshToken(ac.DB, ac.Cfg, raw); err != nil {
			log.Println("[ERROR] revoke refresh:", err)
		}
	}
	clearRefreshCookie(c)

	// Blacklist del access token hasta su exp
	tokenString := strings.TrimSpace(strings.TrimPrefix(c.Get("Authorization"), "Bearer "))
	if tokenString != "" {
		exp := time.Now().Add(ac.Cfg.AccessTTL)
		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			return []byte(ac.Cfg.JWTSecret), nil
		}); err == nil {
			if expFloat, ok := claims["exp"].(float64); ok {
				exp = time.Unix(int64(expFloat), 0)
			}
		}
		if err := authService.BlacklistAccessToken(ac.DB, tokenString, exp); err != nil && !helper.IsUniqueViolation(err) {
			log.Println("[ERROR] blacklist access:", err)
		}
	}

	return helper.JsonOK(c, "Sesión cerrada", nil)
}

/* ===================== ME ===================== */
// GET /api/u/me
func (ac *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	var u userModel.UsuarioModel
	if err := ac.DB.First(&u, "usuario_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Usuario no encontrado")
	}
	return helper.JsonOK(c, "", dto.UsuarioInfo{
		UsuarioID:     u.UsuarioID,
		UsuarioNombre: u.UsuarioNombre,
		UsuarioLogin:  u.UsuarioLogin,
		UsuarioRol:    u.UsuarioRol,
	})
}

/* ===================== Cookies ===================== */

func setRefreshCookie(c *fiber.Ctx, token string, ttl time.Duration) {
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    token,
		Expires:  time.Now().Add(ttl),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Strict",
		Path:     "/api/auth",
	})
}

func clearRefreshCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Strict",
		Path:     "/api/auth",
	})
}
