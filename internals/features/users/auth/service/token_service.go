// file: internals/features/users/auth/service/token_service.go
package service

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"cocinasegura_backend/internals/configs"
	authModel "cocinasegura_backend/internals/features/users/auth/model"
	userModel "cocinasegura_backend/internals/features/users/user/model"
)

/* ==========================
   Access token (JWT)
========================== */

func IssueAccessToken(cfg *configs.AppConfig, u *userModel.UsuarioModel) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":     u.UsuarioID.String(),
		"usuario": u.UsuarioLogin,
		"rol":     u.UsuarioRol,
		"iat":     now.Unix(),
		"exp":     now.Add(cfg.AccessTTL).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(cfg.JWTSecret))
}

/* ==========================
   Refresh token (opaco, HMAC en DB, rotado en cada uso)
========================== */

func computeRefreshHash(token, secret string) []byte {
	m := hmac.New(sha256.New, []byte(secret))
	_, _ = m.Write([]byte(token))
	return m.Sum(nil)
}

func newOpaqueToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// IssueRefreshToken genera un token opaco y persiste su hash.
func IssueRefreshToken(db *gorm.DB, cfg *configs.AppConfig, userID uuid.UUID) (string, error) {
	raw, err := newOpaqueToken()
	if err != nil {
		return "", err
	}
	row := authModel.RefreshTokenModel{
		RefreshTokenUserID:    userID,
		RefreshTokenHash:      computeRefreshHash(raw, cfg.JWTRefreshSecret),
		RefreshTokenExpiresAt: time.Now().Add(cfg.RefreshTTL),
	}
	if err := db.Create(&row).Error; err != nil {
		return "", err
	}
	return raw, nil
}

// RotateRefreshToken valida el token entrante, lo invalida y emite uno nuevo.
func RotateRefreshToken(db *gorm.DB, cfg *configs.AppConfig, raw string) (uuid.UUID, string, error) {
	hash := computeRefreshHash(raw, cfg.JWTRefreshSecret)

	var row authModel.RefreshTokenModel
	if err := db.Where("refresh_token_hash = ?", hash).First(&row).Error; err != nil {
		return uuid.Nil, "", fmt.Errorf("refresh token desconocido")
	}
	if time.Now().After(row.RefreshTokenExpiresAt) {
		_ = db.Delete(&row).Error
		return uuid.Nil, "", fmt.Errorf("refresh token expirado")
	}

	// ROTATE: borrar el viejo antes de emitir el nuevo
	if err := db.Delete(&row).Error; err != nil {
		return uuid.Nil, "", err
	}
	fresh, err := IssueRefreshToken(db, cfg, row.RefreshTokenUserID)
	if err != nil {
		return uuid.Nil, "", err
	}
	return row.RefreshTokenUserID, fresh, nil
}

// RevokeRefreshToken elimina el hash (logout).
func RevokeRefreshToken(db *gorm.DB, cfg *configs.AppConfig, raw string) error {
	if raw == "" {
		return nil
	}
	hash := computeRefreshHash(raw, cfg.JWTRefreshSecret)
	return db.Where("refresh_token_hash = ?", hash).
		Delete(&authModel.RefreshTokenModel{}).Error
}

// BlacklistAccessToken registra el access token hasta su vencimiento natural.
func BlacklistAccessToken(db *gorm.DB, token string, expiresAt time.Time) error {
	row := authModel.TokenBlacklistModel{
		Token:     token,
		ExpiresAt: expiresAt,
	}
	return db.Create(&row).Error
}
