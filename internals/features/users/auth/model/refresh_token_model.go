package model

import (
	"time"

	"github.com/google/uuid"
)

// RefreshTokenModel guarda el HMAC del refresh token, nunca el token en claro.
type RefreshTokenModel struct {
	RefreshTokenID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:refresh_token_id" json:"refresh_token_id"`
	RefreshTokenUserID    uuid.UUID `gorm:"type:uuid;not null;index;column:refresh_token_user_id" json:"refresh_token_user_id"`
	RefreshTokenHash      []byte    `gorm:"not null;uniqueIndex;column:refresh_token_hash" json:"-"`
	RefreshTokenExpiresAt time.Time `gorm:"not null;column:refresh_token_expires_at" json:"refresh_token_expires_at"`
	RefreshTokenCreatedAt time.Time `gorm:"column:refresh_token_created_at;autoCreateTime" json:"refresh_token_created_at"`
}

func (RefreshTokenModel) TableName() string { return "refresh_tokens" }
