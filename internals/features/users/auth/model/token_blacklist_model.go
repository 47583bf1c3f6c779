package model

import (
	"time"

	"github.com/google/uuid"
)

// TokenBlacklistModel: access tokens revocados por logout.
// Las filas vencidas se vuelven inertes solas (el lookup filtra por expires_at).
type TokenBlacklistModel struct {
	TokenBlacklistID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:token_blacklist_id" json:"token_blacklist_id"`
	Token            string    `gorm:"not null;uniqueIndex;column:token" json:"-"`
	ExpiresAt        time.Time `gorm:"not null;index;column:expires_at" json:"expires_at"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (TokenBlacklistModel) TableName() string { return "token_blacklist" }
