package model

import (
	"time"

	"github.com/google/uuid"
)

// UsuarioModel representa la tabla usuarios.
// Nunca se borra físicamente: la baja es usuario_activo=false.
type UsuarioModel struct {
	UsuarioID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:usuario_id" json:"usuario_id"`

	UsuarioNombre string `gorm:"size:120;not null;column:usuario_nombre" json:"usuario_nombre"`
	UsuarioLogin  string `gorm:"size:50;uniqueIndex;not null;column:usuario_login" json:"usuario_login"`
	UsuarioEmail  string `gorm:"size:255;uniqueIndex;not null;column:usuario_email" json:"usuario_email"`

	// Hash bcrypt, jamás sale en JSON
	UsuarioPassword string `gorm:"not null;column:usuario_password" json:"-"`

	UsuarioRol    string `gorm:"type:varchar(20);not null;default:'EMPLEADO';column:usuario_rol" json:"usuario_rol"`
	UsuarioActivo bool   `gorm:"not null;default:true;column:usuario_activo" json:"usuario_activo"`

	UsuarioCreatedAt time.Time  `gorm:"column:usuario_created_at;autoCreateTime" json:"usuario_created_at"`
	UsuarioUpdatedAt *time.Time `gorm:"column:usuario_updated_at;autoUpdateTime" json:"usuario_updated_at,omitempty"`
}

func (UsuarioModel) TableName() string { return "usuarios" }
