// file: internals/features/users/user/dto/usuario_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "cocinasegura_backend/internals/features/users/user/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type CreateUsuarioRequest struct {
	UsuarioNombre string `json:"usuario_nombre" validate:"required,min=3,max=120"`
	UsuarioLogin  string `json:"usuario_login"  validate:"required,min=3,max=50,alphanum"`
	UsuarioEmail  string `json:"usuario_email"  validate:"required,email"`
	Password      string `json:"password"       validate:"required,min=8"`
	UsuarioRol    string `json:"usuario_rol"    validate:"required,oneof=ADMIN SUPERVISOR COCINERO EMPLEADO"`
}

// Update parcial; el password se cambia por un endpoint aparte
type UpdateUsuarioRequest struct {
	UsuarioNombre *string `json:"usuario_nombre" validate:"omitempty,min=3,max=120"`
	UsuarioEmail  *string `json:"usuario_email"  validate:"omitempty,email"`
	UsuarioRol    *string `json:"usuario_rol"    validate:"omitempty,oneof=ADMIN SUPERVISOR COCINERO EMPLEADO"`
}

type FilterUsuarioRequest struct {
	Rol    *string `query:"rol"    validate:"omitempty,oneof=ADMIN SUPERVISOR COCINERO EMPLEADO"`
	Activo *bool   `query:"activo" validate:"omitempty"`
	Search *string `query:"search" validate:"omitempty,max=120"`
}

/* =========================================================
 * RESPONSE
 * ========================================================= */

type UsuarioResponse struct {
	UsuarioID     uuid.UUID  `json:"usuario_id"`
	UsuarioNombre string     `json:"usuario_nombre"`
	UsuarioLogin  string     `json:"usuario_login"`
	UsuarioEmail  string     `json:"usuario_email"`
	UsuarioRol    string     `json:"usuario_rol"`
	UsuarioActivo bool       `json:"usuario_activo"`
	CreatedAt     time.Time  `json:"usuario_created_at"`
	UpdatedAt     *time.Time `json:"usuario_updated_at,omitempty"`
}

/* =========================================================
 * HELPERS
 * ========================================================= */

func (r CreateUsuarioRequest) ToModel(passwordHash string) m.UsuarioModel {
	return m.UsuarioModel{
		UsuarioNombre:   r.UsuarioNombre,
		UsuarioLogin:    r.UsuarioLogin,
		UsuarioEmail:    r.UsuarioEmail,
		UsuarioPassword: passwordHash,
		UsuarioRol:      r.UsuarioRol,
		UsuarioActivo:   true,
	}
}

func FromModel(u m.UsuarioModel) UsuarioResponse {
	return UsuarioResponse{
		UsuarioID:     u.UsuarioID,
		UsuarioNombre: u.UsuarioNombre,
		UsuarioLogin:  u.UsuarioLogin,
		UsuarioEmail:  u.UsuarioEmail,
		UsuarioRol:    u.UsuarioRol,
		UsuarioActivo: u.UsuarioActivo,
		CreatedAt:     u.UsuarioCreatedAt,
		UpdatedAt:     u.UsuarioUpdatedAt,
	}
}

func FromModels(items []m.UsuarioModel) []UsuarioResponse {
	out := make([]UsuarioResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FromModel(it))
	}
	return out
}
