// file: internals/features/users/auth/dto/auth_dto.go
package dto

import "github.com/google/uuid"

type LoginRequest struct {
	Usuario  string `json:"usuario"  validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginResponse struct {
	AccessToken string      `json:"access_token"`
	Usuario     UsuarioInfo `json:"usuario"`
}

type UsuarioInfo struct {
	UsuarioID     uuid.UUID `json:"usuario_id"`
	UsuarioNombre string    `json:"usuario_nombre"`
	UsuarioLogin  string    `json:"usuario_login"`
	UsuarioRol    string    `json:"usuario_rol"`
}
