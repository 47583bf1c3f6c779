// file: internals/features/users/user/dto/usuario_dto_test.go
package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"cocinasegura_backend/internals/constants"
)

// El oneof del DTO debe aceptar todos los roles del sistema; si se agrega
// un rol en constants hay que extender el tag del DTO también.
func TestCreateUsuario_AceptaTodosLosRoles(t *testing.T) {
	v := validator.New()

	for _, rol := range constants.AllRoles {
		req := CreateUsuarioRequest{
			UsuarioNombre: "Juana Pérez",
			UsuarioLogin:  "jperez",
			UsuarioEmail:  "jperez@cocinasegura.pe",
			Password:      "clave-muy-larga",
			UsuarioRol:    rol,
		}
		assert.NoError(t, v.Struct(req), rol)
	}
}

func TestCreateUsuario_RolDesconocidoRechazado(t *testing.T) {
	v := validator.New()

	req := CreateUsuarioRequest{
		UsuarioNombre: "Juana Pérez",
		UsuarioLogin:  "jperez",
		UsuarioEmail:  "jperez@cocinasegura.pe",
		Password:      "clave-muy-larga",
		UsuarioRol:    "GERENTE",
	}
	assert.Error(t, v.Struct(req))
}
