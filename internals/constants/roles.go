package constants

import "fmt"

// Roles del sistema
const (
	RolAdmin      = "ADMIN"
	RolSupervisor = "SUPERVISOR"
	RolCocinero   = "COCINERO"
	RolEmpleado   = "EMPLEADO"
)

// AllRoles en orden de privilegio (para validación de DTOs)
var AllRoles = []string{RolAdmin, RolSupervisor, RolCocinero, RolEmpleado}

// Plantillas de mensaje de error por rol
const (
	ErrSoloAdmin           = "❌ Solo un ADMIN puede acceder a %s."
	ErrSoloAdminSupervisor = "❌ Solo ADMIN o SUPERVISOR pueden acceder a %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrSoloAdmin, feature)
}

func RoleErrorAdminSupervisor(feature string) string {
	return fmt.Sprintf(ErrSoloAdminSupervisor, feature)
}
