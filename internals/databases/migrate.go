// file: internals/databases/migrate.go
package database

import (
	"fmt"

	"gorm.io/gorm"

	fichadoModel "cocinasegura_backend/internals/features/asistencia/fichado/model"
	camaraModel "cocinasegura_backend/internals/features/haccp/camaras/model"
	checklistModel "cocinasegura_backend/internals/features/haccp/checklists/model"
	authModel "cocinasegura_backend/internals/features/users/auth/model"
	userModel "cocinasegura_backend/internals/features/users/user/model"
)

// AutoMigrate crea/actualiza el esquema completo. Las PKs usan
// gen_random_uuid(), así que pgcrypto tiene que estar disponible.
func AutoMigrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		return fmt.Errorf("habilitar pgcrypto: %w", err)
	}

	return db.AutoMigrate(
		&userModel.UsuarioModel{},
		&authModel.RefreshTokenModel{},
		&authModel.TokenBlacklistModel{},
		&fichadoModel.RegistroAsistenciaModel{},
		&camaraModel.CamaraModel{},
		&checklistModel.LavadoFrutasModel{},
		&checklistModel.LavadoManosModel{},
		&checklistModel.ControlCoccionModel{},
		&checklistModel.TemperaturaCamaraModel{},
		&checklistModel.RecepcionMercaderiaModel{},
	)
}
