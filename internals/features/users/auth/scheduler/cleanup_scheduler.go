// file: internals/features/users/auth/scheduler/cleanup_scheduler.go
package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	"cocinasegura_backend/internals/features/users/auth/model"
)

// StartTokenCleanupScheduler borra periódicamente los access tokens
// revocados ya vencidos y los refresh tokens expirados. Corre en su
// propia goroutine, cada 24 horas.
func StartTokenCleanupScheduler(db *gorm.DB) {
	go func() {
		for {
			log.Println("[CLEANUP] Limpiando tokens vencidos...")

			res := db.Where("expires_at < NOW()").Delete(&model.TokenBlacklistModel{})
			if res.Error != nil {
				log.Printf("[CLEANUP ERROR] token_blacklist: %v", res.Error)
			} else if res.RowsAffected > 0 {
				log.Printf("[CLEANUP] %d entradas de blacklist eliminadas", res.RowsAffected)
			}

			res = db.Where("refresh_token_expires_at < NOW()").Delete(&model.RefreshTokenModel{})
			if res.Error != nil {
				log.Printf("[CLEANUP ERROR] refresh_tokens: %v", res.Error)
			} else if res.RowsAffected > 0 {
				log.Printf("[CLEANUP] %d refresh tokens eliminados", res.RowsAffected)
			}

			time.Sleep(24 * time.Hour)
		}
	}()
}
