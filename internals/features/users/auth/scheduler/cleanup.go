package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	authRepo "parkirku_backend/internals/features/users/auth/repository"
)

// StartBlacklistCleanupScheduler prunes expired blacklist rows once a day.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		for {
			deleted, err := authRepo.CleanupExpiredBlacklist(db)
			if err != nil {
				log.Printf("[CLEANUP ERROR] token_blacklist: %v", err)
			} else if deleted > 0 {
				log.Printf("[CLEANUP] %d expired blacklist token(s) removed", deleted)
			}
			time.Sleep(24 * time.Hour)
		}
	}()
}
