package seeds

import (
	"log"

	"gorm.io/gorm"
)

// Run executes all startup seeders. Each one is idempotent.
func Run(db *gorm.DB) {
	if _, err := SeedRoles(db); err != nil {
		log.Printf("[SEED ERROR] roles: %v", err)
	}
	if err := SeedOwnerUser(db); err != nil {
		log.Printf("[SEED ERROR] owner user: %v", err)
	}
}
