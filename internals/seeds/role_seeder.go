package seeds

import (
	"log"

	"gorm.io/gorm"

	"parkirku_backend/internals/constants"
	userModel "parkirku_backend/internals/features/users/user/model"
)

// SeedRoles inserts the fixed role set, skipping rows that already exist.
// Safe to call repeatedly (startup and the seed-roles endpoint both use it).
func SeedRoles(db *gorm.DB) (int64, error) {
	var created int64
	for _, name := range constants.AllRoles {
		var count int64
		if err := db.Model(&userModel.RoleModel{}).
			Where("role_name = ?", name).
			Count(&count).Error; err != nil {
			return created, err
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&userModel.RoleModel{RoleName: name}).Error; err != nil {
			return created, err
		}
		created++
	}
	if created > 0 {
		log.Printf("[SEED] %d role(s) created", created)
	}
	return created, nil
}
