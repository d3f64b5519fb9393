package seeds

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"parkirku_backend/internals/configs"
	"parkirku_backend/internals/constants"
	authHelper "parkirku_backend/internals/features/users/auth/helper"
	userModel "parkirku_backend/internals/features/users/user/model"
)

// SeedOwnerUser creates the bootstrap owner account when OWNER_USERNAME and
// OWNER_PASSWORD are set and no such user exists yet.
func SeedOwnerUser(db *gorm.DB) error {
	userName := configs.GetEnv("OWNER_USERNAME")
	password := configs.GetEnv("OWNER_PASSWORD")
	if userName == "" || password == "" {
		return nil
	}
	email := configs.GetEnv("OWNER_EMAIL", userName+"@parkirku.local")

	var existing userModel.UserModel
	err := db.First(&existing, "user_name = ?", userName).Error
	switch {
	case err == nil:
		return nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return err
	}

	hash, err := authHelper.HashPassword(password)
	if err != nil {
		return err
	}

	owner := userModel.UserModel{
		UserName: userName,
		Email:    email,
		Password: hash,
		Role:     constants.RoleOwner,
		IsActive: true,
	}
	if err := db.Create(&owner).Error; err != nil {
		return err
	}
	log.Printf("[SEED] owner user %q created", userName)
	return nil
}
