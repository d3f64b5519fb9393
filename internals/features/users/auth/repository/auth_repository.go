package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "parkirku_backend/internals/features/users/auth/model"
	userModel "parkirku_backend/internals/features/users/user/model"
)

/* ====================== USER ====================== */

func FindUserByUserName(db *gorm.DB, userName string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("user_name = ?", userName).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindUserByUserNameLight loads only what the login path needs.
func FindUserByUserNameLight(db *gorm.DB, userName string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Select("id", "password", "is_active").
		Where("user_name = ?", userName).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(db *gorm.DB, userID uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func CreateUser(db *gorm.DB, user *userModel.UserModel) error {
	return db.Create(user).Error
}

func UpdateUserRole(db *gorm.DB, userName, role string) (int64, error) {
	res := db.Model(&userModel.UserModel{}).
		Where("user_name = ?", userName).
		Update("role", role)
	return res.RowsAffected, res.Error
}

func ListUsers(db *gorm.DB) ([]userModel.UserModel, error) {
	var users []userModel.UserModel
	if err := db.Preload("Profile").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func ListUsernames(db *gorm.DB) ([]string, error) {
	var names []string
	if err := db.Model(&userModel.UserModel{}).
		Order("user_name ASC").
		Pluck("user_name", &names).Error; err != nil {
		return nil, err
	}
	return names, nil
}

/* ====================== REFRESH TOKEN ====================== */

func CreateRefreshToken(db *gorm.DB, token *authModel.RefreshTokenModel) error {
	return db.Create(token).Error
}

// FindRefreshTokenByHash matches the stored HMAC hash, never raw tokens.
func FindRefreshTokenByHash(db *gorm.DB, hash []byte) (*authModel.RefreshTokenModel, error) {
	var rt authModel.RefreshTokenModel
	if err := db.Where("token = ?", hash).First(&rt).Error; err != nil {
		return nil, err
	}
	return &rt, nil
}

func DeleteRefreshTokenByHash(db *gorm.DB, hash []byte) error {
	return db.Where("token = ?", hash).Delete(&authModel.RefreshTokenModel{}).Error
}

/* ====================== BLACKLIST TOKEN ====================== */

func BlacklistToken(db *gorm.DB, token string, ttl time.Duration) error {
	return db.Create(&authModel.TokenBlacklistModel{
		Token:     token,
		ExpiresAt: time.Now().UTC().Add(ttl),
	}).Error
}

func IsTokenBlacklisted(db *gorm.DB, token string) (bool, error) {
	var existing authModel.TokenBlacklistModel
	err := db.Where("token = ? AND deleted_at IS NULL", token).First(&existing).Error
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, err
}

func CleanupExpiredBlacklist(db *gorm.DB) (int64, error) {
	res := db.Unscoped().
		Where("expires_at <= ?", time.Now().UTC()).
		Delete(&authModel.TokenBlacklistModel{})
	return res.RowsAffected, res.Error
}
