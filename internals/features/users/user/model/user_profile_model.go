package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserProfileModel is the zero-or-one profile attached to a user.
type UserProfileModel struct {
	ProfileID          uuid.UUID `gorm:"column:profile_id;type:uuid;primaryKey" json:"profile_id"`
	ProfileFirstName   string    `gorm:"column:profile_first_name;size:100" json:"profile_first_name"`
	ProfileLastName    string    `gorm:"column:profile_last_name;size:100" json:"profile_last_name"`
	ProfileAddress     string    `gorm:"column:profile_address;size:255" json:"profile_address"`
	ProfilePhoneNumber string    `gorm:"column:profile_phone_number;size:30" json:"profile_phone_number"`
	UserID             uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex" json:"user_id"`
	CreatedAt          time.Time `gorm:"column:profile_created_at;autoCreateTime" json:"profile_created_at"`
	UpdatedAt          time.Time `gorm:"column:profile_updated_at;autoUpdateTime" json:"profile_updated_at"`
}

func (UserProfileModel) TableName() string {
	return "users_profile"
}

func (p *UserProfileModel) BeforeCreate(tx *gorm.DB) error {
	if p.ProfileID == uuid.Nil {
		p.ProfileID = uuid.New()
	}
	return nil
}
