package dto

import (
	"time"

	"github.com/google/uuid"

	"parkirku_backend/internals/features/users/user/model"
)

type UserProfileDTO struct {
	ProfileID          uuid.UUID `json:"profile_id"`
	ProfileFirstName   string    `json:"profile_first_name"`
	ProfileLastName    string    `json:"profile_last_name"`
	ProfileAddress     string    `json:"profile_address"`
	ProfilePhoneNumber string    `json:"profile_phone_number"`
	UserID             uuid.UUID `json:"user_id"`
}

type UserDTO struct {
	ID        uuid.UUID       `json:"id"`
	UserName  string          `json:"user_name"`
	Email     string          `json:"email"`
	Role      string          `json:"role"`
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
	Profile   *UserProfileDTO `json:"profile,omitempty"`
}

type UserProfileRequest struct {
	ProfileFirstName   string `json:"profile_first_name" validate:"max=100"`
	ProfileLastName    string `json:"profile_last_name" validate:"max=100"`
	ProfileAddress     string `json:"profile_address" validate:"max=255"`
	ProfilePhoneNumber string `json:"profile_phone_number" validate:"max=30"`
}

// UserUpdateRequest overwrites account fields; the profile block is
// upserted only when present.
type UserUpdateRequest struct {
	UserName string              `json:"user_name" validate:"required,min=3,max=50"`
	Email    string              `json:"email" validate:"required,email"`
	IsActive *bool               `json:"is_active"`
	Profile  *UserProfileRequest `json:"profile"`
}

func ToUserProfileDTO(p model.UserProfileModel) UserProfileDTO {
	return UserProfileDTO{
		ProfileID:          p.ProfileID,
		ProfileFirstName:   p.ProfileFirstName,
		ProfileLastName:    p.ProfileLastName,
		ProfileAddress:     p.ProfileAddress,
		ProfilePhoneNumber: p.ProfilePhoneNumber,
		UserID:             p.UserID,
	}
}

func ToUserDTO(u model.UserModel) UserDTO {
	out := UserDTO{
		ID:        u.ID,
		UserName:  u.UserName,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
	if u.Profile != nil {
		p := ToUserProfileDTO(*u.Profile)
		out.Profile = &p
	}
	return out
}
