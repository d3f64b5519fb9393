package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"parkirku_backend/internals/features/users/user/dto"
	"parkirku_backend/internals/features/users/user/model"
	helper "parkirku_backend/internals/helpers"
)

var validateUser = validator.New()

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

func (ctrl *UserController) GetAllUsers(c *fiber.Ctx) error {
	var users []model.UserModel
	if err := ctrl.DB.Preload("Profile").Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve users")
	}

	resp := make([]dto.UserDTO, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserDTO(u))
	}
	return helper.JsonOK(c, "ok", resp)
}

func (ctrl *UserController) GetUserByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var user model.UserModel
	if err := ctrl.DB.Preload("Profile").First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User Not Found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve user")
	}

	return helper.JsonOK(c, "ok", dto.ToUserDTO(user))
}

// UpdateUser overwrites the account fields and upserts the profile when
// the request carries one.
func (ctrl *UserController) UpdateUser(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var body dto.UserUpdateRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateUser.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User Not Found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve user")
	}

	user.UserName = body.UserName
	user.Email = body.Email
	if body.IsActive != nil {
		user.IsActive = *body.IsActive
	}
	if err := ctrl.DB.Save(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update user")
	}

	if body.Profile != nil {
		var profile model.UserProfileModel
		err := ctrl.DB.First(&profile, "user_id = ?", user.ID).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			profile = model.UserProfileModel{UserID: user.ID}
		case err != nil:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve profile")
		}

		profile.ProfileFirstName = body.Profile.ProfileFirstName
		profile.ProfileLastName = body.Profile.ProfileLastName
		profile.ProfileAddress = body.Profile.ProfileAddress
		profile.ProfilePhoneNumber = body.Profile.ProfilePhoneNumber
		if err := ctrl.DB.Save(&profile).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update profile")
		}
		user.Profile = &profile
	}

	return helper.JsonUpdated(c, "User Updated Successfully", dto.ToUserDTO(user))
}

func (ctrl *UserController) DeleteUser(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User Not Found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve user")
	}

	if err := ctrl.DB.Delete(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete user")
	}

	return helper.JsonDeleted(c, "User Deleted", fiber.Map{"id": id})
}
