package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"parkirku_backend/internals/configs"
	"parkirku_backend/internals/constants"
	authRepo "parkirku_backend/internals/features/users/auth/repository"
	"parkirku_backend/internals/features/users/auth/service"
	userDTO "parkirku_backend/internals/features/users/user/dto"
	helper "parkirku_backend/internals/helpers"
	"parkirku_backend/internals/seeds"
)

var validateAuth = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

func (ac *AuthController) Register(c *fiber.Ctx) error {
	return service.Register(ac.DB, c)
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	return service.Login(ac.DB, c)
}

func (ac *AuthController) RefreshToken(c *fiber.Ctx) error {
	return service.RefreshToken(ac.DB, c)
}

func (ac *AuthController) Logout(c *fiber.Ctx) error {
	return service.Logout(ac.DB, c)
}

// SeedRoles inserts any missing role rows. Calling it twice changes nothing.
func (ac *AuthController) SeedRoles(c *fiber.Ctx) error {
	created, err := seeds.SeedRoles(ac.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to seed roles")
	}
	if created == 0 {
		return helper.JsonOK(c, "Roles already seeded", fiber.Map{"created": created})
	}
	return helper.JsonOK(c, "Roles seeded", fiber.Map{"created": created})
}

// Me resolves the user behind a token posted in the body. Any parse
// failure is the caller's fault, so this never answers with a 5xx for a
// malformed token.
func (ac *AuthController) Me(c *fiber.Ctx) error {
	var input struct {
		Token string `json:"token"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid token")
	}
	input.Token = strings.TrimSpace(input.Token)
	if input.Token == "" {
		input.Token = helper.GetRawAccessToken(c)
	}
	if input.Token == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid token")
	}

	// A token revoked by logout stays rejected here too.
	blacklisted, err := authRepo.IsTokenBlacklisted(ac.DB, input.Token)
	if err != nil || blacklisted {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid token")
	}

	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid token")
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(input.Token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid token")
	}

	userName, _ := claims["user_name"].(string)
	if userName == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid token")
	}

	user, err := authRepo.FindUserByUserName(ac.DB, userName)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid token")
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"id":        user.ID,
		"user_name": user.UserName,
		"email":     user.Email,
		"role":      user.Role,
	})
}

// UpdateRole reassigns a user's role. The historical route spelling
// (upate-role) stays registered alongside the fixed one.
func (ac *AuthController) UpdateRole(c *fiber.Ctx) error {
	var input struct {
		UserName string `json:"user_name" validate:"required"`
		Role     string `json:"role" validate:"required"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	input.Role = strings.ToLower(strings.TrimSpace(input.Role))
	if !constants.IsKnownRole(input.Role) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Unknown role")
	}

	affected, err := authRepo.UpdateUserRole(ac.DB, strings.TrimSpace(input.UserName), input.Role)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update role")
	}
	if affected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User Not Found")
	}

	return helper.JsonUpdated(c, "Role Updated Successfully", fiber.Map{
		"user_name": input.UserName,
		"role":      input.Role,
	})
}

func (ac *AuthController) GetUsers(c *fiber.Ctx) error {
	users, err := authRepo.ListUsers(ac.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve users")
	}

	resp := make([]userDTO.UserDTO, 0, len(users))
	for _, u := range users {
		resp = append(resp, userDTO.ToUserDTO(u))
	}
	return helper.JsonOK(c, "ok", resp)
}

func (ac *AuthController) GetUserByUsername(c *fiber.Ctx) error {
	userName := strings.TrimSpace(c.Params("user_name"))
	if userName == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "user_name is required")
	}

	user, err := authRepo.FindUserByUserName(ac.DB, userName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User Not Found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve user")
	}

	return helper.JsonOK(c, "ok", userDTO.ToUserDTO(*user))
}

func (ac *AuthController) GetUsernames(c *fiber.Ctx) error {
	names, err := authRepo.ListUsernames(ac.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve usernames")
	}
	return helper.JsonOK(c, "ok", names)
}
