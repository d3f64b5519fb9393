package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"parkirku_backend/internals/constants"
	"parkirku_backend/internals/features/users/user/controller"
	authMiddleware "parkirku_backend/internals/middlewares/auth"
)

func UserRoutes(api fiber.Router, db *gorm.DB) {
	userCtrl := controller.NewUserController(db)

	adminGate := authMiddleware.OnlyRoles(
		constants.RoleErrorAdmin("user management"),
		constants.AdminAndAbove...,
	)

	user := api.Group("/user")
	user.Get("/get", adminGate, userCtrl.GetAllUsers)
	user.Get("/:id", adminGate, userCtrl.GetUserByID)
	user.Put("/:id", adminGate, userCtrl.UpdateUser)
	user.Delete("/:id", adminGate, userCtrl.DeleteUser)
}
