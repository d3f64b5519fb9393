package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"parkirku_backend/internals/constants"
	"parkirku_backend/internals/features/users/auth/controller"
	rateLimiter "parkirku_backend/internals/middlewares"
	authMiddleware "parkirku_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	base := app.Group("/api/auth")

	// Public
	base.Post("/seed-roles", authController.SeedRoles)
	base.Post("/register", rateLimiter.RegisterRateLimiter(), authController.Register)
	base.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	base.Post("/refresh-token", authController.RefreshToken)
	base.Post("/logout", authController.Logout)

	// Me authenticates via the token in its own body, not the middleware.
	base.Post("/me", authController.Me)

	// Protected
	protected := app.Group("/api/auth", authMiddleware.AuthMiddleware(db))

	ownerGate := authMiddleware.OnlyRoles(
		constants.RoleErrorOwner("role management"),
		constants.OwnerOnly...,
	)
	// The misspelled path shipped first; both spellings work.
	protected.Post("/upate-role", ownerGate, authController.UpdateRole)
	protected.Post("/update-role", ownerGate, authController.UpdateRole)

	protected.Get("/users", authController.GetUsers)
	protected.Get("/users/:user_name", authController.GetUserByUsername)
	protected.Get("/usernames", authController.GetUsernames)
}
