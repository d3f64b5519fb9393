package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"parkirku_backend/internals/constants"
	"parkirku_backend/internals/features/commerce/products/controller"
	authMiddleware "parkirku_backend/internals/middlewares/auth"
)

// ProductRoutes mounts category + product CRUD. Reads are open to any
// authenticated user; mutations need admin and above.
func ProductRoutes(api fiber.Router, db *gorm.DB) {
	categoryCtrl := controller.NewCategoryController(db)
	productCtrl := controller.NewProductController(db)

	adminGate := authMiddleware.OnlyRoles(
		constants.RoleErrorAdmin("categories & products"),
		constants.AdminAndAbove...,
	)

	category := api.Group("/category")
	category.Post("/create", adminGate, categoryCtrl.CreateCategory)
	category.Get("/get", categoryCtrl.GetAllCategories)
	category.Get("/:id", categoryCtrl.GetCategoryByID)
	category.Put("/:id", adminGate, categoryCtrl.UpdateCategory)
	category.Delete("/:id", adminGate, categoryCtrl.DeleteCategory)

	product := api.Group("/product")
	product.Post("/create", adminGate, productCtrl.CreateProduct)
	product.Get("/get", productCtrl.GetAllProducts)
	product.Get("/:id", productCtrl.GetProductByID)
	product.Put("/:id", adminGate, productCtrl.UpdateProduct)
	product.Delete("/:id", adminGate, productCtrl.DeleteProduct)
}
