package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"parkirku_backend/internals/constants"
	"parkirku_backend/internals/features/commerce/orders/controller"
	authMiddleware "parkirku_backend/internals/middlewares/auth"
)

func OrderRoutes(api fiber.Router, db *gorm.DB) {
	customerCtrl := controller.NewCustomerController(db)
	orderCtrl := controller.NewOrderController(db)

	adminGate := authMiddleware.OnlyRoles(
		constants.RoleErrorAdmin("customers & orders"),
		constants.AdminAndAbove...,
	)

	customer := api.Group("/customer")
	customer.Post("/create", adminGate, customerCtrl.CreateCustomer)
	customer.Get("/get", customerCtrl.GetAllCustomers)
	customer.Get("/:id", customerCtrl.GetCustomerByID)
	customer.Put("/:id", adminGate, customerCtrl.UpdateCustomer)
	customer.Delete("/:id", adminGate, customerCtrl.DeleteCustomer)

	order := api.Group("/order")
	order.Post("/create", adminGate, orderCtrl.CreateOrder)
	order.Get("/get", orderCtrl.GetAllOrders)
	order.Get("/:id", orderCtrl.GetOrderByID)
	order.Put("/:id", adminGate, orderCtrl.UpdateOrder)
	order.Delete("/:id", adminGate, orderCtrl.DeleteOrder)
}
