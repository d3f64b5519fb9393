package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"parkirku_backend/internals/constants"
	"parkirku_backend/internals/features/finance/payments/controller"
	authMiddleware "parkirku_backend/internals/middlewares/auth"
)

func PaymentRoutes(api fiber.Router, db *gorm.DB) {
	methodCtrl := controller.NewPaymentMethodController(db)
	invoiceCtrl := controller.NewInvoiceController(db)
	paymentCtrl := controller.NewPaymentController(db)

	managerGate := authMiddleware.OnlyRoles(
		constants.RoleErrorManager("payments & invoices"),
		constants.ManagerAndAbove...,
	)

	method := api.Group("/paymentmethod")
	method.Post("/create", managerGate, methodCtrl.CreatePaymentMethod)
	method.Get("/get", methodCtrl.GetAllPaymentMethods)
	method.Get("/:id", methodCtrl.GetPaymentMethodByID)
	method.Put("/:id", managerGate, methodCtrl.UpdatePaymentMethod)
	method.Delete("/:id", managerGate, methodCtrl.DeletePaymentMethod)

	invoice := api.Group("/invoice")
	invoice.Post("/create", managerGate, invoiceCtrl.CreateInvoice)
	invoice.Get("/get", invoiceCtrl.GetAllInvoices)
	invoice.Get("/:id", invoiceCtrl.GetInvoiceByID)
	invoice.Put("/:id", managerGate, invoiceCtrl.UpdateInvoice)
	invoice.Delete("/:id", managerGate, invoiceCtrl.DeleteInvoice)

	payment := api.Group("/payment")
	payment.Post("/create", managerGate, paymentCtrl.CreatePayment)
	payment.Get("/get", paymentCtrl.GetAllPayments)
	payment.Get("/:id", paymentCtrl.GetPaymentByID)
	payment.Put("/:id", managerGate, paymentCtrl.UpdatePayment)
	payment.Delete("/:id", managerGate, paymentCtrl.DeletePayment)
	payment.Post("/:id/snap-token", managerGate, paymentCtrl.GenerateSnapToken)
}
