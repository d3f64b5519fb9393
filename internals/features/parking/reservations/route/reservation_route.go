package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"parkirku_backend/internals/constants"
	"parkirku_backend/internals/features/parking/reservations/controller"
	authMiddleware "parkirku_backend/internals/middlewares/auth"
)

func ReservationRoutes(api fiber.Router, db *gorm.DB) {
	reservationCtrl := controller.NewReservationController(db)
	managerCtrl := controller.NewParkingReservationManagerController(db)

	managerGate := authMiddleware.OnlyRoles(
		constants.RoleErrorManager("reservations"),
		constants.ManagerAndAbove...,
	)

	reservation := api.Group("/reservation")
	reservation.Post("/create", managerGate, reservationCtrl.CreateReservation)
	reservation.Get("/get", reservationCtrl.GetAllReservations)
	reservation.Get("/:id", reservationCtrl.GetReservationByID)
	reservation.Put("/:id", managerGate, reservationCtrl.UpdateReservation)
	reservation.Delete("/:id", managerGate, reservationCtrl.DeleteReservation)

	manager := api.Group("/parkingreservationmanager")
	manager.Post("/create", managerGate, managerCtrl.CreateParkingReservationManager)
	manager.Get("/get", managerCtrl.GetAllParkingReservationManagers)
	manager.Get("/:id", managerCtrl.GetParkingReservationManagerByID)
	manager.Put("/:id", managerGate, managerCtrl.UpdateParkingReservationManager)
	manager.Delete("/:id", managerGate, managerCtrl.DeleteParkingReservationManager)
}
