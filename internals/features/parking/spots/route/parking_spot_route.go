package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"parkirku_backend/internals/constants"
	"parkirku_backend/internals/features/parking/spots/controller"
	authMiddleware "parkirku_backend/internals/middlewares/auth"
)

func ParkingSpotRoutes(api fiber.Router, db *gorm.DB) {
	spotCtrl := controller.NewParkingSpotController(db)

	managerGate := authMiddleware.OnlyRoles(
		constants.RoleErrorManager("parking spots"),
		constants.ManagerAndAbove...,
	)

	spot := api.Group("/parkingspot")
	spot.Post("/create", managerGate, spotCtrl.CreateParkingSpot)
	spot.Get("/get", spotCtrl.GetAllParkingSpots)
	spot.Get("/:id", spotCtrl.GetParkingSpotByID)
	spot.Put("/:id", managerGate, spotCtrl.UpdateParkingSpot)
	spot.Delete("/:id", managerGate, spotCtrl.DeleteParkingSpot)
}
