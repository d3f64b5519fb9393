package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"parkirku_backend/internals/constants"
	"parkirku_backend/internals/features/parking/spaces/controller"
	authMiddleware "parkirku_backend/internals/middlewares/auth"
)

func ParkingSpaceRoutes(api fiber.Router, db *gorm.DB) {
	spaceCtrl := controller.NewParkingSpaceController(db)
	managerCtrl := controller.NewParkingSpaceManagerController(db)
	monitorCtrl := controller.NewAvailabilityMonitorController(db)

	managerGate := authMiddleware.OnlyRoles(
		constants.RoleErrorManager("parking spaces"),
		constants.ManagerAndAbove...,
	)

	space := api.Group("/parkingspace")
	space.Post("/create", managerGate, spaceCtrl.CreateParkingSpace)
	space.Get("/get", spaceCtrl.GetAllParkingSpaces)
	space.Get("/:id", spaceCtrl.GetParkingSpaceByID)
	space.Put("/:id", managerGate, spaceCtrl.UpdateParkingSpace)
	space.Delete("/:id", managerGate, spaceCtrl.DeleteParkingSpace)

	manager := api.Group("/parkingspacemanager")
	manager.Post("/create", managerGate, managerCtrl.CreateParkingSpaceManager)
	manager.Get("/get", managerCtrl.GetAllParkingSpaceManagers)
	manager.Get("/:id", managerCtrl.GetParkingSpaceManagerByID)
	manager.Put("/:id", managerGate, managerCtrl.UpdateParkingSpaceManager)
	manager.Delete("/:id", managerGate, managerCtrl.DeleteParkingSpaceManager)

	monitor := api.Group("/availabilitymonitor")
	monitor.Post("/create", managerGate, monitorCtrl.CreateAvailabilityMonitor)
	monitor.Get("/get", monitorCtrl.GetAllAvailabilityMonitors)
	monitor.Get("/:id", monitorCtrl.GetAvailabilityMonitorByID)
	monitor.Put("/:id", managerGate, monitorCtrl.UpdateAvailabilityMonitor)
	monitor.Delete("/:id", managerGate, monitorCtrl.DeleteAvailabilityMonitor)
}
