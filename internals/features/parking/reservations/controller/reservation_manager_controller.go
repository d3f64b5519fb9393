package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"parkirku_backend/internals/features/parking/reservations/dto"
	"parkirku_backend/internals/features/parking/reservations/model"
	helper "parkirku_backend/internals/helpers"
)

type ParkingReservationManagerController struct {
	DB *gorm.DB
}

func NewParkingReservationManagerController(db *gorm.DB) *ParkingReservationManagerController {
	return &ParkingReservationManagerController{DB: db}
}

func (ctrl *ParkingReservationManagerController) CreateParkingReservationManager(c *fiber.Ctx) error {
	var body dto.ParkingReservationManagerRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateReservation.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	manager := body.ToModel()
	if err := ctrl.DB.Create(&manager).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create reservation manager")
	}

	return helper.JsonCreated(c, "ParkingReservationManager Created Successfully", dto.ToParkingReservationManagerDTO(manager))
}

func (ctrl *ParkingReservationManagerController) GetAllParkingReservationManagers(c *fiber.Ctx) error {
	var managers []model.ParkingReservationManagerModel
	if err := ctrl.DB.Find(&managers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve reservation managers")
	}

	resp := make([]dto.ParkingReservationManagerDTO, 0, len(managers))
	for _, m := range managers {
		resp = append(resp, dto.ToParkingReservationManagerDTO(m))
	}
	return helper.JsonOK(c, "ok", resp)
}

func (ctrl *ParkingReservationManagerController) GetParkingReservationManagerByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid reservation manager id")
	}

	var manager model.ParkingReservationManagerModel
	if err := ctrl.DB.First(&manager, "reservation_manager_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "ParkingReservationManager Not Found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve reservation manager")
	}

	return helper.JsonOK(c, "ok", dto.ToParkingReservationManagerDTO(manager))
}

func (ctrl *ParkingReservationManagerController) UpdateParkingReservationManager(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid reservation manager id")
	}

	var body dto.ParkingReservationManagerRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateReservation.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var manager model.ParkingReservationManagerModel
	if err := ctrl.DB.First(&manager, "reservation_manager_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "ParkingReservationManager Not Found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve reservation manager")
	}

	body.ApplyToModel(&manager)
	if err := ctrl.DB.Save(&manager).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update reservation manager")
	}

	return helper.JsonUpdated(c, "ParkingReservationManager Updated Successfully", dto.ToParkingReservationManagerDTO(manager))
}

func (ctrl *ParkingReservationManagerController) DeleteParkingReservationManager(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid reservation manager id")
	}

	var manager model.ParkingReservationManagerModel
	if err := ctrl.DB.First(&manager, "reservation_manager_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "ParkingReservationManager Not Found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve reservation manager")
	}

	if err := ctrl.DB.Delete(&manager).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete reservation manager")
	}

	return helper.JsonDeleted(c, "ParkingReservationManager Deleted", fiber.Map{"reservation_manager_id": id})
}
