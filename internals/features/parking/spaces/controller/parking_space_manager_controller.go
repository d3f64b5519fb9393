package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"parkirku_backend/internals/features/parking/spaces/dto"
	"parkirku_backend/internals/features/parking/spaces/model"
	helper "parkirku_backend/internals/helpers"
)

type ParkingSpaceManagerController struct {
	DB *gorm.DB
}

func NewParkingSpaceManagerController(db *gorm.DB) *ParkingSpaceManagerController {
	return &ParkingSpaceManagerController{DB: db}
}

func (ctrl *ParkingSpaceManagerController) CreateParkingSpaceManager(c *fiber.Ctx) error {
	var body dto.ParkingSpaceManagerRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSpace.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	manager := body.ToModel()
	if err := ctrl.DB.Create(&manager).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create parking space manager")
	}

	return helper.JsonCreated(c, "ParkingSpaceManager Created Successfully", dto.ToParkingSpaceManagerDTO(manager))
}

func (ctrl *ParkingSpaceManagerController) GetAllParkingSpaceManagers(c *fiber.Ctx) error {
	var managers []model.ParkingSpaceManagerModel
	if err := ctrl.DB.Find(&managers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve parking space managers")
	}

	resp := make([]dto.ParkingSpaceManagerDTO, 0, len(managers))
	for _, m := range managers {
		resp = append(resp, dto.ToParkingSpaceManagerDTO(m))
	}
	return helper.JsonOK(c, "ok", resp)
}

func (ctrl *ParkingSpaceManagerController) GetParkingSpaceManagerByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid parking space manager id")
	}

	var manager model.ParkingSpaceManagerModel
	if err := ctrl.DB.First(&manager, "parking_space_manager_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "ParkingSpaceManager Not Found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve parking space manager")
	}

	return helper.JsonOK(c, "ok", dto.ToParkingSpaceManagerDTO(manager))
}

func (ctrl *ParkingSpaceManagerController) UpdateParkingSpaceManager(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid parking space manager id")
	}

	var body dto.ParkingSpaceManagerRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSpace.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var manager model.ParkingSpaceManagerModel
	if err := ctrl.DB.First(&manager, "parking_space_manager_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "ParkingSpaceManager Not Found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve parking space manager")
	}

	body.ApplyToModel(&manager)
	if err := ctrl.DB.Save(&manager).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update parking space manager")
	}

	return helper.JsonUpdated(c, "ParkingSpaceManager Updated Successfully", dto.ToParkingSpaceManagerDTO(manager))
}

func (ctrl *ParkingSpaceManagerController) DeleteParkingSpaceManager(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid parking space manager id")
	}

	var manager model.ParkingSpaceManagerModel
	if err := ctrl.DB.First(&manager, "parking_space_manager_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "ParkingSpaceManager Not Found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve parking space manager")
	}

	if err := ctrl.DB.Delete(&manager).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete parking space manager")
	}

	return helper.JsonDeleted(c, "ParkingSpaceManager Deleted", fiber.Map{"parking_space_manager_id": id})
}
