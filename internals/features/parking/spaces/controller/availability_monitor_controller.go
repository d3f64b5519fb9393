package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"parkirku_backend/internals/features/parking/spaces/dto"
	"parkirku_backend/internals/features/parking/spaces/model"
	helper "parkirku_backend/internals/helpers"
)

type AvailabilityMonitorController struct {
	DB *gorm.DB
}

func NewAvailabilityMonitorController(db *gorm.DB) *AvailabilityMonitorController {
	return &AvailabilityMonitorController{DB: db}
}

func (ctrl *AvailabilityMonitorController) CreateAvailabilityMonitor(c *fiber.Ctx) error {
	var body dto.AvailabilityMonitorRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSpace.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	monitor := body.ToModel()
	// One monitor per space; the unique index rejects a second one.
	if err := ctrl.DB.Create(&monitor).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create availability monitor")
	}

	return helper.JsonCreated(c, "AvailabilityMonitor Created Successfully", dto.ToAvailabilityMonitorDTO(monitor))
}

func (ctrl *AvailabilityMonitorController) GetAllAvailabilityMonitors(c *fiber.Ctx) error {
	var monitors []model.AvailabilityMonitorModel
	if err := ctrl.DB.Find(&monitors).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve availability monitors")
	}

	resp := make([]dto.AvailabilityMonitorDTO, 0, len(monitors))
	for _, m := range monitors {
		resp = append(resp, dto.ToAvailabilityMonitorDTO(m))
	}
	return helper.JsonOK(c, "ok", resp)
}

func (ctrl *AvailabilityMonitorController) GetAvailabilityMonitorByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid availability monitor id")
	}

	var monitor model.AvailabilityMonitorModel
	if err := ctrl.DB.First(&monitor, "availability_monitor_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "AvailabilityMonitor Not Found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve availability monitor")
	}

	return helper.JsonOK(c, "ok", dto.ToAvailabilityMonitorDTO(monitor))
}

func (ctrl *AvailabilityMonitorController) UpdateAvailabilityMonitor(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid availability monitor id")
	}

	var body dto.AvailabilityMonitorRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSpace.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var monitor model.AvailabilityMonitorModel
	if err := ctrl.DB.First(&monitor, "availability_monitor_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "AvailabilityMonitor Not Found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve availability monitor")
	}

	body.ApplyToModel(&monitor)
	if err := ctrl.DB.Save(&monitor).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update availability monitor")
	}

	return helper.JsonUpdated(c, "AvailabilityMonitor Updated Successfully", dto.ToAvailabilityMonitorDTO(monitor))
}

func (ctrl *AvailabilityMonitorController) DeleteAvailabilityMonitor(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid availability monitor id")
	}

	var monitor model.AvailabilityMonitorModel
	if err := ctrl.DB.First(&monitor, "availability_monitor_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "AvailabilityMonitor Not Found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve availability monitor")
	}

	if err := ctrl.DB.Delete(&monitor).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete availability monitor")
	}

	return helper.JsonDeleted(c, "AvailabilityMonitor Deleted", fiber.Map{"availability_monitor_id": id})
}
