package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"parkirku_backend/internals/features/parking/spots/dto"
	"parkirku_backend/internals/features/parking/spots/model"
	helper "parkirku_backend/internals/helpers"
)

var validateSpot = validator.New()

type ParkingSpotController struct {
	DB *gorm.DB
}

func NewParkingSpotController(db *gorm.DB) *ParkingSpotController {
	return &ParkingSpotController{DB: db}
}

func (ctrl *ParkingSpotController) CreateParkingSpot(c *fiber.Ctx) error {
	var body dto.ParkingSpotRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSpot.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	spot := body.ToModel()
	if err := ctrl.DB.Create(&spot).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create parking spot")
	}

	return helper.JsonCreated(c, "ParkingSpot Created Successfully", dto.ToParkingSpotDTO(spot))
}

func (ctrl *ParkingSpotController) GetAllParkingSpots(c *fiber.Ctx) error {
	var spots []model.ParkingSpotModel
	if err := ctrl.DB.Find(&spots).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve parking spots")
	}

	resp := make([]dto.ParkingSpotDTO, 0, len(spots))
	for _, m := range spots {
		resp = append(resp, dto.ToParkingSpotDTO(m))
	}
	return helper.JsonOK(c, "ok", resp)
}

func (ctrl *ParkingSpotController) GetParkingSpotByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid parking spot id")
	}

	var spot model.ParkingSpotModel
	if err := ctrl.DB.First(&spot, "parking_spot_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "ParkingSpot Not Found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve parking spot")
	}

	return helper.JsonOK(c, "ok", dto.ToParkingSpotDTO(spot))
}

func (ctrl *ParkingSpotController) UpdateParkingSpot(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid parking spot id")
	}

	var body dto.ParkingSpotRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSpot.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var spot model.ParkingSpotModel
	if err := ctrl.DB.First(&spot, "parking_spot_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "ParkingSpot Not Found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve parking spot")
	}

	body.ApplyToModel(&spot)
	if err := ctrl.DB.Save(&spot).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update parking spot")
	}

	return helper.JsonUpdated(c, "ParkingSpot Updated Successfully", dto.ToParkingSpotDTO(spot))
}

func (ctrl *ParkingSpotController) DeleteParkingSpot(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid parking spot id")
	}

	var spot model.ParkingSpotModel
	if err := ctrl.DB.First(&spot, "parking_spot_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "ParkingSpot Not Found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve parking spot")
	}

	if err := ctrl.DB.Delete(&spot).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete parking spot")
	}

	return helper.JsonDeleted(c, "ParkingSpot Deleted", fiber.Map{"parking_spot_id": id})
}
