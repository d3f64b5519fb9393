package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"parkirku_backend/internals/features/parking/spaces/dto"
	"parkirku_backend/internals/features/parking/spaces/model"
	helper "parkirku_backend/internals/helpers"
)

var validateSpace = validator.New()

type ParkingSpaceController struct {
	DB *gorm.DB
}

func NewParkingSpaceController(db *gorm.DB) *ParkingSpaceController {
	return &ParkingSpaceController{DB: db}
}

func (ctrl *ParkingSpaceController) CreateParkingSpace(c *fiber.Ctx) error {
	var body dto.ParkingSpaceRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSpace.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	space := body.ToModel()
	if err := ctrl.DB.Create(&space).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create parking space")
	}

	return helper.JsonCreated(c, "ParkingSpace Created Successfully", dto.ToParkingSpaceDTO(space))
}

func (ctrl *ParkingSpaceController) GetAllParkingSpaces(c *fiber.Ctx) error {
	var spaces []model.ParkingSpaceModel
	if err := ctrl.DB.Find(&spaces).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve parking spaces")
	}

	resp := make([]dto.ParkingSpaceDTO, 0, len(spaces))
	for _, m := range spaces {
		resp = append(resp, dto.ToParkingSpaceDTO(m))
	}
	return helper.JsonOK(c, "ok", resp)
}

func (ctrl *ParkingSpaceController) GetParkingSpaceByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid parking space id")
	}

	var space model.ParkingSpaceModel
	if err := ctrl.DB.First(&space, "parking_space_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "ParkingSpace Not Found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve parking space")
	}

	return helper.JsonOK(c, "ok", dto.ToParkingSpaceDTO(space))
}

func (ctrl *ParkingSpaceController) UpdateParkingSpace(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid parking space id")
	}

	var body dto.ParkingSpaceRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSpace.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var space model.ParkingSpaceModel
	if err := ctrl.DB.First(&space, "parking_space_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "ParkingSpace Not Found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve parking space")
	}

	body.ApplyToModel(&space)
	if err := ctrl.DB.Save(&space).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update parking space")
	}

	return helper.JsonUpdated(c, "ParkingSpace Updated Successfully", dto.ToParkingSpaceDTO(space))
}

func (ctrl *ParkingSpaceController) DeleteParkingSpace(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid parking space id")
	}

	var space model.ParkingSpaceModel
	if err := ctrl.DB.First(&space, "parking_space_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "ParkingSpace Not Found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve parking space")
	}

	if err := ctrl.DB.Delete(&space).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete parking space")
	}

	return helper.JsonDeleted(c, "ParkingSpace Deleted", fiber.Map{"parking_space_id": id})
}
