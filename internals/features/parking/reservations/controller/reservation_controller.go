package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"parkirku_backend/internals/features/parking/reservations/dto"
	"parkirku_backend/internals/features/parking/reservations/model"
	helper "parkirku_backend/internals/helpers"
)

var validateReservation = validator.New()

type ReservationController struct {
	DB *gorm.DB
}

func NewReservationController(db *gorm.DB) *ReservationController {
	return &ReservationController{DB: db}
}

func (ctrl *ReservationController) CreateReservation(c *fiber.Ctx) error {
	var body dto.ReservationRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateReservation.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	reservation := body.ToModel()
	if err := ctrl.DB.Create(&reservation).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create reservation")
	}

	return helper.JsonCreated(c, "Reservation Created Successfully", dto.ToReservationDTO(reservation))
}

func (ctrl *ReservationController) GetAllReservations(c *fiber.Ctx) error {
	var reservations []model.ReservationModel
	if err := ctrl.DB.Find(&reservations).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve reservations")
	}

	resp := make([]dto.ReservationDTO, 0, len(reservations))
	for _, m := range reservations {
		resp = append(resp, dto.ToReservationDTO(m))
	}
	return helper.JsonOK(c, "ok", resp)
}

func (ctrl *ReservationController) GetReservationByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid reservation id")
	}

	var reservation model.ReservationModel
	if err := ctrl.DB.First(&reservation, "reservation_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Reservation Not Found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve reservation")
	}

	return helper.JsonOK(c, "ok", dto.ToReservationDTO(reservation))
}

func (ctrl *ReservationController) UpdateReservation(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid reservation id")
	}

	var body dto.ReservationRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateReservation.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var reservation model.ReservationModel
	if err := ctrl.DB.First(&reservation, "reservation_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Reservation Not Found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve reservation")
	}

	body.ApplyToModel(&reservation)
	if err := ctrl.DB.Save(&reservation).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update reservation")
	}

	return helper.JsonUpdated(c, "Reservation Updated Successfully", dto.ToReservationDTO(reservation))
}

func (ctrl *ReservationController) DeleteReservation(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid reservation id")
	}

	var reservation model.ReservationModel
	if err := ctrl.DB.First(&reservation, "reservation_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Reservation Not Found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve reservation")
	}

	if err := ctrl.DB.Delete(&reservation).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete reservation")
	}

	return helper.JsonDeleted(c, "Reservation Deleted", fiber.Map{"reservation_id": id})
}
