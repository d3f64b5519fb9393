package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"parkirku_backend/internals/features/finance/payments/dto"
	"parkirku_backend/internals/features/finance/payments/model"
	helper "parkirku_backend/internals/helpers"
)

var validatePayment = validator.New()

type PaymentMethodController struct {
	DB *gorm.DB
}

func NewPaymentMethodController(db *gorm.DB) *PaymentMethodController {
	return &PaymentMethodController{DB: db}
}

func (ctrl *PaymentMethodController) CreatePaymentMethod(c *fiber.Ctx) error {
	var body dto.PaymentMethodRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validatePayment.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	method := body.ToModel()
	if err := ctrl.DB.Create(&method).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create payment method")
	}

	return helper.JsonCreated(c, "PaymentMethod Created Successfully", dto.ToPaymentMethodDTO(method))
}

func (ctrl *PaymentMethodController) GetAllPaymentMethods(c *fiber.Ctx) error {
	var methods []model.PaymentMethodModel
	if err := ctrl.DB.Find(&methods).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve payment methods")
	}

	resp := make([]dto.PaymentMethodDTO, 0, len(methods))
	for _, m := range methods {
		resp = append(resp, dto.ToPaymentMethodDTO(m))
	}
	return helper.JsonOK(c, "ok", resp)
}

func (ctrl *PaymentMethodController) GetPaymentMethodByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payment method id")
	}

	var method model.PaymentMethodModel
	if err := ctrl.DB.First(&method, "payment_method_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "PaymentMethod Not Found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve payment method")
	}

	return helper.JsonOK(c, "ok", dto.ToPaymentMethodDTO(method))
}

func (ctrl *PaymentMethodController) UpdatePaymentMethod(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payment method id")
	}

	var body dto.PaymentMethodRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validatePayment.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var method model.PaymentMethodModel
	if err := ctrl.DB.First(&method, "payment_method_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "PaymentMethod Not Found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve payment method")
	}

	body.ApplyToModel(&method)
	if err := ctrl.DB.Save(&method).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update payment method")
	}

	return helper.JsonUpdated(c, "PaymentMethod Updated Successfully", dto.ToPaymentMethodDTO(method))
}

func (ctrl *PaymentMethodController) DeletePaymentMethod(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payment method id")
	}

	var method model.PaymentMethodModel
	if err := ctrl.DB.First(&method, "payment_method_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "PaymentMethod Not Found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve payment method")
	}

	if err := ctrl.DB.Delete(&method).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete payment method")
	}

	return helper.JsonDeleted(c, "PaymentMethod Deleted", fiber.Map{"payment_method_id": id})
}
