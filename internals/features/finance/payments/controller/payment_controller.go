package controller

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"parkirku_backend/internals/features/finance/payments/dto"
	"parkirku_backend/internals/features/finance/payments/model"
	"parkirku_backend/internals/features/finance/payments/service"
	helper "parkirku_backend/internals/helpers"
)

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

func (ctrl *PaymentController) CreatePayment(c *fiber.Ctx) error {
	var body dto.PaymentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validatePayment.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	payment := body.ToModel()
	if err := ctrl.DB.Create(&payment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create payment")
	}

	return helper.JsonCreated(c, "Payment Created Successfully", dto.ToPaymentDTO(payment))
}

func (ctrl *PaymentController) GetAllPayments(c *fiber.Ctx) error {
	var payments []model.PaymentModel
	if err := ctrl.DB.Find(&payments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve payments")
	}

	resp := make([]dto.PaymentDTO, 0, len(payments))
	for _, m := range payments {
		resp = append(resp, dto.ToPaymentDTO(m))
	}
	return helper.JsonOK(c, "ok", resp)
}

func (ctrl *PaymentController) GetPaymentByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payment id")
	}

	var payment model.PaymentModel
	if err := ctrl.DB.First(&payment, "payment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Payment Not Found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve payment")
	}

	return helper.JsonOK(c, "ok", dto.ToPaymentDTO(payment))
}

func (ctrl *PaymentController) UpdatePayment(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payment id")
	}

	var body dto.PaymentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validatePayment.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var payment model.PaymentModel
	if err := ctrl.DB.First(&payment, "payment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Payment Not Found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve payment")
	}

	body.ApplyToModel(&payment)
	if err := ctrl.DB.Save(&payment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update payment")
	}

	return helper.JsonUpdated(c, "Payment Updated Successfully", dto.ToPaymentDTO(payment))
}

func (ctrl *PaymentController) DeletePayment(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payment id")
	}

	var payment model.PaymentModel
	if err := ctrl.DB.First(&payment, "payment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Payment Not Found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve payment")
	}

	if err := ctrl.DB.Delete(&payment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete payment")
	}

	return helper.JsonDeleted(c, "Payment Deleted", fiber.Map{"payment_id": id})
}

// GenerateSnapToken requests a checkout token from the gateway for an
// existing payment and stores the order id and token alongside it.
func (ctrl *PaymentController) GenerateSnapToken(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payment id")
	}

	var body dto.SnapTokenRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validatePayment.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var payment model.PaymentModel
	if err := ctrl.DB.First(&payment, "payment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Payment Not Found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve payment")
	}

	if payment.PaymentGatewayOrderID == nil || *payment.PaymentGatewayOrderID == "" {
		orderID := fmt.Sprintf("PAY-%s", payment.PaymentID)
		payment.PaymentGatewayOrderID = &orderID
	}

	token, redirectURL, err := service.GenerateSnapToken(payment, service.CustomerInput{
		FirstName: body.CustomerFirstName,
		LastName:  body.CustomerLastName,
		Email:     body.CustomerEmail,
		Phone:     body.CustomerPhone,
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Failed to create gateway transaction")
	}

	payment.PaymentGatewayToken = &token
	if err := ctrl.DB.Save(&payment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update payment")
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"payment_id":   payment.PaymentID,
		"order_id":     payment.PaymentGatewayOrderID,
		"snap_token":   token,
		"redirect_url": redirectURL,
	})
}
