package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"parkirku_backend/internals/features/finance/payments/dto"
	"parkirku_backend/internals/features/finance/payments/model"
	helper "parkirku_backend/internals/helpers"
)

type InvoiceController struct {
	DB *gorm.DB
}

func NewInvoiceController(db *gorm.DB) *InvoiceController {
	return &InvoiceController{DB: db}
}

func (ctrl *InvoiceController) CreateInvoice(c *fiber.Ctx) error {
	var body dto.InvoiceRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validatePayment.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	invoice := body.ToModel()
	if err := ctrl.DB.Create(&invoice).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create invoice")
	}

	return helper.JsonCreated(c, "Invoice Created Successfully", dto.ToInvoiceDTO(invoice))
}

func (ctrl *InvoiceController) GetAllInvoices(c *fiber.Ctx) error {
	var invoices []model.InvoiceModel
	if err := ctrl.DB.Find(&invoices).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve invoices")
	}

	resp := make([]dto.InvoiceDTO, 0, len(invoices))
	for _, m := range invoices {
		resp = append(resp, dto.ToInvoiceDTO(m))
	}
	return helper.JsonOK(c, "ok", resp)
}

func (ctrl *InvoiceController) GetInvoiceByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid invoice id")
	}

	var invoice model.InvoiceModel
	if err := ctrl.DB.First(&invoice, "invoice_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Invoice Not Found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve invoice")
	}

	return helper.JsonOK(c, "ok", dto.ToInvoiceDTO(invoice))
}

func (ctrl *InvoiceController) UpdateInvoice(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid invoice id")
	}

	var body dto.InvoiceRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validatePayment.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var invoice model.InvoiceModel
	if err := ctrl.DB.First(&invoice, "invoice_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Invoice Not Found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve invoice")
	}

	body.ApplyToModel(&invoice)
	if err := ctrl.DB.Save(&invoice).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update invoice")
	}

	return helper.JsonUpdated(c, "Invoice Updated Successfully", dto.ToInvoiceDTO(invoice))
}

func (ctrl *InvoiceController) DeleteInvoice(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid invoice id")
	}

	var invoice model.InvoiceModel
	if err := ctrl.DB.First(&invoice, "invoice_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Invoice Not Found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve invoice")
	}

	if err := ctrl.DB.Delete(&invoice).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete invoice")
	}

	return helper.JsonDeleted(c, "Invoice Deleted", fiber.Map{"invoice_id": id})
}
