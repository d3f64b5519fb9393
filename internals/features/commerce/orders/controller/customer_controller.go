package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"parkirku_backend/internals/features/commerce/orders/dto"
	"parkirku_backend/internals/features/commerce/orders/model"
	helper "parkirku_backend/internals/helpers"
)

var validateCustomer = validator.New()

type CustomerController struct {
	DB *gorm.DB
}

func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{DB: db}
}

func (ctrl *CustomerController) CreateCustomer(c *fiber.Ctx) error {
	var body dto.CustomerRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCustomer.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	customer := body.ToModel()
	if err := ctrl.DB.Create(&customer).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create customer")
	}

	return helper.JsonCreated(c, "Customer Created Successfully", dto.ToCustomerDTO(customer))
}

func (ctrl *CustomerController) GetAllCustomers(c *fiber.Ctx) error {
	var customers []model.CustomerModel
	if err := ctrl.DB.Find(&customers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve customers")
	}

	resp := make([]dto.CustomerDTO, 0, len(customers))
	for _, m := range customers {
		resp = append(resp, dto.ToCustomerDTO(m))
	}
	return helper.JsonOK(c, "ok", resp)
}

func (ctrl *CustomerController) GetCustomerByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid customer id")
	}

	var customer model.CustomerModel
	if err := ctrl.DB.First(&customer, "customer_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Customer Not Found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve customer")
	}

	return helper.JsonOK(c, "ok", dto.ToCustomerDTO(customer))
}

func (ctrl *CustomerController) UpdateCustomer(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid customer id")
	}

	var body dto.CustomerRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCustomer.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var customer model.CustomerModel
	if err := ctrl.DB.First(&customer, "customer_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Customer Not Found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve customer")
	}

	body.ApplyToModel(&customer)
	if err := ctrl.DB.Save(&customer).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update customer")
	}

	return helper.JsonUpdated(c, "Customer Updated Successfully", dto.ToCustomerDTO(customer))
}

func (ctrl *CustomerController) DeleteCustomer(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid customer id")
	}

	var customer model.CustomerModel
	if err := ctrl.DB.First(&customer, "customer_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Customer Not Found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve customer")
	}

	if err := ctrl.DB.Delete(&customer).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete customer")
	}

	return helper.JsonDeleted(c, "Customer Deleted", fiber.Map{"customer_id": id})
}
