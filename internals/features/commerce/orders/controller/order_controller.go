package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"parkirku_backend/internals/features/commerce/orders/dto"
	"parkirku_backend/internals/features/commerce/orders/model"
	helper "parkirku_backend/internals/helpers"
)

type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

func (ctrl *OrderController) CreateOrder(c *fiber.Ctx) error {
	var body dto.OrderRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCustomer.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	order := body.ToModel()
	if err := ctrl.DB.Create(&order).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create order")
	}

	return helper.JsonCreated(c, "Order Created Successfully", dto.ToOrderDTO(order))
}

func (ctrl *OrderController) GetAllOrders(c *fiber.Ctx) error {
	var orders []model.OrderModel
	if err := ctrl.DB.Find(&orders).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve orders")
	}

	resp := make([]dto.OrderDTO, 0, len(orders))
	for _, m := range orders {
		resp = append(resp, dto.ToOrderDTO(m))
	}
	return helper.JsonOK(c, "ok", resp)
}

func (ctrl *OrderController) GetOrderByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid order id")
	}

	var order model.OrderModel
	if err := ctrl.DB.First(&order, "order_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Order Not Found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve order")
	}

	return helper.JsonOK(c, "ok", dto.ToOrderDTO(order))
}

func (ctrl *OrderController) UpdateOrder(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid order id")
	}

	var body dto.OrderRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCustomer.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var order model.OrderModel
	if err := ctrl.DB.First(&order, "order_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Order Not Found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve order")
	}

	body.ApplyToModel(&order)
	if err := ctrl.DB.Save(&order).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update order")
	}

	return helper.JsonUpdated(c, "Order Updated Successfully", dto.ToOrderDTO(order))
}

func (ctrl *OrderController) DeleteOrder(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid order id")
	}

	var order model.OrderModel
	if err := ctrl.DB.First(&order, "order_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Order Not Found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve order")
	}

	if err := ctrl.DB.Delete(&order).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete order")
	}

	return helper.JsonDeleted(c, "Order Deleted", fiber.Map{"order_id": id})
}
