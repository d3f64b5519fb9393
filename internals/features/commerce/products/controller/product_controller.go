package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"parkirku_backend/internals/features/commerce/products/dto"
	"parkirku_backend/internals/features/commerce/products/model"
	helper "parkirku_backend/internals/helpers"
)

var validateProduct = validator.New()

type ProductController struct {
	DB *gorm.DB
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{DB: db}
}

func (ctrl *ProductController) CreateProduct(c *fiber.Ctx) error {
	var body dto.ProductRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateProduct.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	product := body.ToModel()
	// FK existence is left to the store; a bad category_id fails on insert.
	if err := ctrl.DB.Create(&product).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create product")
	}

	return helper.JsonCreated(c, "Product Created Successfully", dto.ToProductDTO(product))
}

func (ctrl *ProductController) GetAllProducts(c *fiber.Ctx) error {
	var products []model.ProductModel
	if err := ctrl.DB.Find(&products).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve products")
	}

	resp := make([]dto.ProductDTO, 0, len(products))
	for _, m := range products {
		resp = append(resp, dto.ToProductDTO(m))
	}
	return helper.JsonOK(c, "ok", resp)
}

func (ctrl *ProductController) GetProductByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid product id")
	}

	var product model.ProductModel
	if err := ctrl.DB.First(&product, "product_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Product Not Found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve product")
	}

	return helper.JsonOK(c, "ok", dto.ToProductDTO(product))
}

func (ctrl *ProductController) UpdateProduct(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid product id")
	}

	var body dto.ProductRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateProduct.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var product model.ProductModel
	if err := ctrl.DB.First(&product, "product_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Product Not Found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve product")
	}

	body.ApplyToModel(&product)
	if err := ctrl.DB.Save(&product).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update product")
	}

	return helper.JsonUpdated(c, "Product Updated Successfully", dto.ToProductDTO(product))
}

func (ctrl *ProductController) DeleteProduct(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid product id")
	}

	var product model.ProductModel
	if err := ctrl.DB.First(&product, "product_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Product Not Found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve product")
	}

	if err := ctrl.DB.Delete(&product).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete product")
	}

	return helper.JsonDeleted(c, "Product Deleted", fiber.Map{"product_id": id})
}
