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

var validateCategory = validator.New()

type CategoryController struct {
	DB *gorm.DB
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{DB: db}
}

// =======================
// Create Category
// =======================
func (ctrl *CategoryController) CreateCategory(c *fiber.Ctx) error {
	var body dto.CategoryRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCategory.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	category := body.ToModel()
	if err := ctrl.DB.Create(&category).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create category")
	}

	return helper.JsonCreated(c, "Category Created Successfully", dto.ToCategoryDTO(category))
}

// =======================
// Get All Categories
// =======================
func (ctrl *CategoryController) GetAllCategories(c *fiber.Ctx) error {
	var categories []model.CategoryModel
	if err := ctrl.DB.Find(&categories).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve categories")
	}

	resp := make([]dto.CategoryDTO, 0, len(categories))
	for _, m := range categories {
		resp = append(resp, dto.ToCategoryDTO(m))
	}
	return helper.JsonOK(c, "ok", resp)
}

// =======================
// Get Category by ID
// =======================
func (ctrl *CategoryController) GetCategoryByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid category id")
	}

	var category model.CategoryModel
	if err := ctrl.DB.First(&category, "category_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Category Not Found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve category")
	}

	return helper.JsonOK(c, "ok", dto.ToCategoryDTO(category))
}

// =======================
// Update Category (full overwrite)
// =======================
func (ctrl *CategoryController) UpdateCategory(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid category id")
	}

	var body dto.CategoryRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCategory.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var category model.CategoryModel
	if err := ctrl.DB.First(&category, "category_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Category Not Found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve category")
	}

	body.ApplyToModel(&category)
	if err := ctrl.DB.Save(&category).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update category")
	}

	return helper.JsonUpdated(c, "Category Updated Successfully", dto.ToCategoryDTO(category))
}

// =======================
// Delete Category (cascades products)
// =======================
func (ctrl *CategoryController) DeleteCategory(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid category id")
	}

	var category model.CategoryModel
	if err := ctrl.DB.First(&category, "category_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Category Not Found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve category")
	}

	if err := ctrl.DB.Delete(&category).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete category")
	}

	return helper.JsonDeleted(c, "Category Deleted", fiber.Map{"category_id": id})
}
