package dto

import (
	"time"

	"github.com/google/uuid"

	"parkirku_backend/internals/features/commerce/products/model"
)

// ============================
// Response DTO
// ============================

type CategoryDTO struct {
	CategoryID          uuid.UUID `json:"category_id"`
	CategoryName        string    `json:"category_name"`
	CategoryDescription string    `json:"category_description"`
	CategoryCreatedAt   time.Time `json:"category_created_at"`
}

// ============================
// Request DTO (create + full update)
// ============================

type CategoryRequest struct {
	CategoryName        string `json:"category_name" validate:"required,min=2,max=100"`
	CategoryDescription string `json:"category_description"`
}

// ============================
// Converters
// ============================

func (r CategoryRequest) ToModel() model.CategoryModel {
	return model.CategoryModel{
		CategoryName:        r.CategoryName,
		CategoryDescription: r.CategoryDescription,
	}
}

// ApplyToModel overwrites every mutable field; omitted request fields land
// as their zero values on purpose (full-field update semantics).
func (r CategoryRequest) ApplyToModel(m *model.CategoryModel) {
	m.CategoryName = r.CategoryName
	m.CategoryDescription = r.CategoryDescription
}

func ToCategoryDTO(m model.CategoryModel) CategoryDTO {
	return CategoryDTO{
		CategoryID:          m.CategoryID,
		CategoryName:        m.CategoryName,
		CategoryDescription: m.CategoryDescription,
		CategoryCreatedAt:   m.CategoryCreatedAt,
	}
}
