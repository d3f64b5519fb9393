package dto

import (
	"time"

	"github.com/google/uuid"

	"parkirku_backend/internals/features/commerce/products/model"
)

type ProductDTO struct {
	ProductID          uuid.UUID `json:"product_id"`
	ProductName        string    `json:"product_name"`
	ProductDescription string    `json:"product_description"`
	ProductPrice       float64   `json:"product_price"`
	ProductBrand       string    `json:"product_brand"`
	CategoryID         uuid.UUID `json:"category_id"`
	ProductCreatedAt   time.Time `json:"product_created_at"`
}

type ProductRequest struct {
	ProductName        string    `json:"product_name" validate:"required,min=2,max=100"`
	ProductDescription string    `json:"product_description"`
	ProductPrice       float64   `json:"product_price" validate:"gte=0"`
	ProductBrand       string    `json:"product_brand"`
	CategoryID         uuid.UUID `json:"category_id" validate:"required"`
}

func (r ProductRequest) ToModel() model.ProductModel {
	return model.ProductModel{
		ProductName:        r.ProductName,
		ProductDescription: r.ProductDescription,
		ProductPrice:       r.ProductPrice,
		ProductBrand:       r.ProductBrand,
		CategoryID:         r.CategoryID,
	}
}

func (r ProductRequest) ApplyToModel(m *model.ProductModel) {
	m.ProductName = r.ProductName
	m.ProductDescription = r.ProductDescription
	m.ProductPrice = r.ProductPrice
	m.ProductBrand = r.ProductBrand
	m.CategoryID = r.CategoryID
}

func ToProductDTO(m model.ProductModel) ProductDTO {
	return ProductDTO{
		ProductID:          m.ProductID,
		ProductName:        m.ProductName,
		ProductDescription: m.ProductDescription,
		ProductPrice:       m.ProductPrice,
		ProductBrand:       m.ProductBrand,
		CategoryID:         m.CategoryID,
		ProductCreatedAt:   m.ProductCreatedAt,
	}
}
