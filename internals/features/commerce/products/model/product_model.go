package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductModel struct {
	ProductID          uuid.UUID `gorm:"column:product_id;type:uuid;primaryKey" json:"product_id"`
	ProductName        string    `gorm:"column:product_name;size:100;not null" json:"product_name"`
	ProductDescription string    `gorm:"column:product_description;type:text" json:"product_description"`
	ProductPrice       float64   `gorm:"column:product_price;type:decimal(10,2);not null" json:"product_price"`
	ProductBrand       string    `gorm:"column:product_brand;size:100" json:"product_brand"`
	CategoryID         uuid.UUID `gorm:"column:category_id;type:uuid;not null;index" json:"category_id"`
	ProductCreatedAt   time.Time `gorm:"column:product_created_at;autoCreateTime" json:"product_created_at"`
	ProductUpdatedAt   time.Time `gorm:"column:product_updated_at;autoUpdateTime" json:"product_updated_at"`
}

func (ProductModel) TableName() string {
	return "products"
}

func (m *ProductModel) BeforeCreate(tx *gorm.DB) error {
	if m.ProductID == uuid.Nil {
		m.ProductID = uuid.New()
	}
	return nil
}
