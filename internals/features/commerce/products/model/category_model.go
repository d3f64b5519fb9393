package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryModel struct {
	CategoryID          uuid.UUID `gorm:"column:category_id;type:uuid;primaryKey" json:"category_id"`
	CategoryName        string    `gorm:"column:category_name;size:100;not null" json:"category_name"`
	CategoryDescription string    `gorm:"column:category_description;type:text" json:"category_description"`
	CategoryCreatedAt   time.Time `gorm:"column:category_created_at;autoCreateTime" json:"category_created_at"`

	Products []ProductModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"products,omitempty"`
}

func (CategoryModel) TableName() string {
	return "categories"
}

func (m *CategoryModel) BeforeCreate(tx *gorm.DB) error {
	if m.CategoryID == uuid.Nil {
		m.CategoryID = uuid.New()
	}
	return nil
}
