package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomerModel struct {
	CustomerID        uuid.UUID `gorm:"column:customer_id;type:uuid;primaryKey" json:"customer_id"`
	CustomerFirstName string    `gorm:"column:customer_first_name;size:100;not null" json:"customer_first_name"`
	CustomerLastName  string    `gorm:"column:customer_last_name;size:100;not null" json:"customer_last_name"`
	CustomerEmail     string    `gorm:"column:customer_email;size:255" json:"customer_email"`
	CustomerAddress   string    `gorm:"column:customer_address;size:255" json:"customer_address"`
	CustomerCreatedAt time.Time `gorm:"column:customer_created_at;autoCreateTime" json:"customer_created_at"`

	Orders []OrderModel `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"orders,omitempty"`
}

func (CustomerModel) TableName() string {
	return "customers"
}

func (m *CustomerModel) BeforeCreate(tx *gorm.DB) error {
	if m.CustomerID == uuid.Nil {
		m.CustomerID = uuid.New()
	}
	return nil
}
