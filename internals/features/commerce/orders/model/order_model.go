package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderModel struct {
	OrderID            uuid.UUID `gorm:"column:order_id;type:uuid;primaryKey" json:"order_id"`
	OrderDate          time.Time `gorm:"column:order_date;not null" json:"order_date"`
	OrderPrice         float64   `gorm:"column:order_price;type:decimal(10,2);not null" json:"order_price"`
	OrderAddress       string    `gorm:"column:order_address;size:255" json:"order_address"`
	OrderPaymentMethod string    `gorm:"column:order_payment_method;size:50" json:"order_payment_method"`
	CustomerID         uuid.UUID `gorm:"column:customer_id;type:uuid;not null;index" json:"customer_id"`
	OrderCreatedAt     time.Time `gorm:"column:order_created_at;autoCreateTime" json:"order_created_at"`
}

func (OrderModel) TableName() string {
	return "orders"
}

func (m *OrderModel) BeforeCreate(tx *gorm.DB) error {
	if m.OrderID == uuid.Nil {
		m.OrderID = uuid.New()
	}
	if m.OrderDate.IsZero() {
		m.OrderDate = time.Now()
	}
	return nil
}
