package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PaymentMethodModel holds a payment channel; details is free-form JSON
// (card brand, bank, wallet account, etc).
type PaymentMethodModel struct {
	PaymentMethodID        uuid.UUID      `gorm:"column:payment_method_id;type:uuid;primaryKey" json:"payment_method_id"`
	PaymentMethodType      string         `gorm:"column:payment_method_type;size:50;not null" json:"payment_method_type"`
	PaymentMethodDetails   datatypes.JSON `gorm:"column:payment_method_details" json:"payment_method_details"`
	PaymentMethodCreatedAt time.Time      `gorm:"column:payment_method_created_at;autoCreateTime" json:"payment_method_created_at"`

	Payments []PaymentModel `gorm:"foreignKey:PaymentMethodID;constraint:OnDelete:CASCADE" json:"payments,omitempty"`
}

func (PaymentMethodModel) TableName() string {
	return "payment_methods"
}

func (m *PaymentMethodModel) BeforeCreate(tx *gorm.DB) error {
	if m.PaymentMethodID == uuid.Nil {
		m.PaymentMethodID = uuid.New()
	}
	return nil
}
