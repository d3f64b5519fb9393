package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment status values
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

// PaymentModel references exactly one payment method and one invoice.
// Gateway fields are filled only when a checkout token is requested.
type PaymentModel struct {
	PaymentID             uuid.UUID `gorm:"column:payment_id;type:uuid;primaryKey" json:"payment_id"`
	PaymentAmount         float64   `gorm:"column:payment_amount;type:decimal(10,2);not null" json:"payment_amount"`
	PaymentPaidAt         time.Time `gorm:"column:payment_paid_at;not null" json:"payment_paid_at"`
	PaymentStatus         string    `gorm:"column:payment_status;size:20;not null;default:'pending'" json:"payment_status"`
	PaymentMethodID       uuid.UUID `gorm:"column:payment_method_id;type:uuid;not null;index" json:"payment_method_id"`
	InvoiceID             uuid.UUID `gorm:"column:invoice_id;type:uuid;not null;index" json:"invoice_id"`
	PaymentGatewayOrderID *string   `gorm:"column:payment_gateway_order_id;size:64;uniqueIndex" json:"payment_gateway_order_id,omitempty"`
	PaymentGatewayToken   *string   `gorm:"column:payment_gateway_token;size:255" json:"payment_gateway_token,omitempty"`
	PaymentCreatedAt      time.Time `gorm:"column:payment_created_at;autoCreateTime" json:"payment_created_at"`
	PaymentUpdatedAt      time.Time `gorm:"column:payment_updated_at;autoUpdateTime" json:"payment_updated_at"`
}

func (PaymentModel) TableName() string {
	return "payments"
}

func (m *PaymentModel) BeforeCreate(tx *gorm.DB) error {
	if m.PaymentID == uuid.Nil {
		m.PaymentID = uuid.New()
	}
	if m.PaymentStatus == "" {
		m.PaymentStatus = PaymentStatusPending
	}
	return nil
}
