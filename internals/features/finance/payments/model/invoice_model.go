package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InvoiceModel struct {
	InvoiceID            uuid.UUID `gorm:"column:invoice_id;type:uuid;primaryKey" json:"invoice_id"`
	InvoiceDateGenerated time.Time `gorm:"column:invoice_date_generated;not null" json:"invoice_date_generated"`
	InvoiceTotalAmount   float64   `gorm:"column:invoice_total_amount;type:decimal(10,2);not null" json:"invoice_total_amount"`
	InvoiceCreatedAt     time.Time `gorm:"column:invoice_created_at;autoCreateTime" json:"invoice_created_at"`

	Payments []PaymentModel `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE" json:"payments,omitempty"`
}

func (InvoiceModel) TableName() string {
	return "invoices"
}

func (m *InvoiceModel) BeforeCreate(tx *gorm.DB) error {
	if m.InvoiceID == uuid.Nil {
		m.InvoiceID = uuid.New()
	}
	return nil
}
