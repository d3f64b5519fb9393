package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"parkirku_backend/internals/features/finance/payments/model"
)

type PaymentMethodDTO struct {
	PaymentMethodID        uuid.UUID      `json:"payment_method_id"`
	PaymentMethodType      string         `json:"payment_method_type"`
	PaymentMethodDetails   datatypes.JSON `json:"payment_method_details"`
	PaymentMethodCreatedAt time.Time      `json:"payment_method_created_at"`
}

type PaymentMethodRequest struct {
	PaymentMethodType    string         `json:"payment_method_type" validate:"required,min=2,max=50"`
	PaymentMethodDetails datatypes.JSON `json:"payment_method_details"`
}

func (r PaymentMethodRequest) ToModel() model.PaymentMethodModel {
	return model.PaymentMethodModel{
		PaymentMethodType:    r.PaymentMethodType,
		PaymentMethodDetails: r.PaymentMethodDetails,
	}
}

func (r PaymentMethodRequest) ApplyToModel(m *model.PaymentMethodModel) {
	m.PaymentMethodType = r.PaymentMethodType
	m.PaymentMethodDetails = r.PaymentMethodDetails
}

func ToPaymentMethodDTO(m model.PaymentMethodModel) PaymentMethodDTO {
	return PaymentMethodDTO{
		PaymentMethodID:        m.PaymentMethodID,
		PaymentMethodType:      m.PaymentMethodType,
		PaymentMethodDetails:   m.PaymentMethodDetails,
		PaymentMethodCreatedAt: m.PaymentMethodCreatedAt,
	}
}

type InvoiceDTO struct {
	InvoiceID            uuid.UUID `json:"invoice_id"`
	InvoiceDateGenerated time.Time `json:"invoice_date_generated"`
	InvoiceTotalAmount   float64   `json:"invoice_total_amount"`
	InvoiceCreatedAt     time.Time `json:"invoice_created_at"`
}

type InvoiceRequest struct {
	InvoiceDateGenerated time.Time `json:"invoice_date_generated" validate:"required"`
	InvoiceTotalAmount   float64   `json:"invoice_total_amount" validate:"gte=0"`
}

func (r InvoiceRequest) ToModel() model.InvoiceModel {
	return model.InvoiceModel{
		InvoiceDateGenerated: r.InvoiceDateGenerated,
		InvoiceTotalAmount:   r.InvoiceTotalAmount,
	}
}

func (r InvoiceRequest) ApplyToModel(m *model.InvoiceModel) {
	m.InvoiceDateGenerated = r.InvoiceDateGenerated
	m.InvoiceTotalAmount = r.InvoiceTotalAmount
}

func ToInvoiceDTO(m model.InvoiceModel) InvoiceDTO {
	return InvoiceDTO{
		InvoiceID:            m.InvoiceID,
		InvoiceDateGenerated: m.InvoiceDateGenerated,
		InvoiceTotalAmount:   m.InvoiceTotalAmount,
		InvoiceCreatedAt:     m.InvoiceCreatedAt,
	}
}

type PaymentDTO struct {
	PaymentID             uuid.UUID `json:"payment_id"`
	PaymentAmount         float64   `json:"payment_amount"`
	PaymentPaidAt         time.Time `json:"payment_paid_at"`
	PaymentStatus         string    `json:"payment_status"`
	PaymentMethodID       uuid.UUID `json:"payment_method_id"`
	InvoiceID             uuid.UUID `json:"invoice_id"`
	PaymentGatewayOrderID *string   `json:"payment_gateway_order_id,omitempty"`
	PaymentGatewayToken   *string   `json:"payment_gateway_token,omitempty"`
	PaymentCreatedAt      time.Time `json:"payment_created_at"`
	PaymentUpdatedAt      time.Time `json:"payment_updated_at"`
}

type PaymentRequest struct {
	PaymentAmount   float64   `json:"payment_amount" validate:"gte=0"`
	PaymentPaidAt   time.Time `json:"payment_paid_at" validate:"required"`
	PaymentStatus   string    `json:"payment_status" validate:"omitempty,oneof=pending completed failed"`
	PaymentMethodID uuid.UUID `json:"payment_method_id" validate:"required"`
	InvoiceID       uuid.UUID `json:"invoice_id" validate:"required"`
}

func (r PaymentRequest) ToModel() model.PaymentModel {
	return model.PaymentModel{
		PaymentAmount:   r.PaymentAmount,
		PaymentPaidAt:   r.PaymentPaidAt,
		PaymentStatus:   r.PaymentStatus,
		PaymentMethodID: r.PaymentMethodID,
		InvoiceID:       r.InvoiceID,
	}
}

func (r PaymentRequest) ApplyToModel(m *model.PaymentModel) {
	m.PaymentAmount = r.PaymentAmount
	m.PaymentPaidAt = r.PaymentPaidAt
	if r.PaymentStatus != "" {
		m.PaymentStatus = r.PaymentStatus
	}
	m.PaymentMethodID = r.PaymentMethodID
	m.InvoiceID = r.InvoiceID
}

func ToPaymentDTO(m model.PaymentModel) PaymentDTO {
	return PaymentDTO{
		PaymentID:             m.PaymentID,
		PaymentAmount:         m.PaymentAmount,
		PaymentPaidAt:         m.PaymentPaidAt,
		PaymentStatus:         m.PaymentStatus,
		PaymentMethodID:       m.PaymentMethodID,
		InvoiceID:             m.InvoiceID,
		PaymentGatewayOrderID: m.PaymentGatewayOrderID,
		PaymentGatewayToken:   m.PaymentGatewayToken,
		PaymentCreatedAt:      m.PaymentCreatedAt,
		PaymentUpdatedAt:      m.PaymentUpdatedAt,
	}
}

// SnapTokenRequest carries customer details for the checkout page.
type SnapTokenRequest struct {
	CustomerFirstName string `json:"customer_first_name" validate:"required,max=100"`
	CustomerLastName  string `json:"customer_last_name" validate:"max=100"`
	CustomerEmail     string `json:"customer_email" validate:"omitempty,email"`
	CustomerPhone     string `json:"customer_phone" validate:"max=30"`
}
