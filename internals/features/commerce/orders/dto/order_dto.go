package dto

import (
	"time"

	"github.com/google/uuid"

	"parkirku_backend/internals/features/commerce/orders/model"
)

// ============================
// Customer
// ============================

type CustomerDTO struct {
	CustomerID        uuid.UUID `json:"customer_id"`
	CustomerFirstName string    `json:"customer_first_name"`
	CustomerLastName  string    `json:"customer_last_name"`
	CustomerEmail     string    `json:"customer_email"`
	CustomerAddress   string    `json:"customer_address"`
	CustomerCreatedAt time.Time `json:"customer_created_at"`
}

type CustomerRequest struct {
	CustomerFirstName string `json:"customer_first_name" validate:"required,min=1,max=100"`
	CustomerLastName  string `json:"customer_last_name" validate:"required,min=1,max=100"`
	CustomerEmail     string `json:"customer_email" validate:"omitempty,email"`
	CustomerAddress   string `json:"customer_address"`
}

func (r CustomerRequest) ToModel() model.CustomerModel {
	return model.CustomerModel{
		CustomerFirstName: r.CustomerFirstName,
		CustomerLastName:  r.CustomerLastName,
		CustomerEmail:     r.CustomerEmail,
		CustomerAddress:   r.CustomerAddress,
	}
}

func (r CustomerRequest) ApplyToModel(m *model.CustomerModel) {
	m.CustomerFirstName = r.CustomerFirstName
	m.CustomerLastName = r.CustomerLastName
	m.CustomerEmail = r.CustomerEmail
	m.CustomerAddress = r.CustomerAddress
}

func ToCustomerDTO(m model.CustomerModel) CustomerDTO {
	return CustomerDTO{
		CustomerID:        m.CustomerID,
		CustomerFirstName: m.CustomerFirstName,
		CustomerLastName:  m.CustomerLastName,
		CustomerEmail:     m.CustomerEmail,
		CustomerAddress:   m.CustomerAddress,
		CustomerCreatedAt: m.CustomerCreatedAt,
	}
}

// ============================
// Order
// ============================

type OrderDTO struct {
	OrderID            uuid.UUID `json:"order_id"`
	OrderDate          time.Time `json:"order_date"`
	OrderPrice         float64   `json:"order_price"`
	OrderAddress       string    `json:"order_address"`
	OrderPaymentMethod string    `json:"order_payment_method"`
	CustomerID         uuid.UUID `json:"customer_id"`
	OrderCreatedAt     time.Time `json:"order_created_at"`
}

type OrderRequest struct {
	OrderDate          time.Time `json:"order_date"`
	OrderPrice         float64   `json:"order_price" validate:"gte=0"`
	OrderAddress       string    `json:"order_address"`
	OrderPaymentMethod string    `json:"order_payment_method"`
	CustomerID         uuid.UUID `json:"customer_id" validate:"required"`
}

func (r OrderRequest) ToModel() model.OrderModel {
	return model.OrderModel{
		OrderDate:          r.OrderDate,
		OrderPrice:         r.OrderPrice,
		OrderAddress:       r.OrderAddress,
		OrderPaymentMethod: r.OrderPaymentMethod,
		CustomerID:         r.CustomerID,
	}
}

func (r OrderRequest) ApplyToModel(m *model.OrderModel) {
	m.OrderDate = r.OrderDate
	m.OrderPrice = r.OrderPrice
	m.OrderAddress = r.OrderAddress
	m.OrderPaymentMethod = r.OrderPaymentMethod
	m.CustomerID = r.CustomerID
}

func ToOrderDTO(m model.OrderModel) OrderDTO {
	return OrderDTO{
		OrderID:            m.OrderID,
		OrderDate:          m.OrderDate,
		OrderPrice:         m.OrderPrice,
		OrderAddress:       m.OrderAddress,
		OrderPaymentMethod: m.OrderPaymentMethod,
		CustomerID:         m.CustomerID,
		OrderCreatedAt:     m.OrderCreatedAt,
	}
}
