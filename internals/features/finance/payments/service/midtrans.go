package service

import (
	"errors"
	"fmt"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"parkirku_backend/internals/features/finance/payments/model"
)

var SnapClient snap.Client

// InitMidtrans is called once at bootstrap.
// useProduction=true for Production, false for Sandbox.
func InitMidtrans(serverKey string, useProduction bool) {
	if useProduction {
		SnapClient.New(serverKey, midtrans.Production)
	} else {
		SnapClient.New(serverKey, midtrans.Sandbox)
	}
}

type CustomerInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// GenerateSnapToken creates a checkout transaction for a stored payment.
// The payment's gateway order id doubles as the Midtrans OrderID.
func GenerateSnapToken(p model.PaymentModel, cust CustomerInput) (string, string, error) {
	if p.PaymentAmount <= 0 {
		return "", "", errors.New("invalid payment_amount")
	}
	if p.PaymentGatewayOrderID == nil || *p.PaymentGatewayOrderID == "" {
		return "", "", errors.New("payment_gateway_order_id is required (used as OrderID)")
	}

	gross := int64(p.PaymentAmount)
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  *p.PaymentGatewayOrderID,
			GrossAmt: gross,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: cust.FirstName,
			LName: cust.LastName,
			Email: cust.Email,
			Phone: cust.Phone,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:       *p.PaymentGatewayOrderID,
				Price:    gross,
				Qty:      1,
				Name:     fmt.Sprintf("Parking invoice %s", p.InvoiceID),
				Category: "Parking",
			},
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}
