package dto

import (
	"encoding/json"

	"github.com/RoyceAzure/lab/storefront/internal/model"
)

type CreatePaymentOrderDTO struct {
	Amount   json.RawMessage `json:"amount" swaggertype:"integer"` //paise
	Currency string          `json:"currency"`
	Receipt  string          `json:"receipt"`
}

type CreatePaymentOrderResponse struct {
	Success bool                `json:"success"`
	Order   *model.GatewayOrder `json:"order"`
	KeyID   string              `json:"keyId"`
}

type VerifyPaymentDTO struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}
