package dto

import (
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/RoyceAzure/lab/storefront/internal/service"
)

type BuyNowVariantDTO struct {
	Label    string       `json:"label"`
	Price    model.Rupees `json:"price"`
	Quantity int          `json:"quantity"`
}

type BuyNowDTO struct {
	ProductName string             `json:"product_name"`
	Category    string             `json:"category"`
	IsSample    bool               `json:"is_sample"`
	Variants    []BuyNowVariantDTO `json:"variants"`
}

// DraftRequestDTO carries either buy_now or source "cart".
type DraftRequestDTO struct {
	Source           string     `json:"source"`
	BuyNow           *BuyNowDTO `json:"buy_now"`
	Customer         AddressDTO `json:"customer"`
	UseCustomAddress bool       `json:"use_custom_address"`
}

func (d DraftRequestDTO) ToInput() service.DraftInput {
	input := service.DraftInput{
		Source:           model.DraftSourceCart,
		Customer:         d.Customer.ToModel(),
		UseCustomAddress: d.UseCustomAddress,
	}
	if d.BuyNow != nil && d.Source != string(model.DraftSourceCart) {
		input.Source = model.DraftSourceBuyNow
		sel := &service.BuyNowSelection{
			ProductName: d.BuyNow.ProductName,
			Category:    d.BuyNow.Category,
			IsSample:    d.BuyNow.IsSample,
		}
		for _, v := range d.BuyNow.Variants {
			sel.Variants = append(sel.Variants, service.BuyNowVariant{Label: v.Label, Price: v.Price, Quantity: v.Quantity})
		}
		input.BuyNow = sel
	}
	return input
}

type DraftResponse struct {
	Success bool              `json:"success"`
	Draft   *model.OrderDraft `json:"draft"`
}

type ConfirmCheckoutDTO struct {
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}

type CheckoutStartResponse struct {
	Success      bool                  `json:"success"`
	Session      model.CheckoutSummary `json:"session"`
	GatewayOrder *model.GatewayOrder   `json:"order"`
	KeyID        string                `json:"keyId"`
	Draft        model.OrderDraft      `json:"draft"`
}

type CheckoutSummaryResponse struct {
	Success bool                  `json:"success"`
	Summary model.CheckoutSummary `json:"summary"`
	Order   *model.Order          `json:"order,omitempty"`
}
