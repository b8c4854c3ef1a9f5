package dto

import (
	"encoding/json"
	"strings"

	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/RoyceAzure/lab/storefront/internal/service"
)

// OrderItemDTO accepts both name/product_name and qty/quantity.
type OrderItemDTO struct {
	Name        string          `json:"name"`
	ProductName string          `json:"product_name"`
	Qty         int             `json:"qty"`
	Quantity    int             `json:"quantity"`
	Price       json.RawMessage `json:"price" swaggertype:"integer"`
}

// CreateOrderDTO is the loosely shaped order payload sent by the storefront.
// Historical aliases are resolved once, in ToInput.
type CreateOrderDTO struct {
	OrderID         string          `json:"order_id"`
	UserID          string          `json:"user_id"`
	GuestName       string          `json:"guest_name"`
	CustomerName    string          `json:"customer_name"`
	GuestPhone      string          `json:"guest_phone"`
	CustomerPhone   string          `json:"customer_phone"`
	GuestAddress    string          `json:"guest_address"`
	CustomerAddress string          `json:"customer_address"`
	GuestEmail      string          `json:"guest_email"`
	CustomerEmail   string          `json:"customer_email"`
	GuestCity       string          `json:"guest_city"`
	GuestState      string          `json:"guest_state"`
	GuestPincode    string          `json:"guest_pincode"`
	Items           []OrderItemDTO  `json:"items"`
	TotalPrice      json.RawMessage `json:"total_price" swaggertype:"integer"`
	TotalAmount     json.RawMessage `json:"total_amount" swaggertype:"integer"`
	FinalAmount     json.RawMessage `json:"final_amount" swaggertype:"integer"`
	DiscountAmount  json.RawMessage `json:"discount_amount" swaggertype:"integer"`
	DeliveryDate    string          `json:"delivery_date"`

	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func firstPositive(values ...int) int {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}

func firstAmount(values ...json.RawMessage) (model.Rupees, bool) {
	for _, raw := range values {
		if amount, ok := ParseRupees(raw); ok {
			return amount, true
		}
	}
	return 0, false
}

// ToInput normalises aliases. A missing total becomes -1 so the service rejects it.
func (d CreateOrderDTO) ToInput() service.CreateOrderInput {
	items := make([]model.OrderItem, 0, len(d.Items))
	for _, item := range d.Items {
		price, _ := ParseRupees(item.Price)
		qty := firstPositive(item.Qty, item.Quantity)
		if qty == 0 && item.Qty == 0 && item.Quantity == 0 {
			qty = 1
		}
		items = append(items, model.OrderItem{
			Name:  firstNonEmpty(item.Name, item.ProductName),
			Qty:   qty,
			Price: price,
		})
	}

	total, ok := firstAmount(d.TotalPrice, d.TotalAmount, d.FinalAmount)
	if !ok {
		total = -1
	}
	discount, _ := ParseRupees(d.DiscountAmount)

	return service.CreateOrderInput{
		OrderID:        strings.TrimSpace(d.OrderID),
		UserID:         strings.TrimSpace(d.UserID),
		GuestName:      firstNonEmpty(d.GuestName, d.CustomerName),
		GuestPhone:     firstNonEmpty(d.GuestPhone, d.CustomerPhone),
		GuestAddress:   firstNonEmpty(d.GuestAddress, d.CustomerAddress),
		GuestEmail:     firstNonEmpty(d.GuestEmail, d.CustomerEmail),
		GuestCity:      strings.TrimSpace(d.GuestCity),
		GuestState:     strings.TrimSpace(d.GuestState),
		GuestPincode:   strings.TrimSpace(d.GuestPincode),
		Items:          items,
		TotalPrice:     total,
		DiscountAmount: discount,
		DeliveryDate:   strings.TrimSpace(d.DeliveryDate),
		Payment: service.PaymentProof{
			GatewayOrderID: strings.TrimSpace(d.RazorpayOrderID),
			PaymentID:      strings.TrimSpace(d.RazorpayPaymentID),
			Signature:      strings.TrimSpace(d.RazorpaySignature),
		},
	}
}

type UpdateOrderStatusDTO struct {
	Status string `json:"status"`
}

type OrderResponse struct {
	Success bool         `json:"success"`
	Order   *model.Order `json:"order"`
}

type UpdateOrderStatusResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Order   *model.Order `json:"order"`
}

type OrderListResponse struct {
	Success bool          `json:"success"`
	Count   int           `json:"count"`
	Orders  []model.Order `json:"orders"`
}
