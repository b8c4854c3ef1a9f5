package model

import (
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/constants"
)

type OrderItem struct {
	Name  string `json:"name"`
	Qty   int    `json:"qty"`
	Price Rupees `json:"price"`
}

type Order struct {
	ID             string                  `gorm:"primaryKey;type:uuid" json:"id"`
	OrderID        string                  `gorm:"column:order_id;uniqueIndex" json:"order_id"`
	UserID         string                  `gorm:"column:user_id" json:"user_id,omitempty"`
	GuestName      string                  `gorm:"column:guest_name" json:"guest_name"`
	GuestPhone     string                  `gorm:"column:guest_phone" json:"guest_phone"`
	GuestAddress   string                  `gorm:"column:guest_address" json:"guest_address"`
	GuestEmail     string                  `gorm:"column:guest_email" json:"guest_email,omitempty"`
	GuestCity      string                  `gorm:"column:guest_city" json:"guest_city,omitempty"`
	GuestState     string                  `gorm:"column:guest_state" json:"guest_state,omitempty"`
	GuestPincode   string                  `gorm:"column:guest_pincode" json:"guest_pincode,omitempty"`
	Items          []OrderItem             `gorm:"column:items;type:jsonb;serializer:json" json:"items"`
	TotalPrice     Rupees                  `gorm:"column:total_price" json:"total_price"`
	DiscountAmount Rupees                  `gorm:"column:discount_amount" json:"discount_amount"`
	PaymentStatus  constants.PaymentStatus `gorm:"column:payment_status" json:"payment_status"`
	PaymentID      string                  `gorm:"column:payment_id" json:"payment_id,omitempty"`
	GatewayOrderID string                  `gorm:"column:gateway_order_id" json:"gateway_order_id,omitempty"`
	DeliveryDate   string                  `gorm:"column:delivery_date" json:"delivery_date"`
	Status         constants.OrderStatus   `gorm:"column:status" json:"status"`
	CreatedAt      time.Time               `gorm:"column:created_at" json:"created_at"`
	UpdatedAt      time.Time               `gorm:"column:updated_at" json:"updated_at"`
}

func (Order) TableName() string {
	return "orders"
}

// Clone returns a copy that does not share the items slice.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	c := *o
	c.Items = make([]OrderItem, len(o.Items))
	copy(c.Items, o.Items)
	return &c
}
