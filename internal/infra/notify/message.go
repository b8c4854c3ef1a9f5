package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/model"
)

var ErrChannelDisabled = errors.New("notification channel disabled")

// OrderNotification is everything a warehouse or customer message carries about a placed order.
type OrderNotification struct {
	OrderID          string            `json:"order_id"`
	CustomerName     string            `json:"customer_name"`
	CustomerPhone    string            `json:"customer_phone"`
	CustomerEmail    string            `json:"customer_email,omitempty"`
	CustomerAddress  string            `json:"customer_address"`
	Items            []model.OrderItem `json:"items"`
	Total            model.Rupees      `json:"total"`
	PaymentStatus    string            `json:"payment_status"`
	DeliveryEstimate string            `json:"delivery_estimate"`
	CreatedAt        time.Time         `json:"created_at"`
}

func FromOrder(order *model.Order) OrderNotification {
	return OrderNotification{
		OrderID:          order.OrderID,
		CustomerName:     order.GuestName,
		CustomerPhone:    order.GuestPhone,
		CustomerEmail:    order.GuestEmail,
		CustomerAddress:  order.GuestAddress,
		Items:            order.Items,
		Total:            order.TotalPrice,
		PaymentStatus:    string(order.PaymentStatus),
		DeliveryEstimate: order.DeliveryDate,
		CreatedAt:        order.CreatedAt,
	}
}

// ItemsText renders "1. Name x2 - ₹250" lines.
func (n OrderNotification) ItemsText() string {
	lines := make([]string, 0, len(n.Items))
	for i, item := range n.Items {
		lines = append(lines, fmt.Sprintf("%d. %s x%d - ₹%d", i+1, item.Name, item.Qty, item.Price))
	}
	return strings.Join(lines, "\n")
}

type Notifier interface {
	Name() string
	Notify(ctx context.Context, n OrderNotification) error
}
