package constants

import "time"

type ENV string

const (
	Debug ENV = "debug"
	Dev   ENV = "development"
	Stag  ENV = "staging"
	Prod  ENV = "production"
)

type RequestID string

const (
	RequestIDKey RequestID = "request_id"
)

// for caller identity
type ContextKey string

const (
	IdentityKey ContextKey = "identity"
)

const (
	UserIDHeader  = "X-User-ID"
	GuestIDHeader = "X-Guest-ID"
	// only seen when a handler runs without IdentityMiddleware
	DefaultGuest = "guest"
)

const (
	DefaultCurrency      = "INR"
	DefaultOrderIDPrefix = "RG"
	OrderIDMaxAttempts   = 5
)

const (
	GatewayTimeout      = 15 * time.Second
	NotifySendTimeout   = 10 * time.Second
	CheckoutSessionTTL  = 30 * time.Minute
	ServerShutdownLimit = 30 * time.Second
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

func IsValidOrderStatus(status string) bool {
	switch OrderStatus(status) {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusConfirmed PaymentStatus = "confirmed"
)
