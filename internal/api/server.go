package api

import (
	"github.com/RoyceAzure/lab/storefront/internal/api/handler"
	"github.com/RoyceAzure/lab/storefront/internal/infra/ratelimit"
)

type Server struct {
	OrderHandler    *handler.OrderHandler
	PaymentHandler  *handler.PaymentHandler
	ReviewHandler   *handler.ReviewHandler
	CartHandler     *handler.CartHandler
	AddressHandler  *handler.AddressHandler
	CheckoutHandler *handler.CheckoutHandler
	HealthHandler   *handler.HealthHandler
	PaymentLimiter  *ratelimit.KeyedLimiter
}

func NewServer(
	orderHandler *handler.OrderHandler,
	paymentHandler *handler.PaymentHandler,
	reviewHandler *handler.ReviewHandler,
	cartHandler *handler.CartHandler,
	addressHandler *handler.AddressHandler,
	checkoutHandler *handler.CheckoutHandler,
	healthHandler *handler.HealthHandler,
	paymentLimiter *ratelimit.KeyedLimiter,
) *Server {
	return &Server{
		OrderHandler:    orderHandler,
		PaymentHandler:  paymentHandler,
		ReviewHandler:   reviewHandler,
		CartHandler:     cartHandler,
		AddressHandler:  addressHandler,
		CheckoutHandler: checkoutHandler,
		HealthHandler:   healthHandler,
		PaymentLimiter:  paymentLimiter,
	}
}
