package repository

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/model"
)

var (
	ErrOrderNotFound     = errors.New("order is not exist")
	ErrOrderIDDuplicated = errors.New("order id already exists")
	ErrPaymentDuplicated = errors.New("payment already recorded on another order")
	ErrReviewNotFound    = errors.New("review is not exist")
	ErrSessionNotFound   = errors.New("checkout session is not exist")
	ErrCartNotFound      = errors.New("cart is not exist")
	ErrAddressNotFound   = errors.New("address is not exist")
)

type IOrderRepo interface {
	// CreateOrder fails with ErrOrderIDDuplicated, or ErrPaymentDuplicated when
	// a non empty payment id is already held by another order.
	CreateOrder(ctx context.Context, order *model.Order) error
	GetOrderByOrderID(ctx context.Context, orderID string) (*model.Order, error)
	ListOrders(ctx context.Context) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status constants.OrderStatus) (*model.Order, error)
	ExistsOrderID(ctx context.Context, orderID string) (bool, error)
}

type IReviewRepo interface {
	CreateReview(ctx context.Context, review *model.Review) error
	ListReviewsByProduct(ctx context.Context, productName string) ([]model.Review, error)
	DeleteReview(ctx context.Context, id int64) error
}

type ICartRepo interface {
	GetCart(ctx context.Context, scope string) (*model.Cart, error)
	SaveCart(ctx context.Context, cart *model.Cart) error
	DeleteCart(ctx context.Context, scope string) error
}

type IAddressRepo interface {
	GetAddress(ctx context.Context, userID string) (*model.SavedAddress, error)
	SaveAddress(ctx context.Context, address *model.SavedAddress) error
}

type ICheckoutSessionRepo interface {
	GetSession(ctx context.Context, id string) (*model.CheckoutSession, error)
	SaveSession(ctx context.Context, session *model.CheckoutSession) error
}
